package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/smartcodecheck/backend/internal/model"
	"github.com/smartcodecheck/backend/internal/repository"
	"k8s.io/klog/v2"
)

var (
	// ErrInvalidHistoryType 类型只能是 detection 或 comparison
	ErrInvalidHistoryType = errors.New("history type must be detection or comparison")
	// ErrInvalidHistoryData data 必须是 JSON 对象
	ErrInvalidHistoryData = errors.New("history data must be a JSON object")
)

// HistoryService 分析历史服务接口
type HistoryService interface {
	// List 按时间倒序列出，historyType 为空表示全部类型
	List(ctx context.Context, userID uint, historyType string) ([]*model.AnalysisHistory, error)

	// Create 保存一条记录，超过上限时淘汰最旧的一条
	Create(ctx context.Context, userID uint, req *CreateHistoryRequest) (*model.AnalysisHistory, error)

	// Delete 删除用户自己的记录
	Delete(ctx context.Context, userID, id uint) error
}

// CreateHistoryRequest 保存历史请求
type CreateHistoryRequest struct {
	Type string          `json:"type" binding:"required"`
	Data json.RawMessage `json:"data" binding:"required"`
}

type historyService struct {
	repo  repository.HistoryRepository
	limit int
}

// NewHistoryService 创建历史服务，每个用户每种类型保留 model.MaxHistoryPerType 条
func NewHistoryService(repo repository.HistoryRepository) HistoryService {
	return &historyService{repo: repo, limit: model.MaxHistoryPerType}
}

func (s *historyService) List(ctx context.Context, userID uint, historyType string) ([]*model.AnalysisHistory, error) {
	if historyType != "" && !model.IsValidHistoryType(historyType) {
		return nil, ErrInvalidHistoryType
	}
	return s.repo.List(ctx, userID, historyType)
}

func (s *historyService) Create(ctx context.Context, userID uint, req *CreateHistoryRequest) (*model.AnalysisHistory, error) {
	if !model.IsValidHistoryType(req.Type) {
		return nil, ErrInvalidHistoryType
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(req.Data, &obj); err != nil || obj == nil {
		return nil, ErrInvalidHistoryData
	}

	record := &model.AnalysisHistory{
		UserID: userID,
		Type:   req.Type,
		Data:   string(req.Data),
	}
	if err := s.repo.CreateWithLimit(ctx, record, s.limit); err != nil {
		klog.Errorf("[HistoryService.Create] 保存历史失败: user=%d, type=%s, err=%v", userID, req.Type, err)
		return nil, fmt.Errorf("save history failed: %w", err)
	}
	klog.V(6).Infof("[HistoryService.Create] 保存历史: id=%d, user=%d, type=%s", record.ID, userID, record.Type)
	return record, nil
}

func (s *historyService) Delete(ctx context.Context, userID, id uint) error {
	record, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, record.ID)
}
