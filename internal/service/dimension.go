package service

import (
	"context"
	"errors"

	"github.com/smartcodecheck/backend/internal/model"
	"github.com/smartcodecheck/backend/internal/repository"
	"k8s.io/klog/v2"
)

// ErrDimensionExists 同名维度已存在
var ErrDimensionExists = errors.New("dimension with this name already exists")

// DimensionService 自定义维度服务接口
type DimensionService interface {
	// List 列出用户的全部自定义维度
	List(ctx context.Context, userID uint) ([]*model.CustomDimension, error)

	// Create 创建自定义维度，同一用户下名称唯一
	Create(ctx context.Context, userID uint, req *CreateDimensionRequest) (*model.CustomDimension, error)

	// DeleteByName 按名称删除
	DeleteByName(ctx context.Context, userID uint, name string) error

	// Definitions 返回 名称 -> 定义 映射，用于构建提示词
	Definitions(ctx context.Context, userID uint) (map[string]string, error)
}

// CreateDimensionRequest 创建维度请求
type CreateDimensionRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
}

type dimensionService struct {
	repo repository.DimensionRepository
}

// NewDimensionService 创建自定义维度服务
func NewDimensionService(repo repository.DimensionRepository) DimensionService {
	return &dimensionService{repo: repo}
}

func (s *dimensionService) List(ctx context.Context, userID uint) ([]*model.CustomDimension, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *dimensionService) Create(ctx context.Context, userID uint, req *CreateDimensionRequest) (*model.CustomDimension, error) {
	if _, err := s.repo.GetByName(ctx, userID, req.Name); err == nil {
		return nil, ErrDimensionExists
	} else if !errors.Is(err, repository.ErrDimensionNotFound) {
		return nil, err
	}

	dim := &model.CustomDimension{
		Name:        req.Name,
		Description: req.Description,
		UserID:      userID,
	}
	if err := s.repo.Create(ctx, dim); err != nil {
		if errors.Is(err, repository.ErrDuplicated) {
			return nil, ErrDimensionExists
		}
		klog.Errorf("[DimensionService.Create] 创建维度失败: user=%d, name=%s, err=%v", userID, req.Name, err)
		return nil, err
	}
	klog.V(6).Infof("[DimensionService.Create] 创建维度: id=%d, user=%d, name=%s", dim.ID, userID, dim.Name)
	return dim, nil
}

func (s *dimensionService) DeleteByName(ctx context.Context, userID uint, name string) error {
	dim, err := s.repo.GetByName(ctx, userID, name)
	if err != nil {
		return err
	}
	klog.V(6).Infof("[DimensionService.DeleteByName] 删除维度: id=%d, user=%d, name=%s", dim.ID, userID, name)
	return s.repo.Delete(ctx, dim.ID)
}

func (s *dimensionService) Definitions(ctx context.Context, userID uint) (map[string]string, error) {
	dims, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	defs := make(map[string]string, len(dims))
	for _, d := range dims {
		defs[d.Name] = d.Description
	}
	return defs, nil
}
