package repository

import (
	"context"
	"errors"

	"github.com/smartcodecheck/backend/internal/model"
	"gorm.io/gorm"
	"k8s.io/klog/v2"
)

type historyRepository struct {
	db *gorm.DB
}

// NewHistoryRepository 创建历史记录仓储
func NewHistoryRepository(db *gorm.DB) HistoryRepository {
	return &historyRepository{db: db}
}

// CreateWithLimit 在同一事务内插入并淘汰
// 插入后保留最新的 limit 条，其余全部删除；并发插入时多出的记录会在下一次写入时被清理
func (r *historyRepository) CreateWithLimit(ctx context.Context, record *model.AnalysisHistory, limit int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(record).Error; err != nil {
			return err
		}
		if limit <= 0 {
			return nil
		}

		var ids []uint
		if err := tx.Model(&model.AnalysisHistory{}).
			Where("user_id = ? AND type = ?", record.UserID, record.Type).
			Order("created_at DESC, id DESC").
			Pluck("id", &ids).Error; err != nil {
			return err
		}
		if len(ids) <= limit {
			return nil
		}

		stale := ids[limit:]
		klog.V(6).Infof("[history] 超出上限 %d，删除最旧记录: ids=%v, user=%d, type=%s", limit, stale, record.UserID, record.Type)
		return tx.Delete(&model.AnalysisHistory{}, stale).Error
	})
}

func (r *historyRepository) List(ctx context.Context, userID uint, historyType string) ([]*model.AnalysisHistory, error) {
	var records []*model.AnalysisHistory
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if historyType != "" {
		query = query.Where("type = ?", historyType)
	}
	err := query.Order("created_at DESC, id DESC").Find(&records).Error
	return records, err
}

func (r *historyRepository) GetByID(ctx context.Context, userID, id uint) (*model.AnalysisHistory, error) {
	var record model.AnalysisHistory
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHistoryNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (r *historyRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.AnalysisHistory{}, id).Error
}
