package repository

import (
	"context"
	"errors"

	"github.com/smartcodecheck/backend/internal/model"
	"gorm.io/gorm"
)

type dimensionRepository struct {
	db *gorm.DB
}

// NewDimensionRepository 创建自定义维度仓储
func NewDimensionRepository(db *gorm.DB) DimensionRepository {
	return &dimensionRepository{db: db}
}

func (r *dimensionRepository) Create(ctx context.Context, dim *model.CustomDimension) error {
	return translateError(r.db.WithContext(ctx).Create(dim).Error)
}

func (r *dimensionRepository) ListByUser(ctx context.Context, userID uint) ([]*model.CustomDimension, error) {
	var dims []*model.CustomDimension
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&dims).Error
	return dims, err
}

func (r *dimensionRepository) GetByName(ctx context.Context, userID uint, name string) (*model.CustomDimension, error) {
	var dim model.CustomDimension
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND name = ?", userID, name).
		First(&dim).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDimensionNotFound
		}
		return nil, err
	}
	return &dim, nil
}

func (r *dimensionRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.CustomDimension{}, id).Error
}
