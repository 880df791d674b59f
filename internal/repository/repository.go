package repository

import (
	"context"
	"errors"

	"github.com/smartcodecheck/backend/internal/model"
	"gorm.io/gorm"
)

var (
	// ErrUserNotFound 用户不存在
	ErrUserNotFound = errors.New("user not found")
	// ErrDimensionNotFound 维度不存在
	ErrDimensionNotFound = errors.New("dimension not found")
	// ErrHistoryNotFound 历史记录不存在
	ErrHistoryNotFound = errors.New("history not found")
	// ErrDuplicated 违反唯一索引
	ErrDuplicated = errors.New("record already exists")
)

// UserRepository 用户仓储接口
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

// DimensionRepository 自定义维度仓储接口
type DimensionRepository interface {
	Create(ctx context.Context, dim *model.CustomDimension) error
	ListByUser(ctx context.Context, userID uint) ([]*model.CustomDimension, error)
	GetByName(ctx context.Context, userID uint, name string) (*model.CustomDimension, error)
	Delete(ctx context.Context, id uint) error
}

// HistoryRepository 历史记录仓储接口
type HistoryRepository interface {
	// CreateWithLimit 插入记录，并只保留该用户该类型最新的 limit 条
	CreateWithLimit(ctx context.Context, record *model.AnalysisHistory, limit int) error
	// List 按时间倒序列出，historyType 为空表示不过滤
	List(ctx context.Context, userID uint, historyType string) ([]*model.AnalysisHistory, error)
	GetByID(ctx context.Context, userID, id uint) (*model.AnalysisHistory, error)
	Delete(ctx context.Context, id uint) error
}

// translateError 唯一索引冲突转换为 ErrDuplicated，需要以 TranslateError 打开数据库
func translateError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicated
	}
	return err
}
