package database

import (
	"github.com/glebarez/sqlite"
	"github.com/smartcodecheck/backend/internal/model"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// InitDB 按类型打开数据库并自动建表
func InitDB(dbType, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch dbType {
	case "mysql":
		dialector = mysql.Open(dsn)
	default:
		// 使用 github.com/glebarez/sqlite 驱动
		dialector = sqlite.Open(dsn)
	}

	// 唯一索引冲突统一转换为 gorm.ErrDuplicatedKey
	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate 自动建表
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&model.User{}, &model.CustomDimension{}, &model.AnalysisHistory{})
}
