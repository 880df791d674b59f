package repository

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/smartcodecheck/backend/internal/model"
	"gorm.io/gorm"
)

// newTestDB 使用临时文件库，事务与普通查询可共享同一份数据
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&model.User{}, &model.CustomDimension{}, &model.AnalysisHistory{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}
