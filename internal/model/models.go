package model

import (
	"time"
)

// User 用户账号
type User struct {
	ID             uint              `json:"id" gorm:"primaryKey"`
	Username       string            `json:"username" gorm:"size:255;uniqueIndex;not null"`
	Email          *string           `json:"email" gorm:"size:255;uniqueIndex"`
	HashedPassword string            `json:"-" gorm:"size:255;not null"`
	IsActive       bool              `json:"is_active" gorm:"default:true"`
	CreatedAt      time.Time         `json:"created_at"`
	Dimensions     []CustomDimension `json:"dimensions,omitempty" gorm:"foreignKey:UserID"`
}

// CustomDimension 用户自定义的检测维度，同一用户下名称唯一
type CustomDimension struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"size:255;not null;uniqueIndex:idx_user_dimension_name"`
	Description string `json:"description" gorm:"type:text"`
	UserID      uint   `json:"user_id" gorm:"not null;index;uniqueIndex:idx_user_dimension_name"`
}

// History types
const (
	HistoryTypeDetection  = "detection"
	HistoryTypeComparison = "comparison"
)

// MaxHistoryPerType 每个用户每种类型最多保留的历史记录数
const MaxHistoryPerType = 10

// AnalysisHistory 分析历史记录，Data 为前端提交的原始 JSON
type AnalysisHistory struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index:idx_history_user_type"`
	Type      string    `json:"type" gorm:"size:20;not null;index:idx_history_user_type"`
	Data      string    `json:"data" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}

// TableName 指定表名
func (AnalysisHistory) TableName() string {
	return "analysis_history"
}

// IsValidHistoryType 检查历史记录类型
func IsValidHistoryType(t string) bool {
	return t == HistoryTypeDetection || t == HistoryTypeComparison
}
