package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smartcodecheck/backend/config"
)

// HealthHandler 健康检查
type HealthHandler struct {
	project string
	version string
}

// NewHealthHandler 创建健康检查处理器
func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{project: cfg.App.ProjectName, version: cfg.App.Version}
}

// Health GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"project": h.project,
		"version": h.version,
	})
}
