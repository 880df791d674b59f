package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/smartcodecheck/backend/internal/pkg/llm"
	"github.com/smartcodecheck/backend/internal/service/codecheck"
)

// Analyzer 代码检测能力，*codecheck.Service 实现了该接口
type Analyzer interface {
	Analyze(ctx context.Context, req *codecheck.AnalysisRequest) *codecheck.AnalysisResponse
	Compare(ctx context.Context, req *codecheck.ComparisonRequest) *codecheck.ComparisonResponse
}

// ModelLister 可选模型列表，*llm.Client 实现了该接口
type ModelLister interface {
	Catalog() llm.ModelCatalog
}

// AnalysisHandler 单代码检测、双代码对比与模型列表
type AnalysisHandler struct {
	analyzer Analyzer
	models   ModelLister
}

// NewAnalysisHandler 创建分析处理器
func NewAnalysisHandler(analyzer Analyzer, models ModelLister) *AnalysisHandler {
	return &AnalysisHandler{analyzer: analyzer, models: models}
}

// RegisterRoutes 注册路由
func (h *AnalysisHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/analyze", h.Analyze)
	router.POST("/compare", h.Compare)
	router.GET("/models", h.Models)
}

// Analyze POST /api/v1/analyze
// 模型失败不会返回错误码，而是返回 score=0 的兜底结果
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	var req codecheck.AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}
	if strings.TrimSpace(req.CodeContent) == "" {
		abortDetail(c, http.StatusBadRequest, "Code content cannot be empty")
		return
	}

	c.JSON(http.StatusOK, h.analyzer.Analyze(c.Request.Context(), &req))
}

// Compare POST /api/v1/compare
func (h *AnalysisHandler) Compare(c *gin.Context) {
	var req codecheck.ComparisonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	c.JSON(http.StatusOK, h.analyzer.Compare(c.Request.Context(), &req))
}

// Models GET /api/v1/models
func (h *AnalysisHandler) Models(c *gin.Context) {
	c.JSON(http.StatusOK, h.models.Catalog())
}
