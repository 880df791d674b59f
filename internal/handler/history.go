package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/smartcodecheck/backend/internal/middleware"
	"github.com/smartcodecheck/backend/internal/model"
	"github.com/smartcodecheck/backend/internal/repository"
	"github.com/smartcodecheck/backend/internal/service"
)

// HistoryHandler 分析历史
type HistoryHandler struct {
	service service.HistoryService
}

// NewHistoryHandler 创建历史处理器
func NewHistoryHandler(service service.HistoryService) *HistoryHandler {
	return &HistoryHandler{service: service}
}

// RegisterRoutes 注册路由
func (h *HistoryHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("", h.List)
	router.POST("", h.Create)
	router.DELETE("/:id", h.Delete)
}

// HistoryOut 历史记录响应，data 按原始 JSON 输出
type HistoryOut struct {
	ID        uint            `json:"id"`
	Type      string          `json:"type"`
	Data      json.RawMessage `json:"data"`
	CreatedAt time.Time       `json:"created_at"`
}

func toHistoryOut(r *model.AnalysisHistory) HistoryOut {
	data := json.RawMessage(r.Data)
	if !json.Valid(data) {
		data = json.RawMessage("null")
	}
	return HistoryOut{ID: r.ID, Type: r.Type, Data: data, CreatedAt: r.CreatedAt}
}

// List GET /api/v1/history?type=detection|comparison
func (h *HistoryHandler) List(c *gin.Context) {
	user := middleware.CurrentUser(c)
	records, err := h.service.List(c.Request.Context(), user.ID, c.Query("type"))
	switch {
	case errors.Is(err, service.ErrInvalidHistoryType):
		abortDetail(c, http.StatusUnprocessableEntity, err.Error())
		return
	case err != nil:
		internalError(c, "HistoryHandler.List", err)
		return
	}

	out := make([]HistoryOut, 0, len(records))
	for _, r := range records {
		out = append(out, toHistoryOut(r))
	}
	c.JSON(http.StatusOK, out)
}

// Create POST /api/v1/history
func (h *HistoryHandler) Create(c *gin.Context) {
	var req service.CreateHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	user := middleware.CurrentUser(c)
	record, err := h.service.Create(c.Request.Context(), user.ID, &req)
	switch {
	case errors.Is(err, service.ErrInvalidHistoryType), errors.Is(err, service.ErrInvalidHistoryData):
		abortDetail(c, http.StatusUnprocessableEntity, err.Error())
		return
	case err != nil:
		internalError(c, "HistoryHandler.Create", err)
		return
	}
	c.JSON(http.StatusOK, toHistoryOut(record))
}

// Delete DELETE /api/v1/history/:id
func (h *HistoryHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		abortDetail(c, http.StatusUnprocessableEntity, "invalid history id")
		return
	}

	user := middleware.CurrentUser(c)
	err = h.service.Delete(c.Request.Context(), user.ID, uint(id))
	switch {
	case errors.Is(err, repository.ErrHistoryNotFound):
		abortDetail(c, http.StatusNotFound, "History not found")
		return
	case err != nil:
		internalError(c, "HistoryHandler.Delete", err)
		return
	}
	success(c)
}
