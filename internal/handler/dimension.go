package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smartcodecheck/backend/internal/middleware"
	"github.com/smartcodecheck/backend/internal/model"
	"github.com/smartcodecheck/backend/internal/repository"
	"github.com/smartcodecheck/backend/internal/service"
)

// DimensionHandler 自定义维度
type DimensionHandler struct {
	service service.DimensionService
}

// NewDimensionHandler 创建自定义维度处理器
func NewDimensionHandler(service service.DimensionService) *DimensionHandler {
	return &DimensionHandler{service: service}
}

// RegisterRoutes 注册路由
func (h *DimensionHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("", h.List)
	router.POST("", h.Create)
	router.DELETE("/:name", h.Delete)
}

// List GET /api/v1/dimensions
func (h *DimensionHandler) List(c *gin.Context) {
	user := middleware.CurrentUser(c)
	dims, err := h.service.List(c.Request.Context(), user.ID)
	if err != nil {
		internalError(c, "DimensionHandler.List", err)
		return
	}
	if dims == nil {
		dims = []*model.CustomDimension{}
	}
	c.JSON(http.StatusOK, dims)
}

// Create POST /api/v1/dimensions
func (h *DimensionHandler) Create(c *gin.Context) {
	var req service.CreateDimensionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	user := middleware.CurrentUser(c)
	dim, err := h.service.Create(c.Request.Context(), user.ID, &req)
	switch {
	case errors.Is(err, service.ErrDimensionExists):
		abortDetail(c, http.StatusBadRequest, "Dimension with this name already exists")
		return
	case err != nil:
		internalError(c, "DimensionHandler.Create", err)
		return
	}
	c.JSON(http.StatusOK, dim)
}

// Delete DELETE /api/v1/dimensions/:name
func (h *DimensionHandler) Delete(c *gin.Context) {
	user := middleware.CurrentUser(c)
	err := h.service.DeleteByName(c.Request.Context(), user.ID, c.Param("name"))
	switch {
	case errors.Is(err, repository.ErrDimensionNotFound):
		abortDetail(c, http.StatusNotFound, "Dimension not found")
		return
	case err != nil:
		internalError(c, "DimensionHandler.Delete", err)
		return
	}
	success(c)
}
