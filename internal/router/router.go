package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/smartcodecheck/backend/config"
	"github.com/smartcodecheck/backend/internal/handler"
	"github.com/smartcodecheck/backend/internal/middleware"
	"github.com/smartcodecheck/backend/internal/service"
)

// Handlers 路由依赖的全部处理器
type Handlers struct {
	Health    *handler.HealthHandler
	Auth      *handler.AuthHandler
	Dimension *handler.DimensionHandler
	History   *handler.HistoryHandler
	Analysis  *handler.AnalysisHandler
}

func Setup(cfg *config.Config, users service.UserService, h Handlers) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), middleware.RequestID())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
	}))
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	r.GET("/health", h.Health.Health)

	authRequired := middleware.Auth(users)
	api := r.Group("/api/v1")
	{
		h.Auth.RegisterRoutes(api.Group("/auth"), authRequired)

		// 检测与对比不要求登录
		h.Analysis.RegisterRoutes(api)

		h.Dimension.RegisterRoutes(api.Group("/dimensions", authRequired))
		h.History.RegisterRoutes(api.Group("/history", authRequired))
	}

	return r
}
