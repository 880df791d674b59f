package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"k8s.io/klog/v2"

	"github.com/smartcodecheck/backend/config"
	"github.com/smartcodecheck/backend/internal/handler"
	"github.com/smartcodecheck/backend/internal/pkg/auth"
	"github.com/smartcodecheck/backend/internal/pkg/database"
	"github.com/smartcodecheck/backend/internal/pkg/llm"
	"github.com/smartcodecheck/backend/internal/repository"
	"github.com/smartcodecheck/backend/internal/router"
	"github.com/smartcodecheck/backend/internal/service"
	"github.com/smartcodecheck/backend/internal/service/codecheck"
)

func main() {
	// 初始化 klog
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	klog.V(6).Info("服务启动中...")

	cfg := config.GetConfig()

	if cfg.Database.Type != "mysql" {
		if err := os.MkdirAll(filepath.Dir(cfg.Database.DSN), 0755); err != nil {
			log.Fatalf("Failed to create data directory: %v", err)
		}
	}

	// 初始化数据库
	db, err := database.InitDB(cfg.Database.Type, cfg.Database.DSN)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// 初始化 Repository
	userRepo := repository.NewUserRepository(db)
	dimensionRepo := repository.NewDimensionRepository(db)
	historyRepo := repository.NewHistoryRepository(db)

	// 初始化 Service
	tokens := auth.NewTokenManager(cfg.Auth.SecretKey, time.Duration(cfg.Auth.AccessTokenExpireMinutes)*time.Minute)
	userService := service.NewUserService(userRepo, tokens)
	dimensionService := service.NewDimensionService(dimensionRepo)
	historyService := service.NewHistoryService(historyRepo)

	llmClient, err := llm.NewClient(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize LLM client: %v", err)
	}
	if cfg.LLM.APIKey == "" {
		klog.Warning("未配置 OPENAI_API_KEY，云端模型调用将返回兜底结果")
	}
	analyzer := codecheck.New(llmClient)

	// 设置路由
	r := router.Setup(cfg, userService, router.Handlers{
		Health:    handler.NewHealthHandler(cfg),
		Auth:      handler.NewAuthHandler(userService),
		Dimension: handler.NewDimensionHandler(dimensionService),
		History:   handler.NewHistoryHandler(historyService),
		Analysis:  handler.NewAnalysisHandler(analyzer, llmClient),
	})

	log.Printf("Server starting on port %s...", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
