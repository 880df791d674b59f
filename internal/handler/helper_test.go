package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/smartcodecheck/backend/config"
	"github.com/smartcodecheck/backend/internal/middleware"
	"github.com/smartcodecheck/backend/internal/pkg/auth"
	"github.com/smartcodecheck/backend/internal/pkg/database"
	"github.com/smartcodecheck/backend/internal/pkg/llm"
	"github.com/smartcodecheck/backend/internal/pkg/llm/llmtest"
	"github.com/smartcodecheck/backend/internal/repository"
	"github.com/smartcodecheck/backend/internal/service"
	"github.com/smartcodecheck/backend/internal/service/codecheck"
)

type testEnv struct {
	engine *gin.Engine
	users  service.UserService
	llm    *llmtest.FakeChatModel
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.InitDB("sqlite", filepath.Join(t.TempDir(), "handler.db"))
	if err != nil {
		t.Fatalf("init db: %v", err)
	}

	cfg := config.Default()
	users := service.NewUserService(repository.NewUserRepository(db), auth.NewTokenManager("test", time.Hour))
	fake := &llmtest.FakeChatModel{Reply: `{"score": 88, "issues": []}`}
	client := llm.NewClientWithModels(llm.NewSelector(cfg), fake, nil)

	r := gin.New()
	r.GET("/health", NewHealthHandler(cfg).Health)
	v1 := r.Group("/api/v1")
	NewAuthHandler(users).RegisterRoutes(v1.Group("/auth"), middleware.Auth(users))
	NewAnalysisHandler(codecheck.New(client), client).RegisterRoutes(v1)
	protected := v1.Group("", middleware.Auth(users))
	NewDimensionHandler(service.NewDimensionService(repository.NewDimensionRepository(db))).RegisterRoutes(protected.Group("/dimensions"))
	NewHistoryHandler(service.NewHistoryService(repository.NewHistoryRepository(db))).RegisterRoutes(protected.Group("/history"))

	return &testEnv{engine: r, users: users, llm: fake}
}

func (e *testEnv) do(method, path string, body any, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

// login 注册并登录，返回访问令牌
func (e *testEnv) login(t *testing.T, username string) string {
	t.Helper()
	w := e.do(http.MethodPost, "/api/v1/auth/register", gin.H{"username": username, "password": "pw"}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("register: %d %s", w.Code, w.Body.String())
	}
	w = e.do(http.MethodPost, "/api/v1/auth/login", gin.H{"username": username, "password": "pw"}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("login: %d %s", w.Code, w.Body.String())
	}
	var resp TokenResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode token: %v", err)
	}
	return resp.AccessToken
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %s: %v", w.Body.String(), err)
	}
	return v
}
