package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/smartcodecheck/backend/internal/middleware"
	"github.com/smartcodecheck/backend/internal/model"
	"github.com/smartcodecheck/backend/internal/pkg/auth"
	"github.com/smartcodecheck/backend/internal/service"
)

// AuthHandler 注册、登录与当前用户
type AuthHandler struct {
	users service.UserService
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(users service.UserService) *AuthHandler {
	return &AuthHandler{users: users}
}

// RegisterRoutes 注册路由，protected 为需要登录的中间件
func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup, protected gin.HandlerFunc) {
	router.POST("/register", h.Register)
	router.POST("/login", h.Login)
	router.GET("/me", protected, h.Me)
}

// LoginRequest 登录请求，兼容 OAuth2 password 表单与 JSON
type LoginRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

// TokenResponse 登录响应
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UserOut 对外返回的用户信息，不含密码哈希
type UserOut struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     *string   `json:"email"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserOut(u *model.User) UserOut {
	return UserOut{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

// Register POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	user, err := h.users.Register(c.Request.Context(), &req)
	switch {
	case errors.Is(err, service.ErrUsernameTaken):
		abortDetail(c, http.StatusBadRequest, "The user with this username already exists.")
		return
	case errors.Is(err, service.ErrEmailTaken):
		abortDetail(c, http.StatusBadRequest, "The user with this email already exists.")
		return
	case err != nil:
		internalError(c, "AuthHandler.Register", err)
		return
	}
	c.JSON(http.StatusOK, toUserOut(user))
}

// Login POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		bindFailed(c, err)
		return
	}

	token, err := h.users.Login(c.Request.Context(), req.Username, req.Password)
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		c.Header("WWW-Authenticate", "Bearer")
		abortDetail(c, http.StatusUnauthorized, "Incorrect username or password")
		return
	case errors.Is(err, service.ErrInactiveUser):
		abortDetail(c, http.StatusBadRequest, "Inactive user")
		return
	case err != nil:
		internalError(c, "AuthHandler.Login", err)
		return
	}
	c.JSON(http.StatusOK, TokenResponse{AccessToken: token, TokenType: auth.TokenType})
}

// Me GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, toUserOut(middleware.CurrentUser(c)))
}
