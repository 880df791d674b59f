// Package middleware gin 中间件
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/smartcodecheck/backend/internal/model"
	"github.com/smartcodecheck/backend/internal/service"
	"k8s.io/klog/v2"
)

const currentUserKey = "current_user"

// Auth 校验 Authorization: Bearer <token>，并把当前用户写入上下文
func Auth(users service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			unauthorized(c, "Not authenticated")
			return
		}

		user, err := users.Authenticate(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, service.ErrInactiveUser) {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": "Inactive user"})
				return
			}
			klog.V(6).Infof("[middleware.Auth] 令牌校验失败: path=%s, err=%v", c.Request.URL.Path, err)
			unauthorized(c, "Could not validate credentials")
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// CurrentUser 获取 Auth 中间件写入的当前用户
func CurrentUser(c *gin.Context) *model.User {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil
	}
	user, _ := v.(*model.User)
	return user
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func unauthorized(c *gin.Context, detail string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": detail})
}
