// Package auth 密码哈希与访问令牌
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const (
	// TokenType 登录接口返回的令牌类型
	TokenType    = "bearer"
	claimSubject = "sub"
	claimExpire  = "exp"
)

// ErrInvalidToken 令牌无效、过期或缺少 sub
var ErrInvalidToken = errors.New("could not validate credentials")

// TokenManager 签发与解析 HS256 访问令牌
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager 创建令牌管理器
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue 签发令牌，sub 为用户名
func (m *TokenManager) Issue(username string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		claimSubject: username,
		claimExpire:  m.now().Add(m.ttl).Unix(),
	})
	return token.SignedString(m.secret)
}

// Parse 校验签名与过期时间，返回用户名
func (m *TokenManager) Parse(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	username, _ := claims[claimSubject].(string)
	if username == "" {
		return "", ErrInvalidToken
	}
	return username, nil
}
