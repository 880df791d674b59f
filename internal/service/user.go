package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/smartcodecheck/backend/internal/model"
	"github.com/smartcodecheck/backend/internal/pkg/auth"
	"github.com/smartcodecheck/backend/internal/repository"
	"k8s.io/klog/v2"
)

var (
	// ErrUsernameTaken 用户名已存在
	ErrUsernameTaken = errors.New("the user with this username already exists")
	// ErrEmailTaken 邮箱已被注册
	ErrEmailTaken = errors.New("the user with this email already exists")
	// ErrInvalidCredentials 用户名或密码错误
	ErrInvalidCredentials = errors.New("incorrect username or password")
	// ErrInactiveUser 用户已停用
	ErrInactiveUser = errors.New("inactive user")
)

// UserService 用户服务接口
type UserService interface {
	// Register 注册新用户
	Register(ctx context.Context, req *RegisterRequest) (*model.User, error)

	// Login 校验用户名密码并签发访问令牌
	Login(ctx context.Context, username, password string) (string, error)

	// Authenticate 解析访问令牌，返回当前用户
	Authenticate(ctx context.Context, token string) (*model.User, error)
}

// RegisterRequest 注册请求
type RegisterRequest struct {
	Username string  `json:"username" binding:"required"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password string  `json:"password" binding:"required"`
}

type userService struct {
	repo   repository.UserRepository
	tokens *auth.TokenManager
}

// NewUserService 创建用户服务
func NewUserService(repo repository.UserRepository, tokens *auth.TokenManager) UserService {
	return &userService{repo: repo, tokens: tokens}
}

func (s *userService) Register(ctx context.Context, req *RegisterRequest) (*model.User, error) {
	if _, err := s.repo.GetByUsername(ctx, req.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, err
	}

	email := req.Email
	if email != nil && strings.TrimSpace(*email) == "" {
		email = nil
	}
	if email != nil {
		if _, err := s.repo.GetByEmail(ctx, *email); err == nil {
			return nil, ErrEmailTaken
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return nil, err
		}
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password failed: %w", err)
	}

	user := &model.User{
		Username:       req.Username,
		Email:          email,
		HashedPassword: hashed,
		IsActive:       true,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicated) {
			// 并发注册时唯一索引兜底，再查一次区分冲突字段
			klog.V(6).Infof("[UserService.Register] 唯一索引冲突: username=%s", req.Username)
			if _, lookupErr := s.repo.GetByUsername(ctx, req.Username); lookupErr == nil {
				return nil, ErrUsernameTaken
			}
			return nil, ErrEmailTaken
		}
		klog.Errorf("[UserService.Register] 创建用户失败: username=%s, err=%v", req.Username, err)
		return nil, err
	}

	klog.V(6).Infof("[UserService.Register] 用户注册成功: id=%d, username=%s", user.ID, user.Username)
	return user, nil
}

func (s *userService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if !auth.VerifyPassword(password, user.HashedPassword) {
		return "", ErrInvalidCredentials
	}
	if !user.IsActive {
		return "", ErrInactiveUser
	}

	token, err := s.tokens.Issue(user.Username)
	if err != nil {
		return "", fmt.Errorf("issue token failed: %w", err)
	}
	klog.V(6).Infof("[UserService.Login] 登录成功: username=%s", user.Username)
	return token, nil
}

func (s *userService) Authenticate(ctx context.Context, token string) (*model.User, error) {
	username, err := s.tokens.Parse(token)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, auth.ErrInvalidToken
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrInactiveUser
	}
	return user, nil
}
