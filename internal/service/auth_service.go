package service

import (
	"context"
	"errors"
	"strings"

	"github.com/storefront-client/internal/api"
	"github.com/storefront-client/internal/logger"
	"github.com/storefront-client/internal/models"
	"github.com/storefront-client/internal/session"
)

// AuthAPI 账号相关的后端接口
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, name, email, password string) (string, error)
	UserDetails(ctx context.Context) (*models.User, error)
	Deactivate(ctx context.Context, userID string) error
}

// AuthService 登录态管理。登录成功后缓存令牌与凭据，
// 令牌过期时用缓存凭据静默重登一次。
type AuthService struct {
	api     AuthAPI
	session *session.Session
}

// NewAuthService 创建账号服务
func NewAuthService(authAPI AuthAPI, sess *session.Session) *AuthService {
	return &AuthService{api: authAPI, session: sess}
}

// LoggedIn 本地是否存在登录态
func (s *AuthService) LoggedIn() bool {
	_, ok, err := s.session.Token()
	return err == nil && ok
}

// Login 登录。401 映射为密码错误，400 映射为用户不存在。
// 成功后保存令牌与凭据，并拉取用户资料记下客户编号。
func (s *AuthService) Login(ctx context.Context, email, password string) error {
	token, err := s.api.Login(ctx, email, password)
	if err != nil {
		switch {
		case errors.Is(err, api.ErrUnauthorized):
			return ErrInvalidPassword
		case errors.Is(err, api.ErrBadRequest):
			return ErrUserNotFound
		default:
			return ErrTryAgainLater
		}
	}
	if err := s.session.SetToken(token); err != nil {
		return err
	}
	if err := s.session.SetCredentials(email, password); err != nil {
		return err
	}

	user, err := s.api.UserDetails(ctx)
	if err != nil {
		logger.Warnw("登录后拉取用户资料失败", "error", err)
		return nil
	}
	if err := s.session.SetCustomerID(user.ID); err != nil {
		logger.Warnw("客户编号保存失败", "error", err)
	}
	return nil
}

// Register 自助注册
func (s *AuthService) Register(ctx context.Context, name, email, password string) error {
	message, err := s.api.Register(ctx, name, email, password)
	if err != nil {
		if errors.Is(err, api.ErrBadRequest) {
			return ErrEmailInUse
		}
		return ErrTryAgainLater
	}
	if strings.Contains(message, "Email already in use") {
		return ErrEmailInUse
	}
	return nil
}

// UserDetails 获取当前用户资料。令牌过期或被拒时用缓存凭据重登一次再试，
// 仅此一次，其他接口不做这种重试。
func (s *AuthService) UserDetails(ctx context.Context) (*models.User, error) {
	if !s.session.TokenExpired() {
		user, err := s.api.UserDetails(ctx)
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, api.ErrUnauthorized) {
			return nil, err
		}
	}

	email, password, ok, err := s.session.Credentials()
	if err != nil || !ok {
		return nil, ErrNotLoggedIn
	}
	token, err := s.api.Login(ctx, email, password)
	if err != nil {
		return nil, ErrNotLoggedIn
	}
	if err := s.session.SetToken(token); err != nil {
		return nil, err
	}
	logger.Infow("令牌已静默刷新")
	return s.api.UserDetails(ctx)
}

// Deactivate 停用账号并清空本地登录态
func (s *AuthService) Deactivate(ctx context.Context) error {
	customerID, ok, err := s.session.CustomerID()
	if err != nil || !ok {
		return ErrNotLoggedIn
	}
	if err := s.api.Deactivate(ctx, customerID); err != nil {
		return ErrTryAgainLater
	}
	return s.session.Clear()
}

// Logout 退出登录
func (s *AuthService) Logout() error {
	return s.session.Clear()
}
