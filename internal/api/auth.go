package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/storefront-client/internal/models"
)

// 登录与注册接口的成功响应消息
const (
	msgLoginSuccessful = "Login successful"
	msgSuccessful      = "Successful"
)

// Login 登录并返回访问令牌
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}
	var env envelope
	if err := c.do(ctx, http.MethodPost, "/api/User/login", body, &env); err != nil {
		return "", err
	}
	if env.Message != msgLoginSuccessful {
		return "", fmt.Errorf("%w: %s", ErrResponseInvalid, env.Message)
	}
	var data struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrResponseInvalid, err)
	}
	return data.Token, nil
}

// Register 自助注册，返回后端消息
func (c *Client) Register(ctx context.Context, name, email, password string) (string, error) {
	body := map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	}
	var env envelope
	if err := c.do(ctx, http.MethodPost, "/api/User/self-register", body, &env); err != nil {
		return "", err
	}
	return env.Message, nil
}

// UserDetails 获取当前令牌对应的用户资料
func (c *Client) UserDetails(ctx context.Context) (*models.User, error) {
	var env envelope
	if err := c.do(ctx, http.MethodGet, "/api/User/token", nil, &env); err != nil {
		return nil, err
	}
	if env.Message != msgSuccessful {
		return nil, fmt.Errorf("%w: %s", ErrResponseInvalid, env.Message)
	}
	var user models.User
	if err := json.Unmarshal(env.Data, &user); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResponseInvalid, err)
	}
	return &user, nil
}

// Deactivate 停用账号
func (c *Client) Deactivate(ctx context.Context, userID string) error {
	return c.do(ctx, http.MethodGet, "/api/User/deactivate/"+userID, nil, nil)
}
