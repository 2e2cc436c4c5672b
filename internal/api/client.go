package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/storefront-client/internal/logger"
)

// 与后端交互的统一错误
var (
	ErrUnauthorized    = errors.New("api: unauthorized")
	ErrBadRequest      = errors.New("api: bad request")
	ErrRequestFailed   = errors.New("api: request failed")
	ErrResponseInvalid = errors.New("api: invalid response payload")
)

const defaultTimeout = 60 * time.Second

// TokenSource 提供当前访问令牌
type TokenSource interface {
	Token() (string, bool, error)
}

// Client 商城后端 HTTP 客户端
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

// NewClient 创建后端客户端。timeout 为零时使用默认 60 秒。
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
	}
}

// envelope 后端的标准响应包裹
type envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// do 发送一次请求并解出响应包裹
func (c *Client) do(ctx context.Context, method, path string, body interface{}, out *envelope) error {
	raw, err := c.doRaw(ctx, method, path, body)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %v", ErrResponseInvalid, err)
	}
	return nil
}

// doList 处理不带包裹、直接返回数组的接口
func (c *Client) doList(ctx context.Context, method, path string, dest interface{}) error {
	raw, err := c.doRaw(ctx, method, path, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("%w: %v", ErrResponseInvalid, err)
	}
	return nil
}

func (c *Client) doRaw(ctx context.Context, method, path string, body interface{}) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.tokens != nil {
		token, ok, err := c.tokens.Token()
		if err != nil {
			return nil, err
		}
		if ok && token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warnw("请求发送失败", "method", method, "path", path, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrRequestFailed, err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, fmt.Errorf("%w: %s %s", ErrUnauthorized, method, path)
	case resp.StatusCode == http.StatusBadRequest:
		return nil, fmt.Errorf("%w: %s %s", ErrBadRequest, method, path)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		logger.Warnw("后端返回异常状态", "method", method, "path", path, "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: %s %s status %d", ErrRequestFailed, method, path, resp.StatusCode)
	}
	return raw, nil
}
