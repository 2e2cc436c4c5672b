package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/storefront-client/internal/models"
)

// OrderHistory 获取客户历史订单
func (c *Client) OrderHistory(ctx context.Context, customerID string) ([]models.Order, error) {
	var env envelope
	if err := c.do(ctx, http.MethodGet, "/api/Order/history/"+customerID, nil, &env); err != nil {
		return nil, err
	}
	var orders []models.Order
	if err := json.Unmarshal(env.Data, &orders); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResponseInvalid, err)
	}
	return orders, nil
}

// CreateOrder 提交新订单
func (c *Client) CreateOrder(ctx context.Context, order models.OrderCreate) error {
	return c.do(ctx, http.MethodPost, "/api/Order/create", order, nil)
}

// UpdateOrder 提交订单修改
func (c *Client) UpdateOrder(ctx context.Context, orderID string, update models.OrderUpdate) error {
	return c.do(ctx, http.MethodPut, "/api/Order/update/"+orderID, update, nil)
}

// RequestCancel 申请取消订单
func (c *Client) RequestCancel(ctx context.Context, orderID string) error {
	return c.do(ctx, http.MethodPut, "/api/Order/cancel/"+orderID, nil, nil)
}
