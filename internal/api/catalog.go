package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/storefront-client/internal/models"
)

// Products 获取全部商品
func (c *Client) Products(ctx context.Context) ([]models.Product, error) {
	var env envelope
	if err := c.do(ctx, http.MethodGet, "/api/Product/", nil, &env); err != nil {
		return nil, err
	}
	var products []models.Product
	if err := json.Unmarshal(env.Data, &products); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResponseInvalid, err)
	}
	return products, nil
}

// ProductByID 获取单个商品
func (c *Client) ProductByID(ctx context.Context, id string) (*models.Product, error) {
	var env envelope
	if err := c.do(ctx, http.MethodGet, "/api/Product/"+id, nil, &env); err != nil {
		return nil, err
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil, fmt.Errorf("%w: empty product payload", ErrResponseInvalid)
	}
	var product models.Product
	if err := json.Unmarshal(env.Data, &product); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResponseInvalid, err)
	}
	return &product, nil
}

// Categories 获取商品分类。该接口不带响应包裹，直接返回数组。
func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.doList(ctx, http.MethodGet, "/api/MasterData/GetCategories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}
