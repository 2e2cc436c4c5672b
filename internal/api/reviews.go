package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/storefront-client/internal/models"
)

// CustomerReviews 获取客户发表过的评价
func (c *Client) CustomerReviews(ctx context.Context, customerID string) ([]models.Review, error) {
	return c.reviewList(ctx, "/api/Feedback/customer/"+customerID)
}

// ProductReviews 获取商品收到的评价
func (c *Client) ProductReviews(ctx context.Context, productID string) ([]models.Review, error) {
	return c.reviewList(ctx, "/api/Feedback/product/"+productID)
}

func (c *Client) reviewList(ctx context.Context, path string) ([]models.Review, error) {
	var env envelope
	if err := c.do(ctx, http.MethodGet, path, nil, &env); err != nil {
		return nil, err
	}
	var reviews []models.Review
	if err := json.Unmarshal(env.Data, &reviews); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResponseInvalid, err)
	}
	return reviews, nil
}

// CreateReview 发表评价
func (c *Client) CreateReview(ctx context.Context, review models.Review) error {
	return c.do(ctx, http.MethodPost, "/api/Feedback/create", review, nil)
}

// UpdateReview 修改评价
func (c *Client) UpdateReview(ctx context.Context, reviewID string, review models.Review) error {
	return c.do(ctx, http.MethodPut, "/api/Feedback/update/"+reviewID, review, nil)
}
