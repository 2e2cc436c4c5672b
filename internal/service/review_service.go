package service

import (
	"context"
	"sync/atomic"

	"github.com/storefront-client/internal/constants"
	"github.com/storefront-client/internal/logger"
	"github.com/storefront-client/internal/models"
	"github.com/storefront-client/internal/session"
)

// ReviewAPI 评价后端接口
type ReviewAPI interface {
	CustomerReviews(ctx context.Context, customerID string) ([]models.Review, error)
	ProductReviews(ctx context.Context, productID string) ([]models.Review, error)
	CreateReview(ctx context.Context, review models.Review) error
	UpdateReview(ctx context.Context, reviewID string, review models.Review) error
}

// AverageRating 评分均值，无评价时为零
func AverageRating(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	var sum float64
	for _, review := range reviews {
		sum += review.Rating
	}
	return sum / float64(len(reviews))
}

// ReviewService 评价的读取与暂存提交。
// 评价内容允许为空，只要求选定了商品；评分越界时收敛到 0–5。
type ReviewService struct {
	api      ReviewAPI
	session  *session.Session
	inFlight atomic.Bool
}

// NewReviewService 创建评价服务
func NewReviewService(api ReviewAPI, sess *session.Session) *ReviewService {
	return &ReviewService{api: api, session: sess}
}

// CustomerReviews 当前客户发表过的评价
func (s *ReviewService) CustomerReviews(ctx context.Context) ([]models.Review, error) {
	customerID, ok, err := s.session.CustomerID()
	if err != nil || !ok {
		return nil, ErrNotLoggedIn
	}
	return s.api.CustomerReviews(ctx, customerID)
}

// ProductReviews 商品收到的评价
func (s *ReviewService) ProductReviews(ctx context.Context, productID string) ([]models.Review, error) {
	return s.api.ProductReviews(ctx, productID)
}

// Create 发表评价
func (s *ReviewService) Create(ctx context.Context, productID, message string, rating float64) error {
	if !s.inFlight.CompareAndSwap(false, true) {
		return ErrSubmitInFlight
	}
	defer s.inFlight.Store(false)

	if productID == "" {
		return ErrProductRequired
	}
	customerID, ok, err := s.session.CustomerID()
	if err != nil || !ok {
		return ErrNotLoggedIn
	}
	review := models.Review{
		CustomerID: customerID,
		ProductID:  productID,
		Message:    message,
		Rating:     clampRating(rating),
	}
	if err := s.api.CreateReview(ctx, review); err != nil {
		logger.Warnw("评价提交失败", "product", productID, "error", err)
		return ErrTryAgainLater
	}
	return nil
}

// Update 修改既有评价
func (s *ReviewService) Update(ctx context.Context, review models.Review) error {
	if !s.inFlight.CompareAndSwap(false, true) {
		return ErrSubmitInFlight
	}
	defer s.inFlight.Store(false)

	if review.ProductID == "" {
		return ErrProductRequired
	}
	review.Rating = clampRating(review.Rating)
	if err := s.api.UpdateReview(ctx, review.ID, review); err != nil {
		logger.Warnw("评价修改失败", "review", review.ID, "error", err)
		return ErrTryAgainLater
	}
	return nil
}

func clampRating(rating float64) float64 {
	if rating < constants.RatingMin {
		return constants.RatingMin
	}
	if rating > constants.RatingMax {
		return constants.RatingMax
	}
	return rating
}
