package service

import (
	"context"
	"strings"
	"sync/atomic"
	"time"

	"github.com/storefront-client/internal/constants"
	"github.com/storefront-client/internal/logger"
	"github.com/storefront-client/internal/models"
	"github.com/storefront-client/internal/session"
)

// OrderAPI 订单相关的后端接口
type OrderAPI interface {
	CreateOrder(ctx context.Context, order models.OrderCreate) error
	UpdateOrder(ctx context.Context, orderID string, update models.OrderUpdate) error
	RequestCancel(ctx context.Context, orderID string) error
}

// PaymentDetails 结算页填写的支付信息。仅做格式校验，不参与提交。
type PaymentDetails struct {
	NameOnCard   string
	CardNumber   string
	Expiry       string
	SecurityCode string
}

// ValidatePayment 按固定顺序校验支付字段，遇到第一个缺失项即返回
func ValidatePayment(p PaymentDetails) error {
	if strings.TrimSpace(p.NameOnCard) == "" {
		return ErrPaymentName
	}
	if len(p.CardNumber) < 16 {
		return ErrPaymentCardNumber
	}
	if len(p.Expiry) < 5 {
		return ErrPaymentExpiry
	}
	if len(p.SecurityCode) < 3 {
		return ErrPaymentSecurity
	}
	return nil
}

// CheckoutService 把选中的购物车行转换为订单并提交
type CheckoutService struct {
	cart     *CartService
	orders   OrderAPI
	session  *session.Session
	inFlight atomic.Bool
}

// NewCheckoutService 创建结算服务
func NewCheckoutService(cart *CartService, orders OrderAPI, sess *session.Session) *CheckoutService {
	return &CheckoutService{cart: cart, orders: orders, session: sess}
}

// Busy 是否有提交正在进行
func (s *CheckoutService) Busy() bool {
	return s.inFlight.Load()
}

// Submit 提交订单。同一时间只允许一次提交，重复调用直接拒绝。
// 成功后从购物车移除已提交的行并记住收货地址；失败时购物车保持原样。
func (s *CheckoutService) Submit(ctx context.Context, payment PaymentDetails, address string) error {
	if !s.inFlight.CompareAndSwap(false, true) {
		return ErrSubmitInFlight
	}
	defer s.inFlight.Store(false)

	selected := s.cart.SelectedLines()
	if len(selected) == 0 {
		return ErrNoSelection
	}
	if err := ValidatePayment(payment); err != nil {
		return err
	}

	customerID, ok, err := s.session.CustomerID()
	if err != nil || !ok {
		return ErrNotLoggedIn
	}

	lines := make([]models.OrderLine, 0, len(selected))
	for _, line := range selected {
		lines = append(lines, models.OrderLine{
			ProductNo:   line.Product.ID,
			VendorNo:    line.Product.VendorID,
			Status:      constants.OrderLineStatusPending,
			Qty:         line.Quantity,
			UnitPrice:   line.Product.Price,
			Total:       line.Product.Price.MulInt(line.Quantity),
			ProductName: line.Product.Title,
		})
	}
	order := models.OrderCreate{
		CustomerNo:      customerID,
		DeliveryAddress: address,
		OrderDate:       time.Now().Format(constants.OrderDateLayout),
		Status:          constants.OrderStatusPending,
		OrderLines:      lines,
	}

	if err := s.orders.CreateOrder(ctx, order); err != nil {
		logger.Warnw("订单提交失败", "lines", len(lines), "error", err)
		return ErrTryAgainLater
	}

	s.cart.DropSelected()
	if err := s.session.SetDeliveryAddress(address); err != nil {
		logger.Warnw("收货地址保存失败", "error", err)
	}
	logger.Infow("订单提交成功", "lines", len(lines))
	return nil
}
