package service

import (
	"context"

	"github.com/storefront-client/internal/logger"
	"github.com/storefront-client/internal/models"
	"github.com/storefront-client/internal/session"
)

// OrderHistoryAPI 历史订单查询接口
type OrderHistoryAPI interface {
	OrderHistory(ctx context.Context, customerID string) ([]models.Order, error)
}

// ProductLookupAPI 单个商品查询接口
type ProductLookupAPI interface {
	ProductByID(ctx context.Context, id string) (*models.Product, error)
}

// OrderService 订单查询与订单编辑器装配
type OrderService struct {
	history  OrderHistoryAPI
	products ProductLookupAPI
	orders   OrderAPI
	session  *session.Session
}

// NewOrderService 创建订单服务
func NewOrderService(history OrderHistoryAPI, products ProductLookupAPI, orders OrderAPI, sess *session.Session) *OrderService {
	return &OrderService{history: history, products: products, orders: orders, session: sess}
}

// History 当前客户的历史订单，倒序排列，最新的在最前
func (s *OrderService) History(ctx context.Context) ([]models.Order, error) {
	customerID, ok, err := s.session.CustomerID()
	if err != nil || !ok {
		return nil, ErrNotLoggedIn
	}
	orders, err := s.history.OrderHistory(ctx, customerID)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(orders)-1; i < j; i, j = i+1, j-1 {
		orders[i], orders[j] = orders[j], orders[i]
	}
	return orders, nil
}

// OpenEditor 打开订单编辑器。逐行抓取商品当前库存做快照；
// 某行抓取失败时该行不设库存上限，属于尽力而为的校验。
func (s *OrderService) OpenEditor(ctx context.Context, order models.Order) *OrderEditor {
	stock := make(map[string]int, len(order.OrderLines))
	for _, line := range order.OrderLines {
		product, err := s.products.ProductByID(ctx, line.ProductNo)
		if err != nil {
			logger.Warnw("库存快照抓取失败", "product", line.ProductNo, "error", err)
			continue
		}
		stock[line.ProductNo] = product.StockCount
	}
	return NewOrderEditor(order, stock, s.orders)
}
