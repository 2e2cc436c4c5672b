package service

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/storefront-client/internal/constants"
	"github.com/storefront-client/internal/logger"
	"github.com/storefront-client/internal/models"
)

// EditState 订单视图的编辑状态
type EditState int

const (
	// EditStateClean 打开以来没有任何本地修改
	EditStateClean EditState = iota
	// EditStateDirty 有未提交的本地修改
	EditStateDirty
)

func (s EditState) String() string {
	if s == EditStateDirty {
		return "Dirty"
	}
	return "Clean"
}

// EditorLine 展示用的订单行及其暂存状态
type EditorLine struct {
	Line    models.OrderLine
	Qty     int
	Removed bool
}

// OrderEditor 把一张已提交订单的本地编辑（地址、数量、删行）
// 汇成更新请求，或在没有修改时按原订单重新下单。
// 原始订单行列表从不收缩，删行只打标记，提交时每个原始行都会出现在请求里。
type OrderEditor struct {
	order   models.Order
	qty     []int
	removed []bool
	address string
	stock   map[string]int
	state   EditState

	cancelRequested bool

	orders   OrderAPI
	inFlight atomic.Bool
}

// NewOrderEditor 创建订单编辑器。stock 是打开视图时按行抓取的库存快照，
// 键为商品编号；提交前不再复核库存。
func NewOrderEditor(order models.Order, stock map[string]int, orders OrderAPI) *OrderEditor {
	qty := make([]int, len(order.OrderLines))
	for i, line := range order.OrderLines {
		qty[i] = line.Qty
	}
	if stock == nil {
		stock = map[string]int{}
	}
	return &OrderEditor{
		order:           order,
		qty:             qty,
		removed:         make([]bool, len(order.OrderLines)),
		address:         order.DeliveryAddress,
		stock:           stock,
		state:           EditStateClean,
		cancelRequested: order.IsCancelRequested,
		orders:          orders,
	}
}

// State 当前编辑状态
func (e *OrderEditor) State() EditState {
	return e.state
}

// Busy 是否有提交正在进行
func (e *OrderEditor) Busy() bool {
	return e.inFlight.Load()
}

// Address 当前（可能已修改的）收货地址
func (e *OrderEditor) Address() string {
	return e.address
}

// SetAddress 修改收货地址
func (e *OrderEditor) SetAddress(address string) {
	if address == e.address {
		return
	}
	e.address = address
	e.state = EditStateDirty
}

// Lines 未被删除的行，供界面展示
func (e *OrderEditor) Lines() []EditorLine {
	var out []EditorLine
	for i, line := range e.order.OrderLines {
		if e.removed[i] {
			continue
		}
		out = append(out, EditorLine{Line: line, Qty: e.qty[i]})
	}
	return out
}

// IncrementQty 行数量加一。超出库存快照时拒绝，数量保持不变。
func (e *OrderEditor) IncrementQty(index int) error {
	if index < 0 || index >= len(e.qty) || e.removed[index] {
		return nil
	}
	stock, ok := e.stock[e.order.OrderLines[index].ProductNo]
	if ok && e.qty[index]+1 > stock {
		return ErrStockLimit
	}
	e.qty[index]++
	e.state = EditStateDirty
	return nil
}

// DecrementQty 行数量减一，最低为一
func (e *OrderEditor) DecrementQty(index int) {
	if index < 0 || index >= len(e.qty) || e.removed[index] {
		return
	}
	if e.qty[index] <= 1 {
		return
	}
	e.qty[index]--
	e.state = EditStateDirty
}

// RemoveLine 标记删除一行。行从展示列表消失，但仍会带着删除标记出现在更新请求里。
func (e *OrderEditor) RemoveLine(index int) {
	if index < 0 || index >= len(e.removed) || e.removed[index] {
		return
	}
	e.removed[index] = true
	e.state = EditStateDirty
}

// CanCancel 取消申请是否可用
func (e *OrderEditor) CanCancel() bool {
	return !e.cancelRequested && e.order.Status != constants.OrderStatusDelivered
}

// CancelRequested 是否已申请取消
func (e *OrderEditor) CancelRequested() bool {
	return e.cancelRequested
}

// RequestCancel 申请取消订单。成功后本地置位，控件随之禁用；
// 订单状态的实际变化要等下次刷新才能看到。
func (e *OrderEditor) RequestCancel(ctx context.Context) error {
	if !e.CanCancel() {
		return ErrCancelDisabled
	}
	if err := e.orders.RequestCancel(ctx, e.order.OrderID); err != nil {
		logger.Warnw("取消申请失败", "order", e.order.OrderID, "error", err)
		return ErrTryAgainLater
	}
	e.cancelRequested = true
	return nil
}

// CloseNeedsConfirm 关闭视图前是否需要「放弃修改」确认
func (e *OrderEditor) CloseNeedsConfirm() bool {
	return e.state == EditStateDirty
}

// Submit 按编辑状态分流提交：
// 有修改时对原订单发更新请求，无修改时按原订单行重新下单。
// 更新成功后回到 Clean；失败时状态原样保留，由用户自行重试。
func (e *OrderEditor) Submit(ctx context.Context) error {
	if !e.inFlight.CompareAndSwap(false, true) {
		return ErrSubmitInFlight
	}
	defer e.inFlight.Store(false)

	if e.state == EditStateDirty {
		return e.submitUpdate(ctx)
	}
	return e.submitReorder(ctx)
}

func (e *OrderEditor) submitUpdate(ctx context.Context) error {
	lines := make([]models.OrderLineUpdate, len(e.order.OrderLines))
	for i, line := range e.order.OrderLines {
		lines[i] = models.OrderLineUpdate{
			OrderLineNo: line.OrderLineNo,
			Qty:         e.qty[i],
			Remove:      e.removed[i],
		}
	}
	update := models.OrderUpdate{
		OrderID:         e.order.OrderID,
		DeliveryAddress: e.address,
		OrderLines:      lines,
	}
	if err := e.orders.UpdateOrder(ctx, e.order.OrderID, update); err != nil {
		logger.Warnw("订单更新失败", "order", e.order.OrderID, "error", err)
		return ErrTryAgainLater
	}
	e.state = EditStateClean
	logger.Infow("订单更新成功", "order", e.order.OrderID, "lines", len(lines))
	return nil
}

func (e *OrderEditor) submitReorder(ctx context.Context) error {
	lines := make([]models.OrderLine, 0, len(e.order.OrderLines))
	for _, line := range e.order.OrderLines {
		lines = append(lines, models.OrderLine{
			ProductNo:   line.ProductNo,
			VendorNo:    line.VendorNo,
			Status:      constants.OrderLineStatusPending,
			Qty:         line.Qty,
			UnitPrice:   line.UnitPrice,
			Total:       line.UnitPrice.MulInt(line.Qty),
			ProductName: line.ProductName,
		})
	}
	order := models.OrderCreate{
		CustomerNo:      e.order.CustomerNo,
		DeliveryAddress: e.order.DeliveryAddress,
		OrderDate:       time.Now().Format(constants.OrderDateLayout),
		Status:          constants.OrderStatusPending,
		OrderLines:      lines,
	}
	if err := e.orders.CreateOrder(ctx, order); err != nil {
		logger.Warnw("再次下单失败", "order", e.order.OrderID, "error", err)
		return ErrTryAgainLater
	}
	logger.Infow("再次下单成功", "order", e.order.OrderID, "lines", len(lines))
	return nil
}
