package service

import (
	"context"
	"errors"
	"testing"

	"github.com/storefront-client/internal/models"
)

type fakeOrderBackend struct {
	orders []models.Order
}

func (f *fakeOrderBackend) OrderHistory(ctx context.Context, customerID string) ([]models.Order, error) {
	return f.orders, nil
}

type fakeProductLookup struct {
	products map[string]*models.Product
	failFor  string
}

func (f *fakeProductLookup) ProductByID(ctx context.Context, id string) (*models.Product, error) {
	if id == f.failFor {
		return nil, errBackendDown
	}
	if p, ok := f.products[id]; ok {
		return p, nil
	}
	return nil, errBackendDown
}

func TestHistoryRequiresSession(t *testing.T) {
	svc := NewOrderService(&fakeOrderBackend{}, &fakeProductLookup{}, &fakeOrderAPI{}, setupSession(t))
	if _, err := svc.History(context.Background()); !errors.Is(err, ErrNotLoggedIn) {
		t.Fatalf("expected ErrNotLoggedIn, got %v", err)
	}
}

func TestHistoryReturnsCustomerOrders(t *testing.T) {
	sess := setupSession(t)
	if err := sess.SetCustomerID("cust-1"); err != nil {
		t.Fatalf("set customer id: %v", err)
	}
	backend := &fakeOrderBackend{orders: []models.Order{testOrder()}}
	svc := NewOrderService(backend, &fakeProductLookup{}, &fakeOrderAPI{}, sess)

	orders, err := svc.History(context.Background())
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(orders) != 1 || orders[0].OrderID != "o1" {
		t.Fatalf("unexpected orders %+v", orders)
	}
}

func TestHistoryNewestFirst(t *testing.T) {
	sess := setupSession(t)
	if err := sess.SetCustomerID("cust-1"); err != nil {
		t.Fatalf("set customer id: %v", err)
	}
	oldest := testOrder()
	oldest.OrderID = "o-old"
	newest := testOrder()
	newest.OrderID = "o-new"
	backend := &fakeOrderBackend{orders: []models.Order{oldest, newest}}
	svc := NewOrderService(backend, &fakeProductLookup{}, &fakeOrderAPI{}, sess)

	orders, err := svc.History(context.Background())
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if orders[0].OrderID != "o-new" || orders[1].OrderID != "o-old" {
		t.Fatalf("expected newest first, got %s then %s", orders[0].OrderID, orders[1].OrderID)
	}
}

func TestOpenEditorSnapshotsStockPerLine(t *testing.T) {
	p1 := testProduct("p1", "Keyboard", 10.0, 7)
	lookup := &fakeProductLookup{
		products: map[string]*models.Product{"p1": &p1},
		failFor:  "p2",
	}
	svc := NewOrderService(&fakeOrderBackend{}, lookup, &fakeOrderAPI{}, setupSession(t))

	editor := svc.OpenEditor(context.Background(), testOrder())

	// p1 受快照约束：数量 1，库存 7，可以加
	if err := editor.IncrementQty(0); err != nil {
		t.Fatalf("increment within stock: %v", err)
	}
	// p2 快照抓取失败，不设上限
	if err := editor.IncrementQty(1); err != nil {
		t.Fatalf("increment without snapshot: %v", err)
	}
}
