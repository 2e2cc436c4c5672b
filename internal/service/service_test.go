package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/storefront-client/internal/models"
	"github.com/storefront-client/internal/repository"
	"github.com/storefront-client/internal/session"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.Setting{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func setupCartRepo(t *testing.T) repository.CartRepository {
	t.Helper()
	return repository.NewCartRepository(repository.NewSettingRepository(setupTestDB(t)))
}

func setupCart(t *testing.T) *CartService {
	t.Helper()
	repo := setupCartRepo(t)
	cart := NewCartService(repo)
	if err := cart.Load(); err != nil {
		t.Fatalf("load cart: %v", err)
	}
	return cart
}

func setupSession(t *testing.T) *session.Session {
	t.Helper()
	settings := repository.NewSettingRepository(setupTestDB(t))
	vault, err := repository.NewVault(settings, "test-secret")
	if err != nil {
		t.Fatalf("new vault: %v", err)
	}
	return session.New(vault, settings)
}

func testProduct(id, title string, price float64, stock int) models.Product {
	return models.Product{
		ID:         id,
		Title:      title,
		Price:      models.NewMoneyFromFloat(price),
		Active:     true,
		StockCount: stock,
		VendorID:   "vendor-" + id,
	}
}

// fakeOrderAPI 记录每次调用，可按需注入失败
type fakeOrderAPI struct {
	createErr error
	updateErr error
	cancelErr error

	created   []models.OrderCreate
	updated   []models.OrderUpdate
	cancelled []string
}

func (f *fakeOrderAPI) CreateOrder(ctx context.Context, order models.OrderCreate) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, order)
	return nil
}

func (f *fakeOrderAPI) UpdateOrder(ctx context.Context, orderID string, update models.OrderUpdate) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = append(f.updated, update)
	return nil
}

func (f *fakeOrderAPI) RequestCancel(ctx context.Context, orderID string) error {
	if f.cancelErr != nil {
		return f.cancelErr
	}
	f.cancelled = append(f.cancelled, orderID)
	return nil
}

var errBackendDown = errors.New("backend down")
