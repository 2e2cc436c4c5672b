package repository

import (
	"testing"

	"github.com/storefront-client/internal/constants"
	"github.com/storefront-client/internal/models"
)

func TestCartRepositorySaveLoadRoundTrip(t *testing.T) {
	repo := NewCartRepository(NewSettingRepository(setupTestDB(t)))

	products := []models.Product{
		{ID: "p1", Title: "Keyboard", Price: models.NewMoneyFromFloat(49.90), StockCount: 10},
		{ID: "p2", Title: "Mouse", Price: models.NewMoneyFromFloat(19.90), StockCount: 5},
	}
	quantities := []int{2, 1}

	if err := repo.Save(products, quantities); err != nil {
		t.Fatalf("save: %v", err)
	}

	gotProducts, gotQuantities, err := repo.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(gotProducts) != 2 || len(gotQuantities) != 2 {
		t.Fatalf("expected 2 items, got %d/%d", len(gotProducts), len(gotQuantities))
	}
	if gotProducts[0].ID != "p1" || gotQuantities[0] != 2 {
		t.Fatalf("unexpected first line: %+v qty=%d", gotProducts[0], gotQuantities[0])
	}
	if gotProducts[1].Title != "Mouse" || gotQuantities[1] != 1 {
		t.Fatalf("unexpected second line: %+v qty=%d", gotProducts[1], gotQuantities[1])
	}
}

func TestCartRepositoryLoadEmpty(t *testing.T) {
	repo := NewCartRepository(NewSettingRepository(setupTestDB(t)))

	products, quantities, err := repo.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(products) != 0 || len(quantities) != 0 {
		t.Fatalf("expected empty cart, got %d/%d", len(products), len(quantities))
	}
}

func TestCartRepositoryTruncatesMisalignedLists(t *testing.T) {
	settings := NewSettingRepository(setupTestDB(t))
	repo := NewCartRepository(settings)

	// 数量列表比商品列表短一条时按短的截断
	if err := settings.Upsert(constants.KeyCartProducts, `[{"id":"p1"},{"id":"p2"}]`); err != nil {
		t.Fatalf("seed products: %v", err)
	}
	if err := settings.Upsert(constants.KeyCartQuantities, `[3]`); err != nil {
		t.Fatalf("seed quantities: %v", err)
	}

	products, quantities, err := repo.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(products) != 1 || len(quantities) != 1 {
		t.Fatalf("expected truncation to 1, got %d/%d", len(products), len(quantities))
	}
	if products[0].ID != "p1" || quantities[0] != 3 {
		t.Fatalf("unexpected survivor: %+v qty=%d", products[0], quantities[0])
	}
}
