package service

import (
	"context"
	"testing"

	"github.com/storefront-client/internal/models"
)

type fakeCatalogAPI struct {
	products   []models.Product
	categories []models.Category
	calls      int
}

func (f *fakeCatalogAPI) Products(ctx context.Context) ([]models.Product, error) {
	f.calls++
	return f.products, nil
}

func (f *fakeCatalogAPI) ProductByID(ctx context.Context, id string) (*models.Product, error) {
	for i := range f.products {
		if f.products[i].ID == id {
			return &f.products[i], nil
		}
	}
	return nil, errBackendDown
}

func (f *fakeCatalogAPI) Categories(ctx context.Context) ([]models.Category, error) {
	return f.categories, nil
}

func TestCategoryImageMapping(t *testing.T) {
	if got := CategoryImage("Phone"); got == categoryImageFallback {
		t.Fatalf("expected dedicated phone image")
	}
	if got := CategoryImage("Garden"); got != categoryImageFallback {
		t.Fatalf("expected fallback image for unknown category, got %s", got)
	}
}

func TestCategoriesFilledWithImages(t *testing.T) {
	backend := &fakeCatalogAPI{categories: []models.Category{
		{ID: "c1", Name: "Laptop"},
		{ID: "c2", Name: "Garden"},
	}}
	svc := NewCatalogService(backend)

	categories, err := svc.Categories(context.Background())
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	if categories[0].ImageURL == "" || categories[1].ImageURL != categoryImageFallback {
		t.Fatalf("expected images filled, got %+v", categories)
	}
}

func TestProductsPassThroughWhenCacheDisabled(t *testing.T) {
	backend := &fakeCatalogAPI{products: []models.Product{testProduct("p1", "Keyboard", 10.0, 5)}}
	svc := NewCatalogService(backend)

	products, err := svc.Products(context.Background())
	if err != nil {
		t.Fatalf("products: %v", err)
	}
	if len(products) != 1 || products[0].ID != "p1" {
		t.Fatalf("unexpected products %+v", products)
	}
	if backend.calls != 1 {
		t.Fatalf("expected one backend call, got %d", backend.calls)
	}
}
