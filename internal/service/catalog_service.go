package service

import (
	"context"
	"time"

	"github.com/storefront-client/internal/cache"
	"github.com/storefront-client/internal/logger"
	"github.com/storefront-client/internal/models"
)

// CatalogAPI 商品目录后端接口
type CatalogAPI interface {
	Products(ctx context.Context) ([]models.Product, error)
	ProductByID(ctx context.Context, id string) (*models.Product, error)
	Categories(ctx context.Context) ([]models.Category, error)
}

const (
	cacheKeyProducts   = "catalog:products"
	cacheKeyCategories = "catalog:categories"
	catalogCacheTTL    = 5 * time.Minute
)

// 分类图标。后端的分类数据不带图片，按名称就地补齐。
var categoryImages = map[string]string{
	"Phone":  "https://static.vecteezy.com/system/resources/thumbnails/006/624/453/small_2x/smartphone-icon-design-phone-symbol-free-vector.jpg",
	"Laptop": "https://cdn4.vectorstock.com/i/1000x1000/42/78/laptop-icon-in-trendy-flat-style-isolated-on-white-vector-24914278.jpg",
	"Tv":     "https://static.vecteezy.com/system/resources/previews/010/451/460/non_2x/tv-monitor-icon-isolated-on-white-background-free-vector.jpg",
	"Mouse":  "https://www.creativefabrica.com/wp-content/uploads/2021/07/16/Mouse-cursor-icon-Graphics-14825415-1-1-580x386.jpg",
}

const categoryImageFallback = "https://t4.ftcdn.net/jpg/03/21/50/71/360_F_321507151_VErgLgPcedXvBcNSmjtBh9ICVrHmNVMi.jpg"

// CategoryImage 按分类名称取图标地址，没有专属图标时用通用图
func CategoryImage(name string) string {
	if url, ok := categoryImages[name]; ok {
		return url
	}
	return categoryImageFallback
}

// CatalogService 商品目录。列表类接口走缓存，详情总是现查以拿到最新库存。
type CatalogService struct {
	api CatalogAPI
}

// NewCatalogService 创建目录服务
func NewCatalogService(api CatalogAPI) *CatalogService {
	return &CatalogService{api: api}
}

// Products 获取全部商品
func (s *CatalogService) Products(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if hit, err := cache.GetJSON(ctx, cacheKeyProducts, &products); err == nil && hit {
		return products, nil
	}
	products, err := s.api.Products(ctx)
	if err != nil {
		return nil, err
	}
	if err := cache.SetJSON(ctx, cacheKeyProducts, products, catalogCacheTTL); err != nil {
		logger.Warnw("商品缓存写入失败", "error", err)
	}
	return products, nil
}

// ProductByID 获取单个商品，不走缓存
func (s *CatalogService) ProductByID(ctx context.Context, id string) (*models.Product, error) {
	return s.api.ProductByID(ctx, id)
}

// Categories 获取商品分类并补齐图标
func (s *CatalogService) Categories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if hit, err := cache.GetJSON(ctx, cacheKeyCategories, &categories); err == nil && hit {
		return categories, nil
	}
	categories, err := s.api.Categories(ctx)
	if err != nil {
		return nil, err
	}
	for i := range categories {
		categories[i].ImageURL = CategoryImage(categories[i].Name)
	}
	if err := cache.SetJSON(ctx, cacheKeyCategories, categories, catalogCacheTTL); err != nil {
		logger.Warnw("分类缓存写入失败", "error", err)
	}
	return categories, nil
}
