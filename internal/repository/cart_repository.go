package repository

import (
	"encoding/json"

	"github.com/storefront-client/internal/constants"
	"github.com/storefront-client/internal/models"
)

// CartRepository 本地购物车持久化接口。
// 购物车以两条下标对齐的序列存储：商品列表与数量列表。
type CartRepository interface {
	Load() ([]models.Product, []int, error)
	Save(products []models.Product, quantities []int) error
}

// SettingCartRepository 基于键值存储的实现
type SettingCartRepository struct {
	settings SettingRepository
}

// NewCartRepository 创建购物车仓库
func NewCartRepository(settings SettingRepository) *SettingCartRepository {
	return &SettingCartRepository{settings: settings}
}

// Load 读取购物车。两条序列长度不一致时截断到较短者，避免越界。
func (r *SettingCartRepository) Load() ([]models.Product, []int, error) {
	var products []models.Product
	raw, ok, err := r.settings.GetByKey(constants.KeyCartProducts)
	if err != nil {
		return nil, nil, err
	}
	if ok {
		if err := json.Unmarshal([]byte(raw), &products); err != nil {
			return nil, nil, err
		}
	}

	var quantities []int
	raw, ok, err = r.settings.GetByKey(constants.KeyCartQuantities)
	if err != nil {
		return nil, nil, err
	}
	if ok {
		if err := json.Unmarshal([]byte(raw), &quantities); err != nil {
			return nil, nil, err
		}
	}

	if len(products) != len(quantities) {
		n := len(products)
		if len(quantities) < n {
			n = len(quantities)
		}
		products = products[:n]
		quantities = quantities[:n]
	}
	return products, quantities, nil
}

// Save 持久化购物车
func (r *SettingCartRepository) Save(products []models.Product, quantities []int) error {
	if products == nil {
		products = []models.Product{}
	}
	if quantities == nil {
		quantities = []int{}
	}
	productsJSON, err := json.Marshal(products)
	if err != nil {
		return err
	}
	quantitiesJSON, err := json.Marshal(quantities)
	if err != nil {
		return err
	}
	if err := r.settings.Upsert(constants.KeyCartProducts, string(productsJSON)); err != nil {
		return err
	}
	return r.settings.Upsert(constants.KeyCartQuantities, string(quantitiesJSON))
}
