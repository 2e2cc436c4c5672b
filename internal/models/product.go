package models

// Product 商品（后端只读参考数据）
type Product struct {
	ID                   string   `json:"id"`
	Title                string   `json:"name"`
	Images               []string `json:"images"`
	Category             string   `json:"category"`
	SubCategory          string   `json:"subCategory"`
	Price                Money    `json:"price"`
	Description          string   `json:"description"`
	Active               bool     `json:"active"`
	StockCount           int      `json:"stockCount"`
	VendorID             string   `json:"vendorId"`
	LowStockThreshold    int      `json:"lowStockThreshold"`
	IsPartOfPendingOrder bool     `json:"isPartOfPendingOrder"`
	SubCategoryName      string   `json:"subCategoryName"`
}

// PrimaryImage 返回首图地址
func (p Product) PrimaryImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}
