package models

// Review 商品评价（评分范围 0.0–5.0）
type Review struct {
	ID         string  `json:"id,omitempty"`
	CustomerID string  `json:"customerId"`
	ProductID  string  `json:"productId"`
	Message    string  `json:"message"`
	Rating     float64 `json:"rating"`
}
