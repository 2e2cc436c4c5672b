package models

// OrderLine 订单行（orderLineNo 为空表示尚未由后端分配）
type OrderLine struct {
	OrderLineNo string `json:"orderLineNo"`
	ProductNo   string `json:"productNo"`
	VendorNo    string `json:"vendorNo"`
	OrderNo     string `json:"orderNo"`
	Status      string `json:"status"`
	Qty         int    `json:"qty"`
	UnitPrice   Money  `json:"unitPrice"`
	Total       Money  `json:"total"`
	ProductName string `json:"productName,omitempty"`
	VendorName  string `json:"vendorName,omitempty"`
}

// Order 订单（由后端持有，客户端仅做读取与暂存编辑）
type Order struct {
	OrderID           string      `json:"orderId,omitempty"`
	OrderNo           string      `json:"orderNo"`
	CustomerNo        string      `json:"customerNo"`
	DeliveryAddress   string      `json:"deliveryAddress"`
	OrderDate         string      `json:"orderDate"`
	Status            string      `json:"status"`
	IsCancelRequested bool        `json:"isCancelRequested"`
	OrderLines        []OrderLine `json:"orderLines"`
}

// OrderCreate 创建订单请求体
type OrderCreate struct {
	OrderNo         string      `json:"orderNo"`
	CustomerNo      string      `json:"customerNo"`
	DeliveryAddress string      `json:"deliveryAddress"`
	OrderDate       string      `json:"orderDate"`
	Status          string      `json:"status"`
	OrderLines      []OrderLine `json:"orderLines"`
}

// OrderLineUpdate 更新订单时的单行变更（每个原始行都必须出现）
type OrderLineUpdate struct {
	OrderLineNo string `json:"orderLineNo"`
	Qty         int    `json:"qty"`
	Remove      bool   `json:"remove"`
}

// OrderUpdate 更新订单请求体
type OrderUpdate struct {
	OrderID         string            `json:"orderId"`
	DeliveryAddress string            `json:"deliveryAddress"`
	OrderLines      []OrderLineUpdate `json:"orderLines"`
}
