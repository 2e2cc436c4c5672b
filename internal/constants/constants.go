package constants

// 订单状态常量（后端返回的展示值，原样比较）
const (
	OrderStatusPending            = "Pending"
	OrderStatusPartiallyDelivered = "Partially Delivered"
	OrderStatusDelivered          = "Delivered"
	OrderStatusCancelled          = "Cancelled"
)

// 订单行状态常量
const (
	OrderLineStatusPending   = "Pending"
	OrderLineStatusDelivered = "Delivered"
)

// 本地存储键
const (
	KeyCartProducts    = "cartProducts"
	KeyCartQuantities  = "cartQuantities"
	KeyDeliveryAddress = "deliveryAddress"
	KeyAccessToken     = "access_token"
	KeyCredentialEmail = "credential_email"
	KeyCredentialPass  = "credential_password"
	KeyCustomerID      = "customer_id"
)

// 支付字段校验提示文案
const (
	MsgMissingPaymentTitle = "Missing Payment Details"
	MsgPaymentName         = "Fill in Name on Card to continue"
	MsgPaymentCardNumber   = "Fill in Card Number to continue"
	MsgPaymentExpiry       = "Fill in Card expiry to continue"
	MsgPaymentSecurity     = "Fill in Card security number to continue"
)

// 通用提示文案
const (
	MsgStockLimit      = "Stock Limit Reached"
	MsgTryAgainLater   = "An error occurred. Please try again later"
	MsgInvalidPassword = "Invalid password"
	MsgUserNotFound    = "User not found"
	MsgEmailInUse      = "Email already in use"
	MsgDiscardChanges  = "Seems like you have updated the details of the order. Are you sure you want to exit without saving those changes?"
)

// 订单日期格式（yyyy-MM-dd）
const OrderDateLayout = "2006-01-02"

// 评分范围
const (
	RatingMin = 0.0
	RatingMax = 5.0
)
