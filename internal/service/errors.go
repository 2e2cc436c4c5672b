package service

import (
	"errors"

	"github.com/storefront-client/internal/constants"
)

// 业务层错误。提示文案固定，界面层直接展示。
var (
	ErrSubmitInFlight = errors.New("submission already in flight")
	ErrNoSelection    = errors.New("no cart lines selected")
	ErrNotLoggedIn    = errors.New("no active session")

	ErrPaymentName       = errors.New(constants.MsgPaymentName)
	ErrPaymentCardNumber = errors.New(constants.MsgPaymentCardNumber)
	ErrPaymentExpiry     = errors.New(constants.MsgPaymentExpiry)
	ErrPaymentSecurity   = errors.New(constants.MsgPaymentSecurity)

	ErrStockLimit      = errors.New(constants.MsgStockLimit)
	ErrCancelDisabled  = errors.New("cancel request not available")
	ErrProductRequired = errors.New("select a product to review")

	ErrInvalidPassword = errors.New(constants.MsgInvalidPassword)
	ErrUserNotFound    = errors.New(constants.MsgUserNotFound)
	ErrEmailInUse      = errors.New(constants.MsgEmailInUse)

	ErrTryAgainLater = errors.New(constants.MsgTryAgainLater)
)
