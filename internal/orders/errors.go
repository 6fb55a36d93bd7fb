package orders

import "errors"

// Validation errors are caller-correctable; ErrDataAccess and
// ErrTransactionFailed surface as generic failures and never leave
// partial state behind.
var (
	ErrEmptyOrder        = errors.New("order has no items")
	ErrStoreNotFound     = errors.New("store not found")
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrItemNotFound      = errors.New("menu item not found")
	ErrFormUnavailable   = errors.New("form not available for item")
	ErrInvalidPayment    = errors.New("invalid payment method")
	ErrDataAccess        = errors.New("data access failure")
	ErrTransactionFailed = errors.New("transaction failed")
)
