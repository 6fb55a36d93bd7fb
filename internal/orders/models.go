package orders

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderType is the sellable form of a menu item.
type OrderType string

const (
	OrderTypeBox   OrderType = "Box"
	OrderTypeSlice OrderType = "Slice"
)

func (t OrderType) Valid() bool {
	return t == OrderTypeBox || t == OrderTypeSlice
}

type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentCard   PaymentMethod = "card"
	PaymentOnline PaymentMethod = "online"
)

func (p PaymentMethod) Valid() bool {
	return p == PaymentCash || p == PaymentCard || p == PaymentOnline
}

// Orders are written once, already completed; there is no lifecycle after
// placement.
const StatusCompleted = "completed"

// LineItem is one requested entry of an order before pricing.
type LineItem struct {
	ItemID    int64     `json:"item_id"`
	OrderType OrderType `json:"order_type"`
	Quantity  int       `json:"quantity"`
}

// OrderLine is a priced line as persisted in order_items. UnitPrice is a
// snapshot of the menu price at order time and is never recomputed.
type OrderLine struct {
	OrderID         int64
	ItemID          int64
	OrderType       OrderType
	Quantity        int
	UnitPrice       decimal.Decimal
	DiscountPercent decimal.Decimal
	DiscountAmount  decimal.Decimal
	LineTotal       decimal.Decimal
	DiscountReason  *string
}

type Order struct {
	OrderID       int64
	CustomerID    *int64
	StoreID       int64
	OrderedAt     time.Time
	TotalAmount   decimal.Decimal
	PaymentMethod PaymentMethod
	Status        string
}

// ItemPrices holds both form prices for one menu item; zero means the form
// is not sold.
type ItemPrices struct {
	Box   decimal.Decimal
	Slice decimal.Decimal
}

// PriceTable snapshots menu prices by item id so a whole order is priced
// consistently within one transaction.
type PriceTable map[int64]ItemPrices

// Promo marks the Pizza of the Day: Box orders of ItemID get Percent off.
type Promo struct {
	ItemID  int64
	Percent decimal.Decimal
}

type PlaceOrderRequest struct {
	CustomerID *int64
	StoreID    int64
	Items      []LineItem
	Payment    PaymentMethod
	// OrderedAt zero means "now".
	OrderedAt time.Time
}

type Receipt struct {
	OrderID     int64           `json:"order_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Lines       int             `json:"lines"`
}
