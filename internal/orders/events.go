package orders

import (
	"encoding/json"
	"time"
)

const EventOrderPlaced = "OrderPlaced"

type Envelope struct {
	EventID       string          `json:"event_id"` // uuid
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"` // RFC3339
	Producer      string          `json:"producer"`    // e.g., "rushmore-api"
	TraceID       string          `json:"trace_id,omitempty"`
	CorrelationID string          `json:"correlation_id,omitempty"` // order_id
	Payload       json.RawMessage `json:"payload"`
}

type PlacedLine struct {
	ItemID    int64  `json:"item_id"`
	OrderType string `json:"order_type"`
	Quantity  int    `json:"quantity"`
}

// OrderPlacedPayload announces a committed order. Amounts are fixed-point
// strings so consumers never see float money.
type OrderPlacedPayload struct {
	OrderID       int64        `json:"order_id"`
	StoreID       int64        `json:"store_id"`
	CustomerID    *int64       `json:"customer_id,omitempty"`
	PaymentMethod string       `json:"payment_method"`
	TotalAmount   string       `json:"total_amount"`
	Lines         []PlacedLine `json:"lines"`
}
