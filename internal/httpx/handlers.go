package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"

	"github.com/gatemediang/rushmore-pizza/internal/catalog"
	kafkax "github.com/gatemediang/rushmore-pizza/internal/kafka"
	"github.com/gatemediang/rushmore-pizza/internal/orders"
	"github.com/gatemediang/rushmore-pizza/internal/redisx"
)

// OrderPlacer is the slice of the order service the handler needs.
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, req orders.PlaceOrderRequest) (orders.Receipt, error)
}

type Handler struct {
	Catalog catalog.Reader
	Orders  OrderPlacer
	// Producer nil disables order.placed events.
	Producer *kafkax.Producer
	// Redis nil disables the catalog response cache.
	Redis   *redis.Client
	Service string
	Log     *slog.Logger
}

func (h *Handler) Register(r *chi.Mux) {
	r.Get("/menu", h.listMenu)
	r.Get("/stores", h.listStores)
	r.Post("/orders", h.createOrder)
}

type createOrderReq struct {
	StoreID       int64             `json:"store_id"`
	CustomerID    *int64            `json:"customer_id"`
	PaymentMethod string            `json:"payment_method"`
	Items         []orders.LineItem `json:"items"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

func (h *Handler) listMenu(w http.ResponseWriter, r *http.Request) {
	h.serveCatalog(w, r, redisx.KeyMenu, func(ctx context.Context) (any, error) {
		return h.Catalog.ListMenu(ctx)
	})
}

func (h *Handler) listStores(w http.ResponseWriter, r *http.Request) {
	h.serveCatalog(w, r, redisx.KeyStores, func(ctx context.Context) (any, error) {
		return h.Catalog.ListStores(ctx)
	})
}

// serveCatalog answers from the Redis cache when possible and falls back to
// the catalog reader. Cache failures are ignored; the reader is the truth.
func (h *Handler) serveCatalog(w http.ResponseWriter, r *http.Request, cacheKey string, load func(context.Context) (any, error)) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if h.Redis != nil {
		if s, err := h.Redis.Get(ctx, cacheKey).Result(); err == nil && s != "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(s))
			return
		}
	}

	v, err := load(ctx)
	if err != nil {
		h.Log.Error("catalog read failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "catalog unavailable")
		return
	}
	body, err := json.Marshal(v)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "catalog unavailable")
		return
	}
	if h.Redis != nil {
		_ = h.Redis.Set(ctx, cacheKey, body, redisx.TTLCatalog).Err()
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if msg := validateCreateOrder(&req); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	rec, err := h.Orders.PlaceOrder(ctx, orders.PlaceOrderRequest{
		CustomerID: req.CustomerID,
		StoreID:    req.StoreID,
		Items:      req.Items,
		Payment:    orders.PaymentMethod(req.PaymentMethod),
	})
	if err != nil {
		code := statusForError(err)
		if code == http.StatusInternalServerError {
			h.Log.Error("order placement failed", slog.String("error", err.Error()))
			writeError(w, code, "order could not be processed")
			return
		}
		writeError(w, code, err.Error())
		return
	}

	h.publishOrderPlaced(r, &req, rec)
	writeJSON(w, http.StatusCreated, rec)
}

// validateCreateOrder enforces the syntactic request shape; referential and
// business rules belong to the order service.
func validateCreateOrder(req *createOrderReq) string {
	if req.StoreID <= 0 {
		return "store_id must be a positive integer"
	}
	if req.CustomerID != nil && *req.CustomerID <= 0 {
		return "customer_id must be a positive integer"
	}
	if req.PaymentMethod == "" {
		req.PaymentMethod = string(orders.PaymentCash)
	}
	for i, it := range req.Items {
		if it.ItemID <= 0 {
			return fmt.Sprintf("items[%d].item_id must be a positive integer", i)
		}
		if !it.OrderType.Valid() {
			return fmt.Sprintf("items[%d].order_type must be Box or Slice", i)
		}
		if it.Quantity <= 0 {
			return fmt.Sprintf("items[%d].quantity must be a positive integer", i)
		}
	}
	return ""
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, orders.ErrStoreNotFound),
		errors.Is(err, orders.ErrCustomerNotFound),
		errors.Is(err, orders.ErrItemNotFound):
		return http.StatusNotFound
	case errors.Is(err, orders.ErrEmptyOrder),
		errors.Is(err, orders.ErrInvalidPayment),
		errors.Is(err, orders.ErrFormUnavailable):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) publishOrderPlaced(r *http.Request, req *createOrderReq, rec orders.Receipt) {
	if h.Producer == nil {
		return
	}
	lines := make([]orders.PlacedLine, 0, len(req.Items))
	for _, it := range req.Items {
		lines = append(lines, orders.PlacedLine{
			ItemID:    it.ItemID,
			OrderType: string(it.OrderType),
			Quantity:  it.Quantity,
		})
	}
	ev := orders.Envelope{
		EventID:       uuid.NewString(),
		EventType:     orders.EventOrderPlaced,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      h.Service,
		TraceID:       r.Header.Get("X-Request-Id"),
		CorrelationID: fmt.Sprintf("%d", rec.OrderID),
	}
	ev.Payload = kafkax.MustMarshal(orders.OrderPlacedPayload{
		OrderID:       rec.OrderID,
		StoreID:       req.StoreID,
		CustomerID:    req.CustomerID,
		PaymentMethod: req.PaymentMethod,
		TotalAmount:   rec.TotalAmount.StringFixed(2),
		Lines:         lines,
	})
	h.Producer.Publish(orders.PartitionKey(rec.OrderID), kafkax.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(orders.EventOrderPlaced)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)
}
