package orders

import (
	"context"
	"fmt"
	"log/slog"
)

// Storage is what the service needs from Postgres. CreateOrder is the
// atomic part; the existence checks are plain reads that run before any
// persistence happens.
type Storage interface {
	StoreExists(ctx context.Context, storeID int64) (bool, error)
	CustomerExists(ctx context.Context, customerID int64) (bool, error)
	CreateOrder(ctx context.Context, req PlaceOrderRequest, promo *Promo) (Receipt, error)
}

type Service struct {
	store Storage
	promo *Promo
	log   *slog.Logger
}

// NewService wires the order service. promo may be nil when no Pizza of the
// Day was selected for this session.
func NewService(store Storage, promo *Promo, log *slog.Logger) *Service {
	return &Service{store: store, promo: promo, log: log}
}

// PlaceOrder validates the request, then persists the order atomically.
// Validation order matters: empty items, then store, then customer, then
// payment method; the first failure wins and nothing is persisted.
func (s *Service) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (Receipt, error) {
	if len(req.Items) == 0 {
		return Receipt{}, ErrEmptyOrder
	}

	ok, err := s.store.StoreExists(ctx, req.StoreID)
	if err != nil {
		return Receipt{}, fmt.Errorf("%w: check store: %v", ErrDataAccess, err)
	}
	if !ok {
		return Receipt{}, fmt.Errorf("%w: store_id %d", ErrStoreNotFound, req.StoreID)
	}

	if req.CustomerID != nil {
		ok, err := s.store.CustomerExists(ctx, *req.CustomerID)
		if err != nil {
			return Receipt{}, fmt.Errorf("%w: check customer: %v", ErrDataAccess, err)
		}
		if !ok {
			return Receipt{}, fmt.Errorf("%w: customer_id %d", ErrCustomerNotFound, *req.CustomerID)
		}
	}

	if !req.Payment.Valid() {
		return Receipt{}, fmt.Errorf("%w: %q", ErrInvalidPayment, req.Payment)
	}

	rec, err := s.store.CreateOrder(ctx, req, s.promo)
	if err != nil {
		s.log.Warn("order rejected",
			slog.Int64("store_id", req.StoreID),
			slog.Int("items", len(req.Items)),
			slog.String("error", err.Error()))
		return Receipt{}, err
	}

	s.log.Info("order placed",
		slog.Int64("order_id", rec.OrderID),
		slog.Int64("store_id", req.StoreID),
		slog.String("total_amount", rec.TotalAmount.StringFixed(2)),
		slog.Int("lines", rec.Lines))
	return rec, nil
}
