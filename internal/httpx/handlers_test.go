package httpx

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/gatemediang/rushmore-pizza/internal/catalog"
	"github.com/gatemediang/rushmore-pizza/internal/orders"
)

type stubCatalog struct {
	menu   []catalog.MenuItem
	stores []catalog.Store
	err    error
}

func (s *stubCatalog) ListMenu(context.Context) ([]catalog.MenuItem, error) {
	return s.menu, s.err
}

func (s *stubCatalog) ListStores(context.Context) ([]catalog.Store, error) {
	return s.stores, s.err
}

type stubPlacer struct {
	lastReq orders.PlaceOrderRequest
	receipt orders.Receipt
	err     error
}

func (s *stubPlacer) PlaceOrder(_ context.Context, req orders.PlaceOrderRequest) (orders.Receipt, error) {
	s.lastReq = req
	if s.err != nil {
		return orders.Receipt{}, s.err
	}
	return s.receipt, nil
}

func newTestHandler(cat catalog.Reader, placer OrderPlacer) http.Handler {
	h := &Handler{
		Catalog: cat,
		Orders:  placer,
		Service: "test-api",
		Log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	r := NewRouter()
	h.Register(r)
	return r
}

func TestListMenu(t *testing.T) {
	cat := &stubCatalog{menu: []catalog.MenuItem{
		{ItemID: 1, Name: "Margherita", Category: "Pizza", Size: "Large", BoxPrice: decimal.RequireFromString("10.50")},
		{ItemID: 2, Name: "Pepperoni", Category: "Pizza", Size: "Large", BoxPrice: decimal.RequireFromString("12.99")},
	}}
	router := newTestHandler(cat, &stubPlacer{})

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/menu", nil))
	if first.Code != http.StatusOK {
		t.Fatalf("GET /menu status = %d, want 200", first.Code)
	}
	if !strings.Contains(first.Body.String(), `"item_id":1`) {
		t.Errorf("body missing item 1: %s", first.Body.String())
	}

	// Reading twice without writes returns an identical sequence.
	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/menu", nil))
	if first.Body.String() != second.Body.String() {
		t.Errorf("menu changed between reads:\n%s\n%s", first.Body.String(), second.Body.String())
	}
}

func TestListMenuCatalogFailure(t *testing.T) {
	router := newTestHandler(&stubCatalog{err: context.DeadlineExceeded}, &stubPlacer{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/menu", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "catalog unavailable") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestListStores(t *testing.T) {
	cat := &stubCatalog{stores: []catalog.Store{{StoreID: 1, City: "London"}}}
	router := newTestHandler(cat, &stubPlacer{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stores", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /stores status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"city":"London"`) {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestCreateOrder(t *testing.T) {
	placer := &stubPlacer{receipt: orders.Receipt{
		OrderID:     9,
		TotalAmount: decimal.RequireFromString("25.98"),
		Lines:       1,
	}}
	router := newTestHandler(&stubCatalog{}, placer)

	body := `{"store_id":1,"payment_method":"card","items":[{"item_id":1,"order_type":"Box","quantity":2}]}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body)))

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"order_id":9`) {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
	if placer.lastReq.Payment != orders.PaymentCard {
		t.Errorf("payment = %q, want card", placer.lastReq.Payment)
	}
}

func TestCreateOrderDefaultsPaymentToCash(t *testing.T) {
	placer := &stubPlacer{receipt: orders.Receipt{OrderID: 1, TotalAmount: decimal.Zero, Lines: 1}}
	router := newTestHandler(&stubCatalog{}, placer)

	body := `{"store_id":1,"items":[{"item_id":1,"order_type":"Slice","quantity":1}]}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body)))

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", rec.Code, rec.Body.String())
	}
	if placer.lastReq.Payment != orders.PaymentCash {
		t.Errorf("payment = %q, want cash default", placer.lastReq.Payment)
	}
}

func TestCreateOrderBadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "invalid json", body: `{`},
		{name: "zero store id", body: `{"store_id":0,"items":[{"item_id":1,"order_type":"Box","quantity":1}]}`},
		{name: "bad order type", body: `{"store_id":1,"items":[{"item_id":1,"order_type":"Whole","quantity":1}]}`},
		{name: "zero quantity", body: `{"store_id":1,"items":[{"item_id":1,"order_type":"Box","quantity":0}]}`},
		{name: "negative customer id", body: `{"store_id":1,"customer_id":-2,"items":[{"item_id":1,"order_type":"Box","quantity":1}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestHandler(&stubCatalog{}, &stubPlacer{})
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(tt.body)))
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400, body %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func TestCreateOrderErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "store not found", err: orders.ErrStoreNotFound, wantCode: http.StatusNotFound},
		{name: "customer not found", err: orders.ErrCustomerNotFound, wantCode: http.StatusNotFound},
		{name: "item not found", err: orders.ErrItemNotFound, wantCode: http.StatusNotFound},
		{name: "form unavailable", err: orders.ErrFormUnavailable, wantCode: http.StatusBadRequest},
		{name: "empty order", err: orders.ErrEmptyOrder, wantCode: http.StatusBadRequest},
		{name: "invalid payment", err: orders.ErrInvalidPayment, wantCode: http.StatusBadRequest},
		{name: "data access", err: orders.ErrDataAccess, wantCode: http.StatusInternalServerError},
		{name: "transaction failed", err: orders.ErrTransactionFailed, wantCode: http.StatusInternalServerError},
	}

	body := `{"store_id":1,"items":[{"item_id":1,"order_type":"Box","quantity":1}]}`
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestHandler(&stubCatalog{}, &stubPlacer{err: tt.err})
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body)))
			if rec.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantCode)
			}
			if tt.wantCode == http.StatusInternalServerError &&
				!strings.Contains(rec.Body.String(), "order could not be processed") {
				t.Errorf("internal errors must stay generic, got %s", rec.Body.String())
			}
		})
	}
}
