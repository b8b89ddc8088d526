package routes

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	ordersvc "github.com/jmlee-dev/cafekiosk-backend/internal/orders"
	productsvc "github.com/jmlee-dev/cafekiosk-backend/internal/products"
	"github.com/jmlee-dev/cafekiosk-backend/pkg/config"
	"github.com/jmlee-dev/cafekiosk-backend/pkg/enums"
	"github.com/jmlee-dev/cafekiosk-backend/pkg/logger"
	"github.com/jmlee-dev/cafekiosk-backend/pkg/redis"
)

type stubProductService struct{}

func (stubProductService) CreateProduct(context.Context, productsvc.CreateProductInput) (*productsvc.ProductDTO, error) {
	return &productsvc.ProductDTO{ProductNumber: "001"}, nil
}

func (stubProductService) GetSellingProducts(context.Context) ([]productsvc.ProductDTO, error) {
	return []productsvc.ProductDTO{
		{ProductNumber: "001", Type: enums.ProductTypeHandmade, SellingStatus: enums.ProductSellingStatusSelling, Name: "Americano", Price: 4000},
	}, nil
}

type stubOrderService struct{}

func (stubOrderService) CreateOrder(_ context.Context, input ordersvc.CreateOrderInput) (*ordersvc.OrderResponse, error) {
	return &ordersvc.OrderResponse{ID: uuid.New(), Status: enums.OrderStatusInit, RegisteredDateTime: input.RegisteredAt}, nil
}

func (stubOrderService) GetOrder(_ context.Context, id uuid.UUID) (*ordersvc.OrderResponse, error) {
	return &ordersvc.OrderResponse{ID: id, Status: enums.OrderStatusInit}, nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	cfg := &config.Config{}
	cfg.App.Env = "test"
	logg := logger.New(logger.Options{ServiceName: "test", Level: logger.ParseLevel("debug"), Output: io.Discard})
	return NewRouter(cfg, logg, nil, &redis.Client{}, stubProductService{}, stubOrderService{})
}

func TestRouterHealthLive(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("X-CafeKiosk-Env"); got != "test" {
		t.Fatalf("expected env header, got %q", got)
	}
}

func TestRouterHealthReadyReportsRedisOutage(t *testing.T) {
	router := newTestRouter(t)

	// The zero-value client has no live connection, so ready must fail.
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}

func TestRouterSellingProducts(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/selling", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body %s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Data []struct {
			ProductNumber string `json:"productNumber"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(envelope.Data) != 1 || envelope.Data[0].ProductNumber != "001" {
		t.Fatalf("unexpected payload: %+v", envelope.Data)
	}
}

func TestRouterGetOrder(t *testing.T) {
	router := newTestRouter(t)

	orderID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/"+orderID.String(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRouterOrderSubmissionRequiresIdempotencyKey(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders/new", strings.NewReader(`{"productNumbers":["001"]}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without idempotency key, got %d", rec.Code)
	}
}

func TestRouterMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRouterUnknownRoute(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/unknown", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
