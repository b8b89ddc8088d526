package orders

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jmlee-dev/cafekiosk-backend/internal/products"
	"github.com/jmlee-dev/cafekiosk-backend/internal/stock"
	"github.com/jmlee-dev/cafekiosk-backend/pkg/db/models"
	"github.com/jmlee-dev/cafekiosk-backend/pkg/enums"
	pkgerrors "github.com/jmlee-dev/cafekiosk-backend/pkg/errors"
	"github.com/jmlee-dev/cafekiosk-backend/pkg/metrics"
)

// Rejection reasons exported to metrics.
const (
	rejectReasonValidation    = "validation"
	rejectReasonUnknownNumber = "unknown_product_number"
	rejectReasonStockShortage = "stock_shortage"
	rejectReasonMissingStock  = "missing_stock_row"
	rejectReasonStorage       = "storage"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service exposes the order intake workflow.
type Service interface {
	CreateOrder(ctx context.Context, input CreateOrderInput) (*OrderResponse, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*OrderResponse, error)
}

type service struct {
	orderRepo   *Repository
	productRepo *products.Repository
	stockRepo   *stock.Repository
	tx          txRunner
	metrics     *metrics.OrderMetrics

	// strictLookup rejects orders naming unknown product numbers; when
	// false, unknown numbers are silently dropped from the order.
	strictLookup bool
}

// Params collects the service dependencies.
type Params struct {
	OrderRepo    *Repository
	ProductRepo  *products.Repository
	StockRepo    *stock.Repository
	Tx           txRunner
	Metrics      *metrics.OrderMetrics
	StrictLookup bool
}

// NewService builds the order service with the required dependencies.
func NewService(p Params) (Service, error) {
	if p.OrderRepo == nil {
		return nil, fmt.Errorf("order repository required")
	}
	if p.ProductRepo == nil {
		return nil, fmt.Errorf("product repository required")
	}
	if p.StockRepo == nil {
		return nil, fmt.Errorf("stock repository required")
	}
	if p.Tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{
		orderRepo:    p.OrderRepo,
		productRepo:  p.ProductRepo,
		stockRepo:    p.StockRepo,
		tx:           p.Tx,
		metrics:      p.Metrics,
		strictLookup: p.StrictLookup,
	}, nil
}

// CreateOrder resolves the requested product numbers, deducts stock for the
// stock-tracked ones, and persists the order aggregate. Stock deduction and
// order persistence share one transaction; any failure rolls everything back.
// An empty product number sequence is accepted and yields a zero-line,
// zero-total order; rejecting empty carts is the HTTP layer's call.
func (s *service) CreateOrder(ctx context.Context, input CreateOrderInput) (*OrderResponse, error) {
	for _, number := range input.ProductNumbers {
		if number == "" {
			s.metrics.IncRejected(rejectReasonValidation)
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "blank product number")
		}
	}
	if input.RegisteredAt.IsZero() {
		s.metrics.IncRejected(rejectReasonValidation)
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "registered time required")
	}

	var response *OrderResponse
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		resolved, err := s.resolveProducts(ctx, tx, input.ProductNumbers)
		if err != nil {
			return err
		}

		if err := s.deductStock(ctx, tx, resolved); err != nil {
			return err
		}

		order := buildOrder(resolved, input)
		if err := s.orderRepo.WithTx(tx).Create(ctx, order); err != nil {
			s.metrics.IncRejected(rejectReasonStorage)
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist order")
		}

		response = responseFromModel(order, resolved)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncCreated(response.TotalPrice)
	return response, nil
}

// GetOrder loads a persisted order with line items in requested order.
func (s *service) GetOrder(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load order")
	}

	products := make([]OrderProductDTO, 0, len(order.LineItems))
	for i := range order.LineItems {
		item := &order.LineItems[i]
		products = append(products, OrderProductDTO{
			ProductNumber: item.ProductNumber,
			Type:          item.ProductType,
			SellingStatus: item.SellingStatus,
			Name:          item.Name,
			Price:         item.Price,
		})
	}
	return &OrderResponse{
		ID:                 order.ID,
		Status:             order.Status,
		TotalPrice:         order.TotalPrice,
		RegisteredDateTime: order.RegisteredDateTime,
		Products:           products,
	}, nil
}

// resolveProducts re-projects the catalog onto the requested sequence,
// preserving order and duplicates.
func (s *service) resolveProducts(ctx context.Context, tx *gorm.DB, numbers []string) ([]models.Product, error) {
	distinct := distinctStrings(numbers)
	found, err := s.productRepo.WithTx(tx).FindAllByProductNumberIn(ctx, distinct)
	if err != nil {
		s.metrics.IncRejected(rejectReasonStorage)
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load products")
	}

	byNumber := make(map[string]*models.Product, len(found))
	for i := range found {
		byNumber[found[i].ProductNumber] = &found[i]
	}

	resolved := make([]models.Product, 0, len(numbers))
	for _, number := range numbers {
		product, ok := byNumber[number]
		if !ok {
			if s.strictLookup {
				s.metrics.IncRejected(rejectReasonUnknownNumber)
				return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("unknown product number %q", number))
			}
			continue
		}
		resolved = append(resolved, *product)
	}
	return resolved, nil
}

// deductStock validates and deducts stock for every stock-tracked product.
// Demand is counted per product number so duplicates deduct once with the
// summed quantity.
func (s *service) deductStock(ctx context.Context, tx *gorm.DB, resolved []models.Product) error {
	demand := map[string]int{}
	trackedNumbers := []string{}
	for i := range resolved {
		if !resolved[i].Type.IsStockTracked() {
			continue
		}
		number := resolved[i].ProductNumber
		if demand[number] == 0 {
			trackedNumbers = append(trackedNumbers, number)
		}
		demand[number]++
	}
	if len(trackedNumbers) == 0 {
		return nil
	}

	stockRepo := s.stockRepo.WithTx(tx)
	rows, err := stockRepo.FindAllByProductNumberIn(ctx, trackedNumbers)
	if err != nil {
		s.metrics.IncRejected(rejectReasonStorage)
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load stocks")
	}
	quantityByNumber := make(map[string]int, len(rows))
	for i := range rows {
		quantityByNumber[rows[i].ProductNumber] = rows[i].Quantity
	}

	for number, needed := range demand {
		quantity, ok := quantityByNumber[number]
		if !ok {
			// A stock-tracked product without a stock row is a data
			// integrity fault, not a customer problem.
			s.metrics.IncRejected(rejectReasonMissingStock)
			return pkgerrors.New(pkgerrors.CodeInternal, fmt.Sprintf("no stock row for product %q", number))
		}
		if quantity < needed {
			s.metrics.IncRejected(rejectReasonStockShortage)
			return pkgerrors.New(pkgerrors.CodeStockShortage, "insufficient stock").
				WithDetails(map[string]any{"productNumber": number})
		}
		deducted, err := stockRepo.Deduct(ctx, number, needed)
		if err != nil {
			s.metrics.IncRejected(rejectReasonStorage)
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "deduct stock")
		}
		if !deducted {
			// The earlier read said enough stock; a concurrent order won
			// the race between read and update.
			s.metrics.IncRejected(rejectReasonStockShortage)
			return pkgerrors.New(pkgerrors.CodeStockShortage, "insufficient stock").
				WithDetails(map[string]any{"productNumber": number})
		}
	}
	return nil
}

func buildOrder(resolved []models.Product, input CreateOrderInput) *models.Order {
	orderID := uuid.New()
	var total int64
	items := make([]models.OrderLineItem, 0, len(resolved))
	for i := range resolved {
		p := &resolved[i]
		total += p.Price
		items = append(items, models.OrderLineItem{
			ID:            uuid.New(),
			OrderID:       orderID,
			ProductID:     p.ID,
			ProductNumber: p.ProductNumber,
			ProductType:   p.Type,
			SellingStatus: p.SellingStatus,
			Name:          p.Name,
			Price:         p.Price,
			Position:      i,
		})
	}
	return &models.Order{
		ID:                 orderID,
		Status:             enums.OrderStatusInit,
		TotalPrice:         total,
		RegisteredDateTime: input.RegisteredAt,
		LineItems:          items,
	}
}

func distinctStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
