package orders

import (
	"time"

	"github.com/google/uuid"

	"github.com/jmlee-dev/cafekiosk-backend/pkg/db/models"
	"github.com/jmlee-dev/cafekiosk-backend/pkg/enums"
)

// CreateOrderInput carries the order request. ProductNumbers keeps the
// requested sequence; the same number may appear more than once.
type CreateOrderInput struct {
	ProductNumbers []string
	RegisteredAt   time.Time
}

// OrderProductDTO is the line item snapshot returned to the caller.
type OrderProductDTO struct {
	ProductNumber string                     `json:"productNumber"`
	Type          enums.ProductType          `json:"type"`
	SellingStatus enums.ProductSellingStatus `json:"sellingStatus"`
	Name          string                     `json:"name"`
	Price         int64                      `json:"price"`
}

// OrderResponse is the API view of a created order.
type OrderResponse struct {
	ID                 uuid.UUID         `json:"id"`
	Status             enums.OrderStatus `json:"status"`
	TotalPrice         int64             `json:"totalPrice"`
	RegisteredDateTime time.Time         `json:"registeredDateTime"`
	Products           []OrderProductDTO `json:"products"`
}

func responseFromModel(order *models.Order, resolved []models.Product) *OrderResponse {
	products := make([]OrderProductDTO, 0, len(resolved))
	for i := range resolved {
		p := &resolved[i]
		products = append(products, OrderProductDTO{
			ProductNumber: p.ProductNumber,
			Type:          p.Type,
			SellingStatus: p.SellingStatus,
			Name:          p.Name,
			Price:         p.Price,
		})
	}
	return &OrderResponse{
		ID:                 order.ID,
		Status:             order.Status,
		TotalPrice:         order.TotalPrice,
		RegisteredDateTime: order.RegisteredDateTime,
		Products:           products,
	}
}
