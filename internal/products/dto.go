package products

import (
	"github.com/google/uuid"

	"github.com/jmlee-dev/cafekiosk-backend/pkg/db/models"
	"github.com/jmlee-dev/cafekiosk-backend/pkg/enums"
)

// CreateProductInput holds the validated payload to create a product.
type CreateProductInput struct {
	Type          enums.ProductType
	SellingStatus enums.ProductSellingStatus
	Name          string
	Price         int64
}

// ProductDTO exposes catalog data in API responses.
type ProductDTO struct {
	ID            uuid.UUID                  `json:"id"`
	ProductNumber string                     `json:"productNumber"`
	Type          enums.ProductType          `json:"type"`
	SellingStatus enums.ProductSellingStatus `json:"sellingStatus"`
	Name          string                     `json:"name"`
	Price         int64                      `json:"price"`
}

// FromModel maps the persisted product into a DTO.
func FromModel(m *models.Product) *ProductDTO {
	if m == nil {
		return nil
	}
	return &ProductDTO{
		ID:            m.ID,
		ProductNumber: m.ProductNumber,
		Type:          m.Type,
		SellingStatus: m.SellingStatus,
		Name:          m.Name,
		Price:         m.Price,
	}
}

// FromModels maps a slice of products preserving order.
func FromModels(ms []models.Product) []ProductDTO {
	out := make([]ProductDTO, 0, len(ms))
	for i := range ms {
		out = append(out, *FromModel(&ms[i]))
	}
	return out
}
