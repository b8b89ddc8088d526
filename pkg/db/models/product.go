package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/jmlee-dev/cafekiosk-backend/pkg/enums"
)

// Product represents a menu item. ProductNumber is the business key used on
// order requests; the uuid primary key stays internal.
type Product struct {
	ID            uuid.UUID                  `gorm:"column:id;type:uuid;primaryKey"`
	ProductNumber string                     `gorm:"column:product_number;not null;uniqueIndex"`
	Type          enums.ProductType          `gorm:"column:type;not null"`
	SellingStatus enums.ProductSellingStatus `gorm:"column:selling_status;not null"`
	Name          string                     `gorm:"column:name;not null"`
	Price         int64                      `gorm:"column:price;not null"`
	CreatedAt     time.Time                  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time                  `gorm:"column:updated_at;autoUpdateTime"`
}

func (Product) TableName() string {
	return "products"
}
