package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/jmlee-dev/cafekiosk-backend/pkg/enums"
)

// OrderLineItem snapshots a product at order time. Position preserves the
// request order, including duplicate product numbers.
type OrderLineItem struct {
	ID            uuid.UUID                  `gorm:"column:id;type:uuid;primaryKey"`
	OrderID       uuid.UUID                  `gorm:"column:order_id;type:uuid;not null;index"`
	ProductID     uuid.UUID                  `gorm:"column:product_id;type:uuid;not null"`
	ProductNumber string                     `gorm:"column:product_number;not null"`
	ProductType   enums.ProductType          `gorm:"column:product_type;not null"`
	SellingStatus enums.ProductSellingStatus `gorm:"column:selling_status;not null"`
	Name          string                     `gorm:"column:name;not null"`
	Price         int64                      `gorm:"column:price;not null"`
	Position      int                        `gorm:"column:position;not null"`
	CreatedAt     time.Time                  `gorm:"column:created_at;autoCreateTime"`
}

func (OrderLineItem) TableName() string {
	return "order_line_items"
}
