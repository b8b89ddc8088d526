package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/jmlee-dev/cafekiosk-backend/pkg/enums"
)

// Order is the aggregate root for a kiosk order. TotalPrice is fixed at
// creation time from the line item snapshots.
type Order struct {
	ID                 uuid.UUID         `gorm:"column:id;type:uuid;primaryKey"`
	Status             enums.OrderStatus `gorm:"column:status;not null"`
	TotalPrice         int64             `gorm:"column:total_price;not null"`
	RegisteredDateTime time.Time         `gorm:"column:registered_date_time;not null"`
	LineItems          []OrderLineItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt          time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}

func (Order) TableName() string {
	return "orders"
}
