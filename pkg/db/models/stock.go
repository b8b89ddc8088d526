package models

import "time"

// Stock tracks remaining quantity per product number. Only bottle and bakery
// products have a row here.
type Stock struct {
	ProductNumber string    `gorm:"column:product_number;primaryKey"`
	Quantity      int       `gorm:"column:quantity;not null"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Stock) TableName() string {
	return "stocks"
}
