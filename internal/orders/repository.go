package orders

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jmlee-dev/cafekiosk-backend/pkg/db/models"
	"github.com/jmlee-dev/cafekiosk-backend/pkg/enums"
)

// Repository handles order persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to order operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx rebinds the repository to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	if tx == nil {
		return r
	}
	return &Repository{db: tx}
}

// Create persists the order aggregate. Line items ride along via the
// association so everything lands in the caller's transaction.
func (r *Repository) Create(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

// FindByID loads an order with its line items in requested position order.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Preload("LineItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("id = ?", id).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// FindAllByRegisteredAtBetweenAndStatus returns orders registered inside
// [start, end) with the given status.
func (r *Repository) FindAllByRegisteredAtBetweenAndStatus(ctx context.Context, start, end time.Time, status enums.OrderStatus) ([]models.Order, error) {
	var out []models.Order
	err := r.db.WithContext(ctx).
		Where("registered_date_time >= ? AND registered_date_time < ? AND status = ?", start, end, status).
		Order("registered_date_time ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateStatus transitions an order to the given status.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status enums.OrderStatus) error {
	return r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("id = ?", id).
		Update("status", status).Error
}
