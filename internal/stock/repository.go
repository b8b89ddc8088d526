package stock

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/jmlee-dev/cafekiosk-backend/pkg/db/models"
)

// Repository handles stock persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to stock operations.
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

// FindAllByProductNumberIn loads stock rows for the given product numbers.
func (r *Repository) FindAllByProductNumberIn(ctx context.Context, numbers []string) ([]models.Stock, error) {
	if len(numbers) == 0 {
		return nil, nil
	}
	var out []models.Stock
	err := r.db.WithContext(ctx).
		Where("product_number IN ?", numbers).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Create persists a stock row.
func (r *Repository) Create(ctx context.Context, stock *models.Stock) error {
	return r.db.WithContext(ctx).Create(stock).Error
}

// Deduct atomically subtracts quantity from a stock row. The guard in the
// WHERE clause keeps quantity from going negative; zero rows affected means
// another order drained the stock first (or the row is gone).
func (r *Repository) Deduct(ctx context.Context, productNumber string, quantity int) (bool, error) {
	if quantity <= 0 {
		return false, fmt.Errorf("deduct quantity must be positive, got %d", quantity)
	}
	res := r.db.WithContext(ctx).
		Model(&models.Stock{}).
		Where("product_number = ? AND quantity >= ?", productNumber, quantity).
		Update("quantity", gorm.Expr("quantity - ?", quantity))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
