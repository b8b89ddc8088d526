package products

import (
	"context"

	"gorm.io/gorm"

	"github.com/jmlee-dev/cafekiosk-backend/pkg/db/models"
	"github.com/jmlee-dev/cafekiosk-backend/pkg/enums"
)

// Repository handles product persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to product operations.
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

// Create persists a new product row.
func (r *Repository) Create(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

// FindAllBySellingStatusIn returns products whose selling status matches, in
// product number order.
func (r *Repository) FindAllBySellingStatusIn(ctx context.Context, statuses []enums.ProductSellingStatus) ([]models.Product, error) {
	var out []models.Product
	err := r.db.WithContext(ctx).
		Where("selling_status IN ?", statuses).
		Order("product_number ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FindAllByProductNumberIn returns the products matching the given numbers.
// Missing numbers are simply absent from the result.
func (r *Repository) FindAllByProductNumberIn(ctx context.Context, numbers []string) ([]models.Product, error) {
	if len(numbers) == 0 {
		return nil, nil
	}
	var out []models.Product
	err := r.db.WithContext(ctx).
		Where("product_number IN ?", numbers).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FindLatestProductNumber returns the highest assigned product number, or ""
// when the catalog is empty.
func (r *Repository) FindLatestProductNumber(ctx context.Context) (string, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Select("product_number").
		Order("product_number DESC").
		Limit(1).
		Take(&product).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", nil
		}
		return "", err
	}
	return product.ProductNumber, nil
}
