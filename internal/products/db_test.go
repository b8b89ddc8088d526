package products

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/jmlee-dev/cafekiosk-backend/pkg/db/models"
	"github.com/jmlee-dev/cafekiosk-backend/pkg/enums"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:products_" + uuid.NewString() + "?mode=memory&cache=shared"
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := conn.AutoMigrate(&models.Product{}); err != nil {
		t.Fatalf("migrate products: %v", err)
	}
	return conn
}

func mustCreateTestProduct(t *testing.T, conn *gorm.DB, number string, productType enums.ProductType, status enums.ProductSellingStatus) *models.Product {
	t.Helper()
	product := &models.Product{
		ID:            uuid.New(),
		ProductNumber: number,
		Type:          productType,
		SellingStatus: status,
		Name:          "product " + number,
		Price:         4000,
	}
	if err := conn.Create(product).Error; err != nil {
		t.Fatalf("create product %s: %v", number, err)
	}
	return product
}
