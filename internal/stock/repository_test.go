package stock

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/jmlee-dev/cafekiosk-backend/pkg/db/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:stock_" + uuid.NewString() + "?mode=memory&cache=shared"
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := conn.AutoMigrate(&models.Stock{}); err != nil {
		t.Fatalf("migrate stocks: %v", err)
	}
	return conn
}

func seedStock(t *testing.T, conn *gorm.DB, number string, quantity int) {
	t.Helper()
	require.NoError(t, conn.Create(&models.Stock{ProductNumber: number, Quantity: quantity}).Error)
}

func loadQuantity(t *testing.T, conn *gorm.DB, number string) int {
	t.Helper()
	var s models.Stock
	require.NoError(t, conn.First(&s, "product_number = ?", number).Error)
	return s.Quantity
}

func TestDeductSubtractsExactQuantity(t *testing.T) {
	conn := newTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	seedStock(t, conn, "001", 5)

	ok, err := repo.Deduct(ctx, "001", 3)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 2, loadQuantity(t, conn, "001"))
}

func TestDeductRefusesWhenInsufficient(t *testing.T) {
	conn := newTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	seedStock(t, conn, "001", 2)

	ok, err := repo.Deduct(ctx, "001", 3)
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, 2, loadQuantity(t, conn, "001"), "failed deduction must not change quantity")
}

func TestDeductRefusesMissingRow(t *testing.T) {
	conn := newTestDB(t)
	repo := NewRepository(conn)

	ok, err := repo.Deduct(context.Background(), "404", 1)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestDeductRejectsNonPositiveQuantity(t *testing.T) {
	conn := newTestDB(t)
	repo := NewRepository(conn)

	_, err := repo.Deduct(context.Background(), "001", 0)
	require.Error(t, err)
	_, err = repo.Deduct(context.Background(), "001", -1)
	require.Error(t, err)
}

func TestDeductDrainsToZero(t *testing.T) {
	conn := newTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	seedStock(t, conn, "001", 1)

	ok, err := repo.Deduct(ctx, "001", 1)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 0, loadQuantity(t, conn, "001"))

	ok, err = repo.Deduct(ctx, "001", 1)
	require.NoError(t, err)
	require.False(t, ok, "empty stock must refuse further deduction")
}

func TestFindAllByProductNumberIn(t *testing.T) {
	conn := newTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	seedStock(t, conn, "001", 1)
	seedStock(t, conn, "002", 2)

	rows, err := repo.FindAllByProductNumberIn(ctx, []string{"001", "002", "404"})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	none, err := repo.FindAllByProductNumberIn(ctx, nil)
	require.NoError(t, err)
	require.Empty(t, none)
}
