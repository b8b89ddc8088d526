package products

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jmlee-dev/cafekiosk-backend/pkg/enums"
	pkgerrors "github.com/jmlee-dev/cafekiosk-backend/pkg/errors"
)

func newTestService(t *testing.T) (Service, *Repository) {
	t.Helper()
	conn := newTestDB(t)
	repo := NewRepository(conn)
	svc, err := NewService(repo)
	require.NoError(t, err)
	return svc, repo
}

func TestCreateProductAssignsFirstNumber(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.CreateProduct(context.Background(), CreateProductInput{
		Type:          enums.ProductTypeHandmade,
		SellingStatus: enums.ProductSellingStatusSelling,
		Name:          "americano",
		Price:         4000,
	})
	require.NoError(t, err)
	require.Equal(t, "001", created.ProductNumber)
}

func TestCreateProductIncrementsLatestNumber(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for _, name := range []string{"americano", "latte"} {
		_, err := svc.CreateProduct(ctx, CreateProductInput{
			Type:          enums.ProductTypeHandmade,
			SellingStatus: enums.ProductSellingStatusSelling,
			Name:          name,
			Price:         4000,
		})
		require.NoError(t, err)
	}

	created, err := svc.CreateProduct(ctx, CreateProductInput{
		Type:          enums.ProductTypeBottle,
		SellingStatus: enums.ProductSellingStatusHold,
		Name:          "bottled juice",
		Price:         5500,
	})
	require.NoError(t, err)
	require.Equal(t, "003", created.ProductNumber)
}

func TestCreateProductRejectsInvalidInput(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	cases := []struct {
		name  string
		input CreateProductInput
	}{
		{"invalid type", CreateProductInput{Type: "JUICE", SellingStatus: enums.ProductSellingStatusSelling, Name: "x", Price: 1}},
		{"invalid status", CreateProductInput{Type: enums.ProductTypeBottle, SellingStatus: "PAUSED", Name: "x", Price: 1}},
		{"blank name", CreateProductInput{Type: enums.ProductTypeBottle, SellingStatus: enums.ProductSellingStatusSelling, Name: "   ", Price: 1}},
		{"zero price", CreateProductInput{Type: enums.ProductTypeBottle, SellingStatus: enums.ProductSellingStatusSelling, Name: "x", Price: 0}},
		{"negative price", CreateProductInput{Type: enums.ProductTypeBottle, SellingStatus: enums.ProductSellingStatusSelling, Name: "x", Price: -1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateProduct(ctx, tc.input)
			require.Error(t, err)
			typed := pkgerrors.As(err)
			require.NotNil(t, typed)
			require.Equal(t, pkgerrors.CodeValidation, typed.Code())
		})
	}
}

func TestGetSellingProductsExcludesStopSelling(t *testing.T) {
	conn := newTestDB(t)
	repo := NewRepository(conn)
	svc, err := NewService(repo)
	require.NoError(t, err)

	mustCreateTestProduct(t, conn, "001", enums.ProductTypeHandmade, enums.ProductSellingStatusSelling)
	mustCreateTestProduct(t, conn, "002", enums.ProductTypeBottle, enums.ProductSellingStatusHold)
	mustCreateTestProduct(t, conn, "003", enums.ProductTypeBakery, enums.ProductSellingStatusStopSelling)

	listed, err := svc.GetSellingProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 2)
	require.Equal(t, "001", listed[0].ProductNumber)
	require.Equal(t, enums.ProductSellingStatusHold, listed[1].SellingStatus)
}
