package controllers

import (
	"net/http"
	"strings"

	"github.com/jmlee-dev/cafekiosk-backend/api/responses"
	"github.com/jmlee-dev/cafekiosk-backend/api/validators"
	productsvc "github.com/jmlee-dev/cafekiosk-backend/internal/products"
	"github.com/jmlee-dev/cafekiosk-backend/pkg/enums"
	pkgerrors "github.com/jmlee-dev/cafekiosk-backend/pkg/errors"
	"github.com/jmlee-dev/cafekiosk-backend/pkg/logger"
)

// CreateProduct registers a new catalog product and assigns its product number.
func CreateProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		var payload createProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toCreateInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.CreateProduct(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, product)
	}
}

// GetSellingProducts lists the products a kiosk screen can display.
func GetSellingProducts(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		products, err := svc.GetSellingProducts(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, products)
	}
}

type createProductRequest struct {
	Type          string `json:"type" validate:"required"`
	SellingStatus string `json:"sellingStatus" validate:"required"`
	Name          string `json:"name" validate:"required"`
	Price         int64  `json:"price" validate:"required,min=1"`
}

func (r createProductRequest) toCreateInput() (productsvc.CreateProductInput, error) {
	productType, err := enums.ParseProductType(strings.TrimSpace(r.Type))
	if err != nil {
		return productsvc.CreateProductInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product type")
	}

	sellingStatus, err := enums.ParseProductSellingStatus(strings.TrimSpace(r.SellingStatus))
	if err != nil {
		return productsvc.CreateProductInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid selling status")
	}

	return productsvc.CreateProductInput{
		Type:          productType,
		SellingStatus: sellingStatus,
		Name:          strings.TrimSpace(r.Name),
		Price:         r.Price,
	}, nil
}
