package controllers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jmlee-dev/cafekiosk-backend/api/responses"
	"github.com/jmlee-dev/cafekiosk-backend/api/validators"
	ordersvc "github.com/jmlee-dev/cafekiosk-backend/internal/orders"
	pkgerrors "github.com/jmlee-dev/cafekiosk-backend/pkg/errors"
	"github.com/jmlee-dev/cafekiosk-backend/pkg/logger"
)

// CreateOrder accepts a list of product numbers and places the order.
func CreateOrder(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		var payload createOrderRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		// The registration time is taken at the edge so the service stays deterministic.
		order, err := svc.CreateOrder(r.Context(), ordersvc.CreateOrderInput{
			ProductNumbers: payload.ProductNumbers,
			RegisteredAt:   time.Now(),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, order)
	}
}

// GetOrder returns a single order with its line items.
func GetOrder(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "orderId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid order id"))
			return
		}

		order, err := svc.GetOrder(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, order)
	}
}

type createOrderRequest struct {
	ProductNumbers []string `json:"productNumbers" validate:"required,min=1,dive,required"`
}
