package enums

import "fmt"

// OrderStatus tracks an order through its lifecycle.
type OrderStatus string

const (
	OrderStatusInit             OrderStatus = "INIT"
	OrderStatusCanceled         OrderStatus = "CANCELED"
	OrderStatusPaymentCompleted OrderStatus = "PAYMENT_COMPLETED"
	OrderStatusPaymentFailed    OrderStatus = "PAYMENT_FAILED"
	OrderStatusReceived         OrderStatus = "RECEIVED"
	OrderStatusCompleted        OrderStatus = "COMPLETED"
)

var validOrderStatuses = []OrderStatus{
	OrderStatusInit,
	OrderStatusCanceled,
	OrderStatusPaymentCompleted,
	OrderStatusPaymentFailed,
	OrderStatusReceived,
	OrderStatusCompleted,
}

// String implements fmt.Stringer.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known OrderStatus.
func (s OrderStatus) IsValid() bool {
	for _, candidate := range validOrderStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseOrderStatus converts raw input into an OrderStatus.
func ParseOrderStatus(value string) (OrderStatus, error) {
	for _, candidate := range validOrderStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid order status %q", value)
}
