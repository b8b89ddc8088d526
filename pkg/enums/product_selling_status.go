package enums

import "fmt"

// ProductSellingStatus tracks whether a product appears on the menu.
type ProductSellingStatus string

const (
	ProductSellingStatusSelling     ProductSellingStatus = "SELLING"
	ProductSellingStatusHold        ProductSellingStatus = "HOLD"
	ProductSellingStatusStopSelling ProductSellingStatus = "STOP_SELLING"
)

var validProductSellingStatuses = []ProductSellingStatus{
	ProductSellingStatusSelling,
	ProductSellingStatusHold,
	ProductSellingStatusStopSelling,
}

// String implements fmt.Stringer.
func (s ProductSellingStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known ProductSellingStatus.
func (s ProductSellingStatus) IsValid() bool {
	for _, candidate := range validProductSellingStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// DisplayStatuses lists the statuses shown on the customer-facing menu.
// HOLD products stay visible even though they cannot be ordered.
func DisplayStatuses() []ProductSellingStatus {
	return []ProductSellingStatus{
		ProductSellingStatusSelling,
		ProductSellingStatusHold,
	}
}

// ParseProductSellingStatus converts raw input into a ProductSellingStatus.
func ParseProductSellingStatus(value string) (ProductSellingStatus, error) {
	for _, candidate := range validProductSellingStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product selling status %q", value)
}
