package enums

import "fmt"

// ProductType classifies how a product is produced and whether its
// inventory is tracked.
type ProductType string

const (
	// ProductTypeHandmade items are prepared on demand and carry no stock.
	ProductTypeHandmade ProductType = "HANDMADE"
	ProductTypeBottle   ProductType = "BOTTLE"
	ProductTypeBakery   ProductType = "BAKERY"
)

var validProductTypes = []ProductType{
	ProductTypeHandmade,
	ProductTypeBottle,
	ProductTypeBakery,
}

var stockTrackedProductTypes = []ProductType{
	ProductTypeBottle,
	ProductTypeBakery,
}

// String implements fmt.Stringer.
func (p ProductType) String() string {
	return string(p)
}

// IsValid reports whether the value is a known ProductType.
func (p ProductType) IsValid() bool {
	for _, candidate := range validProductTypes {
		if candidate == p {
			return true
		}
	}
	return false
}

// IsStockTracked reports whether products of this type deplete stock
// when ordered.
func (p ProductType) IsStockTracked() bool {
	for _, candidate := range stockTrackedProductTypes {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParseProductType converts raw input into a ProductType.
func ParseProductType(value string) (ProductType, error) {
	for _, candidate := range validProductTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product type %q", value)
}
