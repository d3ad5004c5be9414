package domain

import "errors"

// Error taxonomy for inventory operations. Callers match with errors.Is;
// every returned error wraps exactly one of these.
var (
	ErrDuplicateProduct   = errors.New("duplicate product")
	ErrOutOfStock         = errors.New("out of stock")
	ErrInvalidProductData = errors.New("invalid product data")

	// ErrUnknownProductType marks a record whose type tag is not recognized.
	// Loading skips such records instead of failing.
	ErrUnknownProductType = errors.New("unknown product type")
)

// IsInventoryError reports whether err belongs to the inventory taxonomy.
func IsInventoryError(err error) bool {
	return errors.Is(err, ErrDuplicateProduct) ||
		errors.Is(err, ErrOutOfStock) ||
		errors.Is(err, ErrInvalidProductData) ||
		errors.Is(err, ErrUnknownProductType)
}

func isUnknownType(err error) bool { return errors.Is(err, ErrUnknownProductType) }
