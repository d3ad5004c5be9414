package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// RawProduct holds product fields as text, the way a user types them.
// Only the fields of the chosen kind are read.
type RawProduct struct {
	Kind          string
	ID            string
	Name          string
	Price         string
	Quantity      string
	Brand         string
	WarrantyYears string
	ExpiryDate    string
	Size          string
	Material      string
}

// ParseProduct coerces raw text into a validated product. Numbers and dates
// that do not parse fail with ErrInvalidProductData.
func ParseProduct(raw RawProduct) (*Product, error) {
	kind, err := ParseKind(raw.Kind)
	if err != nil {
		return nil, err
	}
	price, err := ParsePrice(raw.Price)
	if err != nil {
		return nil, err
	}
	qty, err := ParseQuantity(raw.Quantity)
	if err != nil {
		return nil, err
	}

	var v Variant
	switch kind {
	case KindElectronic:
		warranty, err := parseInt("warranty years", raw.WarrantyYears)
		if err != nil {
			return nil, err
		}
		v = Electronic{Brand: raw.Brand, WarrantyYears: warranty}
	case KindGrocery:
		expiry, err := ParseDate(raw.ExpiryDate)
		if err != nil {
			return nil, err
		}
		v = Grocery{ExpiryDate: expiry}
	case KindClothing:
		v = Clothing{Size: raw.Size, Material: raw.Material}
	}
	return NewProduct(strings.TrimSpace(raw.ID), raw.Name, price, qty, v)
}

// ParsePrice parses a decimal price.
func ParsePrice(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: price %q is not a number", ErrInvalidProductData, s)
	}
	return d, nil
}

// ParseQuantity parses a stock quantity.
func ParseQuantity(s string) (int, error) {
	return parseInt("quantity", s)
}

func parseInt(what, s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an integer", ErrInvalidProductData, what, s)
	}
	return n, nil
}
