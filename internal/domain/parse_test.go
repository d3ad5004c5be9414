package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdidvp/stockroom/internal/domain"
)

func TestParseProduct(t *testing.T) {
	p, err := domain.ParseProduct(domain.RawProduct{
		Kind: "electronic", ID: " E1 ", Name: "Phone",
		Price: "199.99", Quantity: "5", Brand: "Acme", WarrantyYears: "2",
	})
	require.NoError(t, err)
	assert.Equal(t, "E1", p.ID())
	assert.True(t, p.Price.Equal(decimal.RequireFromString("199.99")))
	assert.Equal(t, domain.Electronic{Brand: "Acme", WarrantyYears: 2}, p.Variant)

	g, err := domain.ParseProduct(domain.RawProduct{
		Kind: "Grocery", ID: "G1", Name: "Milk", Price: "1", Quantity: "3", ExpiryDate: "15/06/2026",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.KindGrocery, g.Kind())
}

func TestParseProduct_InvalidInput(t *testing.T) {
	base := domain.RawProduct{Kind: "Clothing", ID: "C1", Name: "Shirt", Price: "10", Quantity: "1"}

	tests := []struct {
		name   string
		mutate func(*domain.RawProduct)
		want   error
	}{
		{"price not a number", func(r *domain.RawProduct) { r.Price = "ten" }, domain.ErrInvalidProductData},
		{"quantity not an integer", func(r *domain.RawProduct) { r.Quantity = "1.5" }, domain.ErrInvalidProductData},
		{"negative quantity", func(r *domain.RawProduct) { r.Quantity = "-1" }, domain.ErrInvalidProductData},
		{"bad warranty", func(r *domain.RawProduct) { r.Kind = "Electronic"; r.WarrantyYears = "two" }, domain.ErrInvalidProductData},
		{"bad expiry", func(r *domain.RawProduct) { r.Kind = "Grocery"; r.ExpiryDate = "2026-06-15" }, domain.ErrInvalidProductData},
		{"unknown kind", func(r *domain.RawProduct) { r.Kind = "Toy" }, domain.ErrUnknownProductType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := base
			tt.mutate(&raw)
			_, err := domain.ParseProduct(raw)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
