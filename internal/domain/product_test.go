package domain_test

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdidvp/stockroom/internal/domain"
)

func electronic(t *testing.T, id, name string, price int64, qty int) *domain.Product {
	t.Helper()
	p, err := domain.NewProduct(id, name, decimal.NewFromInt(price), qty,
		domain.Electronic{Brand: "Acme", WarrantyYears: 2})
	require.NoError(t, err)
	return p
}

func grocery(t *testing.T, id, name, expiry string) *domain.Product {
	t.Helper()
	date, err := domain.ParseDate(expiry)
	require.NoError(t, err)
	p, err := domain.NewProduct(id, name, decimal.RequireFromString("1.25"), 10, domain.Grocery{ExpiryDate: date})
	require.NoError(t, err)
	return p
}

func clothing(t *testing.T, id, name string) *domain.Product {
	t.Helper()
	p, err := domain.NewProduct(id, name, decimal.NewFromInt(25), 4, domain.Clothing{Size: "M", Material: "cotton"})
	require.NoError(t, err)
	return p
}

func TestProduct_TotalValue(t *testing.T) {
	tests := []struct {
		price string
		qty   int
		want  string
	}{
		{"10", 2, "20"},
		{"0", 7, "0"},
		{"19.99", 3, "59.97"},
		{"5", 0, "0"},
		{"0.1", 3, "0.3"},
	}
	for _, tt := range tests {
		p, err := domain.NewProduct("X", "thing", decimal.RequireFromString(tt.price), tt.qty, domain.Clothing{})
		require.NoError(t, err)
		assert.True(t, p.TotalValue().Equal(decimal.RequireFromString(tt.want)),
			"%s x %d = %s, got %s", tt.price, tt.qty, tt.want, p.TotalValue())
	}
}

func TestNewProduct_RejectsInvalidData(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		price   decimal.Decimal
		qty     int
		variant domain.Variant
	}{
		{"empty id", "", decimal.NewFromInt(1), 1, domain.Clothing{}},
		{"negative price", "A", decimal.NewFromInt(-1), 1, domain.Clothing{}},
		{"tiny negative price", "A", decimal.RequireFromString("-1e-400"), 1, domain.Clothing{}},
		{"negative quantity", "A", decimal.NewFromInt(1), -1, domain.Clothing{}},
		{"negative warranty", "A", decimal.NewFromInt(1), 1, domain.Electronic{WarrantyYears: -2}},
		{"no variant", "A", decimal.NewFromInt(1), 1, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NewProduct(tt.id, "n", tt.price, tt.qty, tt.variant)
			assert.ErrorIs(t, err, domain.ErrInvalidProductData)
		})
	}
}

func TestProduct_Sell(t *testing.T) {
	t.Run("decrements stock", func(t *testing.T) {
		p := electronic(t, "E1", "Phone", 200, 5)
		require.NoError(t, p.Sell(3))
		assert.Equal(t, 2, p.Quantity)
		require.NoError(t, p.Sell(2))
		assert.Equal(t, 0, p.Quantity)
	})

	t.Run("over stock leaves stock unchanged", func(t *testing.T) {
		p := electronic(t, "E1", "Phone", 200, 5)
		err := p.Sell(6)
		assert.ErrorIs(t, err, domain.ErrOutOfStock)
		assert.Equal(t, 5, p.Quantity)
	})

	t.Run("non-positive quantity rejected", func(t *testing.T) {
		p := electronic(t, "E1", "Phone", 200, 5)
		assert.ErrorIs(t, p.Sell(0), domain.ErrInvalidProductData)
		assert.ErrorIs(t, p.Sell(-1), domain.ErrInvalidProductData)
		assert.Equal(t, 5, p.Quantity)
	})
}

func TestProduct_RestockIsAdditive(t *testing.T) {
	p := clothing(t, "C1", "Shirt")
	require.NoError(t, p.Restock(6))
	require.NoError(t, p.Restock(6))
	assert.Equal(t, 4+12, p.Quantity)

	require.NoError(t, p.Restock(0))
	assert.Equal(t, 16, p.Quantity)

	assert.ErrorIs(t, p.Restock(-1), domain.ErrInvalidProductData)
	assert.Equal(t, 16, p.Quantity)
}

func TestProduct_RestockRejectsOverflow(t *testing.T) {
	p, err := domain.NewProduct("C1", "Socks", decimal.NewFromInt(1), math.MaxInt-1, domain.Clothing{})
	require.NoError(t, err)

	assert.ErrorIs(t, p.Restock(10), domain.ErrInvalidProductData)
	assert.Equal(t, math.MaxInt-1, p.Quantity)

	require.NoError(t, p.Restock(1))
	assert.Equal(t, math.MaxInt, p.Quantity)
}

func TestNewProduct_GroceryExpiryIsCalendarDate(t *testing.T) {
	afternoon := time.Date(2030, 1, 2, 15, 30, 0, 0, time.UTC)
	p, err := domain.NewProduct("G1", "Milk", decimal.NewFromInt(1), 1, domain.Grocery{ExpiryDate: afternoon})
	require.NoError(t, err)

	midnight := time.Date(2030, 1, 2, 0, 0, 0, 0, time.Local)
	assert.True(t, p.Variant.(domain.Grocery).ExpiryDate.Equal(midnight))
	assert.True(t, p.IsExpired(midnight), "expired from the start of its date")
	assert.False(t, p.IsExpired(midnight.Add(-time.Second)))
}

func TestProduct_IsExpired(t *testing.T) {
	g := grocery(t, "G1", "Milk", "10/01/2026")
	expiry := time.Date(2026, 1, 10, 0, 0, 0, 0, time.Local)

	assert.False(t, g.IsExpired(expiry.Add(-time.Second)))
	assert.True(t, g.IsExpired(expiry), "expired exactly at the expiry instant")
	assert.True(t, g.IsExpired(expiry.AddDate(0, 0, 3)))

	e := electronic(t, "E1", "Phone", 200, 1)
	assert.False(t, e.IsExpired(expiry.AddDate(100, 0, 0)))
}

func TestProduct_DescribeIncludesEveryField(t *testing.T) {
	e := electronic(t, "E1", "Phone", 200, 5)
	d := e.Describe()
	assert.Contains(t, d, "(Electronic)")
	assert.Contains(t, d, "ID: E1")
	assert.Contains(t, d, "Name: Phone")
	assert.Contains(t, d, "Price: 200.00")
	assert.Contains(t, d, "Quantity In Stock: 5")
	assert.Contains(t, d, "Brand: Acme")
	assert.Contains(t, d, "Warranty Years: 2")

	g := grocery(t, "G1", "Milk", "31/12/2026")
	assert.Contains(t, g.Describe(), "(Grocery)")
	assert.Contains(t, g.Describe(), "Expiry Date: 31/12/2026")

	c := clothing(t, "C1", "Shirt")
	assert.Contains(t, c.Describe(), "Size: M")
	assert.Contains(t, c.Describe(), "Material: cotton")
	assert.NotContains(t, c.Describe(), "\n")
}

func TestParseKind(t *testing.T) {
	for _, in := range []string{"electronic", "ELECTRONIC", " Electronic "} {
		k, err := domain.ParseKind(in)
		require.NoError(t, err)
		assert.Equal(t, domain.KindElectronic, k)
	}

	_, err := domain.ParseKind("furniture")
	assert.ErrorIs(t, err, domain.ErrUnknownProductType)
}

func TestParseDate(t *testing.T) {
	d, err := domain.ParseDate("29/02/2028")
	require.NoError(t, err)
	assert.Equal(t, 2028, d.Year())
	assert.Equal(t, time.February, d.Month())

	for _, bad := range []string{"2026-01-10", "31/02/2026", "10/13/2026", ""} {
		_, err := domain.ParseDate(bad)
		assert.ErrorIs(t, err, domain.ErrInvalidProductData, bad)
	}
}

func TestProduct_Equal(t *testing.T) {
	a := electronic(t, "E1", "Phone", 200, 5)
	b := electronic(t, "E1", "Phone", 200, 5)
	assert.True(t, a.Equal(b))

	b.Name = "Tablet"
	assert.False(t, a.Equal(b))

	assert.False(t, a.Equal(clothing(t, "E1", "Phone")))
}
