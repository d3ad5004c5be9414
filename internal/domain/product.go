package domain

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/fatih/camelcase"
	"github.com/shopspring/decimal"
)

// Kind is the discriminator of a product variant.
type Kind string

const (
	KindElectronic Kind = "Electronic"
	KindGrocery    Kind = "Grocery"
	KindClothing   Kind = "Clothing"
)

// ValidKinds enumerates all recognized product kinds.
var ValidKinds = []Kind{KindElectronic, KindGrocery, KindClothing}

// ParseKind matches s against the known kinds, ignoring case and surrounding space.
func ParseKind(s string) (Kind, error) {
	s = strings.TrimSpace(s)
	for _, k := range ValidKinds {
		if strings.EqualFold(s, string(k)) {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q (valid: Electronic, Grocery, Clothing)", ErrUnknownProductType, s)
}

// DateLayout is the dd/mm/yyyy layout used for expiry dates everywhere.
const DateLayout = "02/01/2006"

// ParseDate parses a dd/mm/yyyy calendar date in local time.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: expiry date %q is not dd/mm/yyyy", ErrInvalidProductData, s)
	}
	return t, nil
}

// calendarDate drops the time of day, keeping the year, month and day as seen
// in t's own location, and returns local midnight of that date.
func calendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// Variant is the kind-specific payload of a Product. The set of
// implementations is closed: Electronic, Grocery and Clothing.
type Variant interface {
	Kind() Kind
	sealed()
}

type Electronic struct {
	Brand         string
	WarrantyYears int
}

type Grocery struct {
	ExpiryDate time.Time
}

type Clothing struct {
	Size     string
	Material string
}

func (Electronic) Kind() Kind { return KindElectronic }
func (Grocery) Kind() Kind    { return KindGrocery }
func (Clothing) Kind() Kind   { return KindClothing }

func (Electronic) sealed() {}
func (Grocery) sealed()    {}
func (Clothing) sealed()   {}

// Product is a sellable item. The ID is fixed at construction; name, price
// and stock may change, but stock never drops below zero.
type Product struct {
	id       string
	Name     string
	Price    decimal.Decimal
	Quantity int
	Variant  Variant
}

// NewProduct builds a fully populated product and validates it.
func NewProduct(id, name string, price decimal.Decimal, quantity int, v Variant) (*Product, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: product %q has no variant", ErrInvalidProductData, id)
	}
	if g, ok := v.(Grocery); ok {
		v = Grocery{ExpiryDate: calendarDate(g.ExpiryDate)}
	}
	p := &Product{id: id, Name: name, Price: price, Quantity: quantity, Variant: v}
	if err := validateRecord(p.ToRecord()); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Product) ID() string { return p.id }

func (p *Product) Kind() Kind { return p.Variant.Kind() }

// Sell removes quantity units from stock. The stock is left untouched on error.
func (p *Product) Sell(quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: sell quantity must be positive, got %d", ErrInvalidProductData, quantity)
	}
	if quantity > p.Quantity {
		return fmt.Errorf("%w: requested %d of %q, %d available", ErrOutOfStock, quantity, p.id, p.Quantity)
	}
	p.Quantity -= quantity
	return nil
}

// Restock adds quantity units to stock.
func (p *Product) Restock(quantity int) error {
	if quantity < 0 {
		return fmt.Errorf("%w: restock quantity must not be negative, got %d", ErrInvalidProductData, quantity)
	}
	if quantity > math.MaxInt-p.Quantity {
		return fmt.Errorf("%w: restocking %d of %q would overflow stock of %d", ErrInvalidProductData, quantity, p.id, p.Quantity)
	}
	p.Quantity += quantity
	return nil
}

// TotalValue is price times quantity in stock.
func (p *Product) TotalValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

// IsExpired reports whether a grocery is at or past its expiry date at now.
// Other kinds never expire.
func (p *Product) IsExpired(now time.Time) bool {
	g, ok := p.Variant.(Grocery)
	if !ok {
		return false
	}
	return !now.Before(g.ExpiryDate)
}

// Equal compares every field, treating prices numerically.
func (p *Product) Equal(o *Product) bool {
	if p == nil || o == nil {
		return p == o
	}
	if p.id != o.id || p.Name != o.Name || p.Quantity != o.Quantity || !p.Price.Equal(o.Price) {
		return false
	}
	switch a := p.Variant.(type) {
	case Grocery:
		b, ok := o.Variant.(Grocery)
		return ok && a.ExpiryDate.Equal(b.ExpiryDate)
	default:
		return p.Variant == o.Variant
	}
}

// Field is one labelled value of a product rendering.
type Field struct {
	Label string
	Value string
}

// Fields lists every field of the product in display order, common fields first.
func (p *Product) Fields() []Field {
	fields := []Field{
		field("ID", p.id),
		field("Name", p.Name),
		field("Price", p.Price.StringFixed(2)),
		field("QuantityInStock", fmt.Sprintf("%d", p.Quantity)),
	}
	switch v := p.Variant.(type) {
	case Electronic:
		fields = append(fields,
			field("Brand", v.Brand),
			field("WarrantyYears", fmt.Sprintf("%d", v.WarrantyYears)),
		)
	case Grocery:
		fields = append(fields, field("ExpiryDate", v.ExpiryDate.Format(DateLayout)))
	case Clothing:
		fields = append(fields,
			field("Size", v.Size),
			field("Material", v.Material),
		)
	}
	return fields
}

// Describe renders the product on a single line, tagged with its kind.
func (p *Product) Describe() string {
	parts := make([]string, 0, 7)
	for _, f := range p.Fields() {
		parts = append(parts, f.Label+": "+f.Value)
	}
	return fmt.Sprintf("(%s) %s", p.Kind(), strings.Join(parts, ", "))
}

func (p *Product) String() string { return p.Describe() }

func field(key, value string) Field {
	return Field{Label: strings.Join(camelcase.Split(key), " "), Value: value}
}
