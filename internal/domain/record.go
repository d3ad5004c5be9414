package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Record is the flat, type-tagged form of a product used for persistence.
// Variant fields are pointers so a record carries exactly the fields of its
// own kind, including zero values.
type Record struct {
	Type          string          `json:"type"                     validate:"required"`
	ProductID     string          `json:"productID"                validate:"required"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"                    validate:"decimal_gte0"`
	Quantity      int             `json:"quantity_in_stock"        validate:"gte=0"`
	Brand         *string         `json:"brand,omitempty"`
	WarrantyYears *int            `json:"warranty_years,omitempty" validate:"omitempty,gte=0"`
	ExpiryDate    *string         `json:"expiry_date,omitempty"`
	Size          *string         `json:"size,omitempty"`
	Material      *string         `json:"material,omitempty"`
}

// MarshalJSON writes price as a JSON number rather than decimal's quoted default.
func (r Record) MarshalJSON() ([]byte, error) {
	type plain Record
	return json.Marshal(struct {
		plain
		Price json.Number `json:"price"`
	}{plain: plain(r), Price: json.Number(r.Price.String())})
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("decimal_gte0", func(fl validator.FieldLevel) bool {
		d, ok := fl.Field().Interface().(decimal.Decimal)
		return ok && d.Sign() >= 0
	})
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateRecord checks the common constraints of a record and maps
// validator failures onto ErrInvalidProductData.
func validateRecord(r Record) error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidProductData, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fe.Field()+" is required")
		case "gte":
			msgs = append(msgs, fmt.Sprintf("%s must be >= %s", fe.Field(), fe.Param()))
		case "decimal_gte0":
			msgs = append(msgs, fe.Field()+" must be >= 0")
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
	}
	return fmt.Errorf("%w: product %q: %s", ErrInvalidProductData, r.ProductID, strings.Join(msgs, "; "))
}

// ToRecord flattens the product into its persisted form.
func (p *Product) ToRecord() Record {
	r := Record{
		Type:      string(p.Kind()),
		ProductID: p.id,
		Name:      p.Name,
		Price:     p.Price,
		Quantity:  p.Quantity,
	}
	switch v := p.Variant.(type) {
	case Electronic:
		r.Brand = ptr(v.Brand)
		r.WarrantyYears = ptr(v.WarrantyYears)
	case Grocery:
		r.ExpiryDate = ptr(v.ExpiryDate.Format(DateLayout))
	case Clothing:
		r.Size = ptr(v.Size)
		r.Material = ptr(v.Material)
	}
	return r
}

// FromRecord rebuilds a product from its persisted form. A record whose type
// tag is not recognized fails with ErrUnknownProductType; any other problem
// fails with ErrInvalidProductData.
func FromRecord(r Record) (*Product, error) {
	var v Variant
	switch Kind(r.Type) {
	case KindElectronic:
		if r.WarrantyYears == nil {
			return nil, missingField(r, "warranty_years")
		}
		v = Electronic{Brand: deref(r.Brand), WarrantyYears: *r.WarrantyYears}
	case KindGrocery:
		if r.ExpiryDate == nil {
			return nil, missingField(r, "expiry_date")
		}
		expiry, err := ParseDate(*r.ExpiryDate)
		if err != nil {
			return nil, err
		}
		v = Grocery{ExpiryDate: expiry}
	case KindClothing:
		v = Clothing{Size: deref(r.Size), Material: deref(r.Material)}
	default:
		return nil, fmt.Errorf("%w: %q for product %q", ErrUnknownProductType, r.Type, r.ProductID)
	}
	return NewProduct(r.ProductID, r.Name, r.Price, r.Quantity, v)
}

func missingField(r Record, name string) error {
	return fmt.Errorf("%w: %s record %q is missing %s", ErrInvalidProductData, r.Type, r.ProductID, name)
}

func ptr[T any](v T) *T { return &v }

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
