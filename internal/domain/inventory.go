package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
)

// Inventory owns a set of products keyed by ID. Iteration follows insertion
// order. It is not safe for concurrent use.
type Inventory struct {
	products map[string]*Product
	order    []string
	now      func() time.Time
}

// Option configures an Inventory.
type Option func(*Inventory)

// WithClock replaces time.Now as the reference for expiry checks.
func WithClock(now func() time.Time) Option {
	return func(inv *Inventory) { inv.now = now }
}

func NewInventory(opts ...Option) *Inventory {
	inv := &Inventory{
		products: make(map[string]*Product),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(inv)
	}
	return inv
}

func (inv *Inventory) Len() int { return len(inv.order) }

// Add inserts p. An ID already present fails with ErrDuplicateProduct and
// leaves the existing entry untouched.
func (inv *Inventory) Add(p *Product) error {
	if _, ok := inv.products[p.ID()]; ok {
		return fmt.Errorf("%w: product ID %q already exists", ErrDuplicateProduct, p.ID())
	}
	inv.products[p.ID()] = p
	inv.order = append(inv.order, p.ID())
	return nil
}

// Get returns the product stored under id.
func (inv *Inventory) Get(id string) (*Product, error) {
	p, ok := inv.products[id]
	if !ok {
		return nil, notFound(id)
	}
	return p, nil
}

func (inv *Inventory) Remove(id string) error {
	if _, ok := inv.products[id]; !ok {
		return notFound(id)
	}
	delete(inv.products, id)
	for i, pid := range inv.order {
		if pid == id {
			inv.order = append(inv.order[:i], inv.order[i+1:]...)
			break
		}
	}
	return nil
}

func (inv *Inventory) Sell(id string, quantity int) error {
	p, err := inv.Get(id)
	if err != nil {
		return err
	}
	return p.Sell(quantity)
}

func (inv *Inventory) Restock(id string, quantity int) error {
	p, err := inv.Get(id)
	if err != nil {
		return err
	}
	return p.Restock(quantity)
}

// List returns every product in insertion order.
func (inv *Inventory) List() []*Product {
	out := make([]*Product, 0, len(inv.order))
	for _, id := range inv.order {
		out = append(out, inv.products[id])
	}
	return out
}

// SearchByName returns products whose name contains sub, compared with
// Unicode case folding.
func (inv *Inventory) SearchByName(sub string) []*Product {
	fold := cases.Fold()
	needle := fold.String(sub)
	return inv.filter(func(p *Product) bool {
		return strings.Contains(fold.String(p.Name), needle)
	})
}

// SearchByType returns products whose kind matches tag, ignoring case.
func (inv *Inventory) SearchByType(tag string) []*Product {
	tag = strings.TrimSpace(tag)
	return inv.filter(func(p *Product) bool {
		return strings.EqualFold(string(p.Kind()), tag)
	})
}

// TotalValue sums TotalValue over all products.
func (inv *Inventory) TotalValue() decimal.Decimal {
	total := decimal.Zero
	for _, id := range inv.order {
		total = total.Add(inv.products[id].TotalValue())
	}
	return total
}

// RemoveExpired drops every grocery that is expired at the inventory's
// current time and returns the removed products. Removal is permanent.
func (inv *Inventory) RemoveExpired() []*Product {
	now := inv.now()
	expired := inv.filter(func(p *Product) bool { return p.IsExpired(now) })
	for _, p := range expired {
		_ = inv.Remove(p.ID())
	}
	return expired
}

// Records flattens every product for persistence.
func (inv *Inventory) Records() []Record {
	out := make([]Record, 0, len(inv.order))
	for _, id := range inv.order {
		out = append(out, inv.products[id].ToRecord())
	}
	return out
}

// LoadRecords rebuilds products from records and adds them all. Records with
// an unknown type are skipped and counted. The batch is checked as a whole
// before anything is added: an invalid record or a duplicate ID, whether
// against the collection or within the batch, fails the load with nothing
// changed.
func (inv *Inventory) LoadRecords(records []Record) (skipped int, err error) {
	batch := make([]*Product, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for _, r := range records {
		p, err := FromRecord(r)
		if err != nil {
			if isUnknownType(err) {
				skipped++
				continue
			}
			return 0, err
		}
		if _, ok := inv.products[p.ID()]; ok {
			return 0, fmt.Errorf("%w: product ID %q already exists", ErrDuplicateProduct, p.ID())
		}
		if _, ok := seen[p.ID()]; ok {
			return 0, fmt.Errorf("%w: product ID %q appears more than once", ErrDuplicateProduct, p.ID())
		}
		seen[p.ID()] = struct{}{}
		batch = append(batch, p)
	}
	for _, p := range batch {
		inv.products[p.ID()] = p
		inv.order = append(inv.order, p.ID())
	}
	return skipped, nil
}

func (inv *Inventory) filter(keep func(*Product) bool) []*Product {
	var out []*Product
	for _, id := range inv.order {
		if p := inv.products[id]; keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func notFound(id string) error {
	return fmt.Errorf("%w: product ID %q not found", ErrInvalidProductData, id)
}
