package inventory

import (
	"fmt"
	"iter"
	"slices"
)

// Ledger is the ordered collection of products of a shop.
//
// In a Ledger the most recently added product comes first. Every iteration,
// listing, bill and snapshot follows that head-first order. Lookups by id are
// linear scans from the head, so when ids are duplicated the most recently
// added matching product wins.
type Ledger struct {
	// products are stored oldest first: the head is the last element.
	products []Product
	capacity int    // maximum number of products, 0 for unbounded
	currency string // rounding currency for totals
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithCapacity bounds the number of products the ledger can store.
// Zero or negative means unbounded.
func WithCapacity(n int) Option {
	return func(l *Ledger) {
		if n < 0 {
			n = 0
		}
		l.capacity = n
	}
}

// WithCurrency sets the currency used to round unit prices and totals.
func WithCurrency(code string) Option {
	return func(l *Ledger) { l.currency = code }
}

// NewLedger creates an empty ledger.
func NewLedger(opts ...Option) *Ledger {
	l := &Ledger{
		products: make([]Product, 0),
		currency: DefaultCurrency,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Currency returns the currency used to round totals.
func (l *Ledger) Currency() string { return l.currency }

// Len returns the number of products.
func (l *Ledger) Len() int { return len(l.products) }

// Add inserts p as the new head of the ledger. Duplicate ids are accepted.
// The unit price is rounded to cents. It returns ErrAllocation when the ledger
// is full, and the ledger is unchanged.
func (l *Ledger) Add(p Product) error {
	if l.capacity > 0 && len(l.products) >= l.capacity {
		return fmt.Errorf("cannot add product %d: %w (capacity %d)", p.ID, ErrAllocation, l.capacity)
	}
	p.Price = l.unitPrice(p.Price)
	l.products = append(l.products, p)
	return nil
}

// unitPrice rounds a unit price to the decimals a snapshot keeps, fewer for
// currencies without minor units. Stored prices then survive a backup.
func (l *Ledger) unitPrice(p Price) Price {
	return Price{value: p.value.Round(int32(min(Fraction(l.currency), priceDecimals)))}
}

// Products returns an iterator over products in head-first order.
func (l *Ledger) Products() iter.Seq[Product] {
	return func(yield func(Product) bool) {
		for i := len(l.products) - 1; i >= 0; i-- {
			if !yield(l.products[i]) {
				return
			}
		}
	}
}

// List returns a copy of all products in head-first order.
// An empty ledger returns an empty, non-nil slice.
func (l *Ledger) List() []Product {
	list := make([]Product, 0, len(l.products))
	for p := range l.Products() {
		list = append(list, p)
	}
	return list
}

// index returns the storage index of the first product with that id in
// head-first order, or -1.
func (l *Ledger) index(id int) int {
	for i := len(l.products) - 1; i >= 0; i-- {
		if l.products[i].ID == id {
			return i
		}
	}
	return -1
}

// Find returns the first product with that id.
func (l *Ledger) Find(id int) (Product, error) {
	i := l.index(id)
	if i < 0 {
		return Product{}, fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	return l.products[i], nil
}

// Delete removes the first product with that id and returns it.
func (l *Ledger) Delete(id int) (Product, error) {
	i := l.index(id)
	if i < 0 {
		return Product{}, fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	removed := l.products[i]
	l.products = slices.Delete(l.products, i, i+1)
	return removed, nil
}

// Update overwrites name, price and quantity of the first product with that id.
// The id itself never changes.
func (l *Ledger) Update(id int, name string, price Price, quantity int) error {
	i := l.index(id)
	if i < 0 {
		return fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	l.products[i].Name = name
	l.products[i].Price = l.unitPrice(price)
	l.products[i].Quantity = quantity
	return nil
}

// TotalSales returns the sum of price * quantity over all products.
// Negative prices or quantities contribute negatively.
func (l *Ledger) TotalSales() Price {
	total := P(0)
	for _, p := range l.products {
		total = total.Add(p.LineTotal())
	}
	return total
}

// Restore replaces the whole content of the ledger with products, given in
// snapshot order. Each product is inserted as the new head, so the first
// product of the snapshot ends up last.
// It returns ErrAllocation, leaving the ledger unchanged, when products do not fit.
func (l *Ledger) Restore(products []Product) error {
	if l.capacity > 0 && len(products) > l.capacity {
		return fmt.Errorf("cannot restore %d products: %w (capacity %d)", len(products), ErrAllocation, l.capacity)
	}
	l.products = make([]Product, 0, len(products))
	for _, p := range products {
		p.Price = l.unitPrice(p.Price)
		l.products = append(l.products, p)
	}
	return nil
}

// LossyNames returns the products that the legacy snapshot format cannot round-trip.
func (l *Ledger) LossyNames() []Product {
	var lossy []Product
	for p := range l.Products() {
		if p.LegacyLossy() {
			lossy = append(lossy, p)
		}
	}
	return lossy
}
