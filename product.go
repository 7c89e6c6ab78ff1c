package inventory

import (
	"strings"
	"unicode"
)

// MaxNameLength is the number of characters the console keeps from a product name.
const MaxNameLength = 99

// Product is one inventory line item.
type Product struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Price    Price  `json:"price"`
	Quantity int    `json:"quantity"`
}

// NewProduct returns a Product with the given fields.
func NewProduct(id int, name string, price Price, quantity int) Product {
	return Product{ID: id, Name: name, Price: price, Quantity: quantity}
}

// LineTotal returns price * quantity.
func (p Product) LineTotal() Price { return p.Price.Mul(p.Quantity) }

// Equal reports whether both products have the same fields.
func (p Product) Equal(q Product) bool {
	return p.ID == q.ID && p.Name == q.Name && p.Price.Equal(q.Price) && p.Quantity == q.Quantity
}

// LegacyLossy reports whether the name is empty or contains whitespace, which
// the legacy snapshot format cannot round-trip.
func (p Product) LegacyLossy() bool {
	return p.Name == "" || strings.IndexFunc(p.Name, unicode.IsSpace) >= 0
}

// TruncateName keeps at most MaxNameLength characters of name.
func TruncateName(name string) string {
	runes := []rune(name)
	if len(runes) <= MaxNameLength {
		return name
	}
	return string(runes[:MaxNameLength])
}
