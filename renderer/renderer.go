// Package renderer renders inventory data as markdown.
package renderer

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/inventory"
)

// EmptyInventory is printed instead of an empty table.
const EmptyInventory = "Inventory is empty.\n"

// markdownRenderer accumulates markdown in a buffer.
type markdownRenderer struct {
	*strings.Builder
	currency string
}

func newRenderer(currency string) *markdownRenderer {
	if currency == "" {
		currency = inventory.DefaultCurrency
	}
	return &markdownRenderer{Builder: &strings.Builder{}, currency: currency}
}

// Printf formats according to a format specifier and writes to the renderer's buffer.
func (r *markdownRenderer) Printf(format string, args ...any) {
	fmt.Fprintf(r, format, args...)
}

func (r *markdownRenderer) price(p inventory.Price) string { return p.StringIn(r.currency) }

// productTable writes products as a table, or nothing at all when there are none.
func (r *markdownRenderer) productTable(products []inventory.Product) bool {
	table := Header(func(w io.Writer) {
		fmt.Fprintf(w, "| ID | Name | Price | Quantity |\n")
		fmt.Fprintf(w, "|---:|:---|---:|---:|\n")
	}).Footer(func(w io.Writer) {
		fmt.Fprintf(w, "\n")
	})
	for _, p := range products {
		table.PrintHeader(r)
		r.Printf("| %d | %s | %s | %d |\n", p.ID, cell(p.Name), r.price(p.Price), p.Quantity)
	}
	table.PrintFooter(r)
	return table.Printed()
}

// Products renders the list of products, head-first, as a markdown table.
func Products(products []inventory.Product, currency string) string {
	r := newRenderer(currency)
	if !r.productTable(products) {
		return EmptyInventory
	}
	return r.String()
}

// Product renders a single product.
func Product(p inventory.Product, currency string) string {
	r := newRenderer(currency)
	r.Printf("Product found:\n\n")
	r.productTable([]inventory.Product{p})
	return r.String()
}

// Bill renders a bill with its date, lines and total.
func Bill(b *inventory.Bill, currency string) string {
	if b.IsEmpty() {
		return EmptyInventory
	}
	r := newRenderer(currency)
	r.Printf("## Bill %s\n\n", b.Number)
	r.Printf("Bill generated on %s\n\n", b.Date)
	r.Printf("| ID | Name | Price | Quantity | Total |\n")
	r.Printf("|---:|:---|---:|---:|---:|\n")
	for _, line := range b.Lines {
		r.Printf("| %d | %s | %s | %d | %s |\n", line.ID, cell(line.Name), r.price(line.Price), line.Quantity, r.price(line.LineTotal))
	}
	r.Printf("| | **Total** | | | **%s** |\n\n", r.price(b.Total))
	return r.String()
}

// TotalSales renders the total sales value.
func TotalSales(total inventory.Price, currency string) string {
	r := newRenderer(currency)
	r.Printf("Total Sales: %s\n", r.price(total))
	return r.String()
}

// Value renders the result of a query: JSON-like values are printed one per
// line, scalars as is.
func Value(v any) string {
	r := newRenderer("")
	switch t := v.(type) {
	case []any:
		for _, item := range t {
			r.Printf("- %s\n", scalar(item))
		}
	default:
		r.Printf("%s\n", scalar(t))
	}
	return r.String()
}

func scalar(v any) string {
	switch t := v.(type) {
	case float64:
		return fmt.Sprintf("%v", t)
	case string:
		return t
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprintf("%v", t)
		}
		return string(b)
	}
}
