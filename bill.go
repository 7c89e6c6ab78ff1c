package inventory

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// BillDate is the date stamped on a bill. It is kept verbatim: no calendar
// validation or normalization is applied.
type BillDate struct {
	Day, Month, Year int
}

// Today returns the current date as a BillDate.
func Today() BillDate {
	y, m, d := time.Now().Date()
	return BillDate{Day: d, Month: int(m), Year: y}
}

// String formats the date as d/m/y.
func (d BillDate) String() string { return fmt.Sprintf("%d/%d/%d", d.Day, d.Month, d.Year) }

// ParseBillDate parses "dd mm yyyy" or "d/m/y". Any integer is accepted for
// each field.
func ParseBillDate(s string) (BillDate, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == '/' || r == ' ' || r == '\t'
	})
	if len(fields) != 3 {
		return BillDate{}, fmt.Errorf("invalid date %q want format \"dd mm yyyy\"", s)
	}
	var vals [3]int
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return BillDate{}, fmt.Errorf("invalid date %q: %w", s, err)
		}
		vals[i] = v
	}
	return BillDate{Day: vals[0], Month: vals[1], Year: vals[2]}, nil
}

// BillLine is one product of a bill with its line total.
type BillLine struct {
	Product
	LineTotal Price `json:"lineTotal"`
}

// Bill is a snapshot of the whole ledger stamped with a date.
type Bill struct {
	Number uuid.UUID  `json:"number"`
	Date   BillDate   `json:"date"`
	Lines  []BillLine `json:"lines"`
	Total  Price      `json:"total"`
}

// IsEmpty reports whether the bill has no lines.
func (b *Bill) IsEmpty() bool { return len(b.Lines) == 0 }

// Bill returns every product in head-first order with its line total, stamped
// with on. The total equals TotalSales.
func (l *Ledger) Bill(on BillDate) *Bill {
	b := &Bill{
		Number: uuid.New(),
		Date:   on,
		Lines:  make([]BillLine, 0, len(l.products)),
		Total:  P(0),
	}
	for p := range l.Products() {
		line := BillLine{Product: p, LineTotal: p.LineTotal()}
		b.Lines = append(b.Lines, line)
		b.Total = b.Total.Add(line.LineTotal)
	}
	return b
}
