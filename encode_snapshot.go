package inventory

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Format is a snapshot file format.
type Format int

const (
	// Legacy writes one "id name price quantity" line per product. Names
	// containing whitespace cannot be read back.
	Legacy Format = iota
	// JSONL writes one JSON object per product and line.
	JSONL
)

func (f Format) String() string {
	switch f {
	case Legacy:
		return "legacy"
	case JSONL:
		return "jsonl"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "legacy", "":
		return Legacy, nil
	case "jsonl":
		return JSONL, nil
	default:
		return 0, fmt.Errorf("unknown snapshot format: %q", s)
	}
}

// Snapshot is the decoded content of a snapshot, in file order.
type Snapshot struct {
	Format   Format
	Products []Product
	// Warning is a *MalformedError when decoding stopped early in lenient mode.
	Warning error
}

// EncodeProduct writes a single product followed by a newline.
func EncodeProduct(w io.Writer, p Product, format Format) error {
	var line []byte
	switch format {
	case Legacy:
		line = fmt.Appendf(nil, "%d %s %s %d\n", p.ID, p.Name, p.Price.String(), p.Quantity)
	case JSONL:
		var o jsonObjectWriter
		o.Append("id", p.ID).Append("name", p.Name).Append("price", p.Price).Append("quantity", p.Quantity)
		b, err := o.MarshalJSON()
		if err != nil {
			return fmt.Errorf("failed to marshal product %d: %w", p.ID, err)
		}
		line = append(b, '\n')
	default:
		return fmt.Errorf("unsupported snapshot format %v", format)
	}
	if _, err := w.Write(line); err != nil {
		return fmt.Errorf("failed to write product %d: %w", p.ID, err)
	}
	return nil
}

// EncodeSnapshot writes every product of the ledger, head-first, one per line.
func EncodeSnapshot(w io.Writer, l *Ledger, format Format) error {
	for p := range l.Products() {
		if err := EncodeProduct(w, p, format); err != nil {
			return err
		}
	}
	return nil
}

// DecodeSnapshot reads a snapshot. The format is detected from the first
// non-blank byte: '{' for JSONL, anything else for Legacy.
//
// Decoding stops at the first malformed record. In strict mode that record is
// returned as an error. Otherwise the products read so far are kept and the
// *MalformedError is reported in Snapshot.Warning.
func DecodeSnapshot(r io.Reader, strict bool) (*Snapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	s := &Snapshot{Format: Legacy, Products: make([]Product, 0)}
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '{' {
		s.Format = JSONL
	}

	var merr *MalformedError
	switch s.Format {
	case JSONL:
		s.Products, merr, err = decodeJSONL(data)
	default:
		s.Products, merr, err = decodeLegacy(data)
	}
	if err != nil {
		return nil, err
	}
	if merr != nil {
		if strict {
			return nil, merr
		}
		s.Warning = merr
	}
	return s, nil
}

// decodeLegacy reads records as a stream of whitespace-separated tokens, four
// per record, regardless of line breaks.
func decodeLegacy(data []byte) ([]Product, *MalformedError, error) {
	products := make([]Product, 0)
	tokens := bytes.Fields(data)
	for len(tokens) >= 4 {
		fields := tokens[:4]
		tokens = tokens[4:]
		p, err := parseLegacyRecord(fields)
		if err != nil {
			return products, &MalformedError{Record: len(products) + 1, Text: string(bytes.Join(fields, []byte(" "))), Err: err}, nil
		}
		products = append(products, p)
	}
	if len(tokens) > 0 {
		return products, &MalformedError{Record: len(products) + 1, Text: string(bytes.Join(tokens, []byte(" ")))}, nil
	}
	return products, nil, nil
}

func parseLegacyRecord(fields [][]byte) (Product, error) {
	id, err := strconv.Atoi(string(fields[0]))
	if err != nil {
		return Product{}, fmt.Errorf("invalid id: %w", err)
	}
	price, err := ParsePrice(string(fields[2]))
	if err != nil {
		return Product{}, err
	}
	quantity, err := strconv.Atoi(string(fields[3]))
	if err != nil {
		return Product{}, fmt.Errorf("invalid quantity: %w", err)
	}
	return NewProduct(id, string(fields[1]), price, quantity), nil
}

// jsonRecord is a JSONL line. Every key is required.
type jsonRecord struct {
	ID       *int    `json:"id"`
	Name     *string `json:"name"`
	Price    *Price  `json:"price"`
	Quantity *int    `json:"quantity"`
}

func decodeJSONL(data []byte) ([]Product, *MalformedError, error) {
	products := make([]Product, 0)
	for line := range bytes.Lines(data) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		p, err := parseJSONRecord(line)
		if err != nil {
			return products, &MalformedError{Record: len(products) + 1, Text: string(line), Err: err}, nil
		}
		products = append(products, p)
	}
	return products, nil, nil
}

func parseJSONRecord(line []byte) (Product, error) {
	dec := json.NewDecoder(bytes.NewReader(line))
	dec.DisallowUnknownFields()
	var r jsonRecord
	if err := dec.Decode(&r); err != nil {
		return Product{}, err
	}
	if dec.More() {
		return Product{}, errors.New("trailing data after record")
	}
	switch {
	case r.ID == nil:
		return Product{}, errors.New(`missing "id"`)
	case r.Name == nil:
		return Product{}, errors.New(`missing "name"`)
	case r.Price == nil:
		return Product{}, errors.New(`missing "price"`)
	case r.Quantity == nil:
		return Product{}, errors.New(`missing "quantity"`)
	}
	return NewProduct(*r.ID, *r.Name, *r.Price, *r.Quantity), nil
}
