package inventory

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/gval"
	"github.com/PaesslerAG/jsonpath"
)

// queryLanguage is JSONPath with filters, comparisons and arithmetic.
var queryLanguage = gval.Full(jsonpath.PlaceholderExtension())

// Query evaluates a JSONPath expression over the JSON array of products in
// head-first order, for instance `$[?(@.quantity < 5)].name`.
func (l *Ledger) Query(path string) (any, error) {
	eval, err := queryLanguage.NewEvaluable(path)
	if err != nil {
		return nil, fmt.Errorf("invalid expression %q: %w", path, err)
	}
	raw, err := json.Marshal(l.List())
	if err != nil {
		return nil, fmt.Errorf("could not marshal products: %w", err)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("could not unmarshal products: %w", err)
	}
	val, err := eval(context.Background(), doc)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	return val, nil
}
