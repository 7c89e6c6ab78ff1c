package agent

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/etnz/inventory"
	"github.com/etnz/inventory/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// newFacilitator creates the expert leading the conversation with the user.
func newFacilitator(experts ...*Expert) *Expert {
	return NewExpert("Facilitator", "", `
		You are in charge of the conversation with a shop owner and of solving their request.

		Learn about the experts' skills from the Tools and ask them questions.
		They keep the context of your previous questions.

		The owner asks about the products in stock, their prices and quantities,
		and the value of the inventory. Devise the questions to ask the experts
		and come up with the best answer. Answer in markdown.
	`, experts...)
}

// NewStorekeeper creates the expert reading the inventory l.
func NewStorekeeper(l *inventory.Ledger) *Expert {
	return NewExpert("Storekeeper",
		`This is the Storekeeper. They read the shop inventory: the products,
		their id, name, unit price and quantity, and the total sales value.`,
		`
		You are the storekeeper of a small shop. Use the Tools to read the inventory.
		You cannot change it. When several products share an id, the most recently
		added one is the one that counts.
	`, Tools(l)...)
}

// Func implements a simple Function.
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

// Tools returns the read-only functions over l.
func Tools(l *inventory.Ledger) []*Func {
	return []*Func{listProducts(l), findProduct(l), totalSales(l)}
}

func listProducts(l *inventory.Ledger) *Func {
	const name = "ListProducts"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: "ListProducts lists every product of the inventory, most recently added first.",
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table with the id, name, price and quantity of each product.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return outputResponse(id, name, renderer.Products(l.List(), l.Currency()))
		},
	}
}

func findProduct(l *inventory.Ledger) *Func {
	const name = "FindProduct"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: "FindProduct returns the product with the given id.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"id": {Type: genai.TypeInteger, Description: "The product id."},
				},
				Required: []string{"id"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table with the product, or an error when no product has this id.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			pid, err := intArg(args, "id")
			if err != nil {
				return errorResponse(id, name, err)
			}
			p, err := l.Find(pid)
			if err != nil {
				return errorResponse(id, name, err)
			}
			return outputResponse(id, name, renderer.Product(p, l.Currency()))
		},
	}
}

func totalSales(l *inventory.Ledger) *Func {
	const name = "TotalSales"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: "TotalSales returns the sum of price times quantity over all products.",
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "The total sales value.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return outputResponse(id, name, renderer.TotalSales(l.TotalSales(), l.Currency()))
		},
	}
}

// intArg reads an integer argument. Models send JSON numbers as float64.
func intArg(args map[string]any, key string) (int, error) {
	v, ok := args[key]
	if !ok {
		return 0, fmt.Errorf("missing argument %q", key)
	}
	switch v := v.(type) {
	case int:
		return v, nil
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("argument %q must be an integer, got %v", key, v)
		}
		return int(v), nil
	case string:
		i, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("argument %q must be an integer, got %q", key, v)
		}
		return i, nil
	default:
		return 0, fmt.Errorf("argument %q is not a number but %T", key, v)
	}
}
