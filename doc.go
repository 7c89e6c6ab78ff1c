// Package inventory provides the types and functions to keep the stock ledger
// of a small retail shop. It is local-first: the ledger lives in memory for the
// duration of a session and is persisted only on explicit request, to a
// human-readable snapshot file.
//
// The core functionalities include:
//   - Ledger Management: adding, listing, searching, updating and deleting
//     product records. The most recently added product always comes first.
//   - Derived Totals: per-line totals, bills stamped with a date, and the
//     total sales value of the whole inventory.
//   - Data Persistence: encoding and decoding the ledger to and from the
//     legacy space-separated snapshot format, or to JSONL when product names
//     contain whitespace.
//   - Query: evaluating JSONPath expressions over the products.
//
// This package serves as the foundational logic for the `inv` command-line
// tool and its interactive console.
package inventory
