package console

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/inventory"
)

// run feeds input to a new Shell over l and returns everything it printed.
func run(t *testing.T, l *inventory.Ledger, input string, opts Options) string {
	t.Helper()
	if opts.BackupFile == "" {
		opts.BackupFile = filepath.Join(t.TempDir(), inventory.DefaultBackupFile)
	}
	var out strings.Builder
	if err := New(l, strings.NewReader(input), &out, opts).Run(context.Background()); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}
	return out.String()
}

// shop returns a ledger with Milk then Bread, Bread being the head.
func shop(t *testing.T, opts ...inventory.Option) *inventory.Ledger {
	t.Helper()
	l := inventory.NewLedger(opts...)
	for _, p := range []inventory.Product{
		inventory.NewProduct(1, "Milk", inventory.P(1.5), 10),
		inventory.NewProduct(2, "Bread", inventory.P(2), 3),
	} {
		if err := l.Add(p); err != nil {
			t.Fatal(err)
		}
	}
	return l
}

func assertContains(t *testing.T, out, want string) {
	t.Helper()
	if !strings.Contains(out, want) {
		t.Errorf("output does not contain %q:\n%s", want, out)
	}
}

func TestShell_AddAndView(t *testing.T) {
	l := inventory.NewLedger()
	out := run(t, l, "1\n3\nMilk\n1.5\n10\n1\n4\nBread\n2\n3\n2\n0\n", Options{})

	if got := strings.Count(out, "Product added successfully."); got != 2 {
		t.Errorf("added %d products, want 2", got)
	}
	bread, milk := strings.Index(out, "| 4 | Bread |"), strings.Index(out, "| 3 | Milk |")
	if bread < 0 || milk < 0 || bread > milk {
		t.Errorf("view is not head-first:\n%s", out)
	}
	assertContains(t, out, "Exiting...")
	if l.Len() != 2 {
		t.Errorf("Len() = %d, want 2", l.Len())
	}
}

func TestShell_EndOfInput(t *testing.T) {
	out := run(t, inventory.NewLedger(), "2\n", Options{})
	assertContains(t, out, "Inventory is empty.")
}

func TestShell_InvalidChoice(t *testing.T) {
	out := run(t, inventory.NewLedger(), "x\n42\n\n0\n", Options{})
	if got := strings.Count(out, "Invalid choice. Please try again."); got != 3 {
		t.Errorf("got %d invalid choice messages, want 3:\n%s", got, out)
	}
}

func TestShell_InvalidNumber(t *testing.T) {
	l := shop(t)
	out := run(t, l, "3\nabc\n0\n", Options{})
	assertContains(t, out, `"abc" is not a number`)
	assertContains(t, out, "Exiting...")
	if l.Len() != 2 {
		t.Errorf("Len() = %d, want 2", l.Len())
	}
}

func TestShell_Delete(t *testing.T) {
	l := shop(t)
	out := run(t, l, "3\n1\n3\n9\n0\n", Options{})
	assertContains(t, out, "Product with ID 1 deleted successfully.")
	assertContains(t, out, "Product with ID 9 not found.")
	if _, err := l.Find(1); !errors.Is(err, inventory.ErrNotFound) {
		t.Errorf("Find(1) after delete: got %v, want ErrNotFound", err)
	}
}

func TestShell_SearchDuplicate(t *testing.T) {
	l := shop(t)
	if err := l.Add(inventory.NewProduct(1, "Tea", inventory.P(3), 1)); err != nil {
		t.Fatal(err)
	}
	out := run(t, l, "6\n1\n0\n", Options{})
	assertContains(t, out, "Product found:")
	assertContains(t, out, "| 1 | Tea |")
	if strings.Contains(out, "| 1 | Milk |") {
		t.Errorf("search returned the older product:\n%s", out)
	}
}

func TestShell_Update(t *testing.T) {
	l := shop(t)
	out := run(t, l, "7\n1\nTea\n3\n2\n7\n9\n0\n", Options{})
	assertContains(t, out, "Product details updated successfully.")
	assertContains(t, out, "Product with ID 9 not found.")

	got, err := l.Find(1)
	if err != nil {
		t.Fatal(err)
	}
	want := inventory.NewProduct(1, "Tea", inventory.P(3), 2)
	if !got.Equal(want) {
		t.Errorf("Find(1) = %+v, want %+v", got, want)
	}
}

func TestShell_NameTruncated(t *testing.T) {
	l := inventory.NewLedger()
	name := strings.Repeat("a", 150)
	run(t, l, "1\n1\n"+name+"\n1\n1\n0\n", Options{})
	p, err := l.Find(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Name) != inventory.MaxNameLength {
		t.Errorf("len(Name) = %d, want %d", len(p.Name), inventory.MaxNameLength)
	}
}

func TestShell_LongLine(t *testing.T) {
	l := inventory.NewLedger()
	name := strings.Repeat("b", 100*1024)
	out := run(t, l, "1\n1\n"+name+"\n2.5\n4\n5\n0\n", Options{})
	p, err := l.Find(1)
	if err != nil {
		t.Fatalf("product not added after a long line: %v", err)
	}
	if len(p.Name) != inventory.MaxNameLength {
		t.Errorf("len(Name) = %d, want %d", len(p.Name), inventory.MaxNameLength)
	}
	assertContains(t, out, "10.00")
	assertContains(t, out, "Exiting...")
}

func TestShell_LastLineWithoutNewline(t *testing.T) {
	out := run(t, shop(t), "5\n0", Options{})
	assertContains(t, out, "21.00")
	assertContains(t, out, "Exiting...")
}

func TestShell_Capacity(t *testing.T) {
	l := shop(t, inventory.WithCapacity(2))
	out := run(t, l, "1\n3\nTea\n1\n1\n0\n", Options{})
	assertContains(t, out, "Storage allocation failed")
	if l.Len() != 2 {
		t.Errorf("Len() = %d, want 2", l.Len())
	}
}

func TestShell_Bill(t *testing.T) {
	out := run(t, shop(t), "4\n15 8 2024\n0\n", Options{})
	assertContains(t, out, "Bill generated on 15/8/2024")
	assertContains(t, out, "**21.00**")

	out = run(t, inventory.NewLedger(), "4\n0\n", Options{})
	assertContains(t, out, "Inventory is empty.")
	if strings.Contains(out, "Enter current date") {
		t.Errorf("empty inventory must not ask for a date:\n%s", out)
	}
}

func TestShell_TotalSales(t *testing.T) {
	out := run(t, shop(t), "5\n0\n", Options{})
	assertContains(t, out, "Total Sales: 21.00")
}

func TestShell_BackupRestore(t *testing.T) {
	l := shop(t)
	before := l.List()
	opts := Options{BackupFile: filepath.Join(t.TempDir(), "backup.txt")}

	out := run(t, l, "8\n1\n3\n1\n3\n2\n8\n2\n0\n", opts)
	assertContains(t, out, "Inventory backup created successfully.")
	assertContains(t, out, "Inventory restored successfully.")

	after := l.List()
	if len(after) != len(before) {
		t.Fatalf("restored %d products, want %d", len(after), len(before))
	}
	// Restoring reverses the order of the snapshot.
	for i := range before {
		if !after[len(after)-1-i].Equal(before[i]) {
			t.Errorf("product %d: got %+v, want %+v", i, after[len(after)-1-i], before[i])
		}
	}
}

func TestShell_BackupWarnsLossyName(t *testing.T) {
	l := inventory.NewLedger()
	if err := l.Add(inventory.NewProduct(1, "Green Tea", inventory.P(2), 1)); err != nil {
		t.Fatal(err)
	}
	out := run(t, l, "8\n1\n0\n", Options{})
	assertContains(t, out, `Warning: the name "Green Tea" of product 1`)

	out = run(t, l, "8\n1\n0\n", Options{Format: inventory.JSONL})
	if strings.Contains(out, "Warning") {
		t.Errorf("jsonl backup must not warn:\n%s", out)
	}
}

func TestShell_RestoreMissingFile(t *testing.T) {
	l := shop(t)
	out := run(t, l, "8\n2\n0\n", Options{})
	assertContains(t, out, "Backup file not found.")
	if l.Len() != 2 {
		t.Errorf("Len() = %d, want 2", l.Len())
	}
}

func TestShell_Management(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"wrong code", "9\n1\n0\n", "Access code incorrect"},
		{"not a code", "9\nabc\n0\n", "is not a number"},
		{"sales", "9\n189\n1\n0\n", "Products: 2"},
		{"employees", "9\n189\n2\n0\n", "no10\tNo\n"},
		{"bad option", "9\n189\n7\n0\n", "Invalid choice. Please try again."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := run(t, shop(t), tt.input, Options{})
			assertContains(t, out, tt.want)
		})
	}
}

func TestShell_CustomAccessCode(t *testing.T) {
	out := run(t, shop(t), "9\n189\n9\n42\n1\n0\n", Options{AccessCode: 42})
	assertContains(t, out, "Access code incorrect")
	assertContains(t, out, "Access granted")
}

func TestShell_Help(t *testing.T) {
	out := run(t, inventory.NewLedger(), "?\n0\n", Options{})
	assertContains(t, out, "# Console menu")
}

func TestShell_Render(t *testing.T) {
	render := func(md string) string { return "<" + strings.TrimSpace(md) + ">\n" }
	out := run(t, shop(t), "5\n0\n", Options{Render: render})
	assertContains(t, out, "<Total Sales: 21.00>")
}

func TestShell_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out strings.Builder
	err := New(inventory.NewLedger(), strings.NewReader("2\n"), &out, Options{}).Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() = %v, want context.Canceled", err)
	}
}
