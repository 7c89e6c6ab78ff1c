package inventory

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestBackupRestore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup", DefaultBackupFile)

	src := NewLedger()
	src.Add(NewProduct(1, "Milk", P(1.5), 10))
	src.Add(NewProduct(2, "Bread", P(2), 3))

	report, err := Backup(path, src, Legacy)
	if err != nil {
		t.Fatalf("Backup() returned an unexpected error: %v", err)
	}
	if report.Count != 2 || len(report.Lossy) != 0 {
		t.Errorf("BackupReport = %+v, want 2 products and no lossy names", report)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("could not read backup: %v", err)
	}
	if got, want := string(content), "2 Bread 2.00 3\n1 Milk 1.50 10\n"; got != want {
		t.Errorf("backup content = %q, want %q", got, want)
	}

	dst := NewLedger()
	dst.Add(NewProduct(9, "Old", P(1), 1))
	rr, err := Restore(path, dst, false)
	if err != nil {
		t.Fatalf("Restore() returned an unexpected error: %v", err)
	}
	if rr.Count != 2 || rr.Warning != nil || rr.Format != Legacy {
		t.Errorf("RestoreReport = %+v", rr)
	}
	// The first line of the file ends up last.
	if got, want := ids(dst), []int{1, 2}; !reflect.DeepEqual(got, want) {
		t.Errorf("restored ids = %v, want %v", got, want)
	}
	if _, err := dst.Find(9); !errors.Is(err, ErrNotFound) {
		t.Errorf("Find(9) after restore: got %v, want ErrNotFound", err)
	}
}

func TestBackup_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultBackupFile)
	os.WriteFile(path, []byte("1 a 1.00 1\n2 b 1.00 1\n3 c 1.00 1\n"), 0644)

	l := NewLedger()
	l.Add(NewProduct(7, "Tea", P(3), 1))
	if _, err := Backup(path, l, Legacy); err != nil {
		t.Fatalf("Backup() returned an unexpected error: %v", err)
	}
	content, _ := os.ReadFile(path)
	if got, want := string(content), "7 Tea 3.00 1\n"; got != want {
		t.Errorf("backup content = %q, want %q", got, want)
	}
}

func TestBackup_ReportsLossyNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultBackupFile)
	l := NewLedger()
	l.Add(NewProduct(1, "Green Tea", P(3), 1))

	report, err := Backup(path, l, Legacy)
	if err != nil {
		t.Fatalf("Backup() returned an unexpected error: %v", err)
	}
	if len(report.Lossy) != 1 {
		t.Errorf("Lossy = %v, want the product with a space", report.Lossy)
	}

	report, _ = Backup(path, l, JSONL)
	if len(report.Lossy) != 0 {
		t.Errorf("jsonl Lossy = %v, want none", report.Lossy)
	}
}

func TestRestore_MissingFile(t *testing.T) {
	l := NewLedger()
	l.Add(NewProduct(9, "Old", P(1), 1))

	_, err := Restore(filepath.Join(t.TempDir(), "missing.txt"), l, false)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Restore(missing): got %v, want ErrNotFound", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Restore(missing): got %v, want it to match fs.ErrNotExist", err)
	}
	if got, want := ids(l), []int{9}; !reflect.DeepEqual(got, want) {
		t.Errorf("ledger changed: %v, want %v", got, want)
	}
}

func TestRestore_Strict(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultBackupFile)
	os.WriteFile(path, []byte("5 Tea 1.00 1\n6 Coffee oops 1\n"), 0644)

	l := NewLedger()
	l.Add(NewProduct(9, "Old", P(1), 1))
	if _, err := Restore(path, l, true); !errors.Is(err, ErrMalformed) {
		t.Fatalf("strict Restore: got %v, want ErrMalformed", err)
	}
	if got, want := ids(l), []int{9}; !reflect.DeepEqual(got, want) {
		t.Errorf("ledger changed after strict failure: %v, want %v", got, want)
	}

	report, err := Restore(path, l, false)
	if err != nil {
		t.Fatalf("lenient Restore returned an unexpected error: %v", err)
	}
	if !errors.Is(report.Warning, ErrMalformed) {
		t.Errorf("Warning = %v, want ErrMalformed", report.Warning)
	}
	if got, want := ids(l), []int{5}; !reflect.DeepEqual(got, want) {
		t.Errorf("lenient restore kept %v, want %v", got, want)
	}
}

func TestLoadLedger(t *testing.T) {
	l, _, err := LoadLedger(filepath.Join(t.TempDir(), "missing.txt"), false)
	if err != nil {
		t.Fatalf("LoadLedger(missing) returned an unexpected error: %v", err)
	}
	if l.Len() != 0 {
		t.Errorf("LoadLedger(missing) has %d products, want 0", l.Len())
	}

	path := filepath.Join(t.TempDir(), DefaultBackupFile)
	os.WriteFile(path, []byte("1 a 1.00 1\n2 b 1.00 1\n"), 0644)
	if _, _, err := LoadLedger(path, false, WithCapacity(1)); !errors.Is(err, ErrAllocation) {
		t.Errorf("LoadLedger over capacity: got %v, want ErrAllocation", err)
	}
}

func TestFormatFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultBackupFile)
	os.WriteFile(path, []byte("2   Bread 2 3\n\n1 Milk 1.5 10"), 0644)

	report, err := FormatFile(path, Legacy)
	if err != nil {
		t.Fatalf("FormatFile() returned an unexpected error: %v", err)
	}
	if report.Count != 2 {
		t.Errorf("Count = %d, want 2", report.Count)
	}
	got, _ := os.ReadFile(path)
	if want := "2 Bread 2.00 3\n1 Milk 1.50 10\n"; string(got) != want {
		t.Errorf("formatted file = %q, want %q", got, want)
	}

	if _, err := FormatFile(path, JSONL); err != nil {
		t.Fatalf("FormatFile(JSONL) returned an unexpected error: %v", err)
	}
	got, _ = os.ReadFile(path)
	if want := "{\"id\":2,\"name\":\"Bread\",\"price\":2,\"quantity\":3}\n{\"id\":1,\"name\":\"Milk\",\"price\":1.5,\"quantity\":10}\n"; string(got) != want {
		t.Errorf("formatted file = %q, want %q", got, want)
	}
}

func TestFormatFile_Errors(t *testing.T) {
	if _, err := FormatFile(filepath.Join(t.TempDir(), "missing.txt"), Legacy); !errors.Is(err, ErrNotFound) {
		t.Errorf("FormatFile(missing): got %v, want ErrNotFound", err)
	}

	path := filepath.Join(t.TempDir(), DefaultBackupFile)
	content := "1 Milk 1.50 10\n2 Bread\n"
	os.WriteFile(path, []byte(content), 0644)
	if _, err := FormatFile(path, Legacy); !errors.Is(err, ErrMalformed) {
		t.Errorf("FormatFile(malformed): got %v, want ErrMalformed", err)
	}
	if got, _ := os.ReadFile(path); string(got) != content {
		t.Errorf("malformed file was rewritten: %q", got)
	}
}

func TestBackupRestore_PriceRounding(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultBackupFile)
	price, err := ParsePrice("2.555")
	if err != nil {
		t.Fatalf("ParsePrice() returned an unexpected error: %v", err)
	}

	src := NewLedger()
	src.Add(NewProduct(1, "Jam", price, 4))
	if got, want := src.TotalSales().String(), "10.24"; got != want {
		t.Errorf("TotalSales() = %s, want %s", got, want)
	}

	for _, format := range []Format{Legacy, JSONL} {
		t.Run(format.String(), func(t *testing.T) {
			if _, err := Backup(path, src, format); err != nil {
				t.Fatalf("Backup() returned an unexpected error: %v", err)
			}
			dst := NewLedger()
			if _, err := Restore(path, dst, true); err != nil {
				t.Fatalf("Restore() returned an unexpected error: %v", err)
			}
			if !dst.TotalSales().Equal(src.TotalSales()) {
				t.Errorf("TotalSales() after restore = %s, want %s", dst.TotalSales(), src.TotalSales())
			}
			got, want := dst.List(), src.List()
			if len(got) != 1 || !got[0].Equal(want[0]) {
				t.Errorf("restored %v, want %v", got, want)
			}
		})
	}
}
