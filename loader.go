package inventory

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultBackupFile is the snapshot file used when none is configured.
const DefaultBackupFile = "inventory_backup.txt"

// BackupReport describes a completed backup.
type BackupReport struct {
	Path   string
	Format Format
	Count  int
	// Lossy lists the products whose name will not read back from a Legacy snapshot.
	Lossy []Product
}

// RestoreReport describes a completed restore.
type RestoreReport struct {
	Path   string
	Format Format
	Count  int
	// Warning is a *MalformedError when the snapshot was only partially read.
	Warning error
}

// Backup writes the whole ledger to path, replacing any previous content.
// A failure while writing may leave a truncated file.
func Backup(path string, l *Ledger, format Format) (BackupReport, error) {
	report := BackupReport{Path: path, Format: format, Count: l.Len()}
	if format == Legacy {
		report.Lossy = l.LossyNames()
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return report, fmt.Errorf("could not create directory for backup %q: %w", path, err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return report, fmt.Errorf("error opening backup file %q for writing: %w", path, err)
	}
	if err := EncodeSnapshot(file, l, format); err != nil {
		file.Close()
		return report, fmt.Errorf("error writing backup file %q: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return report, fmt.Errorf("error closing backup file %q: %w", path, err)
	}
	return report, nil
}

// Restore replaces the content of the ledger with the snapshot stored in path.
//
// It returns ErrNotFound when the file does not exist. On any error the
// ledger is left unchanged. In lenient mode a malformed record stops the
// reading, the products read so far replace the ledger and the problem is
// reported in RestoreReport.Warning.
func Restore(path string, l *Ledger, strict bool) (RestoreReport, error) {
	report := RestoreReport{Path: path}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return report, fmt.Errorf("backup file %q: %w (%w)", path, ErrNotFound, err)
		}
		return report, fmt.Errorf("could not open backup file %q: %w", path, err)
	}
	defer f.Close()

	s, err := DecodeSnapshot(f, strict)
	if err != nil {
		return report, fmt.Errorf("could not decode backup file %q: %w", path, err)
	}
	if err := l.Restore(s.Products); err != nil {
		return report, err
	}
	report.Format = s.Format
	report.Count = len(s.Products)
	report.Warning = s.Warning
	return report, nil
}

// LoadLedger creates a ledger from the snapshot in path. A missing file
// yields an empty ledger.
func LoadLedger(path string, strict bool, opts ...Option) (*Ledger, RestoreReport, error) {
	l := NewLedger(opts...)
	report, err := Restore(path, l, strict)
	if errors.Is(err, ErrNotFound) {
		return l, report, nil
	}
	if err != nil {
		return nil, report, err
	}
	return l, report, nil
}

// FormatFile rewrites the snapshot in path in format, keeping the record
// order of the file. Any malformed record fails the rewrite and the file is
// left untouched.
func FormatFile(path string, format Format) (RestoreReport, error) {
	report := RestoreReport{Path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return report, fmt.Errorf("backup file %q: %w (%w)", path, ErrNotFound, err)
		}
		return report, fmt.Errorf("could not read backup file %q: %w", path, err)
	}
	s, err := DecodeSnapshot(bytes.NewReader(data), true)
	if err != nil {
		return report, fmt.Errorf("could not decode backup file %q: %w", path, err)
	}

	var buf bytes.Buffer
	for _, p := range s.Products {
		if err := EncodeProduct(&buf, p, format); err != nil {
			return report, err
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return report, fmt.Errorf("error writing backup file %q: %w", path, err)
	}
	report.Format = format
	report.Count = len(s.Products)
	return report, nil
}
