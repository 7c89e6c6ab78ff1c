package console

import (
	"errors"
	"fmt"

	"github.com/etnz/inventory"
	"github.com/etnz/inventory/renderer"
)

func (s *Shell) notFound(id int) {
	s.boxed(fmt.Sprintf("Product with ID %d not found.", id))
}

func (s *Shell) add() error {
	id, err := s.readInt("Enter product ID: ")
	if err != nil {
		return err
	}
	name, err := s.readName("Enter product name: ")
	if err != nil {
		return err
	}
	price, err := s.readPrice("Enter product price: ")
	if err != nil {
		return err
	}
	quantity, err := s.readInt("Enter product quantity: ")
	if err != nil {
		return err
	}

	p := inventory.NewProduct(id, name, price, quantity)
	if err := s.ledger.Add(p); err != nil {
		s.log.Warn("add failed", "id", id, "error", err)
		s.printf("%s\n", s.colors.failure("Storage allocation failed: "+err.Error()))
		return nil
	}
	s.log.Debug("product added", "id", id, "count", s.ledger.Len())
	s.boxed(s.colors.success("Product added successfully."))
	return nil
}

func (s *Shell) view() {
	s.printf("%s", separator)
	s.markdown(renderer.Products(s.ledger.List(), s.ledger.Currency()))
	s.printf("%s", separator)
}

func (s *Shell) delete() error {
	id, err := s.readInt("Enter product ID to delete: ")
	if err != nil {
		return err
	}
	if _, err := s.ledger.Delete(id); err != nil {
		s.notFound(id)
		return nil
	}
	s.log.Debug("product deleted", "id", id, "count", s.ledger.Len())
	s.boxed(s.colors.success(fmt.Sprintf("Product with ID %d deleted successfully.", id)))
	return nil
}

func (s *Shell) bill() error {
	if s.ledger.Len() == 0 {
		s.boxed(s.colors.failure("Inventory is empty."))
		return nil
	}
	line, err := s.readLine("Enter current date (dd mm yyyy): ")
	if err != nil {
		return err
	}
	date, err := inventory.ParseBillDate(line)
	if err != nil {
		return fmt.Errorf("%w: %v", errInput, err)
	}
	b := s.ledger.Bill(date)
	s.log.Debug("bill generated", "number", b.Number, "date", b.Date.String(), "lines", len(b.Lines))
	s.markdown(renderer.Bill(b, s.ledger.Currency()))
	return nil
}

func (s *Shell) total() {
	s.markdown(renderer.TotalSales(s.ledger.TotalSales(), s.ledger.Currency()))
}

func (s *Shell) search() error {
	id, err := s.readInt("Enter product ID to search: ")
	if err != nil {
		return err
	}
	p, err := s.ledger.Find(id)
	if err != nil {
		s.notFound(id)
		return nil
	}
	s.printf("%s", separator)
	s.markdown(renderer.Product(p, s.ledger.Currency()))
	s.printf("%s", separator)
	return nil
}

func (s *Shell) update() error {
	id, err := s.readInt("Enter product ID to update: ")
	if err != nil {
		return err
	}
	if _, err := s.ledger.Find(id); err != nil {
		s.notFound(id)
		return nil
	}
	s.printf("%s", separator)
	name, err := s.readName("Enter new product name: ")
	if err != nil {
		return err
	}
	price, err := s.readPrice("Enter new product price: ")
	if err != nil {
		return err
	}
	quantity, err := s.readInt("Enter new product quantity: ")
	if err != nil {
		return err
	}
	if err := s.ledger.Update(id, name, price, quantity); err != nil {
		s.notFound(id)
		return nil
	}
	s.log.Debug("product updated", "id", id)
	s.boxed(s.colors.success("Product details updated successfully."))
	return nil
}

func (s *Shell) backupRestore() error {
	s.printf("%s", s.colors.option("1. Backup Inventory\n2. Restore Inventory\n"))
	s.printf("%s", separator)
	choice, err := s.readLine("Enter your choice: ")
	if err != nil {
		return err
	}
	s.printf("%s", separator)
	switch choice {
	case "1":
		s.backup()
	case "2":
		s.restore()
	default:
		s.invalidChoice()
	}
	return nil
}

func (s *Shell) backup() {
	report, err := inventory.Backup(s.opts.BackupFile, s.ledger, s.opts.Format)
	if err != nil {
		s.log.Error("backup failed", "path", s.opts.BackupFile, "error", err)
		s.boxed(s.colors.failure("Error creating backup file: " + err.Error()))
		return
	}
	for _, p := range report.Lossy {
		s.log.Warn("name will not read back from a legacy backup", "id", p.ID, "name", p.Name)
		s.printf("%s\n", s.colors.option(fmt.Sprintf("Warning: the name %q of product %d will not read back correctly.", p.Name, p.ID)))
	}
	s.log.Debug("backup created", "path", report.Path, "format", report.Format.String(), "count", report.Count)
	s.boxed(s.colors.success("Inventory backup created successfully."))
}

func (s *Shell) restore() {
	report, err := inventory.Restore(s.opts.BackupFile, s.ledger, s.opts.Strict)
	switch {
	case errors.Is(err, inventory.ErrNotFound):
		s.printf("%s\n", s.colors.failure("Backup file not found."))
		return
	case err != nil:
		s.log.Error("restore failed", "path", s.opts.BackupFile, "error", err)
		s.boxed(s.colors.failure("Error restoring backup: " + err.Error()))
		return
	}
	if report.Warning != nil {
		s.log.Warn("backup partially restored", "path", report.Path, "error", report.Warning)
		s.printf("%s\n", s.colors.option("Warning: restore stopped early, "+report.Warning.Error()))
	}
	s.log.Debug("backup restored", "path", report.Path, "format", report.Format.String(), "count", report.Count)
	s.boxed(s.colors.success("Inventory restored successfully."))
}

func (s *Shell) management() error {
	code, err := s.readInt("Enter access code: ")
	if err != nil {
		return err
	}
	if code != s.opts.AccessCode {
		s.log.Warn("management access denied")
		s.printf("%s\n", s.colors.failure("Access code incorrect"))
		return nil
	}
	s.printf("%s\n", s.colors.success("Access granted"))
	s.printf("%s", separator)
	s.printf("%s", s.colors.option("1. Sales and Income\n2. Employee Details\n"))
	s.printf("%s", separator)
	choice, err := s.readLine("Enter your choice: ")
	if err != nil {
		return err
	}
	s.printf("%s", separator)
	switch choice {
	case "1":
		s.salesAndIncome()
	case "2":
		s.employeeDetails()
	default:
		s.invalidChoice()
	}
	return nil
}

func (s *Shell) salesAndIncome() {
	s.printf("Products: %d\n", s.ledger.Len())
	s.markdown(renderer.TotalSales(s.ledger.TotalSales(), s.ledger.Currency()))
	s.printf("%s", separator)
}

// employeeDetails prints the leave roster of the ten employees.
func (s *Shell) employeeDetails() {
	s.printf("%sEmployees leave\n", separator)
	for i := 1; i <= 10; i++ {
		s.printf("no%d\tNo\n", i)
	}
	s.printf("%s", separator)
}
