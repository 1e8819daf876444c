package importer

import (
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, rows [][]interface{}) *excelize.File {
	t.Helper()

	f := excelize.NewFile()
	t.Cleanup(func() { f.Close() })

	header := []interface{}{"name", "email", "phone", "x", "y"}
	if err := setRow(f, 1, header); err != nil {
		t.Fatalf("failed to write header: %v", err)
	}

	for i, row := range rows {
		if err := setRow(f, i+2, row); err != nil {
			t.Fatalf("failed to write row %d: %v", i+2, err)
		}
	}

	return f
}

func setRow(f *excelize.File, rowNum int, values []interface{}) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
		if err != nil {
			return err
		}
		if err := f.SetCellValue("Sheet1", cell, v); err != nil {
			return err
		}
	}
	return nil
}

func TestReadCustomers(t *testing.T) {
	f := buildWorkbook(t, [][]interface{}{
		{"Alice", "alice@example.com", "11999990000", "1.5", "-2.5"},
		{"Bob", "bob@example.com", "2188887777", "10", "0"},
	})

	rows, rowErrs, err := ReadCustomers(f, "Sheet1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rowErrs) != 0 {
		t.Fatalf("unexpected row errors: %v", rowErrs)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}

	first := rows[0].Request
	if first.Name != "Alice" || first.Email != "alice@example.com" {
		t.Errorf("unexpected first row: %+v", first)
	}
	if first.X != 1.5 || first.Y != -2.5 {
		t.Errorf("coordinates = (%v, %v), want (1.5, -2.5)", first.X, first.Y)
	}
	if rows[0].Line != 2 {
		t.Errorf("line = %d, want 2", rows[0].Line)
	}
}

func TestReadCustomers_CommaDecimalSeparator(t *testing.T) {
	f := buildWorkbook(t, [][]interface{}{
		{"Carla", "carla@example.com", "11777776666", "3,25", "-0,5"},
	})

	rows, rowErrs, err := ReadCustomers(f, "Sheet1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rowErrs) != 0 {
		t.Fatalf("unexpected row errors: %v", rowErrs)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if rows[0].Request.X != 3.25 || rows[0].Request.Y != -0.5 {
		t.Errorf("coordinates = (%v, %v), want (3.25, -0.5)",
			rows[0].Request.X, rows[0].Request.Y)
	}
}

func TestReadCustomers_SkipsBadRows(t *testing.T) {
	f := buildWorkbook(t, [][]interface{}{
		{"Alice", "alice@example.com", "11999990000", "1", "2"},
		{"Broken", "broken@example.com", "11999990001", "not-a-number", "2"},
		{"Short", "short@example.com"},
		{"Dora", "dora@example.com", "11999990002", "5", "6"},
	})

	rows, rowErrs, err := ReadCustomers(f, "Sheet1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2 (%+v)", len(rows), rows)
	}
	if len(rowErrs) != 2 {
		t.Fatalf("row errors = %d, want 2 (%v)", len(rowErrs), rowErrs)
	}
}

func TestReadCustomers_MissingSheet(t *testing.T) {
	f := buildWorkbook(t, nil)

	_, _, err := ReadCustomers(f, "NoSuchSheet")
	if err == nil {
		t.Fatal("expected error for missing sheet")
	}
	if !strings.Contains(err.Error(), "NoSuchSheet") {
		t.Errorf("error should mention the sheet: %q", err.Error())
	}
}
