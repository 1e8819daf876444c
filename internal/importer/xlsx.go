package importer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/4NTx/desafioFacilita/internal/service"
)

// Row is a single customer row read from a workbook, tagged with its
// 1-indexed position for error reporting.
type Row struct {
	Line    int
	Request service.RegisterCustomerRequest
}

// ReadCustomers reads customer rows from a workbook sheet. Expected columns:
// name, email, phone, x, y, with a header in the first row. Rows with
// unparsable coordinates are returned as errors alongside the valid rows so
// the caller can report them without aborting the whole import.
func ReadCustomers(f *excelize.File, sheet string) ([]Row, []error, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	var (
		customers []Row
		rowErrs   []error
	)

	for i, row := range rows {
		if i == 0 {
			continue // Skip header
		}

		line := i + 1

		if len(row) < 5 {
			rowErrs = append(rowErrs, fmt.Errorf("row %d: expected 5 columns, got %d", line, len(row)))
			continue
		}

		x, err := parseCoord(row[3])
		if err != nil {
			rowErrs = append(rowErrs, fmt.Errorf("row %d: invalid x coordinate %q", line, row[3]))
			continue
		}

		y, err := parseCoord(row[4])
		if err != nil {
			rowErrs = append(rowErrs, fmt.Errorf("row %d: invalid y coordinate %q", line, row[4]))
			continue
		}

		customers = append(customers, Row{
			Line: line,
			Request: service.RegisterCustomerRequest{
				Name:  strings.TrimSpace(row[0]),
				Email: strings.TrimSpace(row[1]),
				Phone: strings.TrimSpace(row[2]),
				X:     x,
				Y:     y,
			},
		})
	}

	return customers, rowErrs, nil
}

// parseCoord parses a coordinate cell, accepting comma decimal separators
// from locale-formatted workbooks
func parseCoord(val string) (float64, error) {
	val = strings.TrimSpace(strings.ReplaceAll(val, ",", "."))
	if val == "" {
		return 0, fmt.Errorf("empty")
	}
	return strconv.ParseFloat(val, 64)
}
