package service

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"erpviews-backend/internal/domain"
)

var ErrBadImport = errors.New("invalid import file")

// ReplenishmentTemplateHeader is the column layout of a bulk replenishment
// import.
var ReplenishmentTemplateHeader = []string{
	"item_code", "item_name", "warehouse", "requested_qty", "unit", "priority", "supplier", "expected_date",
}

// ReplenishmentTemplate renders the downloadable CSV with one example row.
func ReplenishmentTemplate() ([]byte, error) {
	buf := new(bytes.Buffer)
	w := csv.NewWriter(buf)
	_ = w.Write(ReplenishmentTemplateHeader)
	_ = w.Write([]string{"RM-STL-304", "Stainless Steel Sheet 304 2mm", "Main Warehouse", "500", "kg", "high", "Metalworks Supply Co.", "2024-02-01"})
	w.Flush()
	return buf.Bytes(), w.Error()
}

var importPriorities = map[domain.Priority]bool{
	domain.PriorityCritical: true,
	domain.PriorityHigh:     true,
	domain.PriorityMedium:   true,
	domain.PriorityLow:      true,
}

// ParseReplenishmentImport checks an import file against the template and
// returns the number of data rows. Nothing is stored.
func ParseReplenishmentImport(r io.Reader) (int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(ReplenishmentTemplateHeader)
	header, err := cr.Read()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBadImport, err)
	}
	for i, col := range ReplenishmentTemplateHeader {
		if strings.TrimSpace(strings.ToLower(header[i])) != col {
			return 0, fmt.Errorf("%w: column %d is %q, want %q", ErrBadImport, i+1, header[i], col)
		}
	}
	rows := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return rows, fmt.Errorf("%w: %v", ErrBadImport, err)
		}
		line := rows + 2
		if strings.TrimSpace(rec[0]) == "" {
			return rows, fmt.Errorf("%w: line %d: item_code is required", ErrBadImport, line)
		}
		if qty, err := strconv.ParseFloat(rec[3], 64); err != nil || qty <= 0 {
			return rows, fmt.Errorf("%w: line %d: requested_qty must be positive", ErrBadImport, line)
		}
		if !importPriorities[domain.Priority(rec[5])] {
			return rows, fmt.Errorf("%w: line %d: unknown priority %q", ErrBadImport, line, rec[5])
		}
		rows++
	}
	return rows, nil
}
