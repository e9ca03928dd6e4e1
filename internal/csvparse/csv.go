package csvparse

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rocjay1/budget-tracker/internal/models"
)

const (
	ColumnDate     = "date"
	ColumnCategory = "category"
	ColumnAmount   = "amount"
	ColumnType     = "type"
)

// Header is the fixed column order of the ledger file.
var Header = []string{ColumnDate, ColumnCategory, ColumnAmount, ColumnType}

// ErrMalformed is returned for content that cannot be decoded into entries.
var ErrMalformed = errors.New("malformed ledger data")

// ParseEntries decodes a ledger table. Columns are located by header name.
// Unlike a lenient import, the first bad row aborts decoding.
func ParseEntries(r io.Reader) ([]models.Entry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read CSV: %v", ErrMalformed, err)
	}

	if len(records) == 0 {
		return []models.Entry{}, nil
	}

	headers := parseHeaders(records[0])
	for _, col := range Header {
		if _, ok := headers[col]; !ok {
			return nil, fmt.Errorf("%w: missing %s column", ErrMalformed, col)
		}
	}

	entries := make([]models.Entry, 0, len(records)-1)
	for i, record := range records[1:] {
		rowNum := i + 2
		if len(record) < len(records[0]) {
			return nil, fmt.Errorf("%w: row %d: not enough fields", ErrMalformed, rowNum)
		}

		e, err := mapToEntry(headers, record)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrMalformed, rowNum, err)
		}
		entries = append(entries, e)
	}

	return entries, nil
}

// WriteEntries encodes entries as a ledger table, header first.
func WriteEntries(w io.Writer, entries []models.Entry) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, e := range entries {
		row := []string{e.Date, e.Category, e.Amount.String(), string(e.Type)}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write entry: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

func parseHeaders(row []string) map[string]int {
	headers := make(map[string]int, len(row))
	for i, h := range row {
		headers[strings.TrimSpace(h)] = i
	}
	return headers
}

func mapToEntry(headers map[string]int, record []string) (models.Entry, error) {
	amountStr := strings.TrimSpace(record[headers[ColumnAmount]])
	if amountStr == "" {
		return models.Entry{}, fmt.Errorf("missing amount")
	}
	amount, err := models.ParseAmount(amountStr)
	if err != nil {
		return models.Entry{}, fmt.Errorf("invalid amount: %s", amountStr)
	}

	typeStr := strings.TrimSpace(record[headers[ColumnType]])
	var entryType models.EntryType
	switch models.EntryType(typeStr) {
	case models.EntryTypeIncome:
		entryType = models.EntryTypeIncome
	case models.EntryTypeExpense:
		entryType = models.EntryTypeExpense
	default:
		return models.Entry{}, fmt.Errorf("invalid type: %q", typeStr)
	}

	return models.Entry{
		Date:     record[headers[ColumnDate]],
		Category: record[headers[ColumnCategory]],
		Amount:   amount,
		Type:     entryType,
	}, nil
}
