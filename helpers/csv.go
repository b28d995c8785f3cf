package helpers

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/fleetlens/fleetlens/table"
)

// ============================================================================
// CSV HELPER — Parses CSV bytes into a table.Table
// ============================================================================
// The consumer reads the CSV from wherever it lives (file, upload, bucket).
// This helper converts the raw bytes into the in-memory table the core
// operates on. Header row = column names, kept exactly as spelled — the
// schema package handles naming variation later.
// ============================================================================

// ReadCSV parses CSV bytes into a Table. Cells are whitespace-trimmed;
// malformed rows are skipped; ragged rows are tolerated.
func ReadCSV(data []byte) (*table.Table, error) {
	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}
	for i, h := range headers {
		headers[i] = strings.TrimSpace(h)
	}

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue // skip malformed rows
		}
		for i, cell := range row {
			row[i] = strings.TrimSpace(cell)
		}
		rows = append(rows, row)
	}

	return table.New(headers, rows), nil
}
