// backend/src/extractor/csv.go
package extractor

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// CSVText parses a tabular statement and renders it as a JSON array string,
// one object per row keyed by the header. The model extracts transactions far
// more reliably from labeled fields than from raw comma-soup. Field counts are
// tolerated per row since bank exports are rarely strict CSV.
func CSVText(r io.Reader) (string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return "", fmt.Errorf("read csv header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []map[string]string
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Skip malformed rows rather than losing the statement.
			continue
		}
		row := make(map[string]string, len(header))
		for i, field := range record {
			key := fmt.Sprintf("column_%d", i+1)
			if i < len(header) && header[i] != "" {
				key = header[i]
			}
			row[key] = strings.TrimSpace(field)
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return "", fmt.Errorf("csv contains no data rows")
	}

	out, err := json.Marshal(rows)
	if err != nil {
		return "", fmt.Errorf("encode csv rows: %w", err)
	}
	return string(out), nil
}
