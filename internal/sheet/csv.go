// Package sheet talks to the spreadsheet that serves as the data store:
// published CSV exports for reads, a remote relay endpoint for writes.
package sheet

import (
	"encoding/csv"
	"strings"
)

// ParseDelimited parses RFC 4180 delimited text into rows. Every call site
// that consumes an export goes through here; nothing else in the codebase
// parses CSV.
func ParseDelimited(text string) ([][]string, error) {
	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	return rows, nil
}
