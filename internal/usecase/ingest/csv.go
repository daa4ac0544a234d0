package ingest

import (
	"encoding/csv"
	"os"
	"strings"

	domainingest "secdash/internal/domain/ingest"
	"secdash/internal/errs"
)

// readRows parses a CSV file into header-named rows. Columns are matched by
// header name, so file column order never matters. Short records leave the
// missing columns absent; extra cells past the header are ignored.
func readRows(path string) ([]domainingest.Row, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errs.Wrapf(err, "open %s", path)
	}
	defer func() {
		_ = file.Close()
	}()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errs.Wrapf(err, "parse %s", path)
	}
	if len(records) == 0 {
		return nil, nil
	}

	header := make([]string, len(records[0]))
	for i, name := range records[0] {
		header[i] = strings.TrimSpace(name)
	}

	rows := make([]domainingest.Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(domainingest.Row, len(header))
		for i, name := range header {
			if name == "" || i >= len(record) {
				continue
			}
			row[name] = strings.TrimSpace(record[i])
		}
		rows = append(rows, row)
	}
	return rows, nil
}
