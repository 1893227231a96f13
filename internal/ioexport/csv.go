package ioexport

import (
	"encoding/csv"
	"os"

	"github.com/unidadrb/padron/pkg/roster"
)

// WriteCSV writes the unified cleaned rows as a single CSV file. The
// duplicate facets are workbook-only: CSV has no sheets.
func WriteCSV(path string, unified roster.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return CSVError(path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(recordHeaders); err != nil {
		return CSVError(path, err)
	}
	for _, rec := range unified.Records {
		if err := w.Write(recordRow(rec)); err != nil {
			return CSVError(path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return CSVError(path, err)
	}
	return nil
}
