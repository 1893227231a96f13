package ioexport

import (
	"fmt"

	"github.com/unidadrb/padron/pkg/reconcile"
	"github.com/unidadrb/padron/pkg/roster"
	"github.com/xuri/excelize/v2"
)

// WriteUnified writes the unified workbook: the cleaned rows plus the
// two duplicate facets, one sheet each.
func WriteUnified(
	path string,
	unified roster.Table,
	dupID, dupContact []reconcile.Row,
) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeRecordSheet(f, "Padron", unified.Records, true); err != nil {
		return err
	}
	if err := writeSourcedSheet(f, "Duplicados DNI", dupID); err != nil {
		return err
	}
	if err := writeSourcedSheet(f, "Duplicados Contacto", dupContact); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return WorkbookError(path, err)
	}
	return nil
}

// WriteReconcile writes the cross-source workbook: the common set, one
// missing sheet per source (in upload order), and the duplicate
// facets.
func WriteReconcile(path string, rep *reconcile.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	err := writeRecordSheet(f, "Coincidencias", rep.Common.Records, true)
	if err != nil {
		return err
	}
	for i, missing := range rep.MissingPerSource {
		// Sheet names are length-limited, the source file name goes
		// into the log instead.
		name := fmt.Sprintf("Faltantes %d", i+1)
		if err := writeRecordSheet(f, name, missing.Records, false); err != nil {
			return err
		}
	}
	err = writeSourcedSheet(f, "Duplicados DNI", rep.DuplicatesByIdentifier)
	if err != nil {
		return err
	}
	err = writeSourcedSheet(f, "Duplicados Contacto", rep.DuplicatesByContact)
	if err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return WorkbookError(path, err)
	}
	return nil
}

// writeRecordSheet fills one sheet with record rows. The first sheet
// of a workbook replaces excelize's default sheet.
func writeRecordSheet(
	f *excelize.File, name string, recs []roster.Record, first bool,
) error {
	if err := addSheet(f, name, first); err != nil {
		return err
	}
	row := toAny(recordHeaders)
	if err := f.SetSheetRow(name, "A1", &row); err != nil {
		return WorkbookError(name, err)
	}
	for i, rec := range recs {
		row = toAny(recordRow(rec))
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(name, cell, &row); err != nil {
			return WorkbookError(name, err)
		}
	}
	return nil
}

func writeSourcedSheet(
	f *excelize.File, name string, rows []reconcile.Row,
) error {
	if err := addSheet(f, name, false); err != nil {
		return err
	}
	row := toAny(sourcedHeaders)
	if err := f.SetSheetRow(name, "A1", &row); err != nil {
		return WorkbookError(name, err)
	}
	for i, r := range rows {
		row = toAny(sourcedRow(r))
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(name, cell, &row); err != nil {
			return WorkbookError(name, err)
		}
	}
	return nil
}

func addSheet(f *excelize.File, name string, first bool) error {
	if first {
		if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
			return WorkbookError(name, err)
		}
		return nil
	}
	if _, err := f.NewSheet(name); err != nil {
		return WorkbookError(name, err)
	}
	return nil
}

func toAny(ss []string) []any {
	res := make([]any, len(ss))
	for i, s := range ss {
		res[i] = s
	}
	return res
}
