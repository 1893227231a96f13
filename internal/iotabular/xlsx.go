package iotabular

import (
	"bytes"
	"strings"

	"github.com/unidadrb/padron/pkg/colmap"
	"github.com/xuri/excelize/v2"
)

// ParseXLSX parses spreadsheet bytes into a generic table. Only the
// first sheet is read: uploaded rosters carry one sheet of data. The
// first row is the header, remaining rows are data, short rows are
// padded to the header width.
func ParseXLSX(data []byte) (colmap.Table, error) {
	var res colmap.Table

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return res, SpreadsheetError(err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return res, nil
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return res, SpreadsheetError(err)
	}
	if len(rows) == 0 {
		return res, nil
	}

	headers := rows[0]
	for i, h := range headers {
		headers[i] = strings.TrimSpace(h)
	}
	res.Headers = headers

	for _, row := range rows[1:] {
		res.Rows = append(res.Rows, fitRow(row, len(headers)))
	}
	return res, nil
}
