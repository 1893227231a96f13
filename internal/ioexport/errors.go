package ioexport

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/unidadrb/padron/pkg/errcode"
)

func WorkbookError(path string, err error) error {
	msg := "Cannot write workbook <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ExportWorkbookError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot write workbook: %w",
			fn, err),
	}
}

func CSVError(path string, err error) error {
	msg := "Cannot write CSV <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ExportCSVError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot write csv: %w",
			fn, err),
	}
}
