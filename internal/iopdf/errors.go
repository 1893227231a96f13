package iopdf

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/unidadrb/padron/pkg/errcode"
)

func ExtractError(err error) error {
	msg := "Cannot read the PDF text layer"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.PDFExtractError,
		Msg:  msg,
		Err: fmt.Errorf("from %s: cannot open pdf: %w",
			fn, err),
	}
}

func ExtractPanicError(recovered any) error {
	msg := "Cannot read the PDF text layer"
	pc, _, _, _ := runtime.Caller(2)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.PDFExtractError,
		Msg:  msg,
		Err: fmt.Errorf("from %s: pdf reader panicked: %v",
			fn, recovered),
	}
}

func OCRError(command string, err error) error {
	msg := "OCR with <em>%s</em> failed"
	vars := []any{command}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.OCRCommandError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: ocr command failed: %w",
			fn, err),
	}
}
