package iotabular

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/unidadrb/padron/pkg/errcode"
)

func EncodingError(err error) error {
	msg := "Cannot recognize the file's character encoding"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.TabularEncodingError,
		Msg:  msg,
		Err: fmt.Errorf("from %s: cannot decode text: %w",
			fn, err),
	}
}

func ParseError(err error) error {
	msg := "Cannot parse the delimited-text file"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.TabularParseError,
		Msg:  msg,
		Err: fmt.Errorf("from %s: cannot parse csv: %w",
			fn, err),
	}
}

func SpreadsheetError(err error) error {
	msg := "Cannot open the spreadsheet file"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.SpreadsheetOpenError,
		Msg:  msg,
		Err: fmt.Errorf("from %s: cannot open spreadsheet: %w",
			fn, err),
	}
}
