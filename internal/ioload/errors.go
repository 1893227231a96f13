package ioload

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/unidadrb/padron/pkg/errcode"
)

func AllSourcesEmptyError(count int) error {
	msg := "None of the %d supplied files produced any records"
	vars := []any{count}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.LoadAllSourcesEmptyError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: all sources yielded empty tables",
			fn),
	}
}
