package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError
	WriteFileError

	// Logging errors
	CreateLogFileError

	// Config errors
	ConfigParseError

	// Load errors
	LoadUnsupportedKindError
	LoadAllSourcesEmptyError

	// PDF errors
	PDFExtractError
	OCRCommandError

	// Tabular errors
	TabularEncodingError
	TabularParseError
	SpreadsheetOpenError

	// Export errors
	ExportWorkbookError
	ExportCSVError
)
