// Package ingest defines the contracts of the file-in / table-out
// boundary: a raw byte payload plus a declared file kind goes in, one
// normalized roster table per source comes out.
package ingest

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/unidadrb/padron/pkg/roster"
)

// Kind is the declared kind of an uploaded file, derived from its
// filename extension.
type Kind int

const (
	KindUnknown Kind = iota
	KindPDF
	KindSpreadsheet
	KindDelimited
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindPDF:
		return "pdf"
	case KindSpreadsheet:
		return "spreadsheet"
	case KindDelimited:
		return "delimited-text"
	default:
		return "unknown"
	}
}

// KindFromPath derives the declared kind from a filename extension.
func KindFromPath(path string) Kind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return KindPDF
	case ".xlsx", ".xls":
		return KindSpreadsheet
	case ".csv":
		return KindDelimited
	default:
		return KindUnknown
	}
}

// Source is one uploaded roster file.
type Source struct {
	// Name is the file name, used as the table's provenance tag.
	Name string
	Kind Kind
	Data []byte
}

// Reason explains why a load produced the table it did. It lets the
// caller distinguish a genuinely empty source from a degraded parse.
type Reason int

const (
	ReasonOK Reason = iota
	ReasonEmptySource
	ReasonUnsupportedKind
	ReasonExtractFailed
	ReasonEncodingFailed
	ReasonParseFailed
)

// String implements fmt.Stringer.
func (r Reason) String() string {
	switch r {
	case ReasonOK:
		return "ok"
	case ReasonEmptySource:
		return "source yielded no records"
	case ReasonUnsupportedKind:
		return "unsupported file kind"
	case ReasonExtractFailed:
		return "text extraction failed"
	case ReasonEncodingFailed:
		return "character encoding not recognized"
	case ReasonParseFailed:
		return "tabular parse failed"
	default:
		return "unknown"
	}
}

// LoadResult is the outcome of loading one source. A load never fails
// per file: degradations yield an empty table plus a reason.
type LoadResult struct {
	Table  roster.Table
	Reason Reason
}

// Loader turns one source into a normalized table.
type Loader interface {
	// Load dispatches the source bytes by declared kind and returns
	// the normalized table. A zero-record table is a valid outcome.
	Load(ctx context.Context, src Source) LoadResult
}

// Extractor is an external text-extraction collaborator: it accepts
// PDF bytes and returns best-effort plain text. Both the text-layer
// extractor and the OCR fallback implement it.
type Extractor interface {
	ExtractText(ctx context.Context, data []byte) (string, error)
}

// Run holds the request-scoped state of one pipeline invocation. It
// replaces any notion of "current uploaded files": every run is
// independent and nothing is cached across runs.
type Run struct {
	ID      uuid.UUID
	Results []LoadResult
}

// NewRun creates a run with a fresh id.
func NewRun() *Run {
	return &Run{ID: uuid.New()}
}

// Tables returns the non-empty tables of the run, in upload order.
// Order is significant downstream: the first table is the attribute
// source for common records.
func (r *Run) Tables() []roster.Table {
	var res []roster.Table
	for _, lr := range r.Results {
		if !lr.Table.IsEmpty() {
			res = append(res, lr.Table)
		}
	}
	return res
}
