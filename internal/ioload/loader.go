// Package ioload implements the source-loading boundary: raw bytes
// plus a declared file kind go in, one normalized roster table per
// source comes out.
//
// A load never fails per file. Unsupported kinds, unreadable bytes and
// zero extractable rows all degrade to an empty table with a reason;
// the whole run fails only when every supplied file is empty.
package ioload

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gnames/gn"
	"github.com/unidadrb/padron/pkg/colmap"
	"github.com/unidadrb/padron/pkg/config"
	"github.com/unidadrb/padron/pkg/errcode"
	"github.com/unidadrb/padron/pkg/ingest"
	"github.com/unidadrb/padron/pkg/lineparse"
	"github.com/unidadrb/padron/pkg/roster"

	"github.com/unidadrb/padron/internal/iotabular"
)

// Loader dispatches sources by declared kind. It implements
// ingest.Loader.
type Loader struct {
	parser lineparse.Parser
	pdf    ingest.Extractor
	ocr    ingest.Extractor
}

// New creates a Loader. The pdf extractor reads the PDF text layer;
// ocr is the optional OCR fallback and may be nil when disabled.
func New(cfg *config.Config, pdf, ocr ingest.Extractor) *Loader {
	return &Loader{
		parser: lineparse.New(lineparse.ParseRule(cfg.Parse.NameSplit)),
		pdf:    pdf,
		ocr:    ocr,
	}
}

// Load converts one source into a normalized table.
func (l *Loader) Load(
	ctx context.Context, src ingest.Source,
) ingest.LoadResult {
	var res ingest.LoadResult

	switch src.Kind {
	case ingest.KindPDF:
		res = l.loadPDF(ctx, src)
	case ingest.KindSpreadsheet:
		res = l.loadTabular(src, iotabular.ParseXLSX)
	case ingest.KindDelimited:
		res = l.loadTabular(src, iotabular.ParseCSV)
	default:
		res.Table = roster.Table{SourceName: src.Name}
		res.Reason = ingest.ReasonUnsupportedKind
	}

	// Uniform normalization boundary: canonical identifiers, title-cased
	// names, out-of-range identifier flags for both ingestion paths.
	res.Table.Normalize()

	if res.Reason == ingest.ReasonOK && res.Table.IsEmpty() {
		res.Reason = ingest.ReasonEmptySource
	}
	return res
}

func (l *Loader) loadPDF(
	ctx context.Context, src ingest.Source,
) ingest.LoadResult {
	var res ingest.LoadResult
	res.Table.SourceName = src.Name

	text, err := l.pdf.ExtractText(ctx, src.Data)
	if err != nil {
		slog.Warn("PDF text extraction failed",
			"source", src.Name, "error", err)
		text = ""
	}

	recs := l.parser.ParseBlock(text)

	// OCR fallback only when the text layer yields no usable rows.
	if len(recs) == 0 && l.ocr != nil {
		slog.Info("No usable rows in text layer, trying OCR",
			"source", src.Name)
		text, ocrErr := l.ocr.ExtractText(ctx, src.Data)
		if ocrErr != nil {
			slog.Warn("OCR failed", "source", src.Name, "error", ocrErr)
		} else {
			recs = l.parser.ParseBlock(text)
		}
	}

	// PDFs carry no contact or enrollment columns.
	for i := range recs {
		recs[i].Contact = ""
		recs[i].Enrolled = time.Time{}
	}
	res.Table.Records = recs

	if err != nil && len(recs) == 0 {
		res.Reason = ingest.ReasonExtractFailed
	}
	return res
}

func (l *Loader) loadTabular(
	src ingest.Source,
	parse func([]byte) (colmap.Table, error),
) ingest.LoadResult {
	var res ingest.LoadResult
	res.Table.SourceName = src.Name

	t, err := parse(src.Data)
	if err != nil {
		slog.Warn("Tabular parse failed",
			"source", src.Name, "error", err)
		res.Reason = ingest.ReasonParseFailed
		var gnErr *gn.Error
		if errors.As(err, &gnErr) &&
			gnErr.Code == errcode.TabularEncodingError {
			res.Reason = ingest.ReasonEncodingFailed
		}
		return res
	}

	res.Table = colmap.Normalize(t, src.Name)
	return res
}

// LoadAll loads every source sequentially, in upload order. Order is
// never changed: it decides which table anchors the reconciliation
// report. It returns an error only when all sources yield empty
// tables.
func (l *Loader) LoadAll(
	ctx context.Context, srcs []ingest.Source,
) (*ingest.Run, error) {
	run := ingest.NewRun()

	bar := newProgressBar(len(srcs), "Loading rosters")
	defer bar.Finish()

	for _, src := range srcs {
		res := l.Load(ctx, src)
		run.Results = append(run.Results, res)
		bar.Increment()

		slog.Info("Loaded source",
			"run", run.ID,
			"source", src.Name,
			"kind", src.Kind.String(),
			"records", len(res.Table.Records),
			"reason", res.Reason.String(),
		)
	}

	if len(run.Tables()) == 0 {
		return run, AllSourcesEmptyError(len(srcs))
	}
	return run, nil
}
