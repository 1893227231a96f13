package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/unidadrb/padron/internal/iofs"
	"github.com/unidadrb/padron/internal/ioload"
	"github.com/unidadrb/padron/internal/iopdf"
	"github.com/unidadrb/padron/pkg/config"
	"github.com/unidadrb/padron/pkg/ingest"
	"github.com/unidadrb/padron/pkg/roster"
)

// readSources reads the given files and tags each with the kind
// derived from its extension. An unreadable file is a hard error: the
// user named it explicitly.
func readSources(paths []string) ([]ingest.Source, error) {
	res := make([]ingest.Source, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, iofs.ReadFileError(path, err)
		}
		res = append(res, ingest.Source{
			Name: path,
			Kind: ingest.KindFromPath(path),
			Data: data,
		})
	}
	return res, nil
}

// newLoader wires the loader with its PDF collaborators according to
// the configuration.
func newLoader(cfg *config.Config) *ioload.Loader {
	var ocr ingest.Extractor
	if cfg.OCR.Enabled {
		ocr = iopdf.NewOCR(cfg.OCR.Command, cfg.OCR.Language)
	}
	return ioload.New(cfg, iopdf.NewTextExtractor(), ocr)
}

// loadRun reads and loads all files sequentially, in argument order.
// Order is preserved: it decides which roster anchors reconciliation.
func loadRun(ctx context.Context, paths []string) (*ingest.Run, error) {
	srcs, err := readSources(paths)
	if err != nil {
		return nil, err
	}
	return newLoader(cfg).LoadAll(ctx, srcs)
}

// printTopNames prints surname and given-name frequency summaries for
// the unified table.
func printTopNames(recs []roster.Record, n int) {
	surnames := roster.TopValues(
		recs, func(r roster.Record) string { return r.Surname }, n,
	)
	givens := roster.TopValues(
		recs, func(r roster.Record) string { return r.GivenName }, n,
	)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "\nApellido\tCantidad\n")
	for _, e := range surnames {
		fmt.Fprintf(w, "%s\t%s\n", e.Value, humanize.Comma(int64(e.Count)))
	}
	fmt.Fprintf(w, "\nNombre\tCantidad\n")
	for _, e := range givens {
		fmt.Fprintf(w, "%s\t%s\n", e.Value, humanize.Comma(int64(e.Count)))
	}
	w.Flush()
}

// printRecords prints records as an aligned text table.
func printRecords(recs []roster.Record) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "DNI\tApellido\tNombre\tMail\n")
	for _, r := range recs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			r.Identifier, r.Surname, r.GivenName, r.Contact)
	}
	w.Flush()
}
