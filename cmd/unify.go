/*
Copyright © 2025 Unidad Roja y Blanca

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/spf13/cobra"
	"github.com/unidadrb/padron/internal/ioexport"
	"github.com/unidadrb/padron/pkg/config"
	"github.com/unidadrb/padron/pkg/reconcile"
	"github.com/unidadrb/padron/pkg/roster"
)

// getUnifyCmd returns the unify command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getUnifyCmd() *cobra.Command {
	var (
		output string
		format string
	)

	unifyCmd := &cobra.Command{
		Use:   "unify file...",
		Short: "Merge rosters into one cleaned table",
		Long: `Load one or more roster files, merge them into a single
cleaned table, flag duplicate entries, and export the result.

Each file is parsed according to its extension:
  .pdf        text-layer extraction (OCR fallback when enabled)
  .xlsx .xls  spreadsheet column mapping
  .csv        delimited text column mapping

The export carries three facets: the unified rows, duplicates by
national identifier (DNI), and duplicates by contact address.

Examples:
  # Merge two rosters into padron_unificado.xlsx
  padron unify afiliados.pdf padron_2024.xlsx

  # Choose the output file and CSV format
  padron unify -o padron.csv -f csv afiliados.csv`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runUnify(cmd, args, output, format)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	unifyCmd.Flags().StringVarP(
		&output, "output", "o", "",
		"export file path (default padron_unificado.<format>)",
	)
	unifyCmd.Flags().StringVarP(
		&format, "format", "f", "",
		"export format: xlsx or csv",
	)

	return unifyCmd
}

func runUnify(
	cmd *cobra.Command, args []string, output, format string,
) error {
	ctx := context.Background()
	start := time.Now()

	if cmd.Flags().Changed("format") {
		cfg.Update([]config.Option{config.OptExportFormat(format)})
	}

	run, err := loadRun(ctx, args)
	if err != nil {
		return err
	}

	tables := run.Tables()
	unified := roster.Concat("padron_unificado", tables...)
	// Already normalized at load time; normalization is idempotent.
	unified.Normalize()

	gn.Info("Loaded <em>%s</em> rosters, <em>%s</em> records total",
		humanize.Comma(int64(len(tables))),
		humanize.Comma(int64(len(unified.Records))))

	dupID := reconcile.Duplicates(tables, reconcile.ByIdentifier)
	dupContact := reconcile.Duplicates(tables, reconcile.ByContact)

	if len(dupID) > 0 {
		gn.Warn("<warn>%s rows share a DNI with another row</warn>",
			humanize.Comma(int64(len(dupID))))
	} else {
		gn.Info("No duplicates by DNI")
	}

	printTopNames(unified.Records, cfg.Export.TopNames)

	if output == "" {
		output = "padron_unificado." + cfg.Export.Format
	}
	switch cfg.Export.Format {
	case "csv":
		err = ioexport.WriteCSV(output, unified)
	default:
		err = ioexport.WriteUnified(output, unified, dupID, dupContact)
	}
	if err != nil {
		return err
	}

	gn.Info("Wrote <em>%s</em>", output)
	slog.Info("Unify finished",
		"run", run.ID,
		"records", len(unified.Records),
		"duplicates_dni", len(dupID),
		"duplicates_contact", len(dupContact),
		"duration", gnfmt.TimeString(time.Since(start).Seconds()),
	)
	return nil
}
