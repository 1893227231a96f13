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
	"github.com/unidadrb/padron/pkg/reconcile"
)

// getReconcileCmd returns the reconcile command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getReconcileCmd() *cobra.Command {
	var (
		output string
		byKey  string
	)

	reconcileCmd := &cobra.Command{
		Use:   "reconcile file...",
		Short: "Cross-match two or more rosters",
		Long: `Load two or more roster files and cross-match them:

  - records present in every roster (attributes come from the first
    roster, which anchors the report)
  - for each roster, which of those common records it is missing
  - duplicate rows by DNI and by contact address over the
    concatenation of all rosters
  - duplicate counts attributed per source roster

With fewer than two non-empty rosters the cross-match is skipped.

Examples:
  # Cross three rosters by DNI
  padron reconcile viejo.pdf nuevo.xlsx externos.csv

  # Cross by contact address and save the report
  padron reconcile --by contact -o cruce.xlsx a.csv b.csv`,
		Aliases: []string{"cross"},
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runReconcile(cmd, args, output, byKey)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	reconcileCmd.Flags().StringVarP(
		&output, "output", "o", "",
		"write the report workbook to this path",
	)
	reconcileCmd.Flags().StringVarP(
		&byKey, "by", "b", "dni",
		"matching key: dni or contact",
	)

	return reconcileCmd
}

func runReconcile(
	cmd *cobra.Command, args []string, output, byKey string,
) error {
	ctx := context.Background()
	start := time.Now()

	key := reconcile.ByIdentifier
	if byKey == "contact" {
		key = reconcile.ByContact
	}

	run, err := loadRun(ctx, args)
	if err != nil {
		return err
	}

	tables := run.Tables()

	// Caller-level guard: with fewer than two non-empty rosters the
	// reconciliation step is skipped entirely.
	if len(tables) < 2 {
		gn.Warn(`<warn>Only %d roster produced records, nothing to cross-match.</warn>
   Supply at least two non-empty rosters.`, len(tables))
		return nil
	}

	rep := reconcile.Reconcile(tables, key)

	gn.Info("Crossing <em>%d</em> rosters by %s", len(tables), byKey)
	gn.Info("Records present in all rosters: <em>%s</em>",
		humanize.Comma(int64(len(rep.Common.Records))))

	for _, missing := range rep.MissingPerSource {
		gn.Info("Missing from <em>%s</em>: %s",
			missing.SourceName,
			humanize.Comma(int64(len(missing.Records))))
	}

	gn.Info("Duplicate rows by DNI: <em>%s</em>, by contact: <em>%s</em>",
		humanize.Comma(int64(len(rep.DuplicatesByIdentifier))),
		humanize.Comma(int64(len(rep.DuplicatesByContact))))

	// Report in upload order, map iteration order is not stable.
	for _, t := range tables {
		if count := rep.MatchCountPerSource[t.SourceName]; count > 0 {
			gn.Info("Duplicates attributed to <em>%s</em>: %s",
				t.SourceName, humanize.Comma(int64(count)))
		}
	}

	if output != "" {
		if err := ioexport.WriteReconcile(output, rep); err != nil {
			return err
		}
		gn.Info("Wrote <em>%s</em>", output)
	}

	slog.Info("Reconcile finished",
		"run", run.ID,
		"rosters", len(tables),
		"common", len(rep.Common.Records),
		"duration", gnfmt.TimeString(time.Since(start).Seconds()),
	)
	return nil
}
