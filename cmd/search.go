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
	"github.com/unidadrb/padron/pkg/roster"
)

// getSearchCmd returns the search command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getSearchCmd() *cobra.Command {
	searchCmd := &cobra.Command{
		Use:   "search query file...",
		Short: "Find people in the unified table",
		Long: `Load one or more roster files, merge them, and print the
records whose DNI, surname, given name or contact address contain the
query. Matching ignores letter case.

Examples:
  # Find every Fernandez across two rosters
  padron search fernandez afiliados.pdf padron_2024.xlsx

  # Look up a DNI fragment
  padron search 2840 afiliados.csv`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runSearch(cmd, args)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	return searchCmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	start := time.Now()
	query := args[0]

	run, err := loadRun(ctx, args[1:])
	if err != nil {
		return err
	}

	tables := run.Tables()
	unified := roster.Concat("padron_unificado", tables...)

	matches := roster.Search(unified.Records, query)
	if len(matches) == 0 {
		gn.Info("No records match <em>%s</em>", query)
	} else {
		gn.Info("<em>%s</em> records match <em>%s</em>",
			humanize.Comma(int64(len(matches))), query)
		printRecords(matches)
	}

	slog.Info("Search finished",
		"run", run.ID,
		"query", query,
		"matches", len(matches),
		"duration", gnfmt.TimeString(time.Since(start).Seconds()),
	)
	return nil
}
