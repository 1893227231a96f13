package ingest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unidadrb/padron/pkg/ingest"
	"github.com/unidadrb/padron/pkg/roster"
)

func TestKindFromPath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected ingest.Kind
	}{
		{"pdf", "padron.pdf", ingest.KindPDF},
		{"uppercase extension", "PADRON.PDF", ingest.KindPDF},
		{"xlsx", "afiliados.xlsx", ingest.KindSpreadsheet},
		{"legacy xls", "afiliados.xls", ingest.KindSpreadsheet},
		{"csv", "externos.csv", ingest.KindDelimited},
		{"with directories", "/tmp/uploads/padron.2024.csv", ingest.KindDelimited},
		{"no extension", "padron", ingest.KindUnknown},
		{"unsupported extension", "padron.txt", ingest.KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ingest.KindFromPath(tt.path))
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "pdf", ingest.KindPDF.String())
	assert.Equal(t, "spreadsheet", ingest.KindSpreadsheet.String())
	assert.Equal(t, "delimited-text", ingest.KindDelimited.String())
	assert.Equal(t, "unknown", ingest.KindUnknown.String())
}

func TestRun(t *testing.T) {
	t.Run("fresh runs get distinct ids", func(t *testing.T) {
		a, b := ingest.NewRun(), ingest.NewRun()
		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("tables skips empty results and keeps order", func(t *testing.T) {
		run := ingest.NewRun()
		run.Results = []ingest.LoadResult{
			{
				Table: roster.Table{
					SourceName: "a.csv",
					Records:    []roster.Record{{Identifier: "111111"}},
				},
			},
			{
				Table:  roster.Table{SourceName: "vacio.pdf"},
				Reason: ingest.ReasonEmptySource,
			},
			{
				Table: roster.Table{
					SourceName: "b.xlsx",
					Records:    []roster.Record{{Identifier: "222222"}},
				},
			},
		}

		tables := run.Tables()
		require.Len(t, tables, 2)
		assert.Equal(t, "a.csv", tables[0].SourceName)
		assert.Equal(t, "b.xlsx", tables[1].SourceName)
	})

	t.Run("run with no results has no tables", func(t *testing.T) {
		assert.Empty(t, ingest.NewRun().Tables())
	})
}
