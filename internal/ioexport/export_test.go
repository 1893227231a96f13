package ioexport_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unidadrb/padron/internal/ioexport"
	"github.com/unidadrb/padron/pkg/reconcile"
	"github.com/unidadrb/padron/pkg/roster"
	"github.com/xuri/excelize/v2"
)

func sampleTable() roster.Table {
	return roster.Table{
		SourceName: "padron_unificado",
		Records: []roster.Record{
			{
				SequenceID: "1",
				Identifier: "28401933",
				Surname:    "Perez",
				GivenName:  "Juan",
				Contact:    "juan@example.com",
				Enrolled:   time.Date(2019, 3, 15, 0, 0, 0, 0, time.UTC),
			},
			{
				SequenceID:   "2",
				Identifier:   "123",
				Surname:      "Gomez",
				GivenName:    "Maria",
				IDOutOfRange: true,
			},
		},
	}
}

func TestWriteUnified(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}

	path := filepath.Join(t.TempDir(), "unificado.xlsx")
	dup := []reconcile.Row{
		{Source: "a.csv", Record: sampleTable().Records[0]},
		{Source: "b.csv", Record: sampleTable().Records[0]},
	}

	err := ioexport.WriteUnified(path, sampleTable(), dup, nil)
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t,
		[]string{"Padron", "Duplicados DNI", "Duplicados Contacto"},
		f.GetSheetList())

	rows, err := f.GetRows("Padron")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "DNI", rows[0][1])
	assert.Equal(t, "28401933", rows[1][1])
	assert.Equal(t, "15/03/2019", rows[1][5])
	// Out-of-range flag column.
	assert.Equal(t, "si", rows[2][6])

	dupRows, err := f.GetRows("Duplicados DNI")
	require.NoError(t, err)
	require.Len(t, dupRows, 3)
	assert.Equal(t, "Fuente", dupRows[0][0])
	assert.Equal(t, "a.csv", dupRows[1][0])
	assert.Equal(t, "b.csv", dupRows[2][0])
}

func TestWriteReconcile(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}

	path := filepath.Join(t.TempDir(), "cruce.xlsx")
	rep := &reconcile.Report{
		Common: sampleTable(),
		MissingPerSource: []roster.Table{
			{SourceName: "a.csv"},
			{SourceName: "b.csv", Records: sampleTable().Records[:1]},
		},
	}

	err := ioexport.WriteReconcile(path, rep)
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t,
		[]string{
			"Coincidencias", "Faltantes 1", "Faltantes 2",
			"Duplicados DNI", "Duplicados Contacto",
		},
		f.GetSheetList())

	rows, err := f.GetRows("Faltantes 2")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "28401933", rows[1][1])
}

func TestWriteCSV(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that uses file system in short mode")
	}

	path := filepath.Join(t.TempDir(), "unificado.csv")
	err := ioexport.WriteCSV(path, sampleTable())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content,
		"N,DNI,Apellido,Nombre,Mail,Fecha Ingreso,DNI Fuera de Rango")
	assert.Contains(t, content, "1,28401933,Perez,Juan,juan@example.com,15/03/2019,")
	assert.Contains(t, content, "2,123,Gomez,Maria,,,si")
}

func TestWriteCSVBadPath(t *testing.T) {
	err := ioexport.WriteCSV("/nonexistent-dir/out.csv", sampleTable())
	assert.Error(t, err)
}
