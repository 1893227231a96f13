// Package ioexport serializes unified tables and reconciliation
// reports to flat tabular files, one sheet per report facet.
package ioexport

import (
	"github.com/unidadrb/padron/pkg/reconcile"
	"github.com/unidadrb/padron/pkg/roster"
)

const dateLayout = "02/01/2006"

// recordHeaders is the column set of every exported facet. The field
// set must stay aligned with roster.Record for compatibility with
// downstream consumers.
var recordHeaders = []string{
	"N", "DNI", "Apellido", "Nombre", "Mail", "Fecha Ingreso",
	"DNI Fuera de Rango",
}

// sourcedHeaders prefix the record columns with the source roster the
// row came from; used by the duplicate facets which mix sources.
var sourcedHeaders = append([]string{"Fuente"}, recordHeaders...)

func recordRow(r roster.Record) []string {
	enrolled := ""
	if !r.Enrolled.IsZero() {
		enrolled = r.Enrolled.Format(dateLayout)
	}
	flag := ""
	if r.IDOutOfRange {
		flag = "si"
	}
	return []string{
		r.SequenceID, r.Identifier, r.Surname, r.GivenName,
		r.Contact, enrolled, flag,
	}
}

func sourcedRow(row reconcile.Row) []string {
	return append([]string{row.Source}, recordRow(row.Record)...)
}
