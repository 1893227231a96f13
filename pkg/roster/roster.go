// Package roster defines the common record schema produced by every
// ingestion path and consumed by reconciliation and export.
//
// Records are created once per load pass and normalized in place right
// after creation. There is no persistent store: every table is recomputed
// fully on each run.
package roster

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Accepted digit count for a national identifier. The range comes from
// the extraction pattern used for free-text roster lines.
const (
	MinIDDigits = 6
	MaxIDDigits = 11
)

// Record is one person entry extracted from a roster source.
type Record struct {
	// SequenceID is the original line or row ordinal in string form.
	// Empty if the source line carried no leading index.
	SequenceID string

	// Identifier is the national ID (DNI) as a canonical digit string.
	// An empty string means unknown, not a valid key.
	Identifier string

	Surname   string
	GivenName string

	// Contact holds a mail or postal address. Only tabular sources
	// populate it; PDF-sourced records always leave it empty.
	Contact string

	// Enrolled is the enrollment date. The zero value means absent.
	Enrolled time.Time

	// IDOutOfRange marks a non-empty identifier whose digit count falls
	// outside [MinIDDigits, MaxIDDigits]. Flagged records still
	// participate in matching by their canonical string.
	IDOutOfRange bool
}

// Empty reports whether identifier, surname and given name are all blank.
// Such records carry no usable information and are dropped by parsers.
func (r Record) Empty() bool {
	return r.Identifier == "" && r.Surname == "" && r.GivenName == ""
}

// Normalize canonicalizes the record fields in place: the identifier is
// reduced to its digits, names are title-cased and trimmed, the contact
// is trimmed, and the out-of-range flag is recomputed. Normalizing an
// already normalized record is a no-op.
func (r *Record) Normalize() {
	r.Identifier = CanonicalID(r.Identifier)
	r.Surname = TitleCase(r.Surname)
	r.GivenName = TitleCase(r.GivenName)
	r.Contact = strings.TrimSpace(r.Contact)
	r.IDOutOfRange = r.Identifier != "" &&
		(len(r.Identifier) < MinIDDigits || len(r.Identifier) > MaxIDDigits)
}

// Table is an ordered collection of records from one source, or from the
// concatenation of several sources. SourceName is assigned at load time
// and is used by multi-source reconciliation only.
type Table struct {
	SourceName string
	Records    []Record
}

// Normalize applies Record.Normalize to every row.
func (t *Table) Normalize() {
	for i := range t.Records {
		t.Records[i].Normalize()
	}
}

// IsEmpty reports whether the table has no rows. An empty table is a
// valid load outcome, the caller excludes it from multi-source work.
func (t *Table) IsEmpty() bool {
	return len(t.Records) == 0
}

// Concat merges tables into a single table, preserving upload order and
// row order. The provenance of individual rows is kept via the source
// tables' order; the merged table gets the given name.
func Concat(name string, tables ...Table) Table {
	res := Table{SourceName: name}
	for _, t := range tables {
		res.Records = append(res.Records, t.Records...)
	}
	return res
}

// CanonicalID strips every non-digit character from an identifier cell.
// Letters, punctuation and whitespace all disappear: "12-34-56" becomes
// "123456".
func CanonicalID(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// TitleCase trims the string and converts it to Spanish title case:
// "PEREZ GOMEZ" becomes "Perez Gomez".
func TitleCase(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	return cases.Title(language.Spanish).String(s)
}
