// Package reconcile computes cross-source record set operations:
// intersection by key, per-source complements, and duplicate detection
// over the concatenation of all sources.
//
// Keying is exact-string equality after normalization; there is no
// fuzzy matching. Rows with an empty key value never participate.
package reconcile

import (
	"github.com/unidadrb/padron/pkg/roster"
)

// Key selects which record field drives the set operations.
type Key int

const (
	ByIdentifier Key = iota
	ByContact
)

// Value returns the record's key value for this key.
func (k Key) Value(r roster.Record) string {
	if k == ByContact {
		return r.Contact
	}
	return r.Identifier
}

// Row is a record together with its source provenance, used by the
// duplicate facets which mix rows from every table.
type Row struct {
	Source string
	Record roster.Record
}

// Report is the outcome of reconciling N tables. It is derived on every
// run and never persisted.
type Report struct {
	// Common holds the rows of the first table whose key appears in
	// every table. Attributes shown for a common record come from the
	// first source by design, the report does not merge fields.
	Common roster.Table

	// MissingPerSource has one entry per input table, in input order:
	// the subset of Common whose key is absent from that table. It
	// flags partial presence inside the otherwise-common set.
	MissingPerSource []roster.Table

	// DuplicatesByIdentifier and DuplicatesByContact hold every row of
	// the concatenated tables whose non-empty key is shared with at
	// least one other row, within or across sources.
	DuplicatesByIdentifier []Row
	DuplicatesByContact    []Row

	// MatchCountPerSource counts duplicate-by-identifier rows per
	// source provenance tag.
	MatchCountPerSource map[string]int
}

// Reconcile computes the report over the given tables. The common and
// missing facets are keyed by the given key; the duplicate facets are
// always computed for both identifier and contact.
//
// Callers guard the degenerate cases: with fewer than two tables the
// reconciliation step is skipped entirely, Reconcile itself is never
// invoked.
func Reconcile(tables []roster.Table, key Key) *Report {
	res := &Report{}

	// Restrict each table to rows with a non-empty key before any set
	// operation.
	keyed := make([]roster.Table, len(tables))
	sets := make([]map[string]struct{}, len(tables))
	for i, t := range tables {
		keyed[i] = filterKeyed(t, key)
		sets[i] = keySet(keyed[i], key)
	}

	// Iterative intersection, seeded from table 0.
	common := sets[0]
	for _, s := range sets[1:] {
		common = intersect(common, s)
	}

	res.Common = roster.Table{SourceName: keyed[0].SourceName}
	for _, r := range keyed[0].Records {
		if _, ok := common[key.Value(r)]; ok {
			res.Common.Records = append(res.Common.Records, r)
		}
	}

	res.MissingPerSource = make([]roster.Table, len(tables))
	for i := range tables {
		missing := roster.Table{SourceName: tables[i].SourceName}
		for _, r := range res.Common.Records {
			if _, ok := sets[i][key.Value(r)]; !ok {
				missing.Records = append(missing.Records, r)
			}
		}
		res.MissingPerSource[i] = missing
	}

	res.DuplicatesByIdentifier = Duplicates(tables, ByIdentifier)
	res.DuplicatesByContact = Duplicates(tables, ByContact)

	res.MatchCountPerSource = make(map[string]int)
	for _, row := range res.DuplicatesByIdentifier {
		res.MatchCountPerSource[row.Source]++
	}

	return res
}

// Duplicates concatenates all tables and returns every row whose
// non-empty key value appears on two or more rows. Row order follows
// the concatenation order.
func Duplicates(tables []roster.Table, key Key) []Row {
	counts := make(map[string]int)
	for _, t := range tables {
		for _, r := range t.Records {
			if v := key.Value(r); v != "" {
				counts[v]++
			}
		}
	}

	var res []Row
	for _, t := range tables {
		for _, r := range t.Records {
			if v := key.Value(r); v != "" && counts[v] > 1 {
				res = append(res, Row{Source: t.SourceName, Record: r})
			}
		}
	}
	return res
}

func filterKeyed(t roster.Table, key Key) roster.Table {
	res := roster.Table{SourceName: t.SourceName}
	for _, r := range t.Records {
		if key.Value(r) != "" {
			res.Records = append(res.Records, r)
		}
	}
	return res
}

func keySet(t roster.Table, key Key) map[string]struct{} {
	res := make(map[string]struct{}, len(t.Records))
	for _, r := range t.Records {
		res[key.Value(r)] = struct{}{}
	}
	return res
}

func intersect(a, b map[string]struct{}) map[string]struct{} {
	res := make(map[string]struct{})
	for k := range a {
		if _, ok := b[k]; ok {
			res[k] = struct{}{}
		}
	}
	return res
}
