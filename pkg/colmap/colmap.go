// Package colmap normalizes heterogeneous tabular sources into the
// common roster schema.
//
// Column headers in uploaded spreadsheets are free text with
// uncontrolled case and spelling. Each semantic role is resolved by
// case-insensitive substring matching against a fixed vocabulary; when
// several headers match the same role, the first one in column order
// wins. There is no scoring or further disambiguation.
package colmap

import (
	"strconv"
	"strings"
	"time"

	"github.com/unidadrb/padron/pkg/roster"
)

// Table is a generic header+rows structure produced by the tabular
// parsers before any schema interpretation.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Role is a semantic column role in the common schema.
type Role int

const (
	RoleIdentifier Role = iota
	RoleSurname
	RoleGivenName
	RoleContact
	RoleEnrolled
)

// roleSubstrings holds the recognition vocabulary per role. A header
// matches a role when its lowercased form contains any of the
// substrings. "domicilio" and "direc" count as contact on purpose:
// rosters that carry a postal address instead of a mail use the same
// slot.
var roleSubstrings = map[Role][]string{
	RoleIdentifier: {"dni"},
	RoleSurname:    {"apell"},
	RoleGivenName:  {"nom"},
	RoleContact:    {"mail", "email", "domicilio", "direc"},
	RoleEnrolled:   {"fecha", "ingreso", "alta", "inscrip"},
}

// dateLayouts are tried in order when parsing enrollment cells.
// Argentine rosters use day-first dates.
var dateLayouts = []string{
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2006-01-02",
	"2006/01/02",
	"02/01/06",
}

// ResolveRole returns the index of the first header matching the role,
// or -1 when no header matches.
func ResolveRole(headers []string, role Role) int {
	for i, h := range headers {
		h = strings.ToLower(h)
		for _, sub := range roleSubstrings[role] {
			if strings.Contains(h, sub) {
				return i
			}
		}
	}
	return -1
}

// Normalize maps a generic table into a roster table. Unresolved roles
// degrade to empty values for every row, missing cells become empty
// strings, unparseable dates become absent. Row identity is the
// zero-based row position, not any identifier found in the data.
func Normalize(t Table, sourceName string) roster.Table {
	cols := make(map[Role]int, len(roleSubstrings))
	for role := range roleSubstrings {
		cols[role] = ResolveRole(t.Headers, role)
	}

	res := roster.Table{
		SourceName: sourceName,
		Records:    make([]roster.Record, 0, len(t.Rows)),
	}
	for i, row := range t.Rows {
		rec := roster.Record{
			SequenceID: strconv.Itoa(i),
			Identifier: roster.CanonicalID(cell(row, cols[RoleIdentifier])),
			Surname:    roster.TitleCase(cell(row, cols[RoleSurname])),
			GivenName:  roster.TitleCase(cell(row, cols[RoleGivenName])),
			Contact:    strings.TrimSpace(cell(row, cols[RoleContact])),
			Enrolled:   parseDate(cell(row, cols[RoleEnrolled])),
		}
		res.Records = append(res.Records, rec)
	}
	return res
}

// cell returns the value at column idx, or "" when the role is
// unresolved or the row is short.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// parseDate parses an enrollment cell. Unparseable cells degrade to the
// zero time, they never fail the row.
func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
