package roster

import (
	"sort"
	"strings"
)

// FreqEntry is one row of a value-frequency summary.
type FreqEntry struct {
	Value string
	Count int
}

// TopValues counts the non-empty values produced by get over the
// records and returns the n most frequent ones. Ties break
// alphabetically so summaries are deterministic.
func TopValues(recs []Record, get func(Record) string, n int) []FreqEntry {
	counts := make(map[string]int)
	for _, r := range recs {
		if v := get(r); v != "" {
			counts[v]++
		}
	}

	res := make([]FreqEntry, 0, len(counts))
	for v, c := range counts {
		res = append(res, FreqEntry{Value: v, Count: c})
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].Count != res[j].Count {
			return res[i].Count > res[j].Count
		}
		return res[i].Value < res[j].Value
	})

	if n > 0 && len(res) > n {
		res = res[:n]
	}
	return res
}

// Search returns the records whose identifier, surname, given name or
// contact contains the query, case-insensitively. Record order is
// preserved.
func Search(recs []Record, query string) []Record {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var res []Record
	for _, r := range recs {
		haystack := strings.ToLower(strings.Join([]string{
			r.Identifier, r.Surname, r.GivenName, r.Contact,
		}, " "))
		if strings.Contains(haystack, q) {
			res = append(res, r)
		}
	}
	return res
}
