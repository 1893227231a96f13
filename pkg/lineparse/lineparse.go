// Package lineparse converts free-text roster lines into records.
//
// It handles a single expected line shape: an optional leading index,
// a 6-11 digit identifier token somewhere in the line, then surname and
// given-name tokens. Arbitrary document layouts are out of scope.
package lineparse

import (
	"regexp"
	"strings"

	"github.com/unidadrb/padron/pkg/roster"
)

// identifierRe matches a whole token of 6 to 11 digits.
var identifierRe = regexp.MustCompile(`^\d{6,11}$`)

// digitsRe matches a whole token made of digits of any length.
var digitsRe = regexp.MustCompile(`^\d+$`)

// SplitRule selects how remainder tokens are divided between surname and
// given name. Two variants of the rule exist in roster sources; the
// permissive one is the default.
type SplitRule int

const (
	// SplitPermissive gives the surname two tokens when three or more
	// remain, one token when only one or two remain.
	SplitPermissive SplitRule = iota
	// SplitStrict gives the surname exactly one token in every case.
	SplitStrict
)

// ParseRule converts a config string into a SplitRule. Unknown values
// fall back to the permissive rule.
func ParseRule(s string) SplitRule {
	if strings.ToLower(strings.TrimSpace(s)) == "strict" {
		return SplitStrict
	}
	return SplitPermissive
}

// Parser extracts records from roster lines.
type Parser struct {
	rule SplitRule
}

// New returns a Parser with the given name-split rule.
func New(rule SplitRule) Parser {
	return Parser{rule: rule}
}

// ParseLine parses one raw text line. It returns ok=false only for a
// blank line; a line with tokens but no identifier still yields a record
// with an empty identifier. Callers decide whether an all-empty record
// is worth keeping.
func (p Parser) ParseLine(line string) (roster.Record, bool) {
	line = strings.Join(strings.Fields(line), " ")
	if line == "" {
		return roster.Record{}, false
	}

	parts := strings.Split(line, " ")

	var rec roster.Record
	if digitsRe.MatchString(parts[0]) {
		rec.SequenceID = parts[0]
	}

	// The identifier search runs over the original tokens, so the first
	// token can double as both sequence id and identifier.
	for _, tok := range parts {
		if identifierRe.MatchString(tok) {
			rec.Identifier = tok
			break
		}
	}

	var rest string
	if rec.Identifier != "" {
		// Everything after the first occurrence of the identifier.
		rest = strings.SplitN(line, rec.Identifier, 2)[1]
	} else {
		// No identifier: the first token is consumed as a sequence id
		// candidate and discarded even when it was not numeric.
		rest = strings.Join(parts[1:], " ")
	}

	tokens := strings.Fields(rest)
	surname, given := p.splitName(tokens)
	rec.Surname = roster.TitleCase(surname)
	rec.GivenName = roster.TitleCase(given)

	return rec, true
}

func (p Parser) splitName(tokens []string) (surname, given string) {
	switch {
	case len(tokens) == 0:
		return "", ""
	case p.rule == SplitStrict:
		return tokens[0], strings.Join(tokens[1:], " ")
	case len(tokens) >= 3:
		return strings.Join(tokens[:2], " "), strings.Join(tokens[2:], " ")
	case len(tokens) == 2:
		return tokens[0], tokens[1]
	default:
		return tokens[0], ""
	}
}

// ParseBlock applies ParseLine to every line of a text block, dropping
// blank lines and records with no identifier, surname or given name.
// Document order is preserved. An empty or entirely unparseable block
// yields an empty slice, never an error.
func (p Parser) ParseBlock(text string) []roster.Record {
	var res []roster.Record
	for _, line := range strings.Split(text, "\n") {
		rec, ok := p.ParseLine(line)
		if !ok || rec.Empty() {
			continue
		}
		res = append(res, rec)
	}
	return res
}
