// Package search implements the manifest substring filter and the
// match-span highlighter the table view renders from.
package search

import (
	"regexp"
	"strings"

	"tableflip.dev/weighbridge/pkg/manifest"
)

// Span is one run of text in a highlighted value. Matched runs are the
// query occurrences; the rest are gaps.
type Span struct {
	Text    string
	Matched bool
}

// Query is a compiled search term. The zero value and Compile("") both
// match everything.
type Query struct {
	term string
	re   *regexp.Regexp
}

// Compile trims the raw query and builds a case-insensitive literal
// matcher. The term is quoted before compilation so pattern-special
// characters in operator input always match literally.
func Compile(raw string) Query {
	term := strings.TrimSpace(raw)
	if term == "" {
		return Query{}
	}
	return Query{
		term: term,
		re:   regexp.MustCompile(`(?i)` + regexp.QuoteMeta(term)),
	}
}

// Empty reports whether the query matches everything.
func (q Query) Empty() bool {
	return q.re == nil
}

// Term returns the trimmed query text.
func (q Query) Term() string {
	return q.term
}

// MatchEntry reports whether any textual field of the entry contains the
// query as a case-insensitive substring.
func (q Query) MatchEntry(e *manifest.Entry) bool {
	if q.Empty() {
		return true
	}
	for _, field := range e.Fields() {
		if q.re.MatchString(field) {
			return true
		}
	}
	return false
}

// Filter returns the entries matching the query, preserving order. A blank
// query returns all entries.
func Filter(entries []*manifest.Entry, raw string) []*manifest.Entry {
	q := Compile(raw)
	if q.Empty() {
		return entries
	}
	matched := make([]*manifest.Entry, 0, len(entries))
	for _, e := range entries {
		if q.MatchEntry(e) {
			matched = append(matched, e)
		}
	}
	return matched
}

// Highlight splits value on every non-overlapping, left-to-right
// occurrence of the query, tagging occurrences as matched. Concatenating
// the span texts always reproduces value exactly, original casing intact.
func (q Query) Highlight(value string) []Span {
	if q.Empty() || value == "" {
		return []Span{{Text: value}}
	}
	locs := q.re.FindAllStringIndex(value, -1)
	if len(locs) == 0 {
		return []Span{{Text: value}}
	}
	spans := make([]Span, 0, 2*len(locs)+1)
	prev := 0
	for _, loc := range locs {
		if loc[0] > prev {
			spans = append(spans, Span{Text: value[prev:loc[0]]})
		}
		spans = append(spans, Span{Text: value[loc[0]:loc[1]], Matched: true})
		prev = loc[1]
	}
	if prev < len(value) {
		spans = append(spans, Span{Text: value[prev:]})
	}
	return spans
}

// Highlight is the convenience form for a raw query string.
func Highlight(value, raw string) []Span {
	return Compile(raw).Highlight(value)
}
