package search

import (
	"strings"
	"testing"

	"tableflip.dev/weighbridge/pkg/manifest"
)

func TestFilterBlankQueryReturnsAll(t *testing.T) {
	entries := manifest.Seed()
	for _, raw := range []string{"", "   ", "\t"} {
		got := Filter(entries, raw)
		if len(got) != len(entries) {
			t.Fatalf("Filter(%q) returned %d entries, want %d", raw, len(got), len(entries))
		}
		for i := range entries {
			if got[i] != entries[i] {
				t.Fatalf("Filter(%q) reordered entries", raw)
			}
		}
	}
}

func TestFilterCaseInsensitiveSubstring(t *testing.T) {
	entries := manifest.Seed()
	tests := []struct {
		query string
		want  []string
	}{
		{"cHk-0092", []string{"1"}},
		{"chk", []string{"1", "2"}},
		{"30a 777", []string{"1"}},
		{"2024-06-18", []string{"2"}},
		{"17000", []string{"2"}},
		{"40000", []string{"2"}},
		{"no such", nil},
	}
	for _, tt := range tests {
		got := Filter(entries, tt.query)
		if len(got) != len(tt.want) {
			t.Fatalf("Filter(%q) returned %d entries, want %d", tt.query, len(got), len(tt.want))
		}
		for i, e := range got {
			if e.ID != tt.want[i] {
				t.Errorf("Filter(%q)[%d] = id %s, want %s", tt.query, i, e.ID, tt.want[i])
			}
		}
	}
}

func TestFilterExcludedEntriesMatchNothing(t *testing.T) {
	entries := manifest.Seed()
	q := Compile("0092")
	returned := map[string]bool{}
	for _, e := range Filter(entries, "0092") {
		returned[e.ID] = true
		if !q.MatchEntry(e) {
			t.Errorf("returned entry %s has no matching field", e.ID)
		}
	}
	for _, e := range entries {
		if !returned[e.ID] && q.MatchEntry(e) {
			t.Errorf("excluded entry %s has a matching field", e.ID)
		}
	}
}

func TestHighlightSpansReconstructValue(t *testing.T) {
	values := []string{"CHK-0092", "30A 777 AA", "2024-06-17", "", "aaaAAaa"}
	queries := []string{"", "a", "AA", "0", "chk", "zz", "7 7"}
	for _, v := range values {
		for _, q := range queries {
			var b strings.Builder
			for _, s := range Highlight(v, q) {
				b.WriteString(s.Text)
			}
			if b.String() != v {
				t.Errorf("Highlight(%q, %q) spans rebuild %q", v, q, b.String())
			}
		}
	}
}

func TestHighlightWholeValueMatch(t *testing.T) {
	spans := Highlight("CHK-0092", "cHk-0092")
	if len(spans) != 1 || !spans[0].Matched || spans[0].Text != "CHK-0092" {
		t.Fatalf("spans = %#v, want single matched span with original casing", spans)
	}
}

func TestHighlightGapsAndOccurrences(t *testing.T) {
	spans := Highlight("aaaAAaa", "aa")
	want := []Span{
		{Text: "aa", Matched: true},
		{Text: "aA", Matched: true},
		{Text: "Aa", Matched: true},
		{Text: "a"},
	}
	if len(spans) != len(want) {
		t.Fatalf("spans = %#v, want %#v", spans, want)
	}
	for i := range want {
		if spans[i] != want[i] {
			t.Fatalf("span %d = %#v, want %#v", i, spans[i], want[i])
		}
	}
}

func TestHighlightBlankQuerySingleUnmatchedSpan(t *testing.T) {
	spans := Highlight("30A 777 AA", "  ")
	if len(spans) != 1 || spans[0].Matched || spans[0].Text != "30A 777 AA" {
		t.Fatalf("spans = %#v, want one unmatched span", spans)
	}
}

func TestQuerySpecialCharactersMatchLiterally(t *testing.T) {
	if got := Filter(manifest.Seed(), ".*"); len(got) != 0 {
		t.Fatalf("pattern metacharacters must not act as wildcards, matched %d", len(got))
	}
	spans := Highlight("CHK-0092 (paid)", "(paid)")
	if len(spans) != 2 || !spans[1].Matched || spans[1].Text != "(paid)" {
		t.Fatalf("spans = %#v, want literal parenthesis match", spans)
	}
	// A lone metacharacter must never panic the matcher.
	for _, q := range []string{"(", "[", "\\", "+", "?", "^$"} {
		_ = Filter(manifest.Seed(), q)
		_ = Highlight("30A 777 AA", q)
	}
}
