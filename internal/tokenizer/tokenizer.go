// Package tokenizer turns source text into a gap-free sequence of typed
// tokens using a grammar's ordered regex rules.
package tokenizer

import (
	"fmt"
	"sort"

	"github.com/alexisbeaulieu97/snapcode/internal/domain/token"
	"github.com/alexisbeaulieu97/snapcode/internal/grammar"
)

// Span is a token expressed as a half-open rune range [Start, End) of the input.
type Span struct {
	Kind  token.Kind
	Start int
	End   int
}

type match struct {
	kind  token.Kind
	rule  int
	start int
	end   int
}

// Tokenize splits code into tokens. Concatenating the token texts yields
// code exactly. Empty input yields no tokens.
func Tokenize(code string, g *grammar.Grammar) ([]token.Token, error) {
	runes := []rune(code)
	spans, err := spans(runes, g)
	if err != nil {
		return nil, err
	}

	tokens := make([]token.Token, 0, len(spans))
	for _, s := range spans {
		tokens = append(tokens, token.Token{Kind: s.Kind, Text: string(runes[s.Start:s.End])})
	}
	return tokens, nil
}

// Spans runs the same sweep as Tokenize but reports rune offsets instead of text.
func Spans(code string, g *grammar.Grammar) ([]Span, error) {
	return spans([]rune(code), g)
}

func spans(runes []rune, g *grammar.Grammar) ([]Span, error) {
	if len(runes) == 0 {
		return nil, nil
	}

	pool, err := collect(runes, g)
	if err != nil {
		return nil, err
	}

	// Ties on start offset go to the earlier-declared rule.
	sort.SliceStable(pool, func(i, j int) bool {
		if pool[i].start != pool[j].start {
			return pool[i].start < pool[j].start
		}
		return pool[i].rule < pool[j].rule
	})

	out := make([]Span, 0, 2*len(pool)+1)
	pos := 0
	for _, m := range pool {
		// Overlapping later matches are dropped whole, never truncated.
		if m.start < pos {
			continue
		}
		if m.start > pos {
			out = append(out, Span{Kind: token.Plain, Start: pos, End: m.start})
		}
		out = append(out, Span{Kind: m.kind, Start: m.start, End: m.end})
		pos = m.end
	}
	if pos < len(runes) {
		out = append(out, Span{Kind: token.Plain, Start: pos, End: len(runes)})
	}
	return out, nil
}

// collect gathers every non-overlapping match of every rule across the whole input.
func collect(runes []rune, g *grammar.Grammar) ([]match, error) {
	var pool []match
	for i, rule := range g.Rules() {
		re := rule.Regexp()
		m, err := re.FindRunesMatch(runes)
		for m != nil && err == nil {
			// Lookahead-only matches can be empty in context.
			if m.Length == 0 {
				m, err = re.FindNextMatch(m)
				continue
			}
			pool = append(pool, match{
				kind:  rule.Kind,
				rule:  i,
				start: m.Index,
				end:   m.Index + m.Length,
			})
			m, err = re.FindNextMatch(m)
		}
		if err != nil {
			return nil, fmt.Errorf("rule %d (%s): %w", i, rule.Kind, err)
		}
	}
	return pool, nil
}
