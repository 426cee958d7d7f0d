// Package grammar holds the lexical rule sets used to tokenize source code
// and the process-wide registry that maps language identifiers to them.
package grammar

import (
	"fmt"
	"strings"
	"time"

	"github.com/dlclark/regexp2"

	"github.com/alexisbeaulieu97/snapcode/internal/domain/token"
)

// MatchTimeout bounds a single regex evaluation so a pathological pattern
// surfaces as an error instead of hanging a render.
const MatchTimeout = 2 * time.Second

// RuleSpec is the uncompiled form of a Rule.
type RuleSpec struct {
	Kind    token.Kind
	Pattern string
}

// Rule pairs a token kind with a compiled pattern. Declaration order inside
// a Grammar decides which rule wins when two matches start at the same offset.
type Rule struct {
	Kind    token.Kind
	Pattern string
	re      *regexp2.Regexp
}

// Regexp returns the compiled pattern.
func (r Rule) Regexp() *regexp2.Regexp {
	return r.re
}

// Grammar is an immutable, ordered rule set for one language.
type Grammar struct {
	ID        string
	Name      string
	Extension string
	rules     []Rule
}

// Rules returns the grammar's rules in declaration order.
func (g *Grammar) Rules() []Rule {
	out := make([]Rule, len(g.rules))
	copy(out, g.rules)
	return out
}

// New compiles specs into a Grammar. Patterns use ECMAScript regex syntax
// (lookahead supported) and must never match the empty string.
func New(id, name, extension string, specs []RuleSpec) (*Grammar, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("grammar id is required")
	}
	if len(specs) == 0 {
		return nil, fmt.Errorf("grammar %q has no rules", id)
	}

	rules := make([]Rule, 0, len(specs))
	for i, spec := range specs {
		if _, ok := token.ParseKind(string(spec.Kind)); !ok {
			return nil, fmt.Errorf("grammar %q rule %d: unknown token kind %q", id, i, spec.Kind)
		}
		re, err := regexp2.Compile(spec.Pattern, regexp2.ECMAScript)
		if err != nil {
			return nil, fmt.Errorf("grammar %q rule %d: %w", id, i, err)
		}
		re.MatchTimeout = MatchTimeout
		empty, err := re.MatchString("")
		if err != nil {
			return nil, fmt.Errorf("grammar %q rule %d: %w", id, i, err)
		}
		if empty {
			return nil, fmt.Errorf("grammar %q rule %d: pattern %q matches the empty string", id, i, spec.Pattern)
		}
		rules = append(rules, Rule{Kind: spec.Kind, Pattern: spec.Pattern, re: re})
	}

	return &Grammar{
		ID:        id,
		Name:      name,
		Extension: strings.ToLower(extension),
		rules:     rules,
	}, nil
}

// MustNew is like New but panics on error. Used for built-in grammars.
func MustNew(id, name, extension string, specs []RuleSpec) *Grammar {
	g, err := New(id, name, extension, specs)
	if err != nil {
		panic(err)
	}
	return g
}
