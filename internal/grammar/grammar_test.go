package grammar

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/snapcode/internal/domain/token"
)

func TestNewRejectsBadRules(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		id    string
		specs []RuleSpec
		want  string
	}{
		{name: "missing id", id: " ", specs: []RuleSpec{{Kind: token.Keyword, Pattern: `if`}}, want: "id is required"},
		{name: "no rules", id: "empty", want: "has no rules"},
		{name: "unknown kind", id: "x", specs: []RuleSpec{{Kind: "macro", Pattern: `#\w+`}}, want: "unknown token kind"},
		{name: "invalid pattern", id: "x", specs: []RuleSpec{{Kind: token.String, Pattern: `"(`}}, want: "rule 0"},
		{name: "empty match", id: "x", specs: []RuleSpec{{Kind: token.Number, Pattern: `\d*`}}, want: "matches the empty string"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := New(tc.id, "X", ".x", tc.specs)
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestNewKeepsDeclarationOrder(t *testing.T) {
	t.Parallel()

	g, err := New("mini", "Mini", ".MINI", []RuleSpec{
		{Kind: token.Comment, Pattern: `//.*`},
		{Kind: token.Keyword, Pattern: `\bif\b`},
	})
	require.NoError(t, err)
	require.Equal(t, ".mini", g.Extension)

	rules := g.Rules()
	require.Len(t, rules, 2)
	require.Equal(t, token.Comment, rules[0].Kind)
	require.Equal(t, token.Keyword, rules[1].Kind)
	require.Equal(t, MatchTimeout, rules[0].Regexp().MatchTimeout)
}

func TestCSharpGrammarCompiles(t *testing.T) {
	t.Parallel()

	g := Get(CSharpID)
	require.Equal(t, "C#", g.Name)
	require.Equal(t, ".cs", g.Extension)
	require.Len(t, g.Rules(), 12)

	fn := g.Rules()[9]
	require.Equal(t, token.Function, fn.Kind)
	m, err := fn.Regexp().FindStringMatch("Run (x)")
	require.NoError(t, err)
	require.NotNil(t, m)
	require.Equal(t, "Run", m.String())
}

func TestRegistryFallsBackToDefault(t *testing.T) {
	t.Parallel()

	require.Equal(t, CSharpID, Get("cobol").ID)
	require.Equal(t, CSharpID, Get("").ID)

	_, ok := Default().Lookup("cobol")
	require.False(t, ok)

	g, ok := Default().Lookup(CSharpID)
	require.True(t, ok)
	require.Equal(t, CSharpID, g.ID)
}

func TestRegistryForFilename(t *testing.T) {
	t.Parallel()

	g, ok := Default().ForFilename("src/Program.CS")
	require.True(t, ok)
	require.Equal(t, CSharpID, g.ID)

	g, ok = Default().ForFilename("README")
	require.False(t, ok)
	require.Equal(t, CSharpID, g.ID)
}

func TestRegistryListsSortedInfo(t *testing.T) {
	t.Parallel()

	a := MustNew("b-lang", "B", ".b", []RuleSpec{{Kind: token.Keyword, Pattern: `b`}})
	b := MustNew("a-lang", "A", ".a", []RuleSpec{{Kind: token.Keyword, Pattern: `a`}})
	reg := NewRegistry("b-lang", a, b)

	require.Equal(t, []Info{{ID: "a-lang", Name: "A"}, {ID: "b-lang", Name: "B"}}, reg.All())
	require.Equal(t, "b-lang", reg.Get("zzz").ID)
	require.Equal(t, []Info{{ID: CSharpID, Name: "C#"}}, All())
}

func TestNewRegistryPanicsOnUnknownFallback(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { NewRegistry("missing") })
}
