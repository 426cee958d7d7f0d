// Package token defines the lexical token kinds shared by the grammar,
// tokenizer, colorizer and layout packages.
package token

// Kind enumerates the lexical categories a token can carry.
type Kind string

const (
	Keyword     Kind = "keyword"
	String      Kind = "string"
	Number      Kind = "number"
	Comment     Kind = "comment"
	Function    Kind = "function"
	Class       Kind = "class"
	Type        Kind = "type"
	Variable    Kind = "variable"
	Operator    Kind = "operator"
	Punctuation Kind = "punctuation"
	Namespace   Kind = "namespace"
	Attribute   Kind = "attribute"
	Property    Kind = "property"
	Constant    Kind = "constant"
	Escape      Kind = "escape"
	Plain       Kind = "plain"
)

var allKinds = []Kind{
	Keyword, String, Number, Comment, Function, Class, Type, Variable,
	Operator, Punctuation, Namespace, Attribute, Property, Constant, Escape, Plain,
}

// AllKinds returns every token kind in declaration order.
func AllKinds() []Kind {
	out := make([]Kind, len(allKinds))
	copy(out, allKinds)
	return out
}

// ParseKind maps a name such as "keyword" to its Kind.
func ParseKind(name string) (Kind, bool) {
	for _, k := range allKinds {
		if string(k) == name {
			return k, true
		}
	}
	return "", false
}

// String returns the kind name.
func (k Kind) String() string {
	return string(k)
}

// Token is a typed, contiguous piece of source text. Text may contain
// line breaks (block comments, verbatim strings).
type Token struct {
	Kind Kind
	Text string
}

// Join concatenates the text of tokens in order.
func Join(tokens []Token) string {
	n := 0
	for _, t := range tokens {
		n += len(t.Text)
	}
	buf := make([]byte, 0, n)
	for _, t := range tokens {
		buf = append(buf, t.Text...)
	}
	return string(buf)
}
