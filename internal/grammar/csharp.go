package grammar

import "github.com/alexisbeaulieu97/snapcode/internal/domain/token"

// CSharpID identifies the built-in C# grammar, which is also the fallback.
const CSharpID = "csharp"

const csharpKeywords = `abstract|as|base|bool|break|byte|case|catch|char|checked|class|const|continue|decimal|default|delegate|do|double|else|enum|event|explicit|extern|false|finally|fixed|float|for|foreach|goto|if|implicit|in|int|interface|internal|is|lock|long|namespace|new|null|object|operator|out|override|params|private|protected|public|readonly|ref|return|sbyte|sealed|short|sizeof|stackalloc|static|string|struct|switch|this|throw|true|try|typeof|uint|ulong|unchecked|unsafe|ushort|using|virtual|void|volatile|while|add|alias|ascending|async|await|by|descending|dynamic|equals|from|get|global|group|into|join|let|nameof|on|orderby|partial|remove|select|set|value|var|when|where|yield`

// Order matters: earlier rules win ties on the same start offset.
var csharpRules = []RuleSpec{
	{Kind: token.Comment, Pattern: `\/\*[\s\S]*?\*\/`},
	{Kind: token.Comment, Pattern: `\/\/.*`},
	{Kind: token.String, Pattern: `@?"(?:[^"\\]|\\.)*"`},
	{Kind: token.String, Pattern: `'(?:[^'\\]|\\.)*'`},
	{Kind: token.Keyword, Pattern: `\b(` + csharpKeywords + `)\b`},
	{Kind: token.Keyword, Pattern: `#(if|else|elif|endif|define|undef|warning|error|line|region|endregion|pragma)\b`},
	{Kind: token.Attribute, Pattern: `\[([^\]]+)\]`},
	{Kind: token.Number, Pattern: `\b(0x[0-9a-fA-F]+|0b[01]+|\d+\.?\d*[fFdDmM]?)\b`},
	{Kind: token.Type, Pattern: `\b[A-Z][a-zA-Z0-9_]*\b`},
	{Kind: token.Function, Pattern: `\b[a-zA-Z_][a-zA-Z0-9_]*(?=\s*\()`},
	{Kind: token.Operator, Pattern: `[+\-*/%=<>!&|^~?:]+|&&|\|\||<<|>>|==|!=|<=|>=|\+\+|--|\+=|-=|\*=|\/=|%=|&=|\|=|\^=|<<=|>>=|=>|\?\?`},
	{Kind: token.Punctuation, Pattern: `[{}[\]();,.\:]`},
}

func csharp() *Grammar {
	return MustNew(CSharpID, "C#", ".cs", csharpRules)
}
