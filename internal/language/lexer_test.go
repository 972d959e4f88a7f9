package language

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lexed struct {
	Kind  TokenKind
	Text  string
	Value string
}

func simplify(tokens []Token) []lexed {
	out := make([]lexed, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, lexed{Kind: t.Kind, Text: t.Text, Value: t.Value})
	}
	return out
}

func errorsOf(tokens []Token) []string {
	var out []string
	for _, t := range tokens {
		if t.Kind == Error {
			out = append(out, t.Err)
		}
	}
	return out
}

func TestTokenize_Kinds(t *testing.T) {
	got := simplify(Tokenize(`query Q($v: [Int!] = -1.5e3) { a: f(s: "x", b: """ y """) ...F # c
}`))
	want := []lexed{
		{Kind: Name, Text: "query"},
		{Kind: Name, Text: "Q"},
		{Kind: Punctuator, Text: "("},
		{Kind: Punctuator, Text: "$"},
		{Kind: Name, Text: "v"},
		{Kind: Punctuator, Text: ":"},
		{Kind: Punctuator, Text: "["},
		{Kind: Name, Text: "Int"},
		{Kind: Punctuator, Text: "!"},
		{Kind: Punctuator, Text: "]"},
		{Kind: Punctuator, Text: "="},
		{Kind: FloatToken, Text: "-1.5e3"},
		{Kind: Punctuator, Text: ")"},
		{Kind: Punctuator, Text: "{"},
		{Kind: Name, Text: "a"},
		{Kind: Punctuator, Text: ":"},
		{Kind: Name, Text: "f"},
		{Kind: Punctuator, Text: "("},
		{Kind: Name, Text: "s"},
		{Kind: Punctuator, Text: ":"},
		{Kind: StringToken, Text: `"x"`, Value: "x"},
		{Kind: Name, Text: "b"},
		{Kind: Punctuator, Text: ":"},
		{Kind: BlockStringToken, Text: `""" y """`, Value: " y "},
		{Kind: Punctuator, Text: ")"},
		{Kind: Punctuator, Text: "..."},
		{Kind: Name, Text: "F"},
		{Kind: Comment, Text: "# c"},
		{Kind: Punctuator, Text: "}"},
		{Kind: EOF},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenize_Positions(t *testing.T) {
	tokens := Tokenize("\uFEFFa\r\n  b\rc\n# ü\n  é ü")
	require.Len(t, tokens, 7)

	want := []Position{
		{Line: 1, Column: 2, Offset: 3},
		{Line: 2, Column: 3, Offset: 8},
		{Line: 3, Column: 1, Offset: 10},
		{Line: 4, Column: 1, Offset: 12},
		{Line: 5, Column: 3, Offset: 19},
		{Line: 5, Column: 5, Offset: 22},
	}
	var got []Position
	for _, tok := range tokens[:6] {
		got = append(got, tok.Pos)
	}
	// "é" is not a name character, so both it and "ü" lex as errors.
	assert.Equal(t, []TokenKind{Name, Name, Name, Comment, Error, Error}, kinds(tokens[:6]))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("positions mismatch (-want +got):\n%s", diff)
	}
}

func kinds(tokens []Token) []TokenKind {
	var out []TokenKind
	for _, t := range tokens {
		out = append(out, t.Kind)
	}
	return out
}

func TestTokenize_Strings(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"simple escapes", `"a\"b\\c\/d\b\f\n\r\t"`, "a\"b\\c/d\b\f\n\r\t"},
		{"unicode", `"\u00e9"`, "é"},
		{"braced unicode", `"\u{1F600}"`, "😀"},
		{"surrogate pair", `"\uD83D\uDE00"`, "😀"},
		{"tab allowed", "\"a\tb\"", "a\tb"},
		{"multibyte", `"日本"`, "日本"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tokens := Tokenize(tc.input)
			require.Empty(t, errorsOf(tokens))
			require.Equal(t, StringToken, tokens[0].Kind)
			assert.Equal(t, tc.want, tokens[0].Value)
		})
	}
}

func TestTokenize_BlockStrings(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"dedent", "\"\"\"\n    hello\n      world\n    \"\"\"", "hello\n  world"},
		{"first line kept", "\"\"\"  first\n    second\"\"\"", "  first\nsecond"},
		{"escaped quotes", `"""a \""" b"""`, `a """ b`},
		{"crlf normalized", "\"\"\"a\r\nb\rc\"\"\"", "a\nb\nc"},
		{"blank lines trimmed", "\"\"\"\n\n  x\n\n\"\"\"", "x"},
		{"backslash is literal", `"""\n"""`, `\n`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tokens := Tokenize(tc.input)
			require.Empty(t, errorsOf(tokens))
			require.Equal(t, BlockStringToken, tokens[0].Kind)
			assert.Equal(t, tc.want, tokens[0].Value)
		})
	}
}

func TestTokenize_Errors(t *testing.T) {
	cases := []struct {
		input string
		want  []string
	}{
		{"?", []string{`Unexpected character "?".`}},
		{"..", []string{`Unexpected "..", did you mean "..."?`}},
		{"01", []string{`Invalid number, unexpected digit after 0: "1".`}},
		{"1.", []string{`Invalid number, expected digit but got: <EOF>.`}},
		{"1e", []string{`Invalid number, expected digit but got: <EOF>.`}},
		{"-x", []string{`Invalid number, expected digit but got: "x".`}},
		{"123abc", []string{`Invalid number, expected digit but got: "a".`}},
		{"1.5.6", []string{`Invalid number, expected digit but got: ".".`}},
		{`"abc`, []string{"Unterminated string."}},
		{"\"abc\ndef\"", []string{"Unterminated string.", "Unterminated string."}},
		{`"\x"`, []string{`Invalid character escape sequence: "\\x".`}},
		{`"\u12"`, []string{`Invalid Unicode escape sequence: "\\u".`}},
		{`"\uD800"`, []string{`Invalid Unicode escape sequence: "\\uD800".`}},
		{`"\u{110000}"`, []string{`Invalid Unicode escape sequence: "\\u{110000".`}},
		{"\"a\x01\"", []string{"Invalid character within String: U+0001."}},
		{`"""abc`, []string{"Unterminated string."}},
		{"\xff", []string{"Invalid UTF-8 sequence."}},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got := errorsOf(Tokenize(tc.input))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("errors mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTokenize_ErrorPositions(t *testing.T) {
	tokens := Tokenize("{ a\n  0x }")
	var errTok Token
	for _, tok := range tokens {
		if tok.Kind == Error {
			errTok = tok
		}
	}
	require.Equal(t, Error, errTok.Kind)
	assert.Equal(t, Position{Line: 2, Column: 4, Offset: 7}, errTok.Pos)

	// Lexing resumes after the malformed number.
	last := tokens[len(tokens)-2]
	assert.Equal(t, "}", last.Text)
}
