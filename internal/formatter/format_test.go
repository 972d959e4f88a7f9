package formatter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	language "github.com/hanpama/gqlquery/internal/language"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

func format(t *testing.T, query string) string {
	t.Helper()
	doc, errs := language.ParseQuery(query, "")
	require.Nil(t, errs, "query must parse: %v", errs)
	return Format(doc)
}

func TestFormat(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "shorthand query",
			input: "query{a}",
			want:  "{\n  a\n}\n",
		},
		{
			name:  "nested selections and aliases",
			input: "{ user(id: 1) { n: name friends { id } } }",
			want: `{
  user(id: 1) {
    n: name
    friends {
      id
    }
  }
}
`,
		},
		{
			name:  "named operation with variables",
			input: "query Q($a:Int=1 @d,$b:[String!]!)@op{f(a:$a,b:$b)}",
			want: `query Q($a: Int = 1 @d, $b: [String!]!) @op {
  f(a: $a, b: $b)
}
`,
		},
		{
			name:  "anonymous operation with variables",
			input: "query ($x: Int) { f(x: $x) }",
			want:  "query($x: Int) {\n  f(x: $x)\n}\n",
		},
		{
			name:  "anonymous mutation",
			input: "mutation { m }",
			want:  "mutation {\n  m\n}\n",
		},
		{
			name:  "anonymous query with directive",
			input: "query @live { a }",
			want:  "query @live {\n  a\n}\n",
		},
		{
			name:  "fragments",
			input: "{...F ... on T @skip(if: true) {a} ... @include(if: $v) {b} ... {c}} fragment F on T @d {x}",
			want: `{
  ...F
  ... on T @skip(if: true) {
    a
  }
  ... @include(if: $v) {
    b
  }
  ... {
    c
  }
}

fragment F on T @d {
  x
}
`,
		},
		{
			name:  "values",
			input: `{ f(i: -1, fl: 1.50e10, s: "a\"b\\c\u00e9\n", e: RED, b: true, n: null, l: [1,[2]], o: {a: 1, b: {c: []}}, eo: {}) }`,
			want:  "{\n  f(i: -1, fl: 1.50e10, s: \"a\\\"b\\\\cé\\n\", e: RED, b: true, n: null, l: [1, [2]], o: {a: 1, b: {c: []}}, eo: {})\n}\n",
		},
		{
			name:  "control characters escaped",
			input: `{ f(s: "\u0001\t\u007F") }`,
			want:  "{\n  f(s: \"\\u0001\\t\\u007F\")\n}\n",
		},
		{
			name:  "block string",
			input: "{ f(s: \"\"\"\n      line one\n        line two\n      \"\"\") }",
			want:  "{\n  f(s: \"\"\"\n  line one\n    line two\n  \"\"\")\n}\n",
		},
		{
			name:  "block string with escaped quotes",
			input: `{ f(s: """say \""" twice""") }`,
			want:  "{\n  f(s: \"\"\"\n  say \\\"\"\" twice\n  \"\"\")\n}\n",
		},
		{
			name:  "block string that cannot round trip",
			input: `{ f(s: """   indented only""") }`,
			want:  "{\n  f(s: \"   indented only\")\n}\n",
		},
		{
			name:  "comments dropped",
			input: "# header\nquery Q { # trailing\n  a\n  # between\n  b\n}\n",
			want:  "query Q {\n  a\n  b\n}\n",
		},
		{
			name:  "definitions separated by one blank line",
			input: "query A { a }\n\n\n\nquery B { b }",
			want:  "query A {\n  a\n}\n\nquery B {\n  b\n}\n",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, format(t, tc.input)); diff != "" {
				t.Fatalf("format mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

var corpus = []string{
	"{ a }",
	"query Q($a: Int = 1, $b: [[ID!]]! = [[\"x\"]]) @d(x: {y: [1, 2]}) { a(x: $a) { b c: d } }",
	"mutation M { like(id: 1) @include(if: true) { count } }",
	"subscription S { event { ... on A { a } ...F } } fragment F on Event { id }",
	"{ f(s: \"\"\"\n  first\n    second\n\n  third \\\"\"\" quoted\n\"\"\") }",
	"{ f(s: \"\"\"a \\\"\"\" b\"\"\") g(s: \"\"\"  lead\"\"\") h(s: \"\\u0000\") }",
	"query ($x: Boolean = false @d) { a @skip(if: $x) ... @defer(label: \"l\") { b } }",
	"{ a { b { c { d { e { f } } } } } }",
	"fragment A on T { ...B } fragment B on T { x }",
	"{ f(o: {a: ENUM, b: null, c: -0.5e-10, d: \"\"}) }",
}

func TestFormat_Idempotent(t *testing.T) {
	for _, q := range corpus {
		once := format(t, q)
		twice := format(t, once)
		if diff := cmp.Diff(once, twice); diff != "" {
			t.Errorf("format not idempotent for %q (-once +twice):\n%s", q, diff)
		}
	}
}

func TestFormat_AcceptedByGqlparser(t *testing.T) {
	for _, q := range corpus {
		out := format(t, q)
		_, err := parser.ParseQuery(&ast.Source{Name: "formatted", Input: out})
		require.Nil(t, err, "gqlparser rejected formatted output:\n%s", out)
	}
}

var blockAsString = cmp.Transformer("blockAsString", func(k language.ValueKind) language.ValueKind {
	if k == language.BlockValue {
		return language.StringValue
	}
	return k
})

func TestFormat_PreservesValues(t *testing.T) {
	for _, q := range corpus {
		before, errs := language.ParseQuery(q, "")
		require.Nil(t, errs)
		after, errs := language.ParseQuery(Format(before), "")
		require.Nil(t, errs)

		// Reformatting changes only positions, and block strings that are
		// printed as ordinary strings.
		if diff := cmp.Diff(before, after, cmpopts.IgnoreTypes(language.Position{}), blockAsString); diff != "" {
			t.Errorf("AST changed for %q (-before +after):\n%s", q, diff)
		}
	}
}
