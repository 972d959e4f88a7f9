package gqlquery

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"golang.org/x/sync/errgroup"
)

func messages(list gqlerror.List) []string {
	out := make([]string, len(list))
	for i, err := range list {
		out[i] = err.Message
	}
	return out
}

func TestValidateQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		rule  string
		want  []string
		locs  [][]gqlerror.Location
	}{
		{
			name:  "valid",
			query: "query Q($id: ID) { user(id: $id) { ...F } } fragment F on User { name }",
		},
		{
			name:  "syntax error stops validation",
			query: "query Q($x: Int) { a(",
			rule:  "syntax",
			want:  []string{"Expected Name, found <EOF>."},
			locs:  [][]gqlerror.Location{{{Line: 1, Column: 22}}},
		},
		{
			name:  "fragment cycle",
			query: "fragment A on T { ...B } fragment B on T { ...A }",
			rule:  "NoUnusedFragments",
		},
		{
			name:  "unused variable",
			query: "query($x: Int) { field }",
			rule:  "NoUnusedVariables",
			want:  []string{`Variable "$x" is never used.`},
			locs:  [][]gqlerror.Location{{{Line: 1, Column: 7}}},
		},
		{
			name:  "anonymous operation among several",
			query: "{ a } query Named { b }",
			rule:  "LoneAnonymousOperation",
			want:  []string{"This anonymous operation must be the only defined operation."},
			locs:  [][]gqlerror.Location{{{Line: 1, Column: 1}}},
		},
		{
			name:  "duplicate operation names",
			query: "query Q { a } query Q { b }",
			rule:  "UniqueOperationNames",
			want:  []string{`There can be only one operation named "Q".`},
			locs:  [][]gqlerror.Location{{{Line: 1, Column: 7}, {Line: 1, Column: 21}}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateQuery(tt.query, "query.graphql")
			if tt.rule == "" {
				assert.Nil(t, got)
				return
			}
			require.NotEmpty(t, got)
			assert.Equal(t, tt.rule, got[0].Rule)
			for _, err := range got {
				assert.Equal(t, "query.graphql", err.Extensions["file"])
			}
			if tt.want == nil {
				return
			}
			assert.Equal(t, tt.want, messages(got))
			for i, err := range got {
				assert.Equal(t, tt.locs[i], err.Locations)
			}
		})
	}
}

func TestValidateQuery_FragmentCycle(t *testing.T) {
	got := ValidateQuery("fragment A on T { ...B } fragment B on T { ...A }", "")
	var cycles []*gqlerror.Error
	for _, err := range got {
		if err.Rule == "NoFragmentCycles" {
			cycles = append(cycles, err)
		}
	}
	require.Len(t, cycles, 1)
	assert.Contains(t, cycles[0].Message, `"A"`)
	assert.Contains(t, cycles[0].Message, `"B"`)
	assert.Len(t, cycles[0].Locations, 2)
}

func TestValidateQuery_Deterministic(t *testing.T) {
	query := `
query A($a: Int, $a: Int) { f(x: $b) @skip(if: true) @skip(if: false) ...F ...Missing }
query A { g }
{ h }
fragment F on T { ...G }
fragment G on T { ...F }
fragment F on T { i @nope }
`
	first := ValidateQuery(query, "doc")
	require.NotEmpty(t, first)
	for i := 0; i < 5; i++ {
		if diff := cmp.Diff(first, ValidateQuery(query, "doc")); diff != "" {
			t.Fatalf("diagnostics changed between runs (-first +again):\n%s", diff)
		}
	}
}

func TestFormatQuery(t *testing.T) {
	assert.Equal(t, "query Q {\n  a\n}\n", FormatQuery("query Q{a}"))
	// Validation errors do not block formatting.
	assert.Equal(t, "query($x: Int) {\n  field\n}\n", FormatQuery("query($x:Int){field}"))
}

func TestFormatQuery_Fallback(t *testing.T) {
	for _, q := range []string{
		"",
		"{",
		"query Q { a(x: ) }",
		"  { a } \n  type T { f: Int }\n",
		"{ a \"unterminated }",
		"\uFEFF{ \u0007 }",
	} {
		assert.Equal(t, q, FormatQuery(q), "input must come back unchanged")
	}
}

func TestFormatQuery_Idempotent(t *testing.T) {
	for _, q := range []string{
		"query Q($v: [Int!] = [1, 2]) @a { x: f(o: {k: \"v\"}) { ... on T { g } ...F } }",
		"fragment F on T { a(s: \"\"\"\n  block\n  string\n\"\"\") }",
		"subscription { s }",
	} {
		once := FormatQuery(q)
		assert.Equal(t, once, FormatQuery(once))
	}
}

func TestEngine_Limits(t *testing.T) {
	e, err := New(WithMaxDepth(2), WithMaxTokens(20))
	require.NoError(t, err)
	t.Cleanup(func() { _ = e.Close(context.Background()) })
	ctx := context.Background()

	got := e.ValidateQuery(ctx, "{ a { b { c } } }", "deep")
	require.Len(t, got, 1)
	assert.Equal(t, "Document exceeds the maximum nesting depth of 2.", got[0].Message)
	assert.Equal(t, "syntax", got[0].Rule)

	long := "{ " + strings.Repeat("a ", 30) + "}"
	got = e.ValidateQuery(ctx, long, "long")
	require.Len(t, got, 1)
	assert.Equal(t, "Document exceeds the limit of 20 tokens.", got[0].Message)

	assert.Equal(t, long, e.FormatQuery(ctx, long))
	assert.Equal(t, "{\n  a {\n    b\n  }\n}\n", e.FormatQuery(ctx, "{a{b}}"))
	assert.Nil(t, e.ValidateQuery(ctx, "{a{b}}", ""))
}

func TestEngine_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	e, err := New(WithLogger(logger))
	require.NoError(t, err)
	ctx := context.Background()

	e.ValidateQuery(ctx, "query($x: Int) { a }", "q.graphql")
	e.FormatQuery(ctx, "{")

	out := buf.String()
	assert.Contains(t, out, "msg=\"parsed query\"")
	assert.Contains(t, out, "msg=\"validated query\"")
	assert.Contains(t, out, "path=q.graphql diagnostics=1 syntax_error=false")
	assert.Contains(t, out, "msg=\"formatted query\"")
	assert.Contains(t, out, "fallback=true")
}

func TestEngine_QuietLogger(t *testing.T) {
	var buf bytes.Buffer
	e, err := New(WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))
	require.NoError(t, err)
	e.ValidateQuery(context.Background(), "{ a }", "")
	assert.Empty(t, buf.String())
}

func TestEngine_TracingWithoutEndpoint(t *testing.T) {
	e, err := New(WithTracing("", ""))
	require.NoError(t, err)
	assert.Nil(t, e.ValidateQuery(context.Background(), "{ a }", ""))
	assert.NoError(t, e.Close(context.Background()))
}

func TestNewFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gqlquery.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_depth: 1\nlog_level: debug\n"), 0o644))
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	e, err := NewFromConfig(cfg)
	require.NoError(t, err)
	got := e.ValidateQuery(context.Background(), "{ a { b } }", "")
	require.Len(t, got, 1)
	assert.Equal(t, "Document exceeds the maximum nesting depth of 1.", got[0].Message)

	// Options passed alongside the config win.
	e, err = NewFromConfig(cfg, WithMaxDepth(0))
	require.NoError(t, err)
	assert.Nil(t, e.ValidateQuery(context.Background(), "{ a { b } }", ""))

	_, err = NewFromConfig(&Config{LogLevel: "loud"})
	assert.Error(t, err)
}

func TestConcurrentCalls(t *testing.T) {
	queries := make([]string, 40)
	for i := range queries {
		switch i % 4 {
		case 0:
			queries[i] = fmt.Sprintf("query Q%d { f%d }", i, i)
		case 1:
			queries[i] = fmt.Sprintf("query($v%d: Int) { f }", i)
		case 2:
			queries[i] = fmt.Sprintf("{ a(x: %d", i)
		default:
			queries[i] = fmt.Sprintf("fragment F%d on T { ...F%d } { ...F%d }", i, i, i)
		}
	}
	wantErrs := make([]gqlerror.List, len(queries))
	wantText := make([]string, len(queries))
	for i, q := range queries {
		wantErrs[i] = ValidateQuery(q, "")
		wantText[i] = FormatQuery(q)
	}

	e, err := New(WithTracing("", ""))
	require.NoError(t, err)
	gotErrs := make([]gqlerror.List, len(queries))
	gotText := make([]string, len(queries))
	var g errgroup.Group
	for i, q := range queries {
		g.Go(func() error {
			gotErrs[i] = e.ValidateQuery(context.Background(), q, "")
			gotText[i] = e.FormatQuery(context.Background(), q)
			return nil
		})
	}
	require.NoError(t, g.Wait())

	if diff := cmp.Diff(wantErrs, gotErrs); diff != "" {
		t.Errorf("concurrent diagnostics differ (-sequential +concurrent):\n%s", diff)
	}
	assert.Equal(t, wantText, gotText)
}
