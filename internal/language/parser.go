package language

import (
	"fmt"
)

// DefaultMaxDepth bounds nesting of selection sets, values and list types.
const DefaultMaxDepth = 500

// Options configures parsing limits. Zero MaxTokens means unlimited.
type Options struct {
	MaxDepth  int
	MaxTokens int
}

type Option func(*Options)

func WithMaxDepth(n int) Option  { return func(o *Options) { o.MaxDepth = n } }
func WithMaxTokens(n int) Option { return func(o *Options) { o.MaxTokens = n } }

func defaultOptions() Options {
	return Options{MaxDepth: DefaultMaxDepth}
}

// parser is a recursive-descent parser over a pre-lexed token slice. Syntax
// errors are collected rather than returned; each production reports whether
// it ended in a consistent state so callers can resynchronize.
type parser struct {
	name    string
	tokens  []Token
	idx     int
	opts    Options
	depth   int
	open    []string // closing delimiters of the groups being parsed
	errs    DiagnosticList
	errAt   map[int]bool
	aborted bool
}

func newParser(source, name string, opts Options) *parser {
	p := &parser{name: name, opts: opts, errAt: map[int]bool{}}
	all := Tokenize(source)
	p.tokens = make([]Token, 0, len(all))
	significant := 0
	for _, tok := range all {
		switch tok.Kind {
		case Comment:
			continue
		case Error:
			p.errorf(tok.Pos, "%s", tok.Err)
			continue
		case EOF:
		default:
			significant++
			if opts.MaxTokens > 0 && significant > opts.MaxTokens && !p.aborted {
				p.errorf(tok.Pos, "Document exceeds the limit of %d tokens.", opts.MaxTokens)
				p.aborted = true
			}
		}
		p.tokens = append(p.tokens, tok)
	}
	return p
}

// ---------- token helpers ----------

func (p *parser) peek() Token { return p.tokens[p.idx] }

func (p *parser) next() Token {
	tok := p.tokens[p.idx]
	if tok.Kind != EOF {
		p.idx++
	}
	return tok
}

func (p *parser) peekPunct(text string) bool { return p.peek().is(Punctuator, text) }

func (p *parser) peekKeyword(text string) bool { return p.peek().is(Name, text) }

func (p *parser) skipPunct(text string) bool {
	if p.peekPunct(text) {
		p.next()
		return true
	}
	return false
}

func (p *parser) expectPunct(text string) (Token, bool) {
	tok := p.peek()
	if !tok.is(Punctuator, text) {
		p.unexpected(tok, fmt.Sprintf("%q", text))
		return tok, false
	}
	return p.next(), true
}

func (p *parser) expectName() (Token, bool) {
	tok := p.peek()
	if tok.Kind != Name {
		p.unexpected(tok, "Name")
		return tok, false
	}
	return p.next(), true
}

func (p *parser) expectKeyword(text string) bool {
	if p.peekKeyword(text) {
		p.next()
		return true
	}
	p.unexpected(p.peek(), fmt.Sprintf("%q", text))
	return false
}

// ---------- errors ----------

// errorf records a syntax diagnostic. Only the first error at a given offset
// is kept, which stops cascades while resynchronizing.
func (p *parser) errorf(pos Position, format string, args ...any) {
	if p.errAt[pos.Offset] {
		return
	}
	p.errAt[pos.Offset] = true
	p.errs = append(p.errs, NewDiagnostic(p.name, SyntaxRule, fmt.Sprintf(format, args...), pos))
}

func (p *parser) unexpected(tok Token, expected string) {
	if expected == "" {
		p.errorf(tok.Pos, "Unexpected %s.", tok.describe())
		return
	}
	p.errorf(tok.Pos, "Expected %s, found %s.", expected, tok.describe())
}

// ---------- nesting ----------

// enter descends one nesting level; past MaxDepth parsing is abandoned.
func (p *parser) enter(tok Token) bool {
	p.depth++
	if p.opts.MaxDepth > 0 && p.depth > p.opts.MaxDepth {
		if !p.aborted {
			p.errorf(tok.Pos, "Document exceeds the maximum nesting depth of %d.", p.opts.MaxDepth)
			p.aborted = true
		}
		p.depth--
		return false
	}
	return true
}

func (p *parser) leave() { p.depth-- }

// ---------- delimited groups and recovery ----------

var closers = map[string]string{"{": "}", "(": ")", "[": "]"}

func isOpener(tok Token) bool {
	_, ok := closers[tok.Text]
	return tok.Kind == Punctuator && ok
}

func isCloser(tok Token) bool {
	return tok.Kind == Punctuator && (tok.Text == "}" || tok.Text == ")" || tok.Text == "]")
}

// enclosedBy reports whether closer terminates one of the groups in progress.
func (p *parser) enclosedBy(closer string) bool {
	for _, c := range p.open {
		if c == closer {
			return true
		}
	}
	return false
}

// group parses open item+ close (item* when allowEmpty). what names the
// expected item in messages and isStart recognizes tokens that may begin an
// item. It reports whether the closing delimiter was consumed.
func (p *parser) group(open string, allowEmpty bool, what string, isStart func(Token) bool, item func() bool) bool {
	if _, ok := p.expectPunct(open); !ok {
		return false
	}
	closer := closers[open]
	p.open = append(p.open, closer)
	defer func() { p.open = p.open[:len(p.open)-1] }()

	items := 0
	for !p.aborted {
		tok := p.peek()
		switch {
		case tok.is(Punctuator, closer):
			if items == 0 && !allowEmpty {
				p.unexpected(tok, what)
			}
			p.next()
			return true
		case tok.Kind == EOF:
			p.unexpected(tok, what)
			return false
		}
		start := p.idx
		items++
		if item() {
			continue
		}
		if p.aborted || !p.resync(closer, start, isStart) {
			return false
		}
	}
	return false
}

// resync skips tokens after a failed item until the next token that can start
// an item, or the group's closing delimiter. It reports false when the group
// cannot be continued: EOF, or a delimiter that closes an enclosing group.
func (p *parser) resync(closer string, start int, isStart func(Token) bool) bool {
	if p.idx == start {
		tok := p.peek()
		switch {
		case tok.Kind == EOF:
			return false
		case tok.is(Punctuator, closer):
			return true
		case isCloser(tok) && p.enclosedBy(tok.Text):
			return false
		}
		p.skip()
	}
	for {
		tok := p.peek()
		switch {
		case tok.Kind == EOF:
			p.unexpected(tok, fmt.Sprintf("%q", closer))
			return false
		case tok.is(Punctuator, closer), isStart(tok):
			return true
		case isCloser(tok):
			if p.enclosedBy(tok.Text) {
				return false
			}
			p.unexpected(tok, "")
			p.next()
		default:
			p.skip()
		}
	}
}

// skip consumes one token, or a whole balanced group when it starts one.
func (p *parser) skip() {
	if !isOpener(p.peek()) {
		p.next()
		return
	}
	var stack []string
	for {
		tok := p.next()
		switch {
		case tok.Kind == EOF:
			return
		case isOpener(tok):
			stack = append(stack, closers[tok.Text])
		case isCloser(tok):
			for i := len(stack) - 1; i >= 0; i-- {
				if stack[i] == tok.Text {
					stack = stack[:i]
					break
				}
			}
		}
		if len(stack) == 0 {
			return
		}
	}
}

// skipDefinition resynchronizes at document level: it skips to the next
// definition keyword outside any group.
func (p *parser) skipDefinition(start int) {
	if p.idx == start {
		p.skip()
	}
	for {
		tok := p.peek()
		if tok.Kind == EOF || isDefinitionKeyword(tok) {
			return
		}
		p.skip()
	}
}

func isDefinitionKeyword(tok Token) bool {
	if tok.Kind != Name {
		return false
	}
	switch tok.Text {
	case "query", "mutation", "subscription", "fragment":
		return true
	}
	return false
}
