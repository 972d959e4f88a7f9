package language

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

const eof = -1

// lexer tokenizes GraphQL source. It never stops on bad input: problems are
// emitted as Error tokens so the parser can report them with a location.
type lexer struct {
	input  string
	off    int // byte offset of the next rune
	line   int
	col    int
	tokens []Token
}

// Tokenize converts source into tokens terminated by an EOF token.
// Comments are kept as Comment tokens; whitespace, line terminators, commas
// and the byte order mark are dropped.
func Tokenize(source string) []Token {
	l := &lexer{input: source, line: 1, col: 1}
	l.run()
	return l.tokens
}

func (l *lexer) pos() Position {
	return Position{Line: l.line, Column: l.col, Offset: l.off}
}

// peek returns the next rune and its width without consuming it.
// Invalid UTF-8 is reported as utf8.RuneError with width 1.
func (l *lexer) peek() (rune, int) {
	if l.off >= len(l.input) {
		return eof, 0
	}
	if c := l.input[l.off]; c < utf8.RuneSelf {
		return rune(c), 1
	}
	return utf8.DecodeRuneInString(l.input[l.off:])
}

func (l *lexer) peekByte(n int) byte {
	if l.off+n >= len(l.input) {
		return 0
	}
	return l.input[l.off+n]
}

// advance consumes one rune. "\r\n" is consumed as a single line terminator.
func (l *lexer) advance() rune {
	r, w := l.peek()
	if r == eof {
		return eof
	}
	l.off += w
	switch r {
	case '\n':
		l.line++
		l.col = 1
	case '\r':
		if l.off < len(l.input) && l.input[l.off] == '\n' {
			l.off++
		}
		l.line++
		l.col = 1
	default:
		l.col++
	}
	return r
}

func (l *lexer) emit(kind TokenKind, start Position, value string) {
	l.tokens = append(l.tokens, Token{
		Kind:  kind,
		Text:  l.input[start.Offset:l.off],
		Value: value,
		Pos:   start,
	})
}

func (l *lexer) errorf(start Position, format string, args ...any) {
	end := l.off
	if end < start.Offset {
		end = start.Offset
	}
	l.tokens = append(l.tokens, Token{
		Kind: Error,
		Text: l.input[start.Offset:end],
		Pos:  start,
		Err:  fmt.Sprintf(format, args...),
	})
}

func (l *lexer) run() {
	for {
		start := l.pos()
		r, w := l.peek()
		switch {
		case r == eof:
			l.emit(EOF, start, "")
			return
		case r == '\uFEFF', r == ' ', r == '\t', r == ',', r == '\n', r == '\r':
			l.advance()
		case r == '#':
			l.comment(start)
		case r == '.':
			l.spread(start)
		case strings.ContainsRune("!$&()[]{}:=@|", r):
			l.advance()
			l.emit(Punctuator, start, "")
		case r == '_' || isLetter(r):
			l.name(start)
		case r == '-' || isDigit(r):
			l.number(start)
		case r == '"':
			if strings.HasPrefix(l.input[l.off:], `"""`) {
				l.blockString(start)
			} else {
				l.string(start)
			}
		case r == utf8.RuneError && w == 1:
			l.advance()
			l.errorf(start, "Invalid UTF-8 sequence.")
		default:
			l.advance()
			l.errorf(start, "Unexpected character %s.", describeRune(r))
		}
	}
}

func (l *lexer) comment(start Position) {
	for {
		r, _ := l.peek()
		if r == eof || r == '\n' || r == '\r' {
			break
		}
		l.advance()
	}
	l.emit(Comment, start, "")
}

func (l *lexer) spread(start Position) {
	dots := 0
	for dots < 3 && l.peekByte(0) == '.' {
		l.advance()
		dots++
	}
	if dots == 3 {
		l.emit(Punctuator, start, "")
		return
	}
	l.errorf(start, "Unexpected %s, did you mean \"...\"?", strconv.Quote(strings.Repeat(".", dots)))
}

func (l *lexer) name(start Position) {
	for {
		r, _ := l.peek()
		if r != '_' && !isLetter(r) && !isDigit(r) {
			break
		}
		l.advance()
	}
	l.emit(Name, start, "")
}

func (l *lexer) number(start Position) {
	kind := IntToken
	if l.peekByte(0) == '-' {
		l.advance()
	}
	r, _ := l.peek()
	switch {
	case r == '0':
		l.advance()
		if r, _ := l.peek(); isDigit(r) {
			l.numberError(start, l.pos(), "Invalid number, unexpected digit after 0: %s.", describeRune(r))
			return
		}
	case isDigit(r):
		l.digits()
	default:
		l.numberError(start, l.pos(), "Invalid number, expected digit but got: %s.", describeRune(r))
		return
	}
	if l.peekByte(0) == '.' {
		kind = FloatToken
		l.advance()
		if r, _ := l.peek(); !isDigit(r) {
			l.numberError(start, l.pos(), "Invalid number, expected digit but got: %s.", describeRune(r))
			return
		}
		l.digits()
	}
	if c := l.peekByte(0); c == 'e' || c == 'E' {
		kind = FloatToken
		l.advance()
		if c := l.peekByte(0); c == '+' || c == '-' {
			l.advance()
		}
		if r, _ := l.peek(); !isDigit(r) {
			l.numberError(start, l.pos(), "Invalid number, expected digit but got: %s.", describeRune(r))
			return
		}
		l.digits()
	}
	if r, _ := l.peek(); r == '.' || r == '_' || isLetter(r) {
		l.numberError(start, l.pos(), "Invalid number, expected digit but got: %s.", describeRune(r))
		return
	}
	l.emit(kind, start, "")
}

// numberError reports a malformed number at at and swallows the rest of the
// numeric-looking run so lexing resumes at a sensible boundary.
func (l *lexer) numberError(start, at Position, format string, args ...any) {
	for {
		r, _ := l.peek()
		if r != '.' && r != '_' && r != '+' && r != '-' && !isLetter(r) && !isDigit(r) {
			break
		}
		l.advance()
	}
	l.tokens = append(l.tokens, Token{
		Kind: Error,
		Text: l.input[start.Offset:l.off],
		Pos:  at,
		Err:  fmt.Sprintf(format, args...),
	})
}

func (l *lexer) digits() {
	for {
		r, _ := l.peek()
		if !isDigit(r) {
			return
		}
		l.advance()
	}
}

func (l *lexer) string(start Position) {
	l.advance()
	var b strings.Builder
	var errs []Token
	fail := func(at Position, format string, args ...any) {
		errs = append(errs, Token{Kind: Error, Text: l.input[at.Offset:l.off], Pos: at, Err: fmt.Sprintf(format, args...)})
	}
	for {
		at := l.pos()
		r, w := l.peek()
		switch {
		case r == eof || r == '\n' || r == '\r':
			l.errorf(start, "Unterminated string.")
			l.tokens = append(l.tokens, errs...)
			return
		case r == '"':
			l.advance()
			l.emit(StringToken, start, b.String())
			l.tokens = append(l.tokens, errs...)
			return
		case r == '\\':
			l.advance()
			l.escape(&b, at, fail)
		case r == utf8.RuneError && w == 1:
			l.advance()
			fail(at, "Invalid UTF-8 sequence within String.")
		case r < 0x20 && r != '\t':
			l.advance()
			fail(at, "Invalid character within String: %s.", describeRune(r))
		default:
			l.advance()
			b.WriteRune(r)
		}
	}
}

func (l *lexer) escape(b *strings.Builder, at Position, fail func(Position, string, ...any)) {
	r, _ := l.peek()
	switch r {
	case '"', '\\', '/':
		b.WriteRune(r)
	case 'b':
		b.WriteByte('\b')
	case 'f':
		b.WriteByte('\f')
	case 'n':
		b.WriteByte('\n')
	case 'r':
		b.WriteByte('\r')
	case 't':
		b.WriteByte('\t')
	case 'u':
		l.advance()
		l.unicodeEscape(b, at, fail)
		return
	case eof, '\n', '\r':
		fail(at, "Invalid character escape sequence: \"\\\".")
		return
	default:
		l.advance()
		fail(at, "Invalid character escape sequence: %s.", strconv.Quote(`\`+string(r)))
		return
	}
	l.advance()
}

func (l *lexer) unicodeEscape(b *strings.Builder, at Position, fail func(Position, string, ...any)) {
	if l.peekByte(0) == '{' {
		l.advance()
		code, n := 0, 0
		for isHex(l.peekByte(0)) && n < 8 {
			code = code<<4 | hexVal(l.peekByte(0))
			l.advance()
			n++
		}
		if l.peekByte(0) != '}' || n == 0 || code > utf8.MaxRune || isSurrogate(code) {
			fail(at, "Invalid Unicode escape sequence: %s.", strconv.Quote(l.input[at.Offset:l.off]))
			return
		}
		l.advance()
		b.WriteRune(rune(code))
		return
	}
	code, ok := l.hex4()
	if !ok {
		fail(at, "Invalid Unicode escape sequence: %s.", strconv.Quote(l.input[at.Offset:l.off]))
		return
	}
	if code >= 0xD800 && code <= 0xDBFF {
		if l.peekByte(0) == '\\' && l.peekByte(1) == 'u' {
			save := *l
			l.advance()
			l.advance()
			if low, ok := l.hex4(); ok && low >= 0xDC00 && low <= 0xDFFF {
				b.WriteRune(rune((code-0xD800)<<10 + (low - 0xDC00) + 0x10000))
				return
			}
			l.off, l.line, l.col = save.off, save.line, save.col
		}
		fail(at, "Invalid Unicode escape sequence: %s.", strconv.Quote(l.input[at.Offset:l.off]))
		return
	}
	if isSurrogate(code) {
		fail(at, "Invalid Unicode escape sequence: %s.", strconv.Quote(l.input[at.Offset:l.off]))
		return
	}
	b.WriteRune(rune(code))
}

// hex4 consumes exactly four hex digits.
func (l *lexer) hex4() (int, bool) {
	code := 0
	for i := 0; i < 4; i++ {
		if !isHex(l.peekByte(i)) {
			return 0, false
		}
		code = code<<4 | hexVal(l.peekByte(i))
	}
	for i := 0; i < 4; i++ {
		l.advance()
	}
	return code, true
}

func (l *lexer) blockString(start Position) {
	for i := 0; i < 3; i++ {
		l.advance()
	}
	var raw strings.Builder
	var errs []Token
	for {
		rest := l.input[l.off:]
		if strings.HasPrefix(rest, `"""`) {
			for i := 0; i < 3; i++ {
				l.advance()
			}
			l.emit(BlockStringToken, start, blockStringValue(raw.String()))
			l.tokens = append(l.tokens, errs...)
			return
		}
		if strings.HasPrefix(rest, `\"""`) {
			for i := 0; i < 4; i++ {
				l.advance()
			}
			raw.WriteString(`"""`)
			continue
		}
		at := l.pos()
		r, w := l.peek()
		switch {
		case r == eof:
			l.errorf(start, "Unterminated string.")
			l.tokens = append(l.tokens, errs...)
			return
		case r == '\n' || r == '\r':
			l.advance()
			raw.WriteByte('\n')
		case r == utf8.RuneError && w == 1:
			l.advance()
			errs = append(errs, Token{Kind: Error, Text: l.input[at.Offset:l.off], Pos: at, Err: "Invalid UTF-8 sequence within String."})
		case r < 0x20 && r != '\t':
			l.advance()
			errs = append(errs, Token{Kind: Error, Text: l.input[at.Offset:l.off], Pos: at, Err: fmt.Sprintf("Invalid character within String: %s.", describeRune(r))})
		default:
			l.advance()
			raw.WriteRune(r)
		}
	}
}

func describeRune(r rune) string {
	switch {
	case r == eof:
		return "<EOF>"
	case r >= 0x20 && r != 0x7F && utf8.ValidRune(r) && r != utf8.RuneError:
		return strconv.Quote(string(r))
	default:
		return fmt.Sprintf("U+%04X", r)
	}
}

func isLetter(r rune) bool { return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') }
func isDigit(r rune) bool  { return r >= '0' && r <= '9' }

func isHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func hexVal(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	default:
		return int(c-'A') + 10
	}
}

func isSurrogate(code int) bool { return code >= 0xD800 && code <= 0xDFFF }
