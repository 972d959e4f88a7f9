package language

import (
	"strconv"
)

// Position is a location in query source. Line and Column are 1-based and
// Column counts runes; Offset is the 0-based byte offset.
type Position struct {
	Line   int
	Column int
	Offset int
}

// IsValid reports whether the position was set.
func (p Position) IsValid() bool { return p.Line > 0 }

// Before reports whether p precedes q in the source.
func (p Position) Before(q Position) bool {
	if p.Line != q.Line {
		return p.Line < q.Line
	}
	return p.Column < q.Column
}

type TokenKind int

const (
	EOF TokenKind = iota
	Name
	IntToken
	FloatToken
	StringToken
	BlockStringToken
	Punctuator
	Comment
	Error
)

func (k TokenKind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case Name:
		return "Name"
	case IntToken:
		return "Int"
	case FloatToken:
		return "Float"
	case StringToken:
		return "String"
	case BlockStringToken:
		return "BlockString"
	case Punctuator:
		return "Punctuator"
	case Comment:
		return "Comment"
	case Error:
		return "Error"
	}
	return "TokenKind(" + strconv.Itoa(int(k)) + ")"
}

// Token is a lexical unit. Text is the raw source slice; for string tokens
// Value holds the decoded string. Err is set only on Error tokens.
type Token struct {
	Kind  TokenKind
	Text  string
	Value string
	Pos   Position
	Err   string
}

func (t Token) is(kind TokenKind, text string) bool {
	return t.Kind == kind && t.Text == text
}

// describe renders a token for syntax error messages.
func (t Token) describe() string {
	switch t.Kind {
	case EOF:
		return "<EOF>"
	case Punctuator:
		return strconv.Quote(t.Text)
	case StringToken, BlockStringToken:
		return t.Kind.String() + " " + strconv.Quote(t.Value)
	default:
		return t.Kind.String() + " " + strconv.Quote(t.Text)
	}
}
