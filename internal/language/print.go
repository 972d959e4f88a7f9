package language

import (
	"fmt"
	"strings"
)

// QuoteString renders s as a GraphQL string literal using the shortest
// escapes: \" \\ \b \f \n \r \t, and \uXXXX for other control characters.
func QuoteString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 || (r >= 0x7F && r <= 0x9F) {
				fmt.Fprintf(&b, `\u%04X`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

// String renders the value on a single line, as it appears in messages.
func (v *Value) String() string {
	var b strings.Builder
	v.write(&b)
	return b.String()
}

func (v *Value) write(b *strings.Builder) {
	switch v.Kind {
	case Variable:
		b.WriteString("$" + v.Raw)
	case StringValue:
		b.WriteString(QuoteString(v.Raw))
	case BlockValue:
		b.WriteString(`"""` + strings.ReplaceAll(v.Raw, `"""`, `\"""`) + `"""`)
	case ListValue:
		b.WriteByte('[')
		for i, item := range v.Children {
			if i > 0 {
				b.WriteString(", ")
			}
			item.Value.write(b)
		}
		b.WriteByte(']')
	case ObjectValue:
		b.WriteByte('{')
		for i, field := range v.Children {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(field.Name + ": ")
			field.Value.write(b)
		}
		b.WriteByte('}')
	default:
		b.WriteString(v.Raw)
	}
}
