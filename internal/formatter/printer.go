package formatter

import (
	"bytes"
	"strings"
)

const indentSize = 2

// printer accumulates formatted output and tracks indentation.
type printer struct {
	output      *bytes.Buffer
	depth       int
	atLineStart bool
}

func newPrinter() *printer {
	return &printer{
		output:      &bytes.Buffer{},
		atLineStart: true,
	}
}

// String returns the output with exactly one trailing newline.
func (p *printer) String() string {
	return strings.TrimRight(p.output.String(), "\n") + "\n"
}

func (p *printer) write(s string) {
	if p.atLineStart && len(s) > 0 {
		p.writeIndent()
	}
	p.output.WriteString(s)
	p.atLineStart = false
}

func (p *printer) writeln() {
	p.output.WriteByte('\n')
	p.atLineStart = true
}

func (p *printer) writeIndent() {
	for i := 0; i < p.depth*indentSize; i++ {
		p.output.WriteByte(' ')
	}
	p.atLineStart = false
}

func (p *printer) indent() {
	p.depth++
}

func (p *printer) dedent() {
	if p.depth > 0 {
		p.depth--
	}
}

// list prints count items separated by ", ".
func (p *printer) list(count int, item func(i int)) {
	for i := 0; i < count; i++ {
		if i > 0 {
			p.write(", ")
		}
		item(i)
	}
}
