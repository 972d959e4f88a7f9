// Package formatter prints executable documents in canonical form.
package formatter

import (
	"strings"

	language "github.com/hanpama/gqlquery/internal/language"
)

// Format renders doc with two-space indentation, one selection per line and a
// blank line between definitions. Comments are not preserved. Formatting the
// parsed output again yields the same text.
func Format(doc *language.QueryDocument) string {
	p := newPrinter()
	for i, def := range doc.Definitions {
		if i > 0 {
			p.writeln()
		}
		switch d := def.(type) {
		case *language.OperationDefinition:
			p.formatOperation(d)
		case *language.FragmentDefinition:
			p.formatFragment(d)
		}
		p.writeln()
	}
	return p.String()
}

// ----- definitions -----

func (p *printer) formatOperation(op *language.OperationDefinition) {
	shorthand := op.Operation == language.Query && op.Name == "" &&
		len(op.VariableDefinitions) == 0 && len(op.Directives) == 0
	if !shorthand {
		p.write(string(op.Operation))
		if op.Name != "" {
			p.write(" " + op.Name)
		}
		p.formatVariableDefinitions(op.VariableDefinitions)
		p.formatDirectives(op.Directives)
		p.write(" ")
	}
	p.formatSelectionSet(op.SelectionSet)
}

func (p *printer) formatVariableDefinitions(defs language.VariableDefinitionList) {
	if len(defs) == 0 {
		return
	}
	p.write("(")
	p.list(len(defs), func(i int) {
		vd := defs[i]
		p.write("$" + vd.Variable + ": " + vd.Type.String())
		if vd.DefaultValue != nil {
			p.write(" = ")
			p.formatValue(vd.DefaultValue)
		}
		p.formatDirectives(vd.Directives)
	})
	p.write(")")
}

func (p *printer) formatFragment(frag *language.FragmentDefinition) {
	p.write("fragment " + frag.Name + " on " + frag.TypeCondition)
	p.formatDirectives(frag.Directives)
	p.write(" ")
	p.formatSelectionSet(frag.SelectionSet)
}

// ----- selections -----

func (p *printer) formatSelectionSet(set language.SelectionSet) {
	p.write("{")
	p.writeln()
	p.indent()
	for _, sel := range set {
		switch s := sel.(type) {
		case *language.Field:
			p.formatField(s)
		case *language.FragmentSpread:
			p.write("..." + s.Name)
			p.formatDirectives(s.Directives)
		case *language.InlineFragment:
			p.write("...")
			if s.TypeCondition != "" {
				p.write(" on " + s.TypeCondition)
			}
			p.formatDirectives(s.Directives)
			p.write(" ")
			p.formatSelectionSet(s.SelectionSet)
		}
		p.writeln()
	}
	p.dedent()
	p.write("}")
}

func (p *printer) formatField(f *language.Field) {
	if f.Alias != "" {
		p.write(f.Alias + ": ")
	}
	p.write(f.Name)
	p.formatArguments(f.Arguments)
	p.formatDirectives(f.Directives)
	if len(f.SelectionSet) > 0 {
		p.write(" ")
		p.formatSelectionSet(f.SelectionSet)
	}
}

func (p *printer) formatArguments(args language.ArgumentList) {
	if len(args) == 0 {
		return
	}
	p.write("(")
	p.list(len(args), func(i int) {
		p.write(args[i].Name + ": ")
		p.formatValue(args[i].Value)
	})
	p.write(")")
}

func (p *printer) formatDirectives(list language.DirectiveList) {
	for _, d := range list {
		p.write(" @" + d.Name)
		p.formatArguments(d.Arguments)
	}
}

// ----- values -----

func (p *printer) formatValue(v *language.Value) {
	switch v.Kind {
	case language.Variable:
		p.write("$" + v.Raw)
	case language.StringValue:
		p.write(language.QuoteString(v.Raw))
	case language.BlockValue:
		p.formatBlockString(v.Raw)
	case language.ListValue:
		p.write("[")
		p.list(len(v.Children), func(i int) {
			p.formatValue(v.Children[i].Value)
		})
		p.write("]")
	case language.ObjectValue:
		p.write("{")
		p.list(len(v.Children), func(i int) {
			p.write(v.Children[i].Name + ": ")
			p.formatValue(v.Children[i].Value)
		})
		p.write("}")
	default:
		p.write(v.Raw)
	}
}

// formatBlockString prints value as a block string whose lines sit at the
// current indentation. Values the block string dedent would alter are
// printed as ordinary strings instead.
func (p *printer) formatBlockString(value string) {
	if !language.PrintableAsBlockString(value) {
		p.write(language.QuoteString(value))
		return
	}
	p.write(`"""`)
	p.writeln()
	for _, line := range strings.Split(strings.ReplaceAll(value, `"""`, `\"""`), "\n") {
		p.write(line)
		p.writeln()
	}
	p.write(`"""`)
}
