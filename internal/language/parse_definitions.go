package language

func (p *parser) parseDocument() *QueryDocument {
	doc := &QueryDocument{Name: p.name}
	if p.aborted {
		return doc
	}
	if p.peek().Kind == EOF {
		p.unexpected(p.peek(), "")
		return doc
	}
	for !p.aborted && p.peek().Kind != EOF {
		start := p.idx
		def, ok := p.parseDefinition()
		if def != nil {
			doc.Definitions = append(doc.Definitions, def)
		}
		if !ok && !p.aborted {
			p.skipDefinition(start)
		}
	}
	return doc
}

func (p *parser) parseDefinition() (Definition, bool) {
	tok := p.peek()
	if tok.is(Punctuator, "{") {
		return p.parseOperation()
	}
	if tok.Kind == Name {
		switch tok.Text {
		case "query", "mutation", "subscription":
			return p.parseOperation()
		case "fragment":
			return p.parseFragment()
		case "schema", "scalar", "type", "interface", "union", "enum", "input", "directive", "extend":
			p.errorf(tok.Pos, "Unexpected %s: executable documents contain only operations and fragments.", tok.describe())
			return nil, false
		}
	}
	p.unexpected(tok, "")
	return nil, false
}

func (p *parser) parseOperation() (*OperationDefinition, bool) {
	tok := p.peek()
	op := &OperationDefinition{Operation: Query, Position: tok.Pos}
	var ok bool
	if tok.is(Punctuator, "{") {
		op.SelectionSet, ok = p.parseSelectionSet()
		return op, ok
	}
	op.Operation = Operation(p.next().Text)
	if name := p.peek(); name.Kind == Name {
		p.next()
		op.Name, op.NamePosition = name.Text, name.Pos
	}
	if p.peekPunct("(") {
		if op.VariableDefinitions, ok = p.parseVariableDefinitions(); !ok {
			return op, false
		}
	}
	if op.Directives, ok = p.parseDirectives(OperationLocation(op.Operation), false); !ok {
		return op, false
	}
	op.SelectionSet, ok = p.parseSelectionSet()
	return op, ok
}

func (p *parser) parseFragment() (*FragmentDefinition, bool) {
	frag := &FragmentDefinition{Position: p.next().Pos}
	name, ok := p.expectName()
	if !ok {
		return nil, false
	}
	if name.Text == "on" {
		p.unexpected(name, "")
		return nil, false
	}
	frag.Name, frag.NamePosition = name.Text, name.Pos
	if !p.expectKeyword("on") {
		return frag, false
	}
	cond, ok := p.expectName()
	if !ok {
		return frag, false
	}
	frag.TypeCondition = cond.Text
	if frag.Directives, ok = p.parseDirectives(LocationFragmentDefinition, false); !ok {
		return frag, false
	}
	frag.SelectionSet, ok = p.parseSelectionSet()
	return frag, ok
}

func (p *parser) parseVariableDefinitions() (VariableDefinitionList, bool) {
	var defs VariableDefinitionList
	ok := p.group("(", false, `"$"`, isVariableStart, func() bool {
		def, ok := p.parseVariableDefinition()
		if def != nil {
			defs = append(defs, def)
		}
		return ok
	})
	return defs, ok
}

func (p *parser) parseVariableDefinition() (*VariableDefinition, bool) {
	dollar, ok := p.expectPunct("$")
	if !ok {
		return nil, false
	}
	name, ok := p.expectName()
	if !ok {
		return nil, false
	}
	def := &VariableDefinition{Variable: name.Text, Position: dollar.Pos}
	if _, ok := p.expectPunct(":"); !ok {
		return def, false
	}
	if def.Type, ok = p.parseType(); !ok {
		return def, false
	}
	if p.skipPunct("=") {
		if def.DefaultValue, ok = p.parseValue(true); !ok {
			return def, false
		}
	}
	def.Directives, ok = p.parseDirectives(LocationVariableDefinition, true)
	return def, ok
}

func (p *parser) parseType() (*Type, bool) {
	tok := p.peek()
	var t *Type
	if tok.is(Punctuator, "[") {
		if !p.enter(tok) {
			return nil, false
		}
		p.next()
		elem, ok := p.parseType()
		p.leave()
		if !ok {
			return nil, false
		}
		if _, ok := p.expectPunct("]"); !ok {
			return nil, false
		}
		t = &Type{Elem: elem, Position: tok.Pos}
	} else {
		name, ok := p.expectName()
		if !ok {
			return nil, false
		}
		t = &Type{NamedType: name.Text, Position: name.Pos}
	}
	t.NonNull = p.skipPunct("!")
	return t, true
}

func (p *parser) parseDirectives(loc DirectiveLocation, isConst bool) (DirectiveList, bool) {
	var list DirectiveList
	for p.peekPunct("@") {
		at := p.next()
		name, ok := p.expectName()
		if !ok {
			return list, false
		}
		d := &Directive{Name: name.Text, Location: loc, Position: at.Pos}
		if p.peekPunct("(") {
			if d.Arguments, ok = p.parseArguments(isConst); !ok {
				return list, false
			}
		}
		list = append(list, d)
	}
	return list, true
}

func (p *parser) parseArguments(isConst bool) (ArgumentList, bool) {
	var args ArgumentList
	ok := p.group("(", false, "Name", isNameStart, func() bool {
		name, ok := p.expectName()
		if !ok {
			return false
		}
		if _, ok := p.expectPunct(":"); !ok {
			return false
		}
		v, ok := p.parseValue(isConst)
		if !ok {
			return false
		}
		args = append(args, &Argument{Name: name.Text, Value: v, Position: name.Pos})
		return true
	})
	return args, ok
}

func (p *parser) parseSelectionSet() (SelectionSet, bool) {
	tok := p.peek()
	if !tok.is(Punctuator, "{") {
		p.unexpected(tok, `"{"`)
		return nil, false
	}
	if !p.enter(tok) {
		return nil, false
	}
	defer p.leave()

	var set SelectionSet
	ok := p.group("{", false, "Name", isSelectionStart, func() bool {
		sel, ok := p.parseSelection()
		if sel != nil {
			set = append(set, sel)
		}
		return ok
	})
	return set, ok
}

func (p *parser) parseSelection() (Selection, bool) {
	tok := p.peek()
	if tok.is(Punctuator, "...") {
		return p.parseFragmentSelection()
	}
	if tok.Kind != Name {
		p.unexpected(tok, "Name")
		return nil, false
	}
	return p.parseField()
}

func (p *parser) parseField() (*Field, bool) {
	first := p.next()
	f := &Field{Name: first.Text, Position: first.Pos}
	ok := true
	if p.skipPunct(":") {
		name, ok := p.expectName()
		if !ok {
			return f, false
		}
		f.Alias, f.Name = f.Name, name.Text
	}
	if p.peekPunct("(") {
		if f.Arguments, ok = p.parseArguments(false); !ok {
			return f, false
		}
	}
	if f.Directives, ok = p.parseDirectives(LocationField, false); !ok {
		return f, false
	}
	if p.peekPunct("{") {
		f.SelectionSet, ok = p.parseSelectionSet()
	}
	return f, ok
}

// parseFragmentSelection parses a fragment spread or an inline fragment; the
// "..." token has not been consumed.
func (p *parser) parseFragmentSelection() (Selection, bool) {
	spread := p.next()
	var ok bool
	if tok := p.peek(); tok.Kind == Name && tok.Text != "on" {
		p.next()
		s := &FragmentSpread{Name: tok.Text, Position: spread.Pos}
		s.Directives, ok = p.parseDirectives(LocationFragmentSpread, false)
		return s, ok
	}
	f := &InlineFragment{Position: spread.Pos}
	if p.peekKeyword("on") {
		p.next()
		cond, ok := p.expectName()
		if !ok {
			return f, false
		}
		f.TypeCondition = cond.Text
	}
	if f.Directives, ok = p.parseDirectives(LocationInlineFragment, false); !ok {
		return f, false
	}
	f.SelectionSet, ok = p.parseSelectionSet()
	return f, ok
}

func isNameStart(tok Token) bool { return tok.Kind == Name }

func isVariableStart(tok Token) bool { return tok.is(Punctuator, "$") }

func isSelectionStart(tok Token) bool {
	return tok.Kind == Name || tok.is(Punctuator, "...")
}
