package language

func (p *parser) parseValue(isConst bool) (*Value, bool) {
	tok := p.peek()
	switch tok.Kind {
	case Punctuator:
		switch tok.Text {
		case "[":
			return p.parseList(isConst)
		case "{":
			return p.parseObject(isConst)
		case "$":
			p.next()
			name, ok := p.expectName()
			if !ok {
				return nil, false
			}
			if isConst {
				p.errorf(tok.Pos, "Unexpected variable \"$%s\" in constant value.", name.Text)
			}
			return &Value{Kind: Variable, Raw: name.Text, Position: tok.Pos}, true
		}
	case IntToken:
		p.next()
		return &Value{Kind: IntValue, Raw: tok.Text, Position: tok.Pos}, true
	case FloatToken:
		p.next()
		return &Value{Kind: FloatValue, Raw: tok.Text, Position: tok.Pos}, true
	case StringToken:
		p.next()
		return &Value{Kind: StringValue, Raw: tok.Value, Position: tok.Pos}, true
	case BlockStringToken:
		p.next()
		return &Value{Kind: BlockValue, Raw: tok.Value, Position: tok.Pos}, true
	case Name:
		p.next()
		v := &Value{Kind: EnumValue, Raw: tok.Text, Position: tok.Pos}
		switch tok.Text {
		case "true", "false":
			v.Kind = BooleanValue
		case "null":
			v.Kind = NullValue
		}
		return v, true
	}
	p.unexpected(tok, "")
	return nil, false
}

func (p *parser) parseList(isConst bool) (*Value, bool) {
	open := p.peek()
	if !p.enter(open) {
		return nil, false
	}
	defer p.leave()

	v := &Value{Kind: ListValue, Position: open.Pos}
	ok := p.group("[", true, "", isValueStart, func() bool {
		item, ok := p.parseValue(isConst)
		if item != nil {
			v.Children = append(v.Children, &ChildValue{Value: item, Position: item.Position})
		}
		return ok
	})
	return v, ok
}

func (p *parser) parseObject(isConst bool) (*Value, bool) {
	open := p.peek()
	if !p.enter(open) {
		return nil, false
	}
	defer p.leave()

	v := &Value{Kind: ObjectValue, Position: open.Pos}
	ok := p.group("{", true, "Name", isNameStart, func() bool {
		name, ok := p.expectName()
		if !ok {
			return false
		}
		if _, ok := p.expectPunct(":"); !ok {
			return false
		}
		field, ok := p.parseValue(isConst)
		if !ok {
			return false
		}
		v.Children = append(v.Children, &ChildValue{Name: name.Text, Value: field, Position: name.Pos})
		return true
	})
	return v, ok
}

func isValueStart(tok Token) bool {
	switch tok.Kind {
	case Name, IntToken, FloatToken, StringToken, BlockStringToken:
		return true
	case Punctuator:
		return tok.Text == "[" || tok.Text == "{" || tok.Text == "$"
	}
	return false
}
