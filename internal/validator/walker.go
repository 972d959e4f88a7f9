package validator

import (
	language "github.com/hanpama/gqlquery/internal/language"
)

// observers receives callbacks while a definition is walked. Nil callbacks
// are skipped. Nodes are visited in document order.
type observers struct {
	field          func(*language.Field)
	fragmentSpread func(*language.FragmentSpread)
	inlineFragment func(*language.InlineFragment)
	directives     func(language.DirectiveList)
	arguments      func(language.ArgumentList)
	value          func(*language.Value)

	// skipVariableDefinitions leaves out default values and directives of
	// variable definitions, which are not variable usages.
	skipVariableDefinitions bool
}

func (o *observers) walkDocument(doc *language.QueryDocument) {
	for _, def := range doc.Definitions {
		o.walkDefinition(def)
	}
}

func (o *observers) walkDefinition(def language.Definition) {
	switch d := def.(type) {
	case *language.OperationDefinition:
		if !o.skipVariableDefinitions {
			for _, vd := range d.VariableDefinitions {
				if vd.DefaultValue != nil {
					o.walkValue(vd.DefaultValue)
				}
				o.walkDirectives(vd.Directives)
			}
		}
		o.walkDirectives(d.Directives)
		o.walkSelections(d.SelectionSet)
	case *language.FragmentDefinition:
		o.walkDirectives(d.Directives)
		o.walkSelections(d.SelectionSet)
	}
}

// walkSelections traverses a selection tree with an explicit stack so that
// deeply nested documents cannot exhaust the goroutine stack.
func (o *observers) walkSelections(set language.SelectionSet) {
	stack := pushSelections(nil, set)
	for len(stack) > 0 {
		sel := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch s := sel.(type) {
		case *language.Field:
			if o.field != nil {
				o.field(s)
			}
			o.walkArguments(s.Arguments)
			o.walkDirectives(s.Directives)
			stack = pushSelections(stack, s.SelectionSet)
		case *language.FragmentSpread:
			if o.fragmentSpread != nil {
				o.fragmentSpread(s)
			}
			o.walkDirectives(s.Directives)
		case *language.InlineFragment:
			if o.inlineFragment != nil {
				o.inlineFragment(s)
			}
			o.walkDirectives(s.Directives)
			stack = pushSelections(stack, s.SelectionSet)
		}
	}
}

// pushSelections pushes set in reverse so it pops in document order.
func pushSelections(stack []language.Selection, set language.SelectionSet) []language.Selection {
	for i := len(set) - 1; i >= 0; i-- {
		stack = append(stack, set[i])
	}
	return stack
}

func (o *observers) walkDirectives(list language.DirectiveList) {
	if len(list) == 0 {
		return
	}
	if o.directives != nil {
		o.directives(list)
	}
	for _, d := range list {
		o.walkArguments(d.Arguments)
	}
}

func (o *observers) walkArguments(list language.ArgumentList) {
	if len(list) == 0 {
		return
	}
	if o.arguments != nil {
		o.arguments(list)
	}
	for _, arg := range list {
		o.walkValue(arg.Value)
	}
}

func (o *observers) walkValue(root *language.Value) {
	if o.value == nil {
		return
	}
	stack := []*language.Value{root}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		o.value(v)
		for i := len(v.Children) - 1; i >= 0; i-- {
			stack = append(stack, v.Children[i].Value)
		}
	}
}

// directSpreads returns the fragment spreads inside set without following
// them into fragment definitions.
func directSpreads(set language.SelectionSet) []*language.FragmentSpread {
	var spreads []*language.FragmentSpread
	o := &observers{fragmentSpread: func(s *language.FragmentSpread) {
		spreads = append(spreads, s)
	}}
	o.walkSelections(set)
	return spreads
}
