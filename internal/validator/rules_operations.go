package validator

import (
	"strings"

	language "github.com/hanpama/gqlquery/internal/language"
)

func (v *validator) loneAnonymousOperation() {
	ops := v.doc.Operations()
	if len(ops) < 2 {
		return
	}
	for _, op := range ops {
		if op.Name == "" {
			v.report(msgAnonOperationNotAlone(), op.Position)
		}
	}
}

func (v *validator) uniqueOperationNames() {
	known := map[string]*language.OperationDefinition{}
	for _, op := range v.doc.Operations() {
		if op.Name == "" {
			continue
		}
		if first, ok := known[op.Name]; ok {
			v.report(msgDuplicateOperationName(op.Name), first.NamePosition, op.NamePosition)
			continue
		}
		known[op.Name] = op
	}
}

// fieldGroup is the set of root fields sharing one response name.
type fieldGroup struct {
	responseName string
	fields       []*language.Field
}

func (v *validator) singleFieldSubscriptions() {
	for _, op := range v.doc.Operations() {
		if op.Operation != language.Subscription {
			continue
		}
		groups := v.collectRootFields(op.SelectionSet)
		if len(groups) > 1 {
			var extra []language.Position
			for _, g := range groups[1:] {
				for _, f := range g.fields {
					extra = append(extra, f.Position)
				}
			}
			v.report(msgSubscriptionSingleField(op.Name), extra...)
		}
		for _, g := range groups {
			if strings.HasPrefix(g.fields[0].Name, "__") {
				var locs []language.Position
				for _, f := range g.fields {
					locs = append(locs, f.Position)
				}
				v.report(msgSubscriptionIntrospectionField(op.Name), locs...)
			}
		}
	}
}

// collectRootFields groups the fields selected at the root of set by response
// name, looking through inline fragments and spreads of known fragments.
func (v *validator) collectRootFields(set language.SelectionSet) []*fieldGroup {
	var groups []*fieldGroup
	index := map[string]*fieldGroup{}
	visited := map[string]bool{}

	stack := pushSelections(nil, set)
	for len(stack) > 0 {
		sel := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch s := sel.(type) {
		case *language.Field:
			name := s.ResponseName()
			g, ok := index[name]
			if !ok {
				g = &fieldGroup{responseName: name}
				index[name] = g
				groups = append(groups, g)
			}
			g.fields = append(g.fields, s)
		case *language.InlineFragment:
			stack = pushSelections(stack, s.SelectionSet)
		case *language.FragmentSpread:
			if visited[s.Name] {
				continue
			}
			visited[s.Name] = true
			if frag := v.fragments[s.Name]; frag != nil {
				stack = pushSelections(stack, frag.SelectionSet)
			}
		}
	}
	return groups
}
