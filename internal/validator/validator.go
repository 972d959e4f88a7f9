// Package validator checks executable documents against the GraphQL
// validation rules that hold without a schema.
package validator

import (
	language "github.com/hanpama/gqlquery/internal/language"
)

type rule struct {
	name  string
	check func(v *validator)
}

// rules run in this order; every rule runs regardless of earlier failures.
var rules = []rule{
	{"LoneAnonymousOperation", (*validator).loneAnonymousOperation},
	{"UniqueOperationNames", (*validator).uniqueOperationNames},
	{"SingleFieldSubscriptions", (*validator).singleFieldSubscriptions},
	{"UniqueFragmentNames", (*validator).uniqueFragmentNames},
	{"KnownFragmentNames", (*validator).knownFragmentNames},
	{"NoUnusedFragments", (*validator).noUnusedFragments},
	{"NoFragmentCycles", (*validator).noFragmentCycles},
	{"UniqueVariableNames", (*validator).uniqueVariableNames},
	{"NoUndefinedVariables", (*validator).noUndefinedVariables},
	{"NoUnusedVariables", (*validator).noUnusedVariables},
	{"KnownDirectives", (*validator).knownDirectiveLocations},
	{"UniqueDirectivesPerLocation", (*validator).uniqueDirectivesPerLocation},
	{"KnownArgumentNames", (*validator).knownDirectiveArguments},
	{"ProvidedRequiredArguments", (*validator).providedRequiredDirectiveArguments},
	{"ValuesOfCorrectType", (*validator).directiveArgumentValues},
	{"UniqueArgumentNames", (*validator).uniqueArgumentNames},
	{"UniqueInputFieldNames", (*validator).uniqueInputFieldNames},
}

// RuleNames lists the rules in the order they run.
func RuleNames() []string {
	names := make([]string, len(rules))
	for i, r := range rules {
		names[i] = r.name
	}
	return names
}

type validator struct {
	doc       *language.QueryDocument
	rule      string
	errs      language.DiagnosticList
	fragments map[string]*language.FragmentDefinition
	spreads   map[language.Definition][]*language.FragmentSpread
}

// Validate runs every rule over doc and returns the violations found, nil
// when the document is valid. Diagnostics are grouped by rule in rule order,
// and by document order within a rule.
func Validate(doc *language.QueryDocument) language.DiagnosticList {
	v := &validator{
		doc:       doc,
		fragments: make(map[string]*language.FragmentDefinition),
		spreads:   make(map[language.Definition][]*language.FragmentSpread),
	}
	for _, frag := range doc.Fragments() {
		if _, ok := v.fragments[frag.Name]; !ok {
			v.fragments[frag.Name] = frag
		}
	}
	for _, r := range rules {
		v.rule = r.name
		r.check(v)
	}
	if len(v.errs) == 0 {
		return nil
	}
	return v.errs
}

func (v *validator) report(message string, positions ...language.Position) {
	v.errs = append(v.errs, language.NewDiagnostic(v.doc.Name, v.rule, message, positions...))
}

// spreadsOf returns the spreads directly inside a definition's selection set.
func (v *validator) spreadsOf(def language.Definition) []*language.FragmentSpread {
	if spreads, ok := v.spreads[def]; ok {
		return spreads
	}
	var set language.SelectionSet
	switch d := def.(type) {
	case *language.OperationDefinition:
		set = d.SelectionSet
	case *language.FragmentDefinition:
		set = d.SelectionSet
	}
	spreads := directSpreads(set)
	v.spreads[def] = spreads
	return spreads
}

// referencedFragments returns the known fragments reachable from op through
// spreads, each once.
func (v *validator) referencedFragments(op *language.OperationDefinition) []*language.FragmentDefinition {
	var frags []*language.FragmentDefinition
	collected := map[string]bool{}
	pending := []language.Definition{op}
	for len(pending) > 0 {
		def := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		for _, spread := range v.spreadsOf(def) {
			if collected[spread.Name] {
				continue
			}
			collected[spread.Name] = true
			if frag := v.fragments[spread.Name]; frag != nil {
				frags = append(frags, frag)
				pending = append(pending, frag)
			}
		}
	}
	return frags
}

// variableUsages returns every variable referenced by op, directly or through
// the fragments it spreads, in traversal order.
func (v *validator) variableUsages(op *language.OperationDefinition) []*language.Value {
	var usages []*language.Value
	o := &observers{
		skipVariableDefinitions: true,
		value: func(val *language.Value) {
			if val.Kind == language.Variable {
				usages = append(usages, val)
			}
		},
	}
	o.walkDefinition(op)
	for _, frag := range v.referencedFragments(op) {
		o.walkDefinition(frag)
	}
	return usages
}
