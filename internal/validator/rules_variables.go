package validator

import (
	language "github.com/hanpama/gqlquery/internal/language"
)

func (v *validator) uniqueVariableNames() {
	for _, op := range v.doc.Operations() {
		known := map[string]*language.VariableDefinition{}
		for _, vd := range op.VariableDefinitions {
			if first, ok := known[vd.Variable]; ok {
				v.report(msgDuplicateVariable(vd.Variable), first.Position, vd.Position)
				continue
			}
			known[vd.Variable] = vd
		}
	}
}

func (v *validator) noUndefinedVariables() {
	for _, op := range v.doc.Operations() {
		defined := map[string]bool{}
		for _, vd := range op.VariableDefinitions {
			defined[vd.Variable] = true
		}
		for _, usage := range v.variableUsages(op) {
			if !defined[usage.Raw] {
				v.report(msgUndefinedVariable(usage.Raw, op.Name), usage.Position, op.Position)
			}
		}
	}
}

func (v *validator) noUnusedVariables() {
	for _, op := range v.doc.Operations() {
		used := map[string]bool{}
		for _, usage := range v.variableUsages(op) {
			used[usage.Raw] = true
		}
		for _, vd := range op.VariableDefinitions {
			if !used[vd.Variable] {
				v.report(msgUnusedVariable(vd.Variable, op.Name), vd.Position)
			}
		}
	}
}
