package validator

import (
	language "github.com/hanpama/gqlquery/internal/language"
)

func (v *validator) uniqueArgumentNames() {
	o := &observers{arguments: func(list language.ArgumentList) {
		seen := map[string]*language.Argument{}
		for _, arg := range list {
			if first, ok := seen[arg.Name]; ok {
				v.report(msgDuplicateArgument(arg.Name), first.Position, arg.Position)
				continue
			}
			seen[arg.Name] = arg
		}
	}}
	o.walkDocument(v.doc)
}

func (v *validator) uniqueInputFieldNames() {
	o := &observers{value: func(val *language.Value) {
		if val.Kind != language.ObjectValue {
			return
		}
		seen := map[string]*language.ChildValue{}
		for _, field := range val.Children {
			if first, ok := seen[field.Name]; ok {
				v.report(msgDuplicateInputField(field.Name), first.Position, field.Position)
				continue
			}
			seen[field.Name] = field
		}
	}}
	o.walkDocument(v.doc)
}
