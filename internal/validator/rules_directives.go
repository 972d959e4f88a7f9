package validator

import (
	"strconv"

	language "github.com/hanpama/gqlquery/internal/language"
)

// Directive rules only know the built-in directives. Other directives would
// need a schema and pass unchecked.

func (v *validator) forEachBuiltinDirective(fn func(d *language.Directive, def *directiveDefinition)) {
	o := &observers{directives: func(list language.DirectiveList) {
		for _, d := range list {
			if def := builtinDirectives[d.Name]; def != nil {
				fn(d, def)
			}
		}
	}}
	o.walkDocument(v.doc)
}

func (v *validator) knownDirectiveLocations() {
	v.forEachBuiltinDirective(func(d *language.Directive, def *directiveDefinition) {
		if !def.allows(d.Location) {
			v.report(msgMisplacedDirective(d.Name, string(d.Location)), d.Position)
		}
	})
}

func (v *validator) uniqueDirectivesPerLocation() {
	o := &observers{directives: func(list language.DirectiveList) {
		seen := map[string]*language.Directive{}
		for _, d := range list {
			def := builtinDirectives[d.Name]
			if def == nil || def.IsRepeatable {
				continue
			}
			if first, ok := seen[d.Name]; ok {
				v.report(msgDuplicateDirective(d.Name), first.Position, d.Position)
				continue
			}
			seen[d.Name] = d
		}
	}}
	o.walkDocument(v.doc)
}

func (v *validator) knownDirectiveArguments() {
	v.forEachBuiltinDirective(func(d *language.Directive, def *directiveDefinition) {
		for _, arg := range d.Arguments {
			if def.argument(arg.Name) == nil {
				v.report(msgUnknownDirectiveArgument(arg.Name, d.Name), arg.Position)
			}
		}
	})
}

func (v *validator) providedRequiredDirectiveArguments() {
	v.forEachBuiltinDirective(func(d *language.Directive, def *directiveDefinition) {
		for _, argDef := range def.Arguments {
			if argDef.required() && d.Arguments.ForName(argDef.Name) == nil {
				v.report(msgMissingDirectiveArgument(d.Name, argDef.Name, argDef.Type.String()), d.Position)
			}
		}
	})
}

// directiveArgumentValues checks literal arguments of built-in directives
// against their scalar types. Variables are accepted as-is.
func (v *validator) directiveArgumentValues() {
	v.forEachBuiltinDirective(func(d *language.Directive, def *directiveDefinition) {
		for _, arg := range d.Arguments {
			if argDef := def.argument(arg.Name); argDef != nil {
				v.checkScalarLiteral(argDef.Type, arg.Value)
			}
		}
	})
}

func (v *validator) checkScalarLiteral(typ *language.Type, value *language.Value) {
	switch value.Kind {
	case language.Variable:
		return
	case language.NullValue:
		if typ.NonNull {
			v.report(msgNullForNonNull(typ.String(), value.String()), value.Position)
		}
		return
	}
	switch typ.NamedType {
	case "Boolean":
		if value.Kind != language.BooleanValue {
			v.report(msgBadScalarValue("Boolean", value.String()), value.Position)
		}
	case "String":
		if value.Kind != language.StringValue && value.Kind != language.BlockValue {
			v.report(msgBadScalarValue("String", value.String()), value.Position)
		}
	case "Int":
		if value.Kind != language.IntValue {
			v.report(msgBadScalarValue("Int", value.String()), value.Position)
			return
		}
		if _, err := strconv.ParseInt(value.Raw, 10, 32); err != nil {
			v.report(msgIntOutOfRange(value.Raw), value.Position)
		}
	}
}
