package validator

import (
	language "github.com/hanpama/gqlquery/internal/language"
)

// Type system locations. Built-in directives that only apply to schema
// definitions list them so that any use in a query is reported.
const (
	locationScalar               language.DirectiveLocation = "SCALAR"
	locationFieldDefinition      language.DirectiveLocation = "FIELD_DEFINITION"
	locationArgumentDefinition   language.DirectiveLocation = "ARGUMENT_DEFINITION"
	locationInputObject          language.DirectiveLocation = "INPUT_OBJECT"
	locationInputFieldDefinition language.DirectiveLocation = "INPUT_FIELD_DEFINITION"
	locationEnumValue            language.DirectiveLocation = "ENUM_VALUE"
)

type directiveDefinition struct {
	Name         string
	Arguments    []*argumentDefinition
	Locations    []language.DirectiveLocation
	IsRepeatable bool
}

func (d *directiveDefinition) argument(name string) *argumentDefinition {
	for _, arg := range d.Arguments {
		if arg.Name == name {
			return arg
		}
	}
	return nil
}

func (d *directiveDefinition) allows(loc language.DirectiveLocation) bool {
	for _, l := range d.Locations {
		if l == loc {
			return true
		}
	}
	return false
}

type argumentDefinition struct {
	Name       string
	Type       *language.Type
	HasDefault bool
}

func (a *argumentDefinition) required() bool {
	return a.Type.NonNull && !a.HasDefault
}

func named(name string) *language.Type { return &language.Type{NamedType: name} }
func nonNull(name string) *language.Type { return &language.Type{NamedType: name, NonNull: true} }

var includeDirective = &directiveDefinition{
	Name:      "include",
	Arguments: []*argumentDefinition{{Name: "if", Type: nonNull("Boolean")}},
	Locations: []language.DirectiveLocation{
		language.LocationField,
		language.LocationFragmentSpread,
		language.LocationInlineFragment,
	},
}

var skipDirective = &directiveDefinition{
	Name:      "skip",
	Arguments: []*argumentDefinition{{Name: "if", Type: nonNull("Boolean")}},
	Locations: []language.DirectiveLocation{
		language.LocationField,
		language.LocationFragmentSpread,
		language.LocationInlineFragment,
	},
}

var deprecatedDirective = &directiveDefinition{
	Name:      "deprecated",
	Arguments: []*argumentDefinition{{Name: "reason", Type: named("String"), HasDefault: true}},
	Locations: []language.DirectiveLocation{
		locationFieldDefinition,
		locationArgumentDefinition,
		locationInputFieldDefinition,
		locationEnumValue,
	},
}

var specifiedByDirective = &directiveDefinition{
	Name:      "specifiedBy",
	Arguments: []*argumentDefinition{{Name: "url", Type: nonNull("String")}},
	Locations: []language.DirectiveLocation{locationScalar},
}

var oneOfDirective = &directiveDefinition{
	Name:      "oneOf",
	Locations: []language.DirectiveLocation{locationInputObject},
}

var deferDirective = &directiveDefinition{
	Name: "defer",
	Arguments: []*argumentDefinition{
		{Name: "if", Type: nonNull("Boolean"), HasDefault: true},
		{Name: "label", Type: named("String")},
	},
	Locations: []language.DirectiveLocation{
		language.LocationFragmentSpread,
		language.LocationInlineFragment,
	},
}

var streamDirective = &directiveDefinition{
	Name: "stream",
	Arguments: []*argumentDefinition{
		{Name: "if", Type: nonNull("Boolean"), HasDefault: true},
		{Name: "label", Type: named("String")},
		{Name: "initialCount", Type: named("Int"), HasDefault: true},
	},
	Locations: []language.DirectiveLocation{language.LocationField},
}

var builtinDirectives = map[string]*directiveDefinition{
	includeDirective.Name:     includeDirective,
	skipDirective.Name:        skipDirective,
	deprecatedDirective.Name:  deprecatedDirective,
	specifiedByDirective.Name: specifiedByDirective,
	oneOfDirective.Name:       oneOfDirective,
	deferDirective.Name:       deferDirective,
	streamDirective.Name:      streamDirective,
}
