package language

import "strconv"

// QueryDocument is the root of an executable document. Name is the label the
// source was parsed under and is attached to diagnostics.
type QueryDocument struct {
	Name        string
	Definitions DefinitionList
}

// Operations returns the operation definitions in document order.
func (d *QueryDocument) Operations() []*OperationDefinition {
	var ops []*OperationDefinition
	for _, def := range d.Definitions {
		if op, ok := def.(*OperationDefinition); ok {
			ops = append(ops, op)
		}
	}
	return ops
}

// Fragments returns the fragment definitions in document order.
func (d *QueryDocument) Fragments() []*FragmentDefinition {
	var frags []*FragmentDefinition
	for _, def := range d.Definitions {
		if frag, ok := def.(*FragmentDefinition); ok {
			frags = append(frags, frag)
		}
	}
	return frags
}

// Definition is an *OperationDefinition or a *FragmentDefinition.
type Definition interface {
	isDefinition()
	Pos() Position
}

type DefinitionList []Definition

type Operation string

const (
	Query        Operation = "query"
	Mutation     Operation = "mutation"
	Subscription Operation = "subscription"
)

type OperationDefinition struct {
	Operation           Operation
	Name                string // empty for anonymous operations
	NamePosition        Position
	VariableDefinitions VariableDefinitionList
	Directives          DirectiveList
	SelectionSet        SelectionSet
	Position            Position
}

type VariableDefinition struct {
	Variable     string
	Type         *Type
	DefaultValue *Value
	Directives   DirectiveList
	Position     Position
}

type VariableDefinitionList []*VariableDefinition

// Type is a variable type reference: a named type, or a list of Elem,
// optionally non-null.
type Type struct {
	NamedType string
	Elem      *Type
	NonNull   bool
	Position  Position
}

func (t *Type) String() string {
	var s string
	if t.Elem != nil {
		s = "[" + t.Elem.String() + "]"
	} else {
		s = t.NamedType
	}
	if t.NonNull {
		s += "!"
	}
	return s
}

type FragmentDefinition struct {
	Name          string
	NamePosition  Position
	TypeCondition string
	Directives    DirectiveList
	SelectionSet  SelectionSet
	Position      Position
}

func (*OperationDefinition) isDefinition()    {}
func (*FragmentDefinition) isDefinition()     {}
func (op *OperationDefinition) Pos() Position { return op.Position }
func (f *FragmentDefinition) Pos() Position   { return f.Position }

type SelectionSet []Selection

// Selection is a *Field, *FragmentSpread or *InlineFragment.
type Selection interface {
	isSelection()
	Pos() Position
}

type Field struct {
	Alias        string
	Name         string
	Arguments    ArgumentList
	Directives   DirectiveList
	SelectionSet SelectionSet
	Position     Position
}

// ResponseName is the key the field is reported under.
func (f *Field) ResponseName() string {
	if f.Alias != "" {
		return f.Alias
	}
	return f.Name
}

type FragmentSpread struct {
	Name       string
	Directives DirectiveList
	Position   Position
}

type InlineFragment struct {
	TypeCondition string
	Directives    DirectiveList
	SelectionSet  SelectionSet
	Position      Position
}

func (*Field) isSelection()              {}
func (*FragmentSpread) isSelection()     {}
func (*InlineFragment) isSelection()     {}
func (f *Field) Pos() Position           { return f.Position }
func (s *FragmentSpread) Pos() Position  { return s.Position }
func (f *InlineFragment) Pos() Position  { return f.Position }

type Argument struct {
	Name     string
	Value    *Value
	Position Position
}

type ArgumentList []*Argument

// ForName returns the first argument called name, or nil.
func (l ArgumentList) ForName(name string) *Argument {
	for _, arg := range l {
		if arg.Name == name {
			return arg
		}
	}
	return nil
}

// DirectiveLocation is where in an executable document a directive appears.
type DirectiveLocation string

const (
	LocationQuery              DirectiveLocation = "QUERY"
	LocationMutation           DirectiveLocation = "MUTATION"
	LocationSubscription       DirectiveLocation = "SUBSCRIPTION"
	LocationField              DirectiveLocation = "FIELD"
	LocationFragmentDefinition DirectiveLocation = "FRAGMENT_DEFINITION"
	LocationFragmentSpread     DirectiveLocation = "FRAGMENT_SPREAD"
	LocationInlineFragment     DirectiveLocation = "INLINE_FRAGMENT"
	LocationVariableDefinition DirectiveLocation = "VARIABLE_DEFINITION"
)

// OperationLocation maps an operation type to its directive location.
func OperationLocation(op Operation) DirectiveLocation {
	switch op {
	case Mutation:
		return LocationMutation
	case Subscription:
		return LocationSubscription
	default:
		return LocationQuery
	}
}

type Directive struct {
	Name      string
	Arguments ArgumentList
	Location  DirectiveLocation
	Position  Position
}

type DirectiveList []*Directive

type ValueKind int

const (
	Variable ValueKind = iota
	IntValue
	FloatValue
	StringValue
	BlockValue
	BooleanValue
	NullValue
	EnumValue
	ListValue
	ObjectValue
)

func (k ValueKind) String() string {
	switch k {
	case Variable:
		return "Variable"
	case IntValue:
		return "Int"
	case FloatValue:
		return "Float"
	case StringValue:
		return "String"
	case BlockValue:
		return "BlockString"
	case BooleanValue:
		return "Boolean"
	case NullValue:
		return "Null"
	case EnumValue:
		return "Enum"
	case ListValue:
		return "List"
	case ObjectValue:
		return "Object"
	}
	return "ValueKind(" + strconv.Itoa(int(k)) + ")"
}

// Value is an input value. Raw holds the variable or enum name, the source
// text of numbers, the decoded text of strings, and "true", "false" or
// "null". Lists keep their items in Children with empty names; objects keep
// their fields in Children.
type Value struct {
	Kind     ValueKind
	Raw      string
	Children ChildValueList
	Position Position
}

type ChildValue struct {
	Name     string
	Value    *Value
	Position Position
}

type ChildValueList []*ChildValue
