package validator

import (
	"fmt"
)

// Message templates for rule violations.
// NOTE: Keep wording aligned with graphql-js; hosts match on these strings.

func msgAnonOperationNotAlone() string {
	return "This anonymous operation must be the only defined operation."
}

func msgDuplicateOperationName(name string) string {
	return fmt.Sprintf("There can be only one operation named %q.", name)
}

func msgSubscriptionSingleField(name string) string {
	if name == "" {
		return "Anonymous Subscription must select only one top level field."
	}
	return fmt.Sprintf("Subscription %q must select only one top level field.", name)
}

func msgSubscriptionIntrospectionField(name string) string {
	if name == "" {
		return "Anonymous Subscription must not select an introspection top level field."
	}
	return fmt.Sprintf("Subscription %q must not select an introspection top level field.", name)
}

func msgDuplicateFragmentName(name string) string {
	return fmt.Sprintf("There can be only one fragment named %q.", name)
}

func msgUnknownFragment(name string) string {
	return fmt.Sprintf("Unknown fragment %q.", name)
}

func msgUnusedFragment(name string) string {
	return fmt.Sprintf("Fragment %q is never used.", name)
}

func msgFragmentCycle(name string, via []string) string {
	if len(via) == 0 {
		return fmt.Sprintf("Cannot spread fragment %q within itself.", name)
	}
	quoted := ""
	for i, v := range via {
		if i > 0 {
			quoted += ", "
		}
		quoted += fmt.Sprintf("%q", v)
	}
	return fmt.Sprintf("Cannot spread fragment %q within itself via %s.", name, quoted)
}

func msgDuplicateVariable(name string) string {
	return fmt.Sprintf("There can be only one variable named \"$%s\".", name)
}

func msgUndefinedVariable(name, operation string) string {
	if operation == "" {
		return fmt.Sprintf("Variable \"$%s\" is not defined.", name)
	}
	return fmt.Sprintf("Variable \"$%s\" is not defined by operation %q.", name, operation)
}

func msgUnusedVariable(name, operation string) string {
	if operation == "" {
		return fmt.Sprintf("Variable \"$%s\" is never used.", name)
	}
	return fmt.Sprintf("Variable \"$%s\" is never used in operation %q.", name, operation)
}

func msgMisplacedDirective(name, loc string) string {
	return fmt.Sprintf("Directive \"@%s\" may not be used on %s.", name, loc)
}

func msgDuplicateDirective(name string) string {
	return fmt.Sprintf("The directive \"@%s\" can only be used once at this location.", name)
}

func msgUnknownDirectiveArgument(arg, directive string) string {
	return fmt.Sprintf("Unknown argument %q on directive \"@%s\".", arg, directive)
}

func msgMissingDirectiveArgument(directive, arg, typ string) string {
	return fmt.Sprintf("Directive \"@%s\" argument %q of type %q is required, but it was not provided.", directive, arg, typ)
}

func msgNullForNonNull(typ, value string) string {
	return fmt.Sprintf("Expected value of type %q, found %s.", typ, value)
}

func msgBadScalarValue(scalar, value string) string {
	switch scalar {
	case "Boolean":
		return "Boolean cannot represent a non boolean value: " + value
	case "Int":
		return "Int cannot represent non-integer value: " + value
	default:
		return scalar + " cannot represent a non string value: " + value
	}
}

func msgIntOutOfRange(value string) string {
	return "Int cannot represent non 32-bit signed integer value: " + value
}

func msgDuplicateArgument(name string) string {
	return fmt.Sprintf("There can be only one argument named %q.", name)
}

func msgDuplicateInputField(name string) string {
	return fmt.Sprintf("There can be only one input field named %q.", name)
}
