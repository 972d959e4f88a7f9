package language

import (
	"sort"

	"github.com/vektah/gqlparser/v2/gqlerror"
)

type (
	Diagnostic     = gqlerror.Error
	DiagnosticList = gqlerror.List
	Location       = gqlerror.Location
)

// SyntaxRule is the Rule recorded on lexer and parser diagnostics.
const SyntaxRule = "syntax"

// NewDiagnostic builds a diagnostic located at positions, in order. A non-empty
// file is recorded in the "file" extension, where gqlerror expects it.
func NewDiagnostic(file, rule, message string, positions ...Position) *Diagnostic {
	d := &gqlerror.Error{Message: message, Rule: rule}
	if file != "" {
		d.Extensions = map[string]interface{}{"file": file}
	}
	for _, pos := range positions {
		d.Locations = append(d.Locations, gqlerror.Location{Line: pos.Line, Column: pos.Column})
	}
	return d
}

// SortDiagnostics orders diagnostics by their first location; diagnostics
// without a location keep their relative order and go last.
func SortDiagnostics(list DiagnosticList) {
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i].Locations, list[j].Locations
		switch {
		case len(a) == 0:
			return false
		case len(b) == 0:
			return true
		case a[0].Line != b[0].Line:
			return a[0].Line < b[0].Line
		default:
			return a[0].Column < b[0].Column
		}
	})
}
