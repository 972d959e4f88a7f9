package events

import "time"

// ParseStart is emitted before a document is parsed.
type ParseStart struct {
	Path string
	Size int
}

// ParseFinish is emitted after a document is parsed. Diagnostics counts the
// syntax errors found.
type ParseFinish struct {
	Path        string
	Diagnostics int
	Duration    time.Duration
}

// ValidateStart is emitted before a query is validated.
type ValidateStart struct {
	Path string
}

// ValidateFinish is emitted after a query is validated, whether it failed to
// parse or broke validation rules.
type ValidateFinish struct {
	Path        string
	Diagnostics int
	Syntax      bool
	Duration    time.Duration
}

// FormatStart is emitted before a query is formatted.
type FormatStart struct {
	Size int
}

// FormatFinish is emitted after a query is formatted. Fallback reports that
// the input did not parse and was returned unchanged.
type FormatFinish struct {
	Fallback bool
	Duration time.Duration
}
