package language

// ParseQuery parses an executable document. name labels diagnostics and may
// be empty. On any lexical or syntax error the document is nil and every
// error found is returned, ordered by position.
func ParseQuery(source, name string, opts ...Option) (*QueryDocument, DiagnosticList) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	p := newParser(source, name, o)
	doc := p.parseDocument()
	if len(p.errs) > 0 {
		SortDiagnostics(p.errs)
		return nil, p.errs
	}
	return doc, nil
}
