// Package diagnostics implements a structured error model: every
// parse-time problem in pasathai (from the lexer or the parser) is built
// as an Error carrying one or more labelled source Spans, optional notes,
// and an optional suggestion. This is the canonical diagnostic
// representation; no separate flat {message, filename, line, column,
// source_line} shape exists anywhere in this codebase. Runtime errors are
// not diagnostics: they are object.Error values inside the evaluator.
package diagnostics

// Kind distinguishes where a diagnostic originated.
type Kind int

const (
	Parse Kind = iota
	Runtime
)

func (k Kind) String() string {
	switch k {
	case Parse:
		return "parse"
	case Runtime:
		return "runtime"
	default:
		return "unknown"
	}
}

// Severity ranks how serious a diagnostic is.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityNote
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityNote:
		return "note"
	default:
		return "unknown"
	}
}

// Location pinpoints a single position or range in a source file. All
// fields are 1-based; column counts code points, not bytes.
type Location struct {
	Filename    string
	StartLine   int
	StartColumn int
	EndLine     int
	EndColumn   int
}

// Span is a labelled region of source referenced by a diagnostic. Primary
// spans (the first one on an Error) get the header treatment; any
// additional spans are secondary and render in a distinct colour class.
type Span struct {
	Location Location
	Excerpt  string // source line(s) this span covers, when available
	Label    string
}

// Error is one structured diagnostic. Parse errors live in a Lexer's or
// Parser's accumulated list and abort evaluation before it starts.
// Runtime errors do not use this shape: they are first-class
// object.Error values built by the evaluator, which keeps the two domains
// distinct. The Runtime Kind exists, but nothing in this codebase builds
// a diagnostic with it.
type Error struct {
	Kind       Kind
	Severity   Severity
	Code       string
	Message    string
	Spans      []Span
	Notes      []string
	Suggestion string
}

// Builder assembles an Error with a fluent, build-style API so call sites
// don't have to populate a struct literal by hand for every diagnostic.
type Builder struct {
	err Error
}

// New starts building a diagnostic of the given kind and severity with a
// message.
func New(kind Kind, severity Severity, message string) *Builder {
	return &Builder{err: Error{Kind: kind, Severity: severity, Message: message}}
}

// WithCode attaches a diagnostic code (e.g. "E100").
func (b *Builder) WithCode(code string) *Builder {
	b.err.Code = code
	return b
}

// WithSpan appends a labelled span. The first call supplies the primary
// span; subsequent calls add secondary spans.
func (b *Builder) WithSpan(loc Location, excerpt, label string) *Builder {
	b.err.Spans = append(b.err.Spans, Span{Location: loc, Excerpt: excerpt, Label: label})
	return b
}

// WithNote appends a `= note:` line.
func (b *Builder) WithNote(note string) *Builder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

// WithSuggestion sets the `= help:` line.
func (b *Builder) WithSuggestion(suggestion string) *Builder {
	b.err.Suggestion = suggestion
	return b
}

// Build finalizes the diagnostic.
func (b *Builder) Build() *Error {
	e := b.err
	return &e
}

// List is an append-only collection of diagnostics, shared by both the
// lexer's and the parser's accumulated errors.
type List struct {
	errors []*Error
}

// Append adds a diagnostic to the list.
func (l *List) Append(e *Error) {
	l.errors = append(l.errors, e)
}

// HasErrors reports whether any diagnostic at SeverityError was recorded.
func (l *List) HasErrors() bool {
	for _, e := range l.errors {
		if e.Severity == SeverityError {
			return true
		}
	}
	return false
}

// All returns every diagnostic recorded, in insertion order.
func (l *List) All() []*Error {
	return l.errors
}

// Len reports how many diagnostics have been recorded.
func (l *List) Len() int {
	return len(l.errors)
}
