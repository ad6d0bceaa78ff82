package diagnostics

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Renderer formats diagnostics for a terminal. The core pipeline never
// calls it directly — only cmd/pasathai and repl do.
//
// Colour roles: red for errors, yellow for warnings, cyan for notes,
// with a dimmer shade for secondary spans.
type Renderer struct {
	errorColor     *color.Color
	warningColor   *color.Color
	noteColor      *color.Color
	secondaryColor *color.Color
}

// NewRenderer builds a Renderer with the standard severity colour roles.
func NewRenderer() *Renderer {
	return &Renderer{
		errorColor:     color.New(color.FgRed, color.Bold),
		warningColor:   color.New(color.FgYellow, color.Bold),
		noteColor:      color.New(color.FgCyan),
		secondaryColor: color.New(color.FgBlue),
	}
}

func (r *Renderer) severityColor(s Severity) *color.Color {
	switch s {
	case SeverityWarning:
		return r.warningColor
	case SeverityNote:
		return r.noteColor
	default:
		return r.errorColor
	}
}

// Render writes one diagnostic to w: a coloured
// `severity[code][kind]: message` header, a `file:line:column` locator,
// each span's source line underlined from start_column to end_column,
// then `= note:` and `= help:` lines.
func (r *Renderer) Render(w io.Writer, e *Error) {
	sevColor := r.severityColor(e.Severity)

	header := e.Severity.String()
	if e.Code != "" {
		header += fmt.Sprintf("[%s]", e.Code)
	}
	header += fmt.Sprintf("[%s]", e.Kind)
	sevColor.Fprintf(w, "%s: %s\n", header, e.Message)

	for i, span := range e.Spans {
		loc := span.Location
		filename := loc.Filename
		if filename == "" {
			filename = "<input>"
		}
		fmt.Fprintf(w, "  --> %s:%d:%d\n", filename, loc.StartLine, loc.StartColumn)

		if span.Excerpt != "" {
			fmt.Fprintf(w, "   | %s\n", span.Excerpt)
			underline := buildUnderline(loc.StartColumn, loc.EndColumn)
			c := sevColor
			if i > 0 {
				c = r.secondaryColor
			}
			fmt.Fprintf(w, "   | ")
			c.Fprintf(w, "%s", underline)
			if span.Label != "" {
				fmt.Fprintf(w, " %s", span.Label)
			}
			fmt.Fprintln(w)
		}
	}

	for _, note := range e.Notes {
		r.noteColor.Fprintf(w, "  = note: %s\n", note)
	}
	if e.Suggestion != "" {
		r.noteColor.Fprintf(w, "  = help: %s\n", e.Suggestion)
	}
}

// RenderAll renders every diagnostic in a List, in order.
func (r *Renderer) RenderAll(w io.Writer, list *List) {
	for _, e := range list.All() {
		r.Render(w, e)
	}
}

// buildUnderline draws a caret underline spanning [start, end) columns,
// padded with spaces so it lines up beneath the source excerpt.
func buildUnderline(start, end int) string {
	if end <= start {
		end = start + 1
	}
	return strings.Repeat(" ", start-1) + strings.Repeat("^", end-start)
}
