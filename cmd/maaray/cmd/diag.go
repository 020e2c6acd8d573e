package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/kolkov/maaray"
)

// diagnostic is a parse error together with the source it refers to.
type diagnostic struct {
	err    *maaray.ParseError
	source string
}

func newDiagnostic(err error, source string) error {
	var pe *maaray.ParseError
	if !errors.As(err, &pe) {
		return err
	}
	return &diagnostic{err: pe, source: source}
}

func (d *diagnostic) Error() string { return d.err.Error() }
func (d *diagnostic) Unwrap() error { return d.err }

// Colors
var (
	colorError = lipgloss.Color("#EF4444") // Red
	colorCaret = lipgloss.Color("#10B981") // Emerald
	colorMuted = lipgloss.Color("#6B7280") // Gray
	colorMatch = lipgloss.Color("#F59E0B") // Amber
)

type styles struct {
	plain    bool
	label    lipgloss.Style
	location lipgloss.Style
	gutter   lipgloss.Style
	caret    lipgloss.Style
	match    lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		plain:    r.ColorProfile() == termenv.Ascii,
		label:    r.NewStyle().Foreground(colorError).Bold(true),
		location: r.NewStyle().Bold(true),
		gutter:   r.NewStyle().Foreground(colorMuted),
		caret:    r.NewStyle().Foreground(colorCaret).Bold(true),
		match:    r.NewStyle().Foreground(colorMatch).Bold(true),
	}
}

// paint renders text in st unless output is plain.
func (s styles) paint(st lipgloss.Style, text string) string {
	if s.plain {
		return text
	}
	return st.Render(text)
}

// render writes
//
//	file:line:col: error: message
//	   3 | source line
//	     |     ^
func (s styles) render(w io.Writer, d *diagnostic) {
	pe := d.err
	name := pe.Filename
	if name == "" {
		name = "<input>"
	}

	if pe.Line == 0 {
		fmt.Fprintf(w, "%s: %s %s\n", s.paint(s.location, name), s.paint(s.label, "error:"), pe.Message)
		return
	}

	loc := fmt.Sprintf("%s:%d:%d", name, pe.Line, pe.Column)
	fmt.Fprintf(w, "%s: %s %s\n", s.paint(s.location, loc), s.paint(s.label, "error:"), pe.Message)

	line, ok := sourceLine(d.source, pe.Line)
	if !ok {
		return
	}
	gutter := fmt.Sprintf("%4d | ", pe.Line)
	blank := strings.Repeat(" ", len(gutter)-2) + "| "
	fmt.Fprintf(w, "%s%s\n", s.paint(s.gutter, gutter), line)
	fmt.Fprintf(w, "%s%s%s\n", s.paint(s.gutter, blank), caretPadding(line, pe.Column), s.paint(s.caret, "^"))
}

// sourceLine returns the 1-based line n of src without its line ending.
func sourceLine(src string, n int) (string, bool) {
	lines := strings.Split(src, "\n")
	if n < 1 || n > len(lines) {
		return "", false
	}
	return strings.TrimSuffix(lines[n-1], "\r"), true
}

// caretPadding returns the whitespace that puts a caret under the given
// 1-based character column of line. Tabs are kept so the caret lines up
// whatever the tab width.
func caretPadding(line string, column int) string {
	var sb strings.Builder
	i := 1
	for _, r := range line {
		if i >= column {
			break
		}
		if r == '\t' {
			sb.WriteByte('\t')
		} else {
			sb.WriteString(strings.Repeat(" ", lipgloss.Width(string(r))))
		}
		i++
	}
	// Columns past the end of the line (end of input).
	for ; i < column; i++ {
		sb.WriteByte(' ')
	}
	return sb.String()
}
