// Package output renders assessments to the terminal: styled text,
// tables, markdown and machine-readable JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

const (
	minWidth     = 60
	maxWidth     = 100
	defaultWidth = 80
)

// Formatter writes styled output to a single destination.
type Formatter struct {
	writer   io.Writer
	width    int
	useColor bool
	styles   Styles
}

// Styles holds the lipgloss styles used by the report renderer.
type Styles struct {
	Title   lipgloss.Style
	Section lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Muted   lipgloss.Style
	Good    lipgloss.Style
	Warn    lipgloss.Style
	Bad     lipgloss.Style
}

func makeStyles(useColor bool) Styles {
	if !useColor {
		s := lipgloss.NewStyle()
		return Styles{Title: s, Section: s, Label: s, Value: s, Muted: s, Good: s, Warn: s, Bad: s}
	}
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Section: lipgloss.NewStyle().Bold(true).Underline(true),
		Label:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Value:   lipgloss.NewStyle(),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Good:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Warn:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Bad:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// NewFormatter builds a formatter for w. colorMode is "auto", "always"
// or "never"; auto enables color only for terminals without NO_COLOR.
func NewFormatter(w io.Writer, colorMode string) *Formatter {
	useColor := false
	width := defaultWidth

	if f, ok := w.(*os.File); ok {
		fd := f.Fd()
		if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
			useColor = termenv.EnvColorProfile() != termenv.Ascii && os.Getenv("NO_COLOR") == ""
			if tw, _, err := term.GetSize(int(fd)); err == nil && tw > 0 {
				width = tw
			}
		}
	}

	switch colorMode {
	case "always":
		useColor = true
	case "never":
		useColor = false
	}

	if width < minWidth {
		width = minWidth
	}
	if width > maxWidth {
		width = maxWidth
	}

	return &Formatter{
		writer:   w,
		width:    width,
		useColor: useColor,
		styles:   makeStyles(useColor),
	}
}

// Width returns the wrap width in cells.
func (f *Formatter) Width() int { return f.width }

// Color reports whether styled output is enabled.
func (f *Formatter) Color() bool { return f.useColor }

// JSON writes v as indented JSON, bypassing all styling.
func (f *Formatter) JSON(v any) error {
	enc := json.NewEncoder(f.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Title writes the report heading.
func (f *Formatter) Title(format string, args ...interface{}) {
	fmt.Fprintln(f.writer, f.styles.Title.Render(fmt.Sprintf(format, args...)))
}

// Section writes a section heading preceded by a blank line.
func (f *Formatter) Section(name string) {
	fmt.Fprintln(f.writer)
	fmt.Fprintln(f.writer, f.styles.Section.Render(name))
}

// Field writes an aligned "label: value" line.
func (f *Formatter) Field(label, format string, args ...interface{}) {
	fmt.Fprintf(f.writer, "  %s %s\n",
		f.styles.Label.Render(fmt.Sprintf("%-16s", label+":")),
		fmt.Sprintf(format, args...))
}

// Muted writes de-emphasized text.
func (f *Formatter) Muted(format string, args ...interface{}) {
	fmt.Fprintln(f.writer, f.styles.Muted.Render(fmt.Sprintf(format, args...)))
}
