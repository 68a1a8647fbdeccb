package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
)

// Text outputs plain text to the formatter's writer
func (f *Formatter) Text(format string, args ...interface{}) {
	fmt.Fprintf(f.writer, format, args...)
}

// Textln outputs plain text with a newline to the formatter's writer
func (f *Formatter) Textln(format string, args ...interface{}) {
	fmt.Fprintf(f.writer, format+"\n", args...)
}

// Line outputs a blank line
func (f *Formatter) Line() {
	fmt.Fprintln(f.writer)
}

// Println writes text with newline to the formatter's writer
func (f *Formatter) Println(v ...interface{}) {
	fmt.Fprintln(f.writer, v...)
}

// Wrapped writes text word-wrapped to the formatter's width, indented
// two cells.
func (f *Formatter) Wrapped(text string) {
	wrapped := wordwrap.String(text, f.width-2)
	for _, line := range strings.Split(wrapped, "\n") {
		fmt.Fprintf(f.writer, "  %s\n", line)
	}
}

// Table outputs tabular data in text format
type Table struct {
	writer   io.Writer
	headers  []string
	rows     [][]string
	widths   []int
	useColor bool
	header   lipgloss.Style
	sep      lipgloss.Style
}

// NewTable creates a new table with headers.
func (f *Formatter) NewTable(headers ...string) *Table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	return &Table{
		writer:   f.writer,
		headers:  headers,
		rows:     [][]string{},
		widths:   widths,
		useColor: f.useColor,
		header:   f.styles.Label.Bold(true),
		sep:      f.styles.Muted,
	}
}

// AddRow adds a row to the table
func (t *Table) AddRow(cols ...string) *Table {
	for i, c := range cols {
		w := lipgloss.Width(c)
		if i < len(t.widths) && w > t.widths[i] {
			t.widths[i] = w
		}
	}
	t.rows = append(t.rows, cols)
	return t
}

// RowCount returns the number of data rows.
func (t *Table) RowCount() int {
	return len(t.rows)
}

// Render outputs the table
func (t *Table) Render() {
	if len(t.headers) == 0 {
		return
	}

	formats := make([]string, len(t.widths))
	for i, w := range t.widths {
		formats[i] = fmt.Sprintf("%%-%ds", w)
	}

	var headerParts []string
	for i, h := range t.headers {
		cell := fmt.Sprintf(formats[i], h)
		if t.useColor {
			cell = t.header.Render(cell)
		}
		headerParts = append(headerParts, cell)
	}
	fmt.Fprintf(t.writer, "  %s\n", strings.Join(headerParts, "  "))

	var sepParts []string
	for _, w := range t.widths {
		sep := strings.Repeat("─", w)
		if t.useColor {
			sep = t.sep.Render(sep)
		}
		sepParts = append(sepParts, sep)
	}
	fmt.Fprintf(t.writer, "  %s\n", strings.Join(sepParts, "  "))

	for _, row := range t.rows {
		var rowParts []string
		for i := range t.headers {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			rowParts = append(rowParts, fmt.Sprintf(formats[i], cell))
		}
		fmt.Fprintf(t.writer, "  %s\n", strings.Join(rowParts, "  "))
	}
}

// Truncate shortens a string to maxCells display cells, appending an
// ellipsis when content was dropped.
func Truncate(s string, maxCells int) string {
	if maxCells <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxCells {
		return s
	}
	return runewidth.Truncate(s, maxCells, "...")
}

// Pluralize returns singular or plural form based on count
func Pluralize(count int, singular, plural string) string {
	if count == 1 {
		return singular
	}
	return plural
}

// CountStr returns "N item(s)" string
func CountStr(count int, singular, plural string) string {
	return fmt.Sprintf("%d %s", count, Pluralize(count, singular, plural))
}
