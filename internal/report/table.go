// Package report renders command output for the terminal.
package report

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Align places a cell within its column.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// Column is one table column. A table whose headers are all empty prints no
// header line.
type Column struct {
	Header string
	Align  Align
}

// Table lays rows out in columns sized to their widest cell. Cells may carry
// ANSI styling; only visible width counts.
type Table struct {
	columns []Column
	rows    [][]string
}

// NewTable returns an empty table with the given columns.
func NewTable(columns ...Column) *Table {
	return &Table{columns: columns}
}

// Row appends a row. Missing cells render blank and cells past the last
// column are dropped.
func (t *Table) Row(cells ...string) {
	row := make([]string, len(t.columns))
	copy(row, cells)
	t.rows = append(t.rows, row)
}

// Lines renders the table. A left-aligned last column is not padded, so no
// line ends in spaces.
func (t *Table) Lines() []string {
	if len(t.columns) == 0 {
		return nil
	}
	header := t.header()

	widths := make([]int, len(t.columns))
	for _, row := range append([][]string{header}, t.rows...) {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	lines := make([]string, 0, len(t.rows)+1)
	if header != nil {
		lines = append(lines, t.line(header, widths))
	}
	for _, row := range t.rows {
		lines = append(lines, t.line(row, widths))
	}
	return lines
}

// WriteTo writes each line of the table followed by a newline.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, line := range t.Lines() {
		n, err := io.WriteString(w, line+"\n")
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func (t *Table) header() []string {
	cells := make([]string, len(t.columns))
	named := false
	for i, col := range t.columns {
		cells[i] = col.Header
		named = named || col.Header != ""
	}
	if !named {
		return nil
	}
	return cells
}

func (t *Table) line(row []string, widths []int) string {
	last := len(t.columns) - 1
	var b strings.Builder
	for i, cell := range row {
		if i > 0 {
			b.WriteString("  ")
		}
		pad := strings.Repeat(" ", widths[i]-lipgloss.Width(cell))
		switch {
		case t.columns[i].Align == AlignRight:
			b.WriteString(pad + cell)
		case i == last:
			b.WriteString(cell)
		default:
			b.WriteString(cell + pad)
		}
	}
	return b.String()
}
