// Package table is a small text-table model used by the report renderers.
// Rows are built cell by cell; the renderer computes column widths and draws
// an ASCII frame.
package table

import (
	"github.com/shopspring/decimal"
)

// Alignment positions a text cell within its column.
type Alignment int

const (
	Left Alignment = iota
	Right
	Center
)

// Table is a fixed-width matrix of cells.
type Table struct {
	width int
	rows  []*Row
}

// New creates a table with the given number of columns.
func New(width int) *Table {
	return &Table{width: width}
}

// Width returns the number of columns.
func (t *Table) Width() int {
	return t.width
}

// AddRow appends an empty row to be filled by the caller.
func (t *Table) AddRow() *Row {
	row := &Row{cells: make([]cell, 0, t.width)}
	t.rows = append(t.rows, row)
	return row
}

// AddSeparatorRow appends a full-width horizontal rule.
func (t *Table) AddSeparatorRow() {
	row := t.AddRow()
	for i := 0; i < t.width; i++ {
		row.add(separatorCell{})
	}
}

// AddEmptyRow appends a full-width blank row.
func (t *Table) AddEmptyRow() {
	row := t.AddRow()
	for i := 0; i < t.width; i++ {
		row.add(emptyCell{})
	}
}

// Row is one table row.
type Row struct {
	cells []cell
}

func (r *Row) add(c cell) {
	r.cells = append(r.cells, c)
}

// AddText appends an aligned text cell.
func (r *Row) AddText(content string, align Alignment) *Row {
	r.add(textCell{content: content, align: align})
	return r
}

// AddIndented appends a left-aligned text cell shifted right by indent runes.
func (r *Row) AddIndented(content string, indent int) *Row {
	r.add(textCell{content: content, indent: indent, align: Left})
	return r
}

// AddAmount appends a right-aligned amount cell.
func (r *Row) AddAmount(d decimal.Decimal) *Row {
	r.add(amountCell{d})
	return r
}

// AddEmpty appends a blank cell.
func (r *Row) AddEmpty() *Row {
	r.add(emptyCell{})
	return r
}

type cell interface {
	isSep() bool
}

type textCell struct {
	content string
	align   Alignment
	indent  int
}

func (textCell) isSep() bool { return false }

type amountCell struct {
	d decimal.Decimal
}

func (amountCell) isSep() bool { return false }

type separatorCell struct{}

func (separatorCell) isSep() bool { return true }

type emptyCell struct{}

func (emptyCell) isSep() bool { return false }
