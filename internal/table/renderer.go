package table

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"

	"github.com/bilanco-dev/bilanco/internal/format"
)

// TextRenderer draws a table as framed text. Amounts are rendered in Turkish
// notation, negative ones in red and positive ones in green when Color is on.
type TextRenderer struct {
	Color bool
}

var (
	green = color.New(color.FgGreen)
	red   = color.New(color.FgRed)
)

// Render writes the table to w.
func (r *TextRenderer) Render(t *Table, w io.Writer) error {
	color.NoColor = !r.Color

	widths := make([]int, t.width)
	for _, row := range t.rows {
		for i, c := range row.cells {
			if l := cellWidth(c); widths[i] < l {
				widths[i] = l
			}
		}
	}

	for _, row := range t.rows {
		if err := r.renderRow(row, widths, w); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func (r *TextRenderer) renderRow(row *Row, widths []int, w io.Writer) error {
	left, right := "| ", " |"
	if row.cells[0].isSep() {
		left = "+-"
	}
	if row.cells[len(row.cells)-1].isSep() {
		right = "-+"
	}
	if _, err := io.WriteString(w, left); err != nil {
		return err
	}
	for i, c := range row.cells {
		if err := r.renderCell(c, widths[i], w); err != nil {
			return err
		}
		if i < len(row.cells)-1 {
			if _, err := io.WriteString(w, joint(c, row.cells[i+1])); err != nil {
				return err
			}
		}
	}
	_, err := io.WriteString(w, right+"\n")
	return err
}

func (r *TextRenderer) renderCell(c cell, width int, w io.Writer) error {
	switch t := c.(type) {
	case emptyCell:
		return pad(w, width)

	case separatorCell:
		_, err := io.WriteString(w, strings.Repeat("-", width))
		return err

	case textCell:
		runes := utf8.RuneCountInString(t.content)
		var before int
		switch t.align {
		case Left:
			before = t.indent
		case Right:
			before = width - runes
		case Center:
			before = (width - runes) / 2
		}
		if err := pad(w, before); err != nil {
			return err
		}
		if _, err := io.WriteString(w, t.content); err != nil {
			return err
		}
		return pad(w, width-before-runes)

	case amountCell:
		s := format.Amount(t.d)
		if err := pad(w, width-utf8.RuneCountInString(s)); err != nil {
			return err
		}
		var err error
		switch {
		case t.d.LessThan(decimal.Zero):
			_, err = red.Fprint(w, s)
		case t.d.GreaterThan(decimal.Zero):
			_, err = green.Fprint(w, s)
		default:
			_, err = fmt.Fprint(w, s)
		}
		return err
	}
	return fmt.Errorf("unknown cell type %T", c)
}

func cellWidth(c cell) int {
	switch t := c.(type) {
	case textCell:
		if t.align == Left {
			return t.indent + utf8.RuneCountInString(t.content)
		}
		return utf8.RuneCountInString(t.content)
	case amountCell:
		return utf8.RuneCountInString(format.Amount(t.d))
	}
	return 0
}

func joint(c1, c2 cell) string {
	switch {
	case c1.isSep() && c2.isSep():
		return "-+-"
	case c1.isSep():
		return "-+ "
	case c2.isSep():
		return " +-"
	default:
		return " | "
	}
}

func pad(w io.Writer, n int) error {
	if n <= 0 {
		return nil
	}
	_, err := io.WriteString(w, strings.Repeat(" ", n))
	return err
}
