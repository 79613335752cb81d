// Package sheet holds one data-entry session: the values entered against a
// schema and everything derived from them. Totals are never stored; they are
// recomputed from the leaf values on every read so they cannot drift from the
// entered data.
package sheet

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/bilanco-dev/bilanco/internal/input"
	"github.com/bilanco-dev/bilanco/internal/model"
	"github.com/bilanco-dev/bilanco/internal/schema"
)

// BalanceSheet is one company's sheet at one report date. The structure is
// shared and immutable; the values belong to this session alone.
type BalanceSheet struct {
	schema  *schema.Schema
	company string
	date    string
	values  map[string]decimal.Decimal
}

// New returns an empty sheet over the given schema. Every item starts at zero.
func New(s *schema.Schema, company, date string) *BalanceSheet {
	return &BalanceSheet{
		schema:  s,
		company: company,
		date:    date,
		values:  make(map[string]decimal.Decimal),
	}
}

// Schema returns the structure this sheet is entered against.
func (b *BalanceSheet) Schema() *schema.Schema {
	return b.schema
}

// Company returns the company name.
func (b *BalanceSheet) Company() string {
	return b.company
}

// Date returns the raw report date string.
func (b *BalanceSheet) Date() string {
	return b.date
}

// SetCompany updates the company name.
func (b *BalanceSheet) SetCompany(name string) {
	b.company = name
}

// SetDate updates the report date.
func (b *BalanceSheet) SetDate(date string) {
	b.date = date
}

// SetValue assigns a value to a line item. It is the only way values enter a
// sheet. On error the sheet is unchanged.
func (b *BalanceSheet) SetValue(code string, v decimal.Decimal) error {
	n, ok := b.schema.Lookup(code)
	if !ok {
		return fmt.Errorf("unknown item %q", code)
	}
	if n.IsGroup() {
		return fmt.Errorf("%q is a group; values can only be set on line items", code)
	}
	if n.NonNegative && v.IsNegative() {
		return input.Error{Kind: input.NegativeNotAllowed, Field: code, Value: v.String()}
	}
	b.values[code] = v
	return nil
}

// Value returns the entered value of a line item, zero if none was entered.
func (b *BalanceSheet) Value(code string) decimal.Decimal {
	return b.values[code]
}

// Total computes a node's amount: a line item's entered value, or the sum of a
// group's children, contra values entering with their negative sign.
func (b *BalanceSheet) Total(n *model.Node) decimal.Decimal {
	if n.IsItem() {
		return b.values[n.Code]
	}
	total := decimal.Zero
	for _, c := range n.Children {
		total = total.Add(b.Total(c))
	}
	return total
}

// TotalOf computes the total of the node with the given code.
func (b *BalanceSheet) TotalOf(code string) (decimal.Decimal, bool) {
	n, ok := b.schema.Lookup(code)
	if !ok {
		return decimal.Zero, false
	}
	return b.Total(n), true
}

// SideTotal computes one side's grand total.
func (b *BalanceSheet) SideTotal(side model.Side) decimal.Decimal {
	return b.Total(b.schema.Root(side))
}

// BalanceResult is the outcome of comparing the two side totals.
type BalanceResult struct {
	Aktif      decimal.Decimal
	Pasif      decimal.Decimal
	Difference decimal.Decimal // aktif minus pasif
	Balanced   bool
}

// CheckBalance compares the side totals. The sheet is balanced when the
// absolute difference does not exceed the tolerance; an unbalanced sheet is a
// normal state of affairs during entry, reported, never an error.
func (b *BalanceSheet) CheckBalance(tolerance decimal.Decimal) BalanceResult {
	aktif := b.SideTotal(model.SideAktif)
	pasif := b.SideTotal(model.SidePasif)
	diff := aktif.Sub(pasif)
	return BalanceResult{
		Aktif:      aktif,
		Pasif:      pasif,
		Difference: diff,
		Balanced:   diff.Abs().Cmp(tolerance) <= 0,
	}
}
