// Package report renders balance sheets and archive listings for the
// terminal. Row labels come from the schema; zero-valued line items are
// omitted so a half-entered sheet stays readable.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/bilanco-dev/bilanco/internal/format"
	"github.com/bilanco-dev/bilanco/internal/model"
	"github.com/bilanco-dev/bilanco/internal/sheet"
	"github.com/bilanco-dev/bilanco/internal/store"
	"github.com/bilanco-dev/bilanco/internal/table"
)

// Balance builds the two-column balance table: each side with its groups, the
// entered items, group totals and side totals, closed by the difference and
// status rows.
func Balance(b *sheet.BalanceSheet, tolerance decimal.Decimal) *table.Table {
	tbl := table.New(2)
	addSide(tbl, b, model.SideAktif)
	addSide(tbl, b, model.SidePasif)

	res := b.CheckBalance(tolerance)
	tbl.AddRow().AddText("Fark", table.Left).AddAmount(res.Difference)
	status := "DENGELİ"
	if !res.Balanced {
		status = "DENGESİZ"
	}
	tbl.AddRow().AddText("Durum", table.Left).AddText(status, table.Right)
	tbl.AddSeparatorRow()
	return tbl
}

func addSide(tbl *table.Table, b *sheet.BalanceSheet, side model.Side) {
	root := b.Schema().Root(side)
	tbl.AddSeparatorRow()
	tbl.AddRow().AddText(root.Label, table.Center).AddEmpty()
	tbl.AddSeparatorRow()
	for _, child := range root.Children {
		addNode(tbl, b, child, 0)
	}
	tbl.AddSeparatorRow()
	tbl.AddRow().AddText("TOPLAM "+root.Label, table.Left).AddAmount(b.Total(root))
	tbl.AddSeparatorRow()
}

func addNode(tbl *table.Table, b *sheet.BalanceSheet, n *model.Node, indent int) {
	if n.IsItem() {
		if v := b.Value(n.Code); !v.IsZero() {
			tbl.AddRow().AddIndented(n.Label, indent+2).AddAmount(v)
		}
		return
	}
	tbl.AddRow().AddIndented(n.Label, indent).AddEmpty()
	for _, c := range n.Children {
		addNode(tbl, b, c, indent+2)
	}
	tbl.AddRow().AddIndented("Toplam "+n.Label, indent).AddAmount(b.Total(n))
}

// Render writes the complete report for a sheet: header, balance table and,
// for standard charts, the ratio lines.
func Render(w io.Writer, b *sheet.BalanceSheet, tolerance decimal.Decimal, colored bool) error {
	fmt.Fprintf(w, "Company: %s\n", b.Company())
	fmt.Fprintf(w, "Date:    %s\n\n", b.Date())

	r := &table.TextRenderer{Color: colored}
	if err := r.Render(Balance(b, tolerance), w); err != nil {
		return err
	}

	if rt, ok := b.Ratios(); ok {
		fmt.Fprintf(w, "Likidite Oranı: %s\n", format.Ratio(rt.Liquidity))
		fmt.Fprintf(w, "Özkaynak Oranı: %%%s\n", format.Ratio(rt.EquityRatio))
		fmt.Fprintf(w, "Borç Oranı:     %%%s\n", format.Ratio(rt.DebtRatio))
	}
	return nil
}

// Findings writes one line per finding, prefixed with its severity.
func Findings(w io.Writer, findings []model.Finding) {
	for _, f := range findings {
		fmt.Fprintf(w, "- %s\n", f)
	}
}

// Archive builds the archive listing table. The status column is recomputed
// from the summarized side totals.
func Archive(summaries []store.Summary, tolerance decimal.Decimal) *table.Table {
	tbl := table.New(7)
	tbl.AddSeparatorRow()
	tbl.AddRow().
		AddText("ID", table.Right).
		AddText("Company", table.Left).
		AddText("Date", table.Left).
		AddText("Aktif", table.Right).
		AddText("Pasif", table.Right).
		AddText("Durum", table.Left).
		AddText("Saved", table.Left)
	tbl.AddSeparatorRow()
	for _, s := range summaries {
		status := "DENGELİ"
		if s.Aktif.Sub(s.Pasif).Abs().Cmp(tolerance) > 0 {
			status = "DENGESİZ"
		}
		tbl.AddRow().
			AddText(strconv.Itoa(s.ID), table.Right).
			AddText(s.CompanyName, table.Left).
			AddText(s.Date, table.Left).
			AddAmount(s.Aktif).
			AddAmount(s.Pasif).
			AddText(status, table.Left).
			AddText(s.SavedAt, table.Left)
	}
	tbl.AddSeparatorRow()
	return tbl
}
