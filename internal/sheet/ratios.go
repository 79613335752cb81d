package sheet

import (
	"github.com/shopspring/decimal"

	"github.com/bilanco-dev/bilanco/internal/schema"
)

// Ratios are the standard analysis figures derived from the group totals.
type Ratios struct {
	Liquidity   decimal.Decimal // current assets over short-term liabilities
	EquityRatio decimal.Decimal // equity share of total assets, in percent
	DebtRatio   decimal.Decimal // liability share of total assets, in percent
}

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// Ratios computes the standard ratios. ok is false when the schema does not
// carry the standard group codes, e.g. a fully customized chart.
func (b *BalanceSheet) Ratios() (Ratios, bool) {
	donen, ok := b.groupTotal(schema.CodeDonenVarliklar)
	if !ok {
		return Ratios{}, false
	}
	kv, ok := b.groupTotal(schema.CodeKisaVadeli)
	if !ok {
		return Ratios{}, false
	}
	uv, ok := b.groupTotal(schema.CodeUzunVadeli)
	if !ok {
		return Ratios{}, false
	}
	oz, ok := b.groupTotal(schema.CodeOzkaynaklar)
	if !ok {
		return Ratios{}, false
	}
	aktif := b.Total(b.schema.Aktif())

	// A zero short-term side counts as 1 so the liquidity ratio stays defined.
	divisor := kv
	if divisor.IsZero() {
		divisor = one
	}
	r := Ratios{Liquidity: donen.Div(divisor)}
	if !aktif.IsZero() {
		r.EquityRatio = oz.Div(aktif).Mul(hundred)
		r.DebtRatio = kv.Add(uv).Div(aktif).Mul(hundred)
	}
	return r, true
}

func (b *BalanceSheet) groupTotal(code string) (decimal.Decimal, bool) {
	n, ok := b.schema.Lookup(code)
	if !ok || !n.IsGroup() {
		return decimal.Zero, false
	}
	return b.Total(n), true
}
