package sheet

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bilanco-dev/bilanco/internal/format"
	"github.com/bilanco-dev/bilanco/internal/model"
	"github.com/bilanco-dev/bilanco/internal/schema"
)

// Analyze inspects the sheet and returns advisory findings: plausibility
// problems a bookkeeper would want to see before filing. Findings describe the
// data; they never block entry, export or saving.
func (b *BalanceSheet) Analyze(tolerance decimal.Decimal) []model.Finding {
	var findings []model.Finding

	balance := b.CheckBalance(tolerance)
	if !balance.Balanced {
		findings = append(findings, model.Finding{
			Severity: model.SeverityCritical,
			Code:     "imbalance",
			Message: fmt.Sprintf("aktif (%s) and pasif (%s) do not balance, difference %s",
				format.Amount(balance.Aktif), format.Amount(balance.Pasif), format.Amount(balance.Difference)),
		})
	}

	if strings.TrimSpace(b.company) == "" {
		findings = append(findings, model.Finding{
			Severity: model.SeverityWarning,
			Code:     "missing-company",
			Message:  "company name is empty",
		})
	}

	for _, it := range b.schema.Items() {
		if it.Contra {
			continue
		}
		if v := b.values[it.Code]; v.IsNegative() {
			findings = append(findings, model.Finding{
				Severity: model.SeverityWarning,
				Code:     "negative-value",
				Message:  fmt.Sprintf("%s has a negative value: %s", it.Code, format.Amount(v)),
			})
		}
	}

	if r, ok := b.Ratios(); ok && r.Liquidity.LessThan(one) {
		findings = append(findings, model.Finding{
			Severity: model.SeverityWarning,
			Code:     "low-liquidity",
			Message:  fmt.Sprintf("liquidity ratio is low (%s): short-term liabilities exceed current assets", format.Ratio(r.Liquidity)),
		})
	}

	if oz, ok := b.groupTotal(schema.CodeOzkaynaklar); ok && oz.IsNegative() {
		findings = append(findings, model.Finding{
			Severity: model.SeverityCritical,
			Code:     "negative-equity",
			Message:  "equity is negative: the company may be in financial distress",
		})
	}

	if balance.Aktif.IsZero() {
		findings = append(findings, model.Finding{
			Severity: model.SeverityWarning,
			Code:     "empty-sheet",
			Message:  "no assets entered: the sheet looks empty",
		})
	}

	return findings
}
