package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilanco-dev/bilanco/internal/model"
)

func findingCodes(findings []model.Finding) []string {
	var codes []string
	for _, f := range findings {
		codes = append(codes, f.Code)
	}
	return codes
}

func TestAnalyze_BalancedSheetIsQuiet(t *testing.T) {
	b := newDefaultSheet(t)
	set(t, b, "stoklar", "1000")
	set(t, b, "ticariBorclarKV", "200")
	set(t, b, "odenmisSermaye", "800")

	findings := b.Analyze(tol)
	assert.Empty(t, findings)
}

func TestAnalyze_Imbalance(t *testing.T) {
	b := newDefaultSheet(t)
	set(t, b, "stoklar", "1500")
	set(t, b, "odenmisSermaye", "1000")

	findings := b.Analyze(tol)
	require.NotEmpty(t, findings)
	assert.Equal(t, "imbalance", findings[0].Code)
	assert.Equal(t, model.SeverityCritical, findings[0].Severity)
	assert.Contains(t, findings[0].Message, "1.500,00")
	assert.True(t, model.HasCritical(findings))
}

func TestAnalyze_MissingCompany(t *testing.T) {
	b := newDefaultSheet(t)
	b.SetCompany("   ")
	set(t, b, "stoklar", "100")
	set(t, b, "odenmisSermaye", "100")

	findings := b.Analyze(tol)
	assert.Contains(t, findingCodes(findings), "missing-company")
	assert.False(t, model.HasCritical(findings))
}

func TestAnalyze_NegativeValues(t *testing.T) {
	b := newDefaultSheet(t)
	set(t, b, "stoklar", "-50")
	set(t, b, "nakitVeNakitBenzerleri", "50")
	set(t, b, "odenmisSermaye", "100")
	// Contra items are expected to be negative and stay unflagged.
	set(t, b, "geriAlinmisPaylar", "-100")

	var negative []string
	for _, f := range b.Analyze(tol) {
		if f.Code == "negative-value" {
			negative = append(negative, f.Message)
		}
	}
	require.Len(t, negative, 1)
	assert.Contains(t, negative[0], "stoklar")
}

func TestAnalyze_LowLiquidity(t *testing.T) {
	b := newDefaultSheet(t)
	set(t, b, "stoklar", "100")             // dönen
	set(t, b, "maddiDuranVarliklar", "300") // duran
	set(t, b, "ticariBorclarKV", "400")     // kısa vadeli

	findings := b.Analyze(tol)
	assert.Contains(t, findingCodes(findings), "low-liquidity")
}

func TestAnalyze_NegativeEquity(t *testing.T) {
	b := newDefaultSheet(t)
	set(t, b, "stoklar", "100")
	set(t, b, "ticariBorclarKV", "400")
	set(t, b, "gecmisYillarKarZarari", "-300")

	findings := b.Analyze(tol)
	assert.Contains(t, findingCodes(findings), "negative-equity")
	assert.True(t, model.HasCritical(findings))
}

func TestAnalyze_EmptySheet(t *testing.T) {
	b := newDefaultSheet(t)

	findings := b.Analyze(tol)
	codes := findingCodes(findings)
	assert.Contains(t, codes, "empty-sheet")
	// An empty sheet balances, so nothing critical is reported.
	assert.False(t, model.HasCritical(findings))
}
