package report_test

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilanco-dev/bilanco/internal/model"
	"github.com/bilanco-dev/bilanco/internal/report"
	"github.com/bilanco-dev/bilanco/internal/schema"
	"github.com/bilanco-dev/bilanco/internal/sheet"
	"github.com/bilanco-dev/bilanco/internal/store"
	"github.com/bilanco-dev/bilanco/internal/table"
)

var tol = decimal.RequireFromString("0.01")

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	return decimal.RequireFromString(s)
}

func newSheet(t *testing.T) *sheet.BalanceSheet {
	t.Helper()
	b := sheet.New(schema.Default(), "Acme A.Ş.", "2024-06-15")
	require.NoError(t, b.SetValue("stoklar", dec(t, "1500.50")))
	require.NoError(t, b.SetValue("odenmisSermaye", dec(t, "800")))
	return b
}

func render(t *testing.T, b *sheet.BalanceSheet) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, report.Render(&buf, b, tol, false))
	return buf.String()
}

func TestRender_Golden(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Render(&buf, newSheet(t), tol, false))

	goldie.New(t).Assert(t, "show", buf.Bytes())
}

func TestRender_OmitsZeroItems(t *testing.T) {
	out := render(t, newSheet(t))

	assert.Contains(t, out, "Stoklar")
	assert.NotContains(t, out, "Nakit ve Nakit Benzerleri")
	// Group and total rows stay even when every item underneath is zero.
	assert.Contains(t, out, "Toplam Duran Varlıklar")
}

func TestRender_Status(t *testing.T) {
	b := newSheet(t)
	out := render(t, b)
	assert.Contains(t, out, "DENGESİZ")

	require.NoError(t, b.SetValue("odenmisSermaye", dec(t, "1500.50")))
	out = render(t, b)
	assert.Contains(t, out, "DENGELİ")
	assert.NotContains(t, out, "DENGESİZ")
}

func TestRender_CustomChartSkipsRatios(t *testing.T) {
	s, err := schema.New(
		model.Group("aktif", "AKTİF", model.Item("kasa", "Kasa")),
		model.Group("pasif", "PASİF", model.Item("sermaye", "Sermaye")),
	)
	require.NoError(t, err)

	out := render(t, sheet.New(s, "Acme A.Ş.", "2024-06-15"))

	assert.Contains(t, out, "TOPLAM AKTİF")
	assert.NotContains(t, out, "Likidite")
}

func TestFindings(t *testing.T) {
	var buf bytes.Buffer
	report.Findings(&buf, []model.Finding{
		{Severity: model.SeverityCritical, Code: "imbalance", Message: "does not balance"},
		{Severity: model.SeverityWarning, Code: "empty-sheet", Message: "no values entered"},
	})

	assert.Equal(t, "- CRITICAL: does not balance\n- WARNING: no values entered\n", buf.String())
}

func TestArchive(t *testing.T) {
	summaries := []store.Summary{
		{ID: 1, CompanyName: "Acme A.Ş.", Date: "2024-06-15", Aktif: dec(t, "1000"), Pasif: dec(t, "1000"), SavedAt: "2024-06-15T12:00:00Z"},
		{ID: 2, CompanyName: "Yeni Kayıt", Date: "2024-07-01", Aktif: dec(t, "500"), Pasif: dec(t, "750"), SavedAt: "2024-07-01T09:30:00Z"},
	}

	var buf bytes.Buffer
	r := &table.TextRenderer{}
	require.NoError(t, r.Render(report.Archive(summaries, tol), &buf))
	out := buf.String()

	assert.Contains(t, out, "Acme A.Ş.")
	assert.Contains(t, out, "Yeni Kayıt")
	assert.Contains(t, out, "DENGELİ")
	assert.Contains(t, out, "DENGESİZ")
	assert.Contains(t, out, "1.000,00")
	assert.Contains(t, out, "2024-06-15T12:00:00Z")
}
