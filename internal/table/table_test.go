package table

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestRender(t *testing.T) {
	tbl := New(2)
	tbl.AddSeparatorRow()
	tbl.AddRow().AddText("AKTİF", Center).AddEmpty()
	tbl.AddSeparatorRow()
	tbl.AddRow().AddIndented("Kasa", 2).AddAmount(dec("1500.5"))
	tbl.AddRow().AddIndented("Banka", 2).AddAmount(dec("-200"))
	tbl.AddSeparatorRow()

	var buf bytes.Buffer
	require.NoError(t, (&TextRenderer{Color: false}).Render(tbl, &buf))

	want := "+---------+----------+\n" +
		"|  AKTİF  |          |\n" +
		"+---------+----------+\n" +
		"|   Kasa  | 1.500,50 |\n" +
		"|   Banka |  -200,00 |\n" +
		"+---------+----------+\n" +
		"\n"
	assert.Equal(t, want, buf.String())
}

func TestRender_WidthsFollowWidestCell(t *testing.T) {
	tbl := New(2)
	tbl.AddRow().AddText("Çok Uzun Bir Etiket", Left).AddAmount(dec("1"))
	tbl.AddRow().AddText("Kısa", Left).AddAmount(dec("1000000"))

	var buf bytes.Buffer
	require.NoError(t, (&TextRenderer{Color: false}).Render(tbl, &buf))

	want := "| Çok Uzun Bir Etiket |         1,00 |\n" +
		"| Kısa                | 1.000.000,00 |\n" +
		"\n"
	assert.Equal(t, want, buf.String())
}

func TestRender_EmptyRow(t *testing.T) {
	tbl := New(1)
	tbl.AddRow().AddText("a", Left)
	tbl.AddEmptyRow()

	var buf bytes.Buffer
	require.NoError(t, (&TextRenderer{Color: false}).Render(tbl, &buf))
	assert.Equal(t, "| a |\n|   |\n\n", buf.String())
}
