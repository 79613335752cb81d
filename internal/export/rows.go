// Package export builds the two interchange payloads of a sheet: a flat
// tabular form for worksheets and a nested document mirroring the hierarchy.
// Both are derived from the same schema traversal, so the flat row order is
// exactly the depth-first pre-order of the nested form. Totals are recomputed
// at build time and never read back from a payload.
package export

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bilanco-dev/bilanco/internal/input"
	"github.com/bilanco-dev/bilanco/internal/model"
	"github.com/bilanco-dev/bilanco/internal/sheet"
)

// Policy carries the checks applied while building payloads.
type Policy struct {
	Tolerance     decimal.Decimal
	MaxFutureDays int
	Now           time.Time
}

// ExportError reports that a payload could not be built because the sheet
// metadata failed validation. An unbalanced sheet never causes an ExportError;
// the imbalance travels inside the payload instead.
type ExportError struct {
	Errors []input.Error
}

func (e *ExportError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	return "export blocked: " + strings.Join(msgs, "; ")
}

func checkMetadata(b *sheet.BalanceSheet, p Policy) error {
	if errs := input.ValidateMetadata(b.Company(), b.Date(), p.MaxFutureDays, p.Now); len(errs) > 0 {
		return &ExportError{Errors: errs}
	}
	return nil
}

// Row is one line item in the flat payload.
type Row struct {
	Side      model.Side
	GroupPath string // group labels joined by " / ", side root excluded
	Label     string
	Code      string
	Value     decimal.Decimal
}

// Rows flattens the sheet into one row per line item, in the depth-first
// declared order of the schema, aktif side first.
func Rows(b *sheet.BalanceSheet, p Policy) ([]Row, error) {
	if err := checkMetadata(b, p); err != nil {
		return nil, err
	}
	s := b.Schema()
	rows := make([]Row, 0, len(s.Items()))
	for _, it := range s.Items() {
		side, _ := s.Side(it.Code)
		rows = append(rows, Row{
			Side:      side,
			GroupPath: strings.Join(s.GroupLabels(it.Code), " / "),
			Label:     it.Label,
			Code:      it.Code,
			Value:     b.Value(it.Code),
		})
	}
	return rows, nil
}

// RowsTotals recomputes the side totals from a flat payload alone.
func RowsTotals(rows []Row) (aktif, pasif decimal.Decimal) {
	for _, r := range rows {
		switch r.Side {
		case model.SidePasif:
			pasif = pasif.Add(r.Value)
		default:
			aktif = aktif.Add(r.Value)
		}
	}
	return aktif, pasif
}
