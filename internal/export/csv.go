package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bilanco-dev/bilanco/internal/model"
)

// Header is the CSV header of the flat payload.
const Header = "side,group_path,label,code,value"

const (
	numFields    = 5
	colSide      = 0
	colGroupPath = 1
	colLabel     = 2
	colCode      = 3
	colValue     = 4
)

// WriteRows writes the flat payload as CSV, header included. Values use a
// plain decimal point; Turkish formatting is display-only.
func WriteRows(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, row := range rows {
		if err := cw.Write(MarshalRow(row)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// ReadRows reads a flat payload back from CSV.
func ReadRows(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading rows CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var rows []Row
	for i, rec := range records[1:] {
		row, err := UnmarshalRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// MarshalRow converts a Row to a CSV record.
func MarshalRow(row Row) []string {
	rec := make([]string, numFields)
	rec[colSide] = string(row.Side)
	rec[colGroupPath] = row.GroupPath
	rec[colLabel] = row.Label
	rec[colCode] = row.Code
	rec[colValue] = row.Value.StringFixed(2)
	return rec
}

// UnmarshalRow converts a CSV record to a Row.
func UnmarshalRow(record []string) (Row, error) {
	if len(record) != numFields {
		return Row{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	var side model.Side
	switch record[colSide] {
	case string(model.SideAktif):
		side = model.SideAktif
	case string(model.SidePasif):
		side = model.SidePasif
	default:
		return Row{}, fmt.Errorf("unknown side %q", record[colSide])
	}

	value, err := decimal.NewFromString(record[colValue])
	if err != nil {
		return Row{}, fmt.Errorf("parsing value %q: %w", record[colValue], err)
	}

	return Row{
		Side:      side,
		GroupPath: record[colGroupPath],
		Label:     record[colLabel],
		Code:      record[colCode],
		Value:     value,
	}, nil
}
