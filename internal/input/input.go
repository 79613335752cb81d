// Package input is the textual boundary of the tool. Everything a user types
// or imports passes through here before it may touch a balance sheet, so a
// rejected value can never leave a session half-updated.
package input

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bilanco-dev/bilanco/internal/model"
)

// Kind identifies a category of rejected input.
type Kind string

const (
	NotANumber         Kind = "not-a-number"
	NegativeNotAllowed Kind = "negative-not-allowed"
	MissingField       Kind = "missing-field"
	InvalidDate        Kind = "invalid-date"
	FutureDate         Kind = "future-date"
)

// Error describes a single rejected input value. It is recoverable: the
// target field keeps its previous value and other fields in the same batch
// are unaffected.
type Error struct {
	Kind  Kind
	Field string // item code or metadata field name
	Value string // the raw input as received
}

func (e Error) Error() string {
	switch e.Kind {
	case NotANumber:
		return fmt.Sprintf("%s: %q is not a number", e.Field, e.Value)
	case NegativeNotAllowed:
		return fmt.Sprintf("%s: negative value %s not allowed", e.Field, e.Value)
	case MissingField:
		return fmt.Sprintf("%s: required field is empty", e.Field)
	case InvalidDate:
		return fmt.Sprintf("%s: %q is not a valid date (expected YYYY-MM-DD)", e.Field, e.Value)
	case FutureDate:
		return fmt.Sprintf("%s: %q is in the future", e.Field, e.Value)
	}
	return fmt.Sprintf("%s: invalid value %q", e.Field, e.Value)
}

// DateFormat is the accepted report-date layout.
const DateFormat = "2006-01-02"

// ParseAmount reads an amount the way Turkish spreadsheets write them: spaces
// are grouping noise ("12 345,67"), the comma is the decimal separator, and an
// empty string means zero. Anything else that does not scan as a number is a
// NotANumber error.
func ParseAmount(raw string) (decimal.Decimal, error) {
	normalized := strings.TrimSpace(raw)
	normalized = strings.ReplaceAll(normalized, " ", "")
	normalized = strings.ReplaceAll(normalized, " ", "")
	normalized = strings.ReplaceAll(normalized, ",", ".")
	if normalized == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, Error{Kind: NotANumber, Value: raw}
	}
	return d, nil
}

// ValidateAmount parses raw and checks it against the item's sign policy.
func ValidateAmount(item *model.Node, raw string) (decimal.Decimal, error) {
	d, err := ParseAmount(raw)
	if err != nil {
		var inputErr Error
		if errors.As(err, &inputErr) {
			inputErr.Field = item.Code
			return decimal.Zero, inputErr
		}
		return decimal.Zero, err
	}
	if item.NonNegative && d.IsNegative() {
		return decimal.Zero, Error{Kind: NegativeNotAllowed, Field: item.Code, Value: raw}
	}
	return d, nil
}

// ParseDate reads a strict YYYY-MM-DD report date.
func ParseDate(raw string) (time.Time, error) {
	t, err := time.Parse(DateFormat, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, Error{Kind: InvalidDate, Field: "date", Value: raw}
	}
	return t, nil
}

// ValidateMetadata checks the sheet header fields. All problems are reported,
// not just the first. A report date may lie at most maxFutureDays after now.
func ValidateMetadata(company, date string, maxFutureDays int, now time.Time) []Error {
	var errs []Error

	if strings.TrimSpace(company) == "" {
		errs = append(errs, Error{Kind: MissingField, Field: "companyName"})
	}

	if strings.TrimSpace(date) == "" {
		errs = append(errs, Error{Kind: MissingField, Field: "date"})
		return errs
	}
	parsed, err := ParseDate(date)
	if err != nil {
		var inputErr Error
		if errors.As(err, &inputErr) {
			errs = append(errs, inputErr)
		}
		return errs
	}
	limit := now.AddDate(0, 0, maxFutureDays)
	if parsed.After(limit) {
		errs = append(errs, Error{Kind: FutureDate, Field: "date", Value: date})
	}
	return errs
}
