// Package format renders amounts in Turkish notation for reports and
// messages. Machine-readable payloads (CSV, JSON) keep plain decimal strings.
package format

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Amount renders a decimal with dot-grouped thousands and a comma before two
// fixed decimal places: 1234567.89 becomes "1.234.567,89".
func Amount(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(groupThousands(intPart))
	b.WriteByte(',')
	b.WriteString(fracPart)
	return b.String()
}

// Ratio renders a ratio value with two decimal places and a comma separator.
func Ratio(d decimal.Decimal) string {
	return strings.Replace(d.StringFixed(2), ".", ",", 1)
}

func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
