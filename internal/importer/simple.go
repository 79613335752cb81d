package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bilanco-dev/bilanco/internal/input"
	"github.com/bilanco-dev/bilanco/internal/schema"
)

// SimpleParser reads two-column label/value worksheets, the shape produced by
// copying a balance sheet out of a spreadsheet. A row whose label matches a
// group and carries no value switches the resolution scope, which is how
// duplicate labels like "Diğer Borçlar" land in the right group.
type SimpleParser struct {
	resolver *Resolver
}

// NewSimpleParser creates a parser resolving against s.
func NewSimpleParser(s *schema.Schema) *SimpleParser {
	return &SimpleParser{resolver: NewResolver(s)}
}

// Format returns the parser name.
func (p *SimpleParser) Format() string { return "simple" }

// Parse reads the worksheet. Values go through the lenient Turkish amount
// parser; a matched row with an unreadable value counts as zero rather than
// aborting the import.
func (p *SimpleParser) Parse(r io.Reader) (*Result, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading worksheet: %w", err)
	}

	res := &Result{}
	group := ""
	for i, rec := range records {
		line := i + 1
		label, raw := pick(rec)
		if label == "" {
			continue
		}
		if g, ok := p.resolver.ResolveGroup(label); ok && strings.TrimSpace(raw) == "" {
			group = g
			continue
		}
		code, ok := p.resolver.Resolve(label, group)
		if !ok {
			res.Unmatched = append(res.Unmatched, Unmatched{Line: line, Label: label})
			continue
		}
		v, err := input.ParseAmount(raw)
		if err != nil {
			v = decimal.Zero
		}
		res.Entries = append(res.Entries, Entry{Code: code, Value: v})
	}
	return res, nil
}

func pick(rec []string) (label, value string) {
	if len(rec) >= 1 {
		label = strings.TrimSpace(rec[0])
	}
	if len(rec) >= 2 {
		value = rec[1]
	}
	return label, value
}
