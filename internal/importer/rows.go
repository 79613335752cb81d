package importer

import (
	"fmt"
	"io"
	"strings"

	"github.com/bilanco-dev/bilanco/internal/export"
	"github.com/bilanco-dev/bilanco/internal/schema"
)

// RowsParser reads the flat five-column CSV produced by export. Matching is
// code-first; rows whose code is unknown fall back to label resolution so a
// file whose codes were mangled by a spreadsheet still imports.
type RowsParser struct {
	s        *schema.Schema
	resolver *Resolver
}

// NewRowsParser creates a parser resolving against s.
func NewRowsParser(s *schema.Schema) *RowsParser {
	return &RowsParser{s: s, resolver: NewResolver(s)}
}

// Format returns the parser name.
func (p *RowsParser) Format() string { return "rows" }

// Parse reads the CSV and resolves every row.
func (p *RowsParser) Parse(r io.Reader) (*Result, error) {
	rows, err := export.ReadRows(r)
	if err != nil {
		return nil, fmt.Errorf("reading rows CSV: %w", err)
	}

	res := &Result{}
	for i, row := range rows {
		line := i + 2 // header is line 1
		if n, ok := p.s.Lookup(row.Code); ok && n.IsItem() {
			res.Entries = append(res.Entries, Entry{Code: row.Code, Value: row.Value})
			continue
		}
		code, ok := p.resolver.Resolve(row.Label, p.groupScope(row.GroupPath))
		if !ok {
			res.Unmatched = append(res.Unmatched, Unmatched{Line: line, Label: row.Label})
			continue
		}
		res.Entries = append(res.Entries, Entry{Code: code, Value: row.Value})
	}
	return res, nil
}

// groupScope maps the innermost group label of a group path to its code.
func (p *RowsParser) groupScope(groupPath string) string {
	if groupPath == "" {
		return ""
	}
	parts := strings.Split(groupPath, " / ")
	code, _ := p.resolver.ResolveGroup(parts[len(parts)-1])
	return code
}
