package export

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/bilanco-dev/bilanco/internal/model"
	"github.com/bilanco-dev/bilanco/internal/schema"
	"github.com/bilanco-dev/bilanco/internal/sheet"
)

// Document is the nested payload of one sheet. The totals, ratios and
// validation blocks are derived at build time; readers must treat them as
// informational and recompute from the leaf values.
type Document struct {
	ID          int         `json:"id,omitempty"` // archive sequence, zero until saved
	CompanyName string      `json:"companyName"`
	Date        string      `json:"date"`
	Aktif       *Node       `json:"aktif"`
	Pasif       *Node       `json:"pasif"`
	Totals      Totals      `json:"totals"`
	Ratios      *RatioBlock `json:"ratios,omitempty"`
	Validation  Validation  `json:"validation"`
	SavedAt     string      `json:"savedAt,omitempty"` // RFC 3339, stamped by the archive
}

// Node mirrors one schema node. Groups carry a recomputed total and children;
// line items carry the entered value.
type Node struct {
	Code     string           `json:"code"`
	Label    string           `json:"label"`
	Value    *decimal.Decimal `json:"value,omitempty"`
	Total    *decimal.Decimal `json:"total,omitempty"`
	Children []*Node          `json:"children,omitempty"`
}

// Totals summarizes both sides and the balance check.
type Totals struct {
	Aktif      decimal.Decimal `json:"aktif"`
	Pasif      decimal.Decimal `json:"pasif"`
	Difference decimal.Decimal `json:"difference"`
	Balanced   bool            `json:"balanced"`
}

// RatioBlock carries the standard ratios, rounded to two places.
type RatioBlock struct {
	Liquidity   decimal.Decimal `json:"liquidity"`
	EquityRatio decimal.Decimal `json:"equityRatio"`
	DebtRatio   decimal.Decimal `json:"debtRatio"`
}

// Validation carries the analysis outcome at build time.
type Validation struct {
	Status   string    `json:"status"` // "ok", "warnings" or "critical"
	Findings []Finding `json:"findings,omitempty"`
}

// Finding is the payload form of a model.Finding.
type Finding struct {
	Severity string `json:"severity"`
	Code     string `json:"code"`
	Message  string `json:"message"`
}

// BuildDocument assembles the nested payload for the sheet. It fails with an
// ExportError when the metadata does not validate; an unbalanced sheet builds
// fine and is reported via Totals.Balanced and the validation block.
func BuildDocument(b *sheet.BalanceSheet, p Policy) (*Document, error) {
	if err := checkMetadata(b, p); err != nil {
		return nil, err
	}

	balance := b.CheckBalance(p.Tolerance)
	doc := &Document{
		CompanyName: b.Company(),
		Date:        b.Date(),
		Aktif:       buildNode(b, b.Schema().Aktif()),
		Pasif:       buildNode(b, b.Schema().Pasif()),
		Totals: Totals{
			Aktif:      balance.Aktif,
			Pasif:      balance.Pasif,
			Difference: balance.Difference,
			Balanced:   balance.Balanced,
		},
	}

	if r, ok := b.Ratios(); ok {
		doc.Ratios = &RatioBlock{
			Liquidity:   r.Liquidity.Round(2),
			EquityRatio: r.EquityRatio.Round(2),
			DebtRatio:   r.DebtRatio.Round(2),
		}
	}

	findings := b.Analyze(p.Tolerance)
	doc.Validation = Validation{Status: validationStatus(findings)}
	for _, f := range findings {
		doc.Validation.Findings = append(doc.Validation.Findings, Finding{
			Severity: string(f.Severity),
			Code:     f.Code,
			Message:  f.Message,
		})
	}
	return doc, nil
}

func buildNode(b *sheet.BalanceSheet, n *model.Node) *Node {
	out := &Node{Code: n.Code, Label: n.Label}
	if n.IsItem() {
		v := b.Value(n.Code)
		out.Value = &v
		return out
	}
	total := b.Total(n)
	out.Total = &total
	for _, c := range n.Children {
		out.Children = append(out.Children, buildNode(b, c))
	}
	return out
}

func validationStatus(findings []model.Finding) string {
	switch {
	case model.HasCritical(findings):
		return "critical"
	case len(findings) > 0:
		return "warnings"
	default:
		return "ok"
	}
}

// ApplyDocument rebuilds a sheet from a document's leaf values. Stored totals
// and validation blocks are ignored; only the entered values count. A document
// carrying a value for an item the schema does not know is rejected.
func ApplyDocument(s *schema.Schema, doc *Document) (*sheet.BalanceSheet, error) {
	b := sheet.New(s, doc.CompanyName, doc.Date)
	for _, root := range []*Node{doc.Aktif, doc.Pasif} {
		if root == nil {
			continue
		}
		if err := applyNode(b, root); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func applyNode(b *sheet.BalanceSheet, n *Node) error {
	if n.Value != nil && len(n.Children) == 0 {
		if err := b.SetValue(n.Code, *n.Value); err != nil {
			return fmt.Errorf("applying %q: %w", n.Code, err)
		}
	}
	for _, c := range n.Children {
		if err := applyNode(b, c); err != nil {
			return err
		}
	}
	return nil
}

// DocumentTotals recomputes the side totals from a document's leaf values
// alone, ignoring every stored total.
func DocumentTotals(doc *Document) (aktif, pasif decimal.Decimal) {
	return sumLeaves(doc.Aktif), sumLeaves(doc.Pasif)
}

func sumLeaves(n *Node) decimal.Decimal {
	if n == nil {
		return decimal.Zero
	}
	if len(n.Children) == 0 {
		if n.Value != nil {
			return *n.Value
		}
		return decimal.Zero
	}
	total := decimal.Zero
	for _, c := range n.Children {
		total = total.Add(sumLeaves(c))
	}
	return total
}
