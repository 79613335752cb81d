package model

// Side distinguishes the two sides of a balance sheet.
type Side string

const (
	SideAktif Side = "aktif"
	SidePasif Side = "pasif"
)

// Title returns the Turkish report heading for the side.
func (s Side) Title() string {
	switch s {
	case SideAktif:
		return "AKTİF"
	case SidePasif:
		return "PASİF"
	}
	return string(s)
}

// NodeKind classifies positions in the balance-sheet hierarchy.
type NodeKind string

const (
	KindGroup NodeKind = "group"
	KindItem  NodeKind = "item"
)

// Node is one position in the hierarchy: a group aggregating its children,
// or a leaf line item that carries an entered value. Nodes describe structure
// only; values and totals live with the session, never here.
type Node struct {
	Kind        NodeKind `yaml:"kind,omitempty"` // inferred from Children when empty
	Code        string   `yaml:"code"`
	Label       string   `yaml:"label"`
	NonNegative bool     `yaml:"non_negative,omitempty"` // reject negative input
	Contra      bool     `yaml:"contra,omitempty"`       // negative values expected, e.g. "(-)" items
	Children    []*Node  `yaml:"children,omitempty"`
}

// IsGroup reports whether the node aggregates children.
func (n *Node) IsGroup() bool {
	return n.Kind == KindGroup || (n.Kind == "" && len(n.Children) > 0)
}

// IsItem reports whether the node is a value-carrying leaf.
func (n *Node) IsItem() bool {
	return !n.IsGroup()
}

// Group builds a group node.
func Group(code, label string, children ...*Node) *Node {
	return &Node{Kind: KindGroup, Code: code, Label: label, Children: children}
}

// Item builds a line-item node.
func Item(code, label string) *Node {
	return &Node{Kind: KindItem, Code: code, Label: label}
}

// ContraItem builds a line item that normally carries a negative value.
func ContraItem(code, label string) *Node {
	return &Node{Kind: KindItem, Code: code, Label: label, Contra: true}
}
