// Package schema defines the immutable balance-sheet hierarchy: which groups
// and line items exist, in which order, and under which side. Values are never
// stored here; sessions hold them separately so the structure can be shared.
package schema

import (
	"fmt"

	"github.com/bilanco-dev/bilanco/internal/model"
)

// ConfigError reports a structurally invalid schema. It is fatal: a schema
// either loads completely or not at all.
type ConfigError struct {
	Code   string // offending node code, empty for file-level problems
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("invalid schema: %s", e.Reason)
	}
	return fmt.Sprintf("invalid schema: %q: %s", e.Code, e.Reason)
}

// Schema provides in-memory lookup over the two category trees. Codes share a
// single namespace across both sides.
type Schema struct {
	aktif  *model.Node
	pasif  *model.Node
	byCode map[string]*model.Node
	parent map[string]*model.Node
	items  []*model.Node // line items in depth-first declared order, aktif first
}

// New builds a Schema from the two side roots. It normalizes node kinds
// (children present means group) and rejects blank or duplicate codes, blank
// labels, non-group roots and line items with children. The schema takes
// ownership of the nodes; callers must not modify them afterwards.
func New(aktif, pasif *model.Node) (*Schema, error) {
	s := &Schema{
		aktif:  aktif,
		pasif:  pasif,
		byCode: make(map[string]*model.Node),
		parent: make(map[string]*model.Node),
	}
	for _, root := range []*model.Node{aktif, pasif} {
		if root == nil {
			return nil, &ConfigError{Reason: "both sides must be present"}
		}
		normalize(root)
		if !root.IsGroup() {
			return nil, &ConfigError{Code: root.Code, Reason: "side root must be a group"}
		}
		if err := s.index(root, nil); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func normalize(n *model.Node) {
	if n.Kind == "" {
		if len(n.Children) > 0 {
			n.Kind = model.KindGroup
		} else {
			n.Kind = model.KindItem
		}
	}
	for _, c := range n.Children {
		normalize(c)
	}
}

func (s *Schema) index(n *model.Node, parent *model.Node) error {
	if n.Code == "" {
		return &ConfigError{Reason: fmt.Sprintf("node %q has no code", n.Label)}
	}
	if n.Label == "" {
		return &ConfigError{Code: n.Code, Reason: "node has no label"}
	}
	if _, exists := s.byCode[n.Code]; exists {
		return &ConfigError{Code: n.Code, Reason: "duplicate code"}
	}
	if n.IsItem() && len(n.Children) > 0 {
		return &ConfigError{Code: n.Code, Reason: "line item cannot have children"}
	}
	s.byCode[n.Code] = n
	if parent != nil {
		s.parent[n.Code] = parent
	}
	if n.IsItem() {
		s.items = append(s.items, n)
	}
	for _, c := range n.Children {
		if err := s.index(c, n); err != nil {
			return err
		}
	}
	return nil
}

// Aktif returns the asset-side root.
func (s *Schema) Aktif() *model.Node {
	return s.aktif
}

// Pasif returns the liability-and-equity-side root.
func (s *Schema) Pasif() *model.Node {
	return s.pasif
}

// Root returns the root of the given side.
func (s *Schema) Root(side model.Side) *model.Node {
	if side == model.SidePasif {
		return s.pasif
	}
	return s.aktif
}

// Lookup returns the node with the given code.
func (s *Schema) Lookup(code string) (*model.Node, bool) {
	n, ok := s.byCode[code]
	return n, ok
}

// Exists reports whether a code is part of the schema.
func (s *Schema) Exists(code string) bool {
	_, ok := s.byCode[code]
	return ok
}

// Parent returns the parent of the node with the given code. Side roots have
// no parent.
func (s *Schema) Parent(code string) (*model.Node, bool) {
	n, ok := s.parent[code]
	return n, ok
}

// Side returns which side the node with the given code belongs to.
func (s *Schema) Side(code string) (model.Side, bool) {
	n, ok := s.byCode[code]
	if !ok {
		return "", false
	}
	for {
		p, ok := s.parent[n.Code]
		if !ok {
			break
		}
		n = p
	}
	if n == s.pasif {
		return model.SidePasif, true
	}
	return model.SideAktif, true
}

// Path returns the chain of nodes from the side root down to the given code,
// both ends included.
func (s *Schema) Path(code string) ([]*model.Node, bool) {
	n, ok := s.byCode[code]
	if !ok {
		return nil, false
	}
	var rev []*model.Node
	for n != nil {
		rev = append(rev, n)
		n = s.parent[n.Code]
	}
	path := make([]*model.Node, len(rev))
	for i, node := range rev {
		path[len(rev)-1-i] = node
	}
	return path, true
}

// GroupLabels returns the labels of the groups between the side root and the
// given code, root and the node itself excluded.
func (s *Schema) GroupLabels(code string) []string {
	path, ok := s.Path(code)
	if !ok || len(path) < 3 {
		return nil
	}
	labels := make([]string, 0, len(path)-2)
	for _, n := range path[1 : len(path)-1] {
		labels = append(labels, n.Label)
	}
	return labels
}

// Items returns all line items in depth-first declared order, aktif side first.
func (s *Schema) Items() []*model.Node {
	return s.items
}

// Walk visits every node of both sides in depth-first declared order, passing
// the node's depth (0 for the side roots).
func (s *Schema) Walk(fn func(n *model.Node, depth int)) {
	walk(s.aktif, 0, fn)
	walk(s.pasif, 0, fn)
}

// WalkSide visits one side's nodes in depth-first declared order.
func (s *Schema) WalkSide(side model.Side, fn func(n *model.Node, depth int)) {
	walk(s.Root(side), 0, fn)
}

func walk(n *model.Node, depth int, fn func(n *model.Node, depth int)) {
	fn(n, depth)
	for _, c := range n.Children {
		walk(c, depth+1, fn)
	}
}
