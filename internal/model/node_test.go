package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNodeKind(t *testing.T) {
	tests := []struct {
		name    string
		node    *Node
		isGroup bool
	}{
		{"explicit group", Group("aktif", "AKTİF"), true},
		{"explicit item", Item("kasa", "Kasa"), false},
		{"contra item", ContraItem("geriAlinmisPaylar", "Geri Alınmış Paylar (-)"), false},
		{"kind inferred from children", &Node{Code: "x", Label: "X", Children: []*Node{Item("y", "Y")}}, true},
		{"kind inferred from no children", &Node{Code: "x", Label: "X"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.isGroup, tt.node.IsGroup())
			assert.Equal(t, !tt.isGroup, tt.node.IsItem())
		})
	}
}

func TestSideTitle(t *testing.T) {
	assert.Equal(t, "AKTİF", SideAktif.Title())
	assert.Equal(t, "PASİF", SidePasif.Title())
}

func TestFindingString(t *testing.T) {
	f := Finding{Severity: SeverityCritical, Code: "imbalance", Message: "sides differ by 5,00"}
	assert.Equal(t, "CRITICAL: sides differ by 5,00", f.String())
}

func TestHasCritical(t *testing.T) {
	warn := Finding{Severity: SeverityWarning, Code: "empty-company"}
	crit := Finding{Severity: SeverityCritical, Code: "imbalance"}

	assert.False(t, HasCritical(nil))
	assert.False(t, HasCritical([]Finding{warn}))
	assert.True(t, HasCritical([]Finding{warn, crit}))
}
