package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilanco-dev/bilanco/internal/model"
)

// testTree builds a minimal two-sided chart for structural tests.
func testTree(t *testing.T) *Schema {
	t.Helper()
	s, err := New(
		model.Group("aktif", "AKTİF",
			model.Group("donen", "Dönen Varlıklar",
				model.Item("kasa", "Kasa"),
				model.Item("banka", "Banka"),
			),
			model.Group("duran", "Duran Varlıklar",
				model.Item("demirbas", "Demirbaşlar"),
				model.ContraItem("birikmisAmortisman", "Birikmiş Amortisman (-)"),
			),
		),
		model.Group("pasif", "PASİF",
			model.Group("kv", "Kısa Vadeli Yükümlülükler",
				model.Item("saticilar", "Satıcılar"),
			),
			model.Group("oz", "Özkaynaklar",
				model.Item("sermaye", "Sermaye"),
			),
		),
	)
	require.NoError(t, err)
	return s
}

func TestNew_IndexesBothSides(t *testing.T) {
	s := testTree(t)

	kasa, ok := s.Lookup("kasa")
	require.True(t, ok)
	assert.Equal(t, "Kasa", kasa.Label)
	assert.True(t, kasa.IsItem())

	donen, ok := s.Parent("kasa")
	require.True(t, ok)
	assert.Equal(t, "donen", donen.Code)

	_, ok = s.Parent("aktif")
	assert.False(t, ok, "side roots have no parent")

	side, ok := s.Side("sermaye")
	require.True(t, ok)
	assert.Equal(t, model.SidePasif, side)

	side, ok = s.Side("birikmisAmortisman")
	require.True(t, ok)
	assert.Equal(t, model.SideAktif, side)

	assert.False(t, s.Exists("yok"))
}

func TestNew_ItemsInDeclaredOrder(t *testing.T) {
	s := testTree(t)

	var codes []string
	for _, it := range s.Items() {
		codes = append(codes, it.Code)
	}
	assert.Equal(t, []string{"kasa", "banka", "demirbas", "birikmisAmortisman", "saticilar", "sermaye"}, codes)
}

func TestNew_DuplicateCode(t *testing.T) {
	_, err := New(
		model.Group("aktif", "AKTİF", model.Item("kasa", "Kasa")),
		model.Group("pasif", "PASİF", model.Item("kasa", "Kasa Again")),
	)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "kasa", cfgErr.Code)
	assert.Contains(t, cfgErr.Error(), "duplicate code")
}

func TestNew_BlankCodeAndLabel(t *testing.T) {
	_, err := New(
		model.Group("aktif", "AKTİF", model.Item("", "Kasa")),
		model.Group("pasif", "PASİF"),
	)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, cfgErr.Reason, "no code")

	_, err = New(
		model.Group("aktif", "AKTİF", model.Item("kasa", "")),
		model.Group("pasif", "PASİF"),
	)
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "kasa", cfgErr.Code)
}

func TestNew_ItemWithChildren(t *testing.T) {
	bad := &model.Node{Kind: model.KindItem, Code: "kasa", Label: "Kasa", Children: []*model.Node{
		model.Item("altKasa", "Alt Kasa"),
	}}
	_, err := New(
		model.Group("aktif", "AKTİF", bad),
		model.Group("pasif", "PASİF"),
	)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "kasa", cfgErr.Code)
}

func TestNew_RootMustBeGroup(t *testing.T) {
	_, err := New(
		model.Item("aktif", "AKTİF"),
		model.Group("pasif", "PASİF", model.Item("sermaye", "Sermaye")),
	)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "aktif", cfgErr.Code)

	_, err = New(nil, model.Group("pasif", "PASİF"))
	assert.True(t, errors.As(err, &cfgErr))
}

func TestNew_InfersKinds(t *testing.T) {
	aktif := &model.Node{Code: "aktif", Label: "AKTİF", Children: []*model.Node{
		{Code: "donen", Label: "Dönen Varlıklar", Children: []*model.Node{
			{Code: "kasa", Label: "Kasa"},
		}},
	}}
	pasif := &model.Node{Code: "pasif", Label: "PASİF", Children: []*model.Node{
		{Code: "sermaye", Label: "Sermaye"},
	}}

	s, err := New(aktif, pasif)
	require.NoError(t, err)

	donen, _ := s.Lookup("donen")
	assert.Equal(t, model.KindGroup, donen.Kind)
	kasa, _ := s.Lookup("kasa")
	assert.Equal(t, model.KindItem, kasa.Kind)
}

func TestPathAndGroupLabels(t *testing.T) {
	s := testTree(t)

	path, ok := s.Path("birikmisAmortisman")
	require.True(t, ok)
	var codes []string
	for _, n := range path {
		codes = append(codes, n.Code)
	}
	assert.Equal(t, []string{"aktif", "duran", "birikmisAmortisman"}, codes)

	assert.Equal(t, []string{"Duran Varlıklar"}, s.GroupLabels("birikmisAmortisman"))
	assert.Nil(t, s.GroupLabels("donen"), "nodes directly under a root have no group path")
	assert.Nil(t, s.GroupLabels("yok"))
}

func TestWalk_PreOrder(t *testing.T) {
	s := testTree(t)

	var visited []string
	var depths []int
	s.WalkSide(model.SideAktif, func(n *model.Node, depth int) {
		visited = append(visited, n.Code)
		depths = append(depths, depth)
	})
	assert.Equal(t, []string{"aktif", "donen", "kasa", "banka", "duran", "demirbas", "birikmisAmortisman"}, visited)
	assert.Equal(t, []int{0, 1, 2, 2, 1, 2, 2}, depths)
}
