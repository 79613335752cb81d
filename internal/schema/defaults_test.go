package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bilanco-dev/bilanco/internal/model"
)

func TestDefault_GroupLayout(t *testing.T) {
	s := Default()

	assert.Len(t, s.Aktif().Children, 2)
	assert.Len(t, s.Pasif().Children, 3)

	for _, code := range []string{
		CodeDonenVarliklar, CodeDuranVarliklar,
		CodeKisaVadeli, CodeUzunVadeli, CodeOzkaynaklar,
	} {
		n, ok := s.Lookup(code)
		require.True(t, ok, "group %s should exist", code)
		assert.True(t, n.IsGroup())
	}
}

func TestDefault_ItemCounts(t *testing.T) {
	s := Default()

	counts := map[string]int{}
	for _, it := range s.Items() {
		parent, ok := s.Parent(it.Code)
		require.True(t, ok)
		counts[parent.Code]++
	}

	assert.Equal(t, 21, counts[CodeDonenVarliklar])
	assert.Equal(t, 21, counts[CodeDuranVarliklar])
	assert.Equal(t, 16, counts[CodeKisaVadeli])
	assert.Equal(t, 14, counts[CodeUzunVadeli])
	assert.Equal(t, 19, counts[CodeOzkaynaklar])
	assert.Len(t, s.Items(), 91)
}

func TestDefault_ContraItems(t *testing.T) {
	s := Default()

	var contra []string
	for _, it := range s.Items() {
		if it.Contra {
			contra = append(contra, it.Code)
		}
	}
	assert.Equal(t, []string{"geriAlinmisPaylar", "karsilikliIstirakSermayeDuzeltmesi", "payBazliOdemeler"}, contra)
}

func TestDefault_DuplicateLabelsLandInDistinctGroups(t *testing.T) {
	s := Default()

	// "Diğer Borçlar" exists on both the short- and long-term side with
	// different codes.
	kv, ok := s.Lookup("digerBorclarKV")
	require.True(t, ok)
	uv, ok := s.Lookup("digerBorclarUV")
	require.True(t, ok)
	assert.Equal(t, kv.Label, uv.Label)

	kvParent, _ := s.Parent(kv.Code)
	uvParent, _ := s.Parent(uv.Code)
	assert.Equal(t, CodeKisaVadeli, kvParent.Code)
	assert.Equal(t, CodeUzunVadeli, uvParent.Code)
}

func TestDefault_SidesResolve(t *testing.T) {
	s := Default()

	side, ok := s.Side("stoklar")
	require.True(t, ok)
	assert.Equal(t, model.SideAktif, side)

	side, ok = s.Side("odenmisSermaye")
	require.True(t, ok)
	assert.Equal(t, model.SidePasif, side)
}
