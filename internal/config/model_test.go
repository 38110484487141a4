package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModel_AddModRejectsDuplicates(t *testing.T) {
	m := NewModel()
	require.NoError(t, m.AddMod(&ModDefinition{Name: "Alpha", Source: "a.hcl"}))

	err := m.AddMod(&ModDefinition{Name: "Alpha", Source: "b.hcl"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "a.hcl")
	assert.Contains(t, err.Error(), "b.hcl")
}

func TestModel_SortModsIsStable(t *testing.T) {
	m := NewModel()
	for _, def := range []*ModDefinition{
		{Name: "C", Order: 1},
		{Name: "A", Order: 0},
		{Name: "D", Order: 1},
		{Name: "B", Order: 0},
	} {
		require.NoError(t, m.AddMod(def))
	}

	m.SortMods()

	var names []string
	for _, def := range m.Mods {
		names = append(names, def.Name)
	}
	assert.Equal(t, []string{"A", "B", "C", "D"}, names)

	got, ok := m.Mod("D")
	require.True(t, ok)
	assert.Equal(t, 1, got.Order)
}
