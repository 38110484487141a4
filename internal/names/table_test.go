package names

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type swordItem struct{}

func (*swordItem) TypeName() string { return "Sword" }

type shieldItem struct{}

func (shieldItem) TypeName() string { return "Shield" }

func TestTable_DuplicateIsRejectedAndFirstKept(t *testing.T) {
	tbl := New[int]()

	require.True(t, tbl.Register("Alpha", "Sword", 1))
	require.False(t, tbl.Register("Alpha", "Sword", 2))

	v, ok := tbl.Lookup("Alpha", "Sword")
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, []string{"Sword"}, tbl.Names("Alpha"))
}

func TestTable_NamesScopedPerOwner(t *testing.T) {
	tbl := New[string]()

	require.True(t, tbl.Register("Alpha", "Sword", "a"))
	require.True(t, tbl.Register("Beta", "Sword", "b"))

	a, _ := tbl.Lookup("Alpha", "Sword")
	b, _ := tbl.Lookup("Beta", "Sword")
	assert.Equal(t, "a", a)
	assert.Equal(t, "b", b)
	assert.Equal(t, 2, tbl.Len())
	assert.ElementsMatch(t, []string{"Alpha", "Beta"}, tbl.Owners())
}

func TestTable_LookupByType(t *testing.T) {
	tbl := New[string]()
	tbl.Register("Alpha", "Sword", "sword")
	tbl.Register("Alpha", "BigShield", "shield")

	v, ok := tbl.LookupByType("Alpha", (*swordItem)(nil))
	require.True(t, ok)
	assert.Equal(t, "sword", v)

	// Registered under a different name than the declared type name.
	_, ok = tbl.LookupByType("Alpha", shieldItem{})
	assert.False(t, ok)
}

func TestTable_RemoveOwner(t *testing.T) {
	tbl := New[int]()
	tbl.Register("Alpha", "A", 1)
	tbl.Register("Alpha", "B", 2)
	tbl.Register("Beta", "A", 3)

	removed := tbl.RemoveOwner("Alpha")

	assert.Equal(t, []int{1, 2}, removed)
	assert.False(t, tbl.Has("Alpha", "A"))
	assert.True(t, tbl.Has("Beta", "A"))
	assert.Empty(t, tbl.Names("Alpha"))

	// The name is free again once the owner is gone.
	assert.True(t, tbl.Register("Alpha", "A", 4))
}

func TestTable_NamesReturnsCopy(t *testing.T) {
	tbl := New[int]()
	tbl.Register("Alpha", "A", 1)

	names := tbl.Names("Alpha")
	names[0] = "mutated"

	assert.Equal(t, []string{"A"}, tbl.Names("Alpha"))
}
