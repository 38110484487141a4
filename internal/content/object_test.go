package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestMeta_StampOnce(t *testing.T) {
	item := &Def{}
	require.NoError(t, item.Base().Stamp("Alpha", "Sword", 3930))

	err := item.Base().Stamp("Beta", "Sword", 3931)
	require.Error(t, err)
	assert.Equal(t, 3930, item.Slot)
	assert.Equal(t, "Alpha:Sword", item.FullName())
	assert.True(t, item.Registered())
}

func TestMeta_Label(t *testing.T) {
	m := &Meta{Name: "Sword"}
	assert.Equal(t, "Sword", m.Label())
	m.DisplayName = "Copper Sword"
	assert.Equal(t, "Copper Sword", m.Label())
}

func TestMeta_Property(t *testing.T) {
	m := &Meta{Owner: "Alpha", Name: "Sword", Properties: cty.ObjectVal(map[string]cty.Value{
		"damage":  cty.NumberIntVal(12),
		"rarity":  cty.StringVal("rare"),
		"tags":    cty.ListVal([]cty.Value{cty.StringVal("melee")}),
	})}

	var damage int
	ok, err := m.Property("damage", &damage)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 12, damage)

	var tags []string
	ok, err = m.Property("tags", &tags)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"melee"}, tags)

	var missing string
	ok, err = m.Property("knockback", &missing)
	require.NoError(t, err)
	assert.False(t, ok)

	var wrong int
	ok, err = m.Property("rarity", &wrong)
	assert.True(t, ok)
	assert.Error(t, err)
}

func TestMeta_PropertyOnMapAndNil(t *testing.T) {
	m := &Meta{Properties: cty.MapVal(map[string]cty.Value{"speed": cty.NumberIntVal(3)})}
	var speed int
	ok, err := m.Property("speed", &speed)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 3, speed)

	ok, err = m.Property("other", &speed)
	require.NoError(t, err)
	assert.False(t, ok)

	empty := &Meta{}
	ok, err = empty.Property("speed", &speed)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBuiltin_Merge(t *testing.T) {
	b := DefaultBuiltin()
	merged := b.Merge(map[Kind]int{Item: 10})

	assert.Equal(t, 10, merged[Item])
	assert.Equal(t, 3930, b[Item], "merge must not modify the receiver")
	assert.Equal(t, b[Tile], merged[Tile])
}

func TestHookKindFor(t *testing.T) {
	k, ok := HookKindFor("projectile")
	require.True(t, ok)
	assert.Equal(t, GlobalProjectile, k)
	_, ok = HookKindFor("sound")
	assert.False(t, ok)
}
