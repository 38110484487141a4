package xref

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_AbsentReturnsNone(t *testing.T) {
	tbl := NewSlotTable[int]()

	assert.Equal(t, None, tbl.Get(42))
	_, ok := tbl.Lookup(42)
	assert.False(t, ok)
}

func TestTable_LaterLinkWins(t *testing.T) {
	tbl := NewTable[int, BodyVariant](BodyVariant{})

	tbl.Link(7, BodyVariant{Arm: "Alpha/Arm_v1"})
	tbl.Link(7, BodyVariant{Arm: "Alpha/Arm_v2", Female: "Alpha/Female"})

	v, ok := tbl.Lookup(7)
	require.True(t, ok)
	assert.Equal(t, BodyVariant{Arm: "Alpha/Arm_v2", Female: "Alpha/Female"}, v)
	assert.Equal(t, 1, tbl.Len())
}

func TestTable_CompositeKeys(t *testing.T) {
	tables := NewTables()
	tables.TileToMusic.Link(TileFrame{Tile: 480, FrameY: 0}, 42)
	tables.TileToMusic.Link(TileFrame{Tile: 480, FrameY: 36}, 43)

	assert.Equal(t, 42, tables.TileToMusic.Get(TileFrame{Tile: 480, FrameY: 0}))
	assert.Equal(t, 43, tables.TileToMusic.Get(TileFrame{Tile: 480, FrameY: 36}))
	assert.Equal(t, None, tables.TileToMusic.Get(TileFrame{Tile: 480, FrameY: 72}))

	tables.ItemToEquip.Link(ItemEquipKey{Item: 3930, Type: EquipBody}, 210)
	assert.Equal(t, 210, tables.ItemToEquip.Get(ItemEquipKey{Item: 3930, Type: EquipBody}))
	assert.Equal(t, None, tables.ItemToEquip.Get(ItemEquipKey{Item: 3930, Type: EquipLegs}))

	tables.Clear()
	assert.Equal(t, 0, tables.TileToMusic.Len())
}

func TestParseEquipType(t *testing.T) {
	e, ok := ParseEquipType("Wings")
	require.True(t, ok)
	assert.Equal(t, EquipWings, e)

	_, ok = ParseEquipType("wings")
	assert.False(t, ok)
}
