package xref

// EquipType names the body location an equip texture is drawn at. Each equip
// type has its own numbering space.
type EquipType string

const (
	EquipHead     EquipType = "Head"
	EquipBody     EquipType = "Body"
	EquipLegs     EquipType = "Legs"
	EquipHandsOn  EquipType = "HandsOn"
	EquipHandsOff EquipType = "HandsOff"
	EquipBack     EquipType = "Back"
	EquipFront    EquipType = "Front"
	EquipShoes    EquipType = "Shoes"
	EquipWaist    EquipType = "Waist"
	EquipWings    EquipType = "Wings"
	EquipShield   EquipType = "Shield"
	EquipNeck     EquipType = "Neck"
	EquipFace     EquipType = "Face"
	EquipBalloon  EquipType = "Balloon"
)

// EquipTypes lists every equip type in canonical order.
var EquipTypes = []EquipType{
	EquipHead, EquipBody, EquipLegs, EquipHandsOn, EquipHandsOff, EquipBack, EquipFront,
	EquipShoes, EquipWaist, EquipWings, EquipShield, EquipNeck, EquipFace, EquipBalloon,
}

// ParseEquipType validates s as an equip type.
func ParseEquipType(s string) (EquipType, bool) {
	for _, e := range EquipTypes {
		if string(e) == s {
			return e, true
		}
	}
	return "", false
}

// EquipKey addresses one equip slot.
type EquipKey struct {
	Type EquipType
	Slot int
}

// ItemEquipKey addresses the equip slot an item uses for one equip type.
type ItemEquipKey struct {
	Item int
	Type EquipType
}

// TileFrame addresses one music box placement: a tile type and its frame row.
type TileFrame struct {
	Tile   int
	FrameY int
}

// Tables groups every cross-reference table of a session.
type Tables struct {
	// ItemToEquip maps (item slot, equip type) to an equip slot.
	ItemToEquip *Table[ItemEquipKey, int]
	// EquipToItem maps an equip slot back to its owning item slot.
	EquipToItem *Table[EquipKey, int]
	// BodyVariants maps a body equip slot to its optional arm/female textures.
	BodyVariants *Table[int, BodyVariant]

	MusicToItem *Table[int, int]
	ItemToMusic *Table[int, int]
	TileToMusic *Table[TileFrame, int]

	NPCToHead     *Table[int, int]
	HeadToNPC     *Table[int, int]
	NPCToBossHead *Table[int, int]
	BossHeadToNPC *Table[int, int]
}

// BodyVariant carries the asset paths supplied with a body equip texture.
type BodyVariant struct {
	Arm    string
	Female string
}

// NewTables creates empty tables.
func NewTables() *Tables {
	return &Tables{
		ItemToEquip:   NewSlotTable[ItemEquipKey](),
		EquipToItem:   NewSlotTable[EquipKey](),
		BodyVariants:  NewTable[int, BodyVariant](BodyVariant{}),
		MusicToItem:   NewSlotTable[int](),
		ItemToMusic:   NewSlotTable[int](),
		TileToMusic:   NewSlotTable[TileFrame](),
		NPCToHead:     NewSlotTable[int](),
		HeadToNPC:     NewSlotTable[int](),
		NPCToBossHead: NewSlotTable[int](),
		BossHeadToNPC: NewSlotTable[int](),
	}
}

// Clear empties every table.
func (t *Tables) Clear() {
	t.ItemToEquip.Clear()
	t.EquipToItem.Clear()
	t.BodyVariants.Clear()
	t.MusicToItem.Clear()
	t.ItemToMusic.Clear()
	t.TileToMusic.Clear()
	t.NPCToHead.Clear()
	t.HeadToNPC.Clear()
	t.NPCToBossHead.Clear()
	t.BossHeadToNPC.Clear()
}
