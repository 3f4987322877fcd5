package domain

// Player is the aggregate the ledger owns: identity, currency balances,
// purchased loadout and profile attributes.
type Player struct {
	ID         string     `json:"id"`
	Username   string     `json:"username"`
	Balances   Balances   `json:"balances"`
	Loadout    Loadout    `json:"loadout"`
	Attributes Attributes `json:"attributes"`
}

// ItemSlot is a stack of one consumable item in a player's loadout.
type ItemSlot struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// Loadout represents everything a player owns, stored in the JSONB column.
// Skills and styles are sets (no duplicates, no quantity); consumable items stack.
type Loadout struct {
	Skills []string   `json:"skills"`
	Styles []string   `json:"styles"`
	Items  []ItemSlot `json:"items"`
}

// HasSkill reports whether the skill is already owned.
func (l *Loadout) HasSkill(id string) bool {
	return containsID(l.Skills, id)
}

// HasStyle reports whether the style is already owned.
func (l *Loadout) HasStyle(id string) bool {
	return containsID(l.Styles, id)
}

// AddSkill inserts a skill into the owned set. Inserting an already-owned
// skill is a no-op.
func (l *Loadout) AddSkill(id string) {
	if !containsID(l.Skills, id) {
		l.Skills = append(l.Skills, id)
	}
}

// AddStyle inserts a style into the owned set. Inserting an already-owned
// style is a no-op.
func (l *Loadout) AddStyle(id string) {
	if !containsID(l.Styles, id) {
		l.Styles = append(l.Styles, id)
	}
}

// AddItem upserts a consumable stack: increments the quantity if the item is
// already present, otherwise inserts a new slot.
func (l *Loadout) AddItem(id string, quantity int) {
	for i, slot := range l.Items {
		if slot.ItemID == id {
			l.Items[i].Quantity += quantity
			return
		}
	}
	l.Items = append(l.Items, ItemSlot{ItemID: id, Quantity: quantity})
}

// ItemQuantity returns the stacked quantity for a consumable item, 0 if absent.
func (l *Loadout) ItemQuantity(id string) int {
	for _, slot := range l.Items {
		if slot.ItemID == id {
			return slot.Quantity
		}
	}
	return 0
}

// Clone returns a deep copy. Callers that hand a Player across a goroutine
// or transaction boundary copy it first so staged mutations stay private.
func (p *Player) Clone() *Player {
	clone := *p
	clone.Loadout = Loadout{
		Skills: append([]string(nil), p.Loadout.Skills...),
		Styles: append([]string(nil), p.Loadout.Styles...),
		Items:  append([]ItemSlot(nil), p.Loadout.Items...),
	}
	return &clone
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
