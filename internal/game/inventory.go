package game

// Inventory holds the items carried by the player, in pick-up order.
type Inventory struct {
	items []*Item
}

// NewInventory creates an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{}
}

// Add adds an item to the inventory.
func (inv *Inventory) Add(item *Item) {
	inv.items = append(inv.items, item)
}

// Items returns the carried items in pick-up order.
func (inv *Inventory) Items() []*Item {
	out := make([]*Item, len(inv.items))
	copy(out, inv.items)
	return out
}

func (inv *Inventory) Len() int {
	return len(inv.items)
}
