package game

import (
	"fmt"
	"maps"
	"slices"

	"github.com/pixil98/go-adventure/internal/storage"
	"github.com/pixil98/go-errors"
)

// RoomSpec represents a location as written in the asset files.
type RoomSpec struct {
	Description string                                        `json:"description"`
	Exits       map[string]storage.SmartIdentifier[*RoomSpec] `json:"exits,omitempty"` // direction -> destination
	Items       []storage.SmartIdentifier[*ItemSpec]          `json:"items,omitempty"` // list duplicates for multiple
}

// Validate satisfies storage.ValidatingSpec. References are checked later,
// when the world is built from the stores.
func (r *RoomSpec) Validate() error {
	el := errors.NewErrorList()

	if r.Description == "" {
		el.Add(fmt.Errorf("room description is required"))
	}

	// Directions are matched case-insensitively, so "North" and "north"
	// would collide once the room is built.
	seen := make(map[string]string, len(r.Exits))
	for _, dir := range slices.Sorted(maps.Keys(r.Exits)) {
		folded := FoldName(dir)
		if folded == "" {
			el.Add(fmt.Errorf("exit direction must not be blank"))
		} else if other, ok := seen[folded]; ok {
			el.Add(fmt.Errorf("exit %q duplicates exit %q", dir, other))
		} else {
			seen[folded] = dir
		}
		if err := r.Exits[dir].Validate(); err != nil {
			el.Add(fmt.Errorf("exit %s: %w", dir, err))
		}
	}

	for i, item := range r.Items {
		if err := item.Validate(); err != nil {
			el.Add(fmt.Errorf("item %d: %w", i, err))
		}
	}

	return el.Err()
}

// Room is a location node in the world. Exits refer to other rooms by id
// so the world never holds a cycle of owning pointers.
type Room struct {
	id          storage.Identifier
	description string
	exits       map[string]storage.Identifier
	items       []*Item
}

func NewRoom(id storage.Identifier, description string) *Room {
	return &Room{
		id:          id,
		description: description,
		exits:       make(map[string]storage.Identifier),
	}
}

func (r *Room) Id() storage.Identifier {
	return r.id
}

func (r *Room) Description() string {
	return r.description
}

// SetExit links direction to the room with the given id.
func (r *Room) SetExit(direction string, to storage.Identifier) {
	r.exits[FoldName(direction)] = to
}

// Exit returns the room id reached by going direction, if any.
func (r *Room) Exit(direction string) (storage.Identifier, bool) {
	to, ok := r.exits[FoldName(direction)]
	return to, ok
}

// AddItem places an item in the room.
func (r *Room) AddItem(item *Item) {
	r.items = append(r.items, item)
}

// ItemNames returns the display names of the items in the room.
func (r *Room) ItemNames() []string {
	names := make([]string, 0, len(r.items))
	for _, item := range r.items {
		names = append(names, item.Name)
	}
	return names
}

// FindItem returns the first item called name, or nil.
func (r *Room) FindItem(name string) *Item {
	for _, item := range r.items {
		if item.Matches(name) {
			return item
		}
	}
	return nil
}

// RemoveItem takes the first item called name out of the room.
// Returns nil if there is no such item.
func (r *Room) RemoveItem(name string) *Item {
	for i, item := range r.items {
		if item.Matches(name) {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return item
		}
	}
	return nil
}
