package game

import (
	"fmt"
	"maps"
	"slices"

	"github.com/pixil98/go-adventure/internal/storage"
	"github.com/pixil98/go-errors"
)

// World is the arena of rooms, indexed by their asset id. Rooms are created
// when the world is built and live as long as it does.
type World struct {
	rooms map[storage.Identifier]*Room
}

func NewWorld() *World {
	return &World{
		rooms: make(map[storage.Identifier]*Room),
	}
}

// AddRoom registers a room. Adding a second room with the same id replaces the first.
func (w *World) AddRoom(r *Room) {
	w.rooms[r.Id()] = r
}

// Room returns the room with the given id, or nil.
func (w *World) Room(id storage.Identifier) *Room {
	return w.rooms[id]
}

// RoomIds returns every room id in sorted order.
func (w *World) RoomIds() []storage.Identifier {
	return slices.Sorted(maps.Keys(w.rooms))
}

// CountItems returns how many items lie in rooms across the world.
func (w *World) CountItems() int {
	n := 0
	for _, r := range w.rooms {
		n += len(r.items)
	}
	return n
}

// Exit returns the room reached by leaving from in direction, or nil if
// there is no exit that way.
func (w *World) Exit(from storage.Identifier, direction string) *Room {
	r := w.Room(from)
	if r == nil {
		return nil
	}
	to, ok := r.Exit(direction)
	if !ok {
		return nil
	}
	return w.Room(to)
}

// BuildWorld resolves every room's exits and items against the stores and
// instantiates the items. All broken references are reported together.
func BuildWorld(rooms storage.Storer[*RoomSpec], items storage.Storer[*ItemSpec]) (*World, error) {
	w := NewWorld()
	el := errors.NewErrorList()

	all := rooms.GetAll()
	for _, id := range slices.Sorted(maps.Keys(all)) {
		spec := all[id]
		room := NewRoom(id, spec.Description)

		for dir, exit := range spec.Exits {
			if err := exit.Resolve(rooms); err != nil {
				el.Add(fmt.Errorf("room %s exit %s: %w: %w", id, dir, ErrRoomNotFound, err))
				continue
			}
			room.SetExit(dir, exit.Key())
		}

		for _, ref := range spec.Items {
			if err := ref.Resolve(items); err != nil {
				el.Add(fmt.Errorf("room %s: %w: %w", id, ErrItemNotFound, err))
				continue
			}
			room.AddItem(NewItem(ref.Key(), ref.Value()))
		}

		w.AddRoom(room)
	}

	if err := el.Err(); err != nil {
		return nil, err
	}

	return w, nil
}
