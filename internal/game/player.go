package game

import "github.com/pixil98/go-adventure/internal/storage"

// Player tracks where the player stands and what they carry. The current
// room is held by id; an empty id means the player is nowhere.
type Player struct {
	roomId    storage.Identifier
	Inventory *Inventory
}

func NewPlayer(start storage.Identifier) *Player {
	return &Player{
		roomId:    start,
		Inventory: NewInventory(),
	}
}

func (p *Player) CurrentRoom() storage.Identifier {
	return p.roomId
}

func (p *Player) SetCurrentRoom(id storage.Identifier) {
	p.roomId = id
}
