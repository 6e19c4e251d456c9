package commands

import (
	"context"

	"github.com/pixil98/go-adventure/internal/messages"
)

func (h *Handler) look(ctx context.Context, cmdCtx *CommandContext) error {
	desc, err := h.describeRoom(cmdCtx.Session)
	if err != nil {
		return err
	}
	cmdCtx.Send(desc)
	return nil
}

// describeRoom returns the current room's description followed by its item line.
func (h *Handler) describeRoom(sess *Session) (string, error) {
	room := h.currentRoom(sess)
	if room == nil {
		return "", h.userError(messages.UnknownLocation, nil)
	}

	items, err := h.catalog.Render(messages.RoomItems, map[string]any{"Items": room.ItemNames()})
	if err != nil {
		return "", err
	}

	return room.Description() + "\n" + items, nil
}
