package commands

import (
	"context"
	"strings"

	"github.com/pixil98/go-adventure/internal/messages"
)

// pickPrefix must open the argument of pick; the rest is the item name.
const pickPrefix = "up "

// pick moves a named item from the current room into the inventory.
func (h *Handler) pick(ctx context.Context, cmdCtx *CommandContext) error {
	name, ok := strings.CutPrefix(cmdCtx.Input.Argument, pickPrefix)
	if !ok {
		return h.userError(messages.PickMalformed, nil)
	}
	name = strings.TrimSpace(name)

	room := h.currentRoom(cmdCtx.Session)
	if room == nil {
		return h.userError(messages.UnknownLocation, nil)
	}

	item := room.RemoveItem(name)
	if item == nil {
		return h.userError(messages.PickNotFound, map[string]any{"Item": name})
	}
	cmdCtx.Session.Player.Inventory.Add(item)

	return h.send(cmdCtx, messages.PickSuccess, map[string]any{"Item": item.Name})
}
