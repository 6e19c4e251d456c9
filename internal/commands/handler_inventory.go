package commands

import (
	"context"

	"github.com/pixil98/go-adventure/internal/display"
	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/messages"
)

func (h *Handler) inventory(ctx context.Context, cmdCtx *CommandContext) error {
	var inv *game.Inventory
	if cmdCtx.Session.Player != nil {
		inv = cmdCtx.Session.Player.Inventory
	}

	lines, err := h.formatInventory(inv)
	if err != nil {
		return err
	}

	if err := h.send(cmdCtx, messages.InventoryHeader, nil); err != nil {
		return err
	}
	cmdCtx.Send(lines)
	return nil
}

// formatInventory returns indented lines naming each carried item, or the
// empty marker if there are none.
func (h *Handler) formatInventory(inv *game.Inventory) (string, error) {
	if inv == nil || inv.Len() == 0 {
		empty, err := h.catalog.Render(messages.InventoryEmpty, nil)
		if err != nil {
			return "", err
		}
		return display.List([]string{empty}), nil
	}

	names := make([]string, 0, inv.Len())
	for _, item := range inv.Items() {
		names = append(names, item.Name)
	}
	return display.List(names), nil
}
