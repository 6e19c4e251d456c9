package commands

import (
	"context"

	"github.com/pixil98/go-adventure/internal/messages"
)

// move takes the player through the exit named by the argument and shows
// them where they arrived.
func (h *Handler) move(ctx context.Context, cmdCtx *CommandContext) error {
	direction := cmdCtx.Input.Argument
	if direction == "" {
		return h.userError(messages.MoveNoDirection, nil)
	}

	from := h.currentRoom(cmdCtx.Session)
	if from == nil {
		return h.userError(messages.UnknownLocation, nil)
	}

	to := h.world.Exit(from.Id(), direction)
	if to == nil {
		return h.userError(messages.MoveNoExit, nil)
	}

	cmdCtx.Session.Player.SetCurrentRoom(to.Id())

	err := h.send(cmdCtx, messages.MoveSuccess, map[string]any{"Direction": direction})
	if err != nil {
		return err
	}

	return h.look(ctx, cmdCtx)
}
