package commands

import (
	"context"

	"github.com/pixil98/go-adventure/internal/messages"
)

// quit ends the session.
func (h *Handler) quit(ctx context.Context, cmdCtx *CommandContext) error {
	cmdCtx.Session.Active = false
	return h.send(cmdCtx, messages.Farewell, nil)
}
