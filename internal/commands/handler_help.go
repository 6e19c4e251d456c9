package commands

import (
	"context"

	"github.com/pixil98/go-adventure/internal/display"
	"github.com/pixil98/go-adventure/internal/messages"
)

// help lists every registered command in registration order.
func (h *Handler) help(ctx context.Context, cmdCtx *CommandContext) error {
	var lines []string
	for _, cmd := range h.commands {
		if cmd.Help == "" {
			continue
		}
		line, err := h.catalog.Render(cmd.Help, nil)
		if err != nil {
			return err
		}
		lines = append(lines, line)
	}

	if err := h.send(cmdCtx, messages.HelpHeader, nil); err != nil {
		return err
	}
	cmdCtx.Send(display.List(lines))
	return nil
}
