package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/messages"
)

// Session is the interpreter state carried between steps. Active only ever
// goes from true to false.
type Session struct {
	Player *game.Player
	Active bool
}

func NewSession(p *game.Player) Session {
	return Session{Player: p, Active: true}
}

// CommandContext is what a CommandFunc sees for a single step.
type CommandContext struct {
	Session *Session
	Input   Input

	output []string
}

// Send queues a line of output for the player.
func (c *CommandContext) Send(msg string) {
	c.output = append(c.output, msg)
}

// Output returns everything sent during the step, one message per line.
func (c *CommandContext) Output() string {
	return strings.Join(c.output, "\n")
}

type Handler struct {
	world    *game.World
	catalog  *messages.Catalog
	commands []*Command
	byName   map[string]*Command
}

// NewHandler creates a handler with the built-in commands registered.
func NewHandler(world *game.World, catalog *messages.Catalog) (*Handler, error) {
	h := &Handler{
		world:   world,
		catalog: catalog,
		byName:  make(map[string]*Command),
	}

	builtins := []*Command{
		{Name: "look", Help: messages.HelpLook, Func: h.look},
		{Name: "move", Help: messages.HelpMove, Func: h.move},
		{Name: "pick", Help: messages.HelpPick, Func: h.pick},
		{Name: "inventory", Help: messages.HelpInventory, Func: h.inventory},
		{Name: "help", Help: messages.HelpHelp, Func: h.help},
		{Name: "quit", Aliases: []string{"exit"}, Help: messages.HelpQuit, Func: h.quit},
	}
	for _, cmd := range builtins {
		if err := h.Register(cmd); err != nil {
			return nil, fmt.Errorf("registering %q: %w", cmd.Name, err)
		}
	}

	return h, nil
}

// Register adds a command. Names and aliases must not clash with anything
// already registered.
func (h *Handler) Register(cmd *Command) error {
	if cmd == nil {
		return fmt.Errorf("command cannot be nil")
	}
	if err := cmd.Validate(); err != nil {
		return err
	}

	for _, n := range cmd.Names() {
		if _, exists := h.byName[n]; exists {
			return fmt.Errorf("command %q already registered", n)
		}
	}

	for _, n := range cmd.Names() {
		h.byName[n] = cmd
	}
	h.commands = append(h.commands, cmd)
	return nil
}

// Step applies one line of input to sess and returns the resulting session
// and the text to show the player. A session that is no longer active is
// returned untouched with no output. The returned error is only set for
// system failures; bad input is answered in the output.
func (h *Handler) Step(ctx context.Context, sess Session, line string) (Session, string, error) {
	if !sess.Active {
		return sess, "", nil
	}

	cmdCtx := &CommandContext{
		Session: &sess,
		Input:   ParseInput(line, h.catalog.Lower),
	}

	err := h.exec(ctx, cmdCtx)
	if err != nil {
		var userErr *UserError
		if !errors.As(err, &userErr) {
			return sess, "", err
		}
		cmdCtx.Send(userErr.Message)
	}

	return sess, cmdCtx.Output(), nil
}

func (h *Handler) exec(ctx context.Context, cmdCtx *CommandContext) error {
	cmd, ok := h.byName[cmdCtx.Input.Command]
	if !ok {
		return h.userError(messages.UnknownCommand, nil)
	}

	if err := cmd.Func(ctx, cmdCtx); err != nil {
		return fmt.Errorf("executing %s: %w", cmd.Name, err)
	}
	return nil
}

func (h *Handler) userError(key messages.Key, data any) error {
	return renderUserError(h.catalog, key, data)
}

// send renders key and queues it for the player.
func (h *Handler) send(cmdCtx *CommandContext, key messages.Key, data any) error {
	msg, err := h.catalog.Render(key, data)
	if err != nil {
		return err
	}
	cmdCtx.Send(msg)
	return nil
}

// currentRoom returns the room the session's player stands in, or nil.
func (h *Handler) currentRoom(sess *Session) *game.Room {
	if sess.Player == nil {
		return nil
	}
	return h.world.Room(sess.Player.CurrentRoom())
}
