package commands

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/pixil98/go-adventure/internal/messages"
	"github.com/pixil98/go-errors"
)

// CommandFunc runs one command against the session in cmdCtx. Corrective
// messages for the player are returned as *UserError.
type CommandFunc func(ctx context.Context, cmdCtx *CommandContext) error

// Command is a registered verb.
type Command struct {
	Name    string
	Aliases []string
	Help    messages.Key // line shown by help; empty hides the command
	Func    CommandFunc
}

func (c *Command) Validate() error {
	el := errors.NewErrorList()

	if c.Name == "" {
		el.Add(fmt.Errorf("command name is required"))
	}
	for _, n := range c.Names() {
		if strings.IndexFunc(n, unicode.IsSpace) >= 0 {
			el.Add(fmt.Errorf("command name %q must be a single word", n))
		}
		if n != strings.ToLower(n) {
			el.Add(fmt.Errorf("command name %q must be lowercase", n))
		}
	}
	if c.Func == nil {
		el.Add(fmt.Errorf("command %q has no func", c.Name))
	}

	return el.Err()
}

// Names returns the command name followed by its aliases.
func (c *Command) Names() []string {
	return append([]string{c.Name}, c.Aliases...)
}

// Input is one parsed line of player input.
type Input struct {
	Command  string
	Argument string // empty if the line had a single word
}

// ParseInput trims and lowercases line, then splits it on the first run of
// whitespace into a command token and the remainder.
func ParseInput(line string, lower func(string) string) Input {
	line = lower(strings.TrimSpace(line))

	i := strings.IndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return Input{Command: line}
	}

	return Input{
		Command:  line[:i],
		Argument: strings.TrimLeftFunc(line[i:], unicode.IsSpace),
	}
}
