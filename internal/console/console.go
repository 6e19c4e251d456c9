package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/pixil98/go-adventure/internal/commands"
	"github.com/pixil98/go-adventure/internal/display"
	"github.com/pixil98/go-adventure/internal/messages"
)

// Console drives one session over a line-oriented reader and writer.
type Console struct {
	in      io.Reader
	out     io.Writer
	handler *commands.Handler
	catalog *messages.Catalog
	wrapper *display.Wrapper

	session commands.Session
}

func NewConsole(in io.Reader, out io.Writer, handler *commands.Handler, catalog *messages.Catalog, session commands.Session, opts ...ConsoleOpt) *Console {
	c := &Console{
		in:      in,
		out:     out,
		handler: handler,
		catalog: catalog,
		wrapper: display.NewWrapper(display.DefaultWidth),
		session: session,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Session returns the session as of the last completed step.
func (c *Console) Session() commands.Session {
	return c.session
}

// Start runs the read/step/print loop until the session ends, the input is
// closed, or ctx is canceled. Closed input counts as quitting.
func (c *Console) Start(ctx context.Context) error {
	// Canceled on return so the reader goroutine never waits on a line
	// nobody will take
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Read input lines into a channel so the loop can also watch ctx
	inputChan := make(chan string)
	inputErrChan := make(chan error, 1)
	go func() {
		defer close(inputChan)
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			select {
			case inputChan <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		inputErrChan <- scanner.Err()
	}()

	slog.InfoContext(ctx, "session started", "wrap_width", c.wrapper.Width())
	defer slog.InfoContext(ctx, "session ended")

	if err := c.writeMessage(messages.Welcome); err != nil {
		return err
	}

	for c.session.Active {
		if err := c.prompt(); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return nil

		case line, ok := <-inputChan:
			if !ok {
				select {
				case err := <-inputErrChan:
					if err != nil {
						return fmt.Errorf("reading input: %w", err)
					}
				default:
				}
				slog.InfoContext(ctx, "input closed, quitting")
				// Finish the prompt line before the farewell
				if _, err := io.WriteString(c.out, "\n"); err != nil {
					return err
				}
				return c.step(ctx, "quit")
			}

			if strings.TrimSpace(line) == "" {
				continue
			}

			if err := c.step(ctx, line); err != nil {
				return err
			}
		}
	}

	return nil
}

func (c *Console) step(ctx context.Context, line string) error {
	sess, output, err := c.handler.Step(ctx, c.session, line)
	if err != nil {
		return fmt.Errorf("running %q: %w", line, err)
	}
	c.session = sess

	slog.DebugContext(ctx, "command handled", "input", line, "active", sess.Active)
	return c.writeLine(output)
}

func (c *Console) prompt() error {
	prompt, err := c.catalog.Render(messages.Prompt, nil)
	if err != nil {
		return err
	}
	_, err = io.WriteString(c.out, prompt)
	return err
}

func (c *Console) writeMessage(key messages.Key) error {
	msg, err := c.catalog.Render(key, nil)
	if err != nil {
		return err
	}
	return c.writeLine(msg)
}

func (c *Console) writeLine(msg string) error {
	if msg == "" {
		return nil
	}
	_, err := io.WriteString(c.out, c.wrapper.Wrap(msg)+"\n")
	return err
}
