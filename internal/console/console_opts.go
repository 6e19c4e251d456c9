package console

import "github.com/pixil98/go-adventure/internal/display"

type ConsoleOpt func(*Console)

func WithWrapWidth(width int) ConsoleOpt {
	return func(c *Console) {
		c.wrapper = display.NewWrapper(width)
	}
}
