package command

import (
	"fmt"

	"github.com/pixil98/go-adventure/internal/assets"
	"github.com/pixil98/go-adventure/internal/display"
	"github.com/pixil98/go-adventure/internal/storage"
	"github.com/pixil98/go-errors"
	"golang.org/x/text/language"
)

const (
	defaultLocale = "en"
	minWrapWidth  = 20
)

type Config struct {
	Locale    string         `json:"locale"`
	WrapWidth int            `json:"wrap_width"`
	StartRoom string         `json:"start_room"`
	Messages  MessagesConfig `json:"messages"`
	Storage   StorageConfig  `json:"storage"`
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	if c.Locale != "" {
		if _, err := language.Parse(c.Locale); err != nil {
			el.Add(fmt.Errorf("parsing locale: %w", err))
		}
	}

	if c.WrapWidth < 0 {
		el.Add(fmt.Errorf("wrap_width must not be negative"))
	} else if c.WrapWidth > 0 && c.WrapWidth < minWrapWidth {
		el.Add(fmt.Errorf("wrap_width must be at least %d", minWrapWidth))
	}

	if c.Storage.isCustom() && c.StartRoom == "" {
		el.Add(fmt.Errorf("start_room is required when storage paths are set"))
	}

	el.Add(c.Messages.validate())
	el.Add(c.Storage.validate())

	return el.Err()
}

func (c *Config) locale() string {
	if c.Locale == "" {
		return defaultLocale
	}
	return c.Locale
}

func (c *Config) wrapWidth() int {
	if c.WrapWidth == 0 {
		return display.DefaultWidth
	}
	return c.WrapWidth
}

func (c *Config) startRoom() storage.Identifier {
	if c.StartRoom == "" {
		return assets.StartRoom
	}
	return storage.Identifier(c.StartRoom)
}
