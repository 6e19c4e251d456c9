package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-adventure/internal/messages"
)

type MessagesConfig struct {
	// Path optionally names a JSON file of message overrides.
	Path string `json:"path,omitempty"`
}

func (c *MessagesConfig) validate() error {
	if c.Path == "" {
		return nil
	}
	if _, err := os.Stat(c.Path); err != nil {
		return fmt.Errorf("messages: invalid path %q: %w", c.Path, err)
	}
	return nil
}

func (c *MessagesConfig) BuildCatalog(locale string) (*messages.Catalog, error) {
	return messages.Load(locale, c.Path)
}
