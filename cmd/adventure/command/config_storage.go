package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-adventure/internal/assets"
	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/storage"
	"github.com/pixil98/go-errors"
)

// StorageConfig points at the world asset directories. Leaving both paths
// empty selects the built-in world.
type StorageConfig struct {
	Rooms AssetConfig[*game.RoomSpec] `json:"rooms"`
	Items AssetConfig[*game.ItemSpec] `json:"items"`
}

func (c *StorageConfig) BuildWorld() (*game.World, error) {
	rooms, err := c.Rooms.BuildFileStore(assets.RoomsDir)
	if err != nil {
		return nil, fmt.Errorf("creating room store: %w", err)
	}
	items, err := c.Items.BuildFileStore(assets.ItemsDir)
	if err != nil {
		return nil, fmt.Errorf("creating item store: %w", err)
	}

	world, err := game.BuildWorld(rooms, items)
	if err != nil {
		return nil, fmt.Errorf("resolving references: %w", err)
	}

	return world, nil
}

func (c *StorageConfig) isCustom() bool {
	return c.Rooms.Path != "" || c.Items.Path != ""
}

func (c *StorageConfig) validate() error {
	el := errors.NewErrorList()

	if (c.Rooms.Path == "") != (c.Items.Path == "") {
		el.Add(fmt.Errorf("storage: rooms and items paths must be set together"))
	}
	el.Add(c.Rooms.Validate("rooms"))
	el.Add(c.Items.Validate("items"))

	return el.Err()
}

type AssetConfig[T storage.ValidatingSpec] struct {
	Path string `json:"path,omitempty"`
}

func (c *AssetConfig[T]) Validate(name string) error {
	if c.Path == "" {
		return nil
	}
	info, err := os.Stat(c.Path)
	if err != nil {
		return fmt.Errorf("%s: invalid path %q: %w", name, c.Path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: path %q is not a directory", name, c.Path)
	}
	return nil
}

// BuildFileStore loads from Path, or from embeddedDir of the built-in world
// when no path is set.
func (c *AssetConfig[T]) BuildFileStore(embeddedDir string) (*storage.FileStore[T], error) {
	if c.Path == "" {
		return storage.NewFileStore[T](assets.World, embeddedDir)
	}
	return storage.NewFileStore[T](os.DirFS(c.Path), ".")
}
