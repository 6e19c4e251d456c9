package game

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/pixil98/go-adventure/internal/storage"
	"github.com/pixil98/go-errors"
)

// ItemSpec defines a kind of item loaded from asset files.
type ItemSpec struct {
	// Name is what players type to refer to the item and what listings show.
	Name string `json:"name"`
}

// Validate satisfies storage.ValidatingSpec
func (s *ItemSpec) Validate() error {
	el := errors.NewErrorList()
	if s.Name == "" {
		el.Add(fmt.Errorf("item name is required"))
	}
	return el.Err()
}

// Item is a single placed instance of an ItemSpec. It lives in exactly one
// room or inventory at a time.
type Item struct {
	InstanceId string
	ItemId     storage.Identifier
	Name       string
}

// NewItem creates a fresh instance of the spec stored under id.
func NewItem(id storage.Identifier, spec *ItemSpec) *Item {
	return &Item{
		InstanceId: uuid.New().String(),
		ItemId:     id,
		Name:       spec.Name,
	}
}

// Matches reports whether name refers to this item, ignoring case.
func (i *Item) Matches(name string) bool {
	return FoldName(i.Name) == FoldName(name)
}
