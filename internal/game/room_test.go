package game

import (
	"strings"
	"testing"

	"github.com/pixil98/go-adventure/internal/storage"
	"github.com/pixil98/go-testutil"
)

func newTestItem(name string) *Item {
	return NewItem(storage.Identifier(strings.ToLower(name)), &ItemSpec{Name: name})
}

func TestRoom_Exit(t *testing.T) {
	r := NewRoom("hall", "A dusty hall.")
	r.SetExit("Forward", "library")

	tests := map[string]struct {
		direction string
		exp       storage.Identifier
		expOk     bool
	}{
		"configured exit":        {direction: "forward", exp: "library", expOk: true},
		"case is ignored":        {direction: "FORWARD", exp: "library", expOk: true},
		"missing exit":           {direction: "back"},
		"empty direction":        {direction: ""},
		"surrounding whitespace": {direction: " forward ", exp: "library", expOk: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := r.Exit(tt.direction)
			testutil.AssertEqual(t, "ok", ok, tt.expOk)
			testutil.AssertEqual(t, "destination", got, tt.exp)
		})
	}
}

func TestRoom_RemoveItem(t *testing.T) {
	tests := map[string]struct {
		items        []string
		remove       string
		expFound     bool
		expRemaining string
	}{
		"removes named item": {
			items:        []string{"sword", "lamp"},
			remove:       "sword",
			expFound:     true,
			expRemaining: "lamp",
		},
		"matches regardless of case": {
			items:        []string{"Sword"},
			remove:       "sword",
			expFound:     true,
			expRemaining: "",
		},
		"only first duplicate removed": {
			items:        []string{"coin", "lamp", "coin"},
			remove:       "coin",
			expFound:     true,
			expRemaining: "lamp,coin",
		},
		"missing item leaves room unchanged": {
			items:        []string{"sword"},
			remove:       "shield",
			expRemaining: "sword",
		},
		"empty room": {
			remove: "sword",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			r := NewRoom("hall", "A dusty hall.")
			for _, n := range tt.items {
				r.AddItem(newTestItem(n))
			}

			got := r.RemoveItem(tt.remove)
			testutil.AssertEqual(t, "found", got != nil, tt.expFound)
			testutil.AssertEqual(t, "remaining", strings.Join(r.ItemNames(), ","), tt.expRemaining)
		})
	}
}

func TestRoom_FindItemDoesNotRemove(t *testing.T) {
	r := NewRoom("hall", "A dusty hall.")
	sword := newTestItem("sword")
	r.AddItem(sword)

	testutil.AssertEqual(t, "found", r.FindItem("sword"), sword)
	testutil.AssertEqual(t, "count", len(r.ItemNames()), 1)
	if r.FindItem("lamp") != nil {
		t.Error("expected nil for missing item")
	}
}

func TestRoomSpec_Validate(t *testing.T) {
	tests := map[string]struct {
		spec   RoomSpec
		expErr string
	}{
		"valid": {
			spec: RoomSpec{
				Description: "A dusty hall.",
				Exits: map[string]storage.SmartIdentifier[*RoomSpec]{
					"forward": storage.NewSmartIdentifier[*RoomSpec]("library"),
				},
				Items: []storage.SmartIdentifier[*ItemSpec]{
					storage.NewSmartIdentifier[*ItemSpec]("sword"),
				},
			},
		},
		"missing description": {
			spec:   RoomSpec{},
			expErr: "room description is required",
		},
		"exits differing only by case": {
			spec: RoomSpec{
				Description: "A dusty hall.",
				Exits: map[string]storage.SmartIdentifier[*RoomSpec]{
					"Forward": storage.NewSmartIdentifier[*RoomSpec]("library"),
					"forward": storage.NewSmartIdentifier[*RoomSpec]("kitchen"),
				},
			},
			expErr: `exit "forward" duplicates exit "Forward"`,
		},
		"blank exit target": {
			spec: RoomSpec{
				Description: "A dusty hall.",
				Exits: map[string]storage.SmartIdentifier[*RoomSpec]{
					"forward": {},
				},
			},
			expErr: "exit forward: RoomSpec identifier is required",
		},
		"blank item reference": {
			spec: RoomSpec{
				Description: "A dusty hall.",
				Items:       []storage.SmartIdentifier[*ItemSpec]{{}},
			},
			expErr: "item 0: ItemSpec identifier is required",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.spec.Validate()
			if tt.expErr != "" {
				testutil.AssertErrorContains(t, err, tt.expErr)
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
