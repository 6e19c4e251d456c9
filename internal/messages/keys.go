package messages

// Key identifies a player-facing message. Every catalog must define all of them.
type Key string

const (
	Welcome  Key = "welcome"
	Prompt   Key = "prompt"
	Farewell Key = "farewell"

	UnknownCommand  Key = "unknown_command"
	UnknownLocation Key = "unknown_location"
	RoomItems       Key = "room_items" // data: Items []string

	MoveNoDirection Key = "move_no_direction"
	MoveNoExit      Key = "move_no_exit"
	MoveSuccess     Key = "move_success" // data: Direction string

	PickMalformed Key = "pick_malformed"
	PickNotFound  Key = "pick_not_found" // data: Item string
	PickSuccess   Key = "pick_success"   // data: Item string

	InventoryHeader Key = "inventory_header"
	InventoryEmpty  Key = "inventory_empty"

	HelpHeader    Key = "help_header"
	HelpLook      Key = "help_look"
	HelpMove      Key = "help_move"
	HelpPick      Key = "help_pick"
	HelpInventory Key = "help_inventory"
	HelpHelp      Key = "help_help"
	HelpQuit      Key = "help_quit"
)

// Keys lists every message key.
var Keys = []Key{
	Welcome, Prompt, Farewell,
	UnknownCommand, UnknownLocation, RoomItems,
	MoveNoDirection, MoveNoExit, MoveSuccess,
	PickMalformed, PickNotFound, PickSuccess,
	InventoryHeader, InventoryEmpty,
	HelpHeader, HelpLook, HelpMove, HelpPick, HelpInventory, HelpHelp, HelpQuit,
}
