package messages

import "golang.org/x/text/language"

var english = map[Key]string{
	Welcome:  "Welcome to the MUD! Type 'help' to see the list of commands.",
	Prompt:   "> ",
	Farewell: "Leaving the game. Goodbye!",

	UnknownCommand:  "Unknown command. Type 'help' to see the list of commands.",
	UnknownLocation: "You are in an unknown place.",
	RoomItems:       `Items here: {{ if .Items }}{{ join ", " .Items }}{{ else }}nothing{{ end }}`,

	MoveNoDirection: "Where to? Use: move <direction>",
	MoveNoExit:      "You can't go that way!",
	MoveSuccess:     "You moved {{ .Direction }}.",

	PickMalformed: "Invalid command. Did you mean 'pick up <item>'?",
	PickNotFound:  "There is no item named {{ squote .Item }} here!",
	PickSuccess:   "You picked up {{ .Item }}.",

	InventoryHeader: "You are carrying:",
	InventoryEmpty:  "Nothing",

	HelpHeader:    "Available commands:",
	HelpLook:      "look - describe the current room",
	HelpMove:      "move <direction> - move in the given direction (forward, back, left, right)",
	HelpPick:      "pick up <item> - pick up an item",
	HelpInventory: "inventory - show your inventory",
	HelpHelp:      "help - show this message",
	HelpQuit:      "quit / exit - leave the game",
}

var russian = map[Key]string{
	Welcome:  "Добро пожаловать в MUD! Введите 'help' для просмотра команд.",
	Prompt:   "> ",
	Farewell: "Выход из игры. До свидания!",

	UnknownCommand:  "Неизвестная команда. Введите 'help' для просмотра списка команд.",
	UnknownLocation: "Вы находитесь в неизвестном месте.",
	RoomItems:       `Предметы здесь: {{ if .Items }}{{ join ", " .Items }}{{ else }}ничего{{ end }}`,

	MoveNoDirection: "Куда двигаться? Используйте: move <направление>",
	MoveNoExit:      "Вы не можете пойти в этом направлении!",
	MoveSuccess:     "Вы переместились {{ .Direction }}.",

	PickMalformed: "Неверная команда. Вы имели в виду 'pick up <предмет>'?",
	PickNotFound:  "Здесь нет предмета с названием {{ squote .Item }}!",
	PickSuccess:   "Вы подобрали {{ .Item }}.",

	InventoryHeader: "У вас в инвентаре:",
	InventoryEmpty:  "Пусто",

	HelpHeader:    "Доступные команды:",
	HelpLook:      "look - Описать текущую комнату",
	HelpMove:      "move <направление> - Переместиться в указанном направлении (вперед, назад, влево, вправо)",
	HelpPick:      "pick up <предмет> - Подобрать предмет",
	HelpInventory: "inventory - Показать ваш инвентарь",
	HelpHelp:      "help - Показать это сообщение",
	HelpQuit:      "quit / exit - Выйти из игры",
}

// supported is ordered by preference; the first entry is the fallback.
var supported = []struct {
	tag      language.Tag
	messages map[Key]string
}{
	{language.English, english},
	{language.Russian, russian},
}
