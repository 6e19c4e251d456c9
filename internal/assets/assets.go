// Package assets carries the world used when no asset directories are configured.
package assets

import "embed"

const (
	RoomsDir  = "world/rooms"
	ItemsDir  = "world/items"
	StartRoom = "hall"
)

//go:embed world
var World embed.FS
