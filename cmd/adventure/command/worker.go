package command

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pixil98/go-adventure/internal/commands"
	"github.com/pixil98/go-adventure/internal/console"
	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-service"
)

func BuildWorkers(config any) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	c, err := buildConsole(cfg, os.Stdin, os.Stdout)
	if err != nil {
		return nil, err
	}

	return service.WorkerList{
		"console": c,
	}, nil
}

func buildConsole(cfg *Config, in io.Reader, out io.Writer) (*console.Console, error) {
	catalog, err := cfg.Messages.BuildCatalog(cfg.locale())
	if err != nil {
		return nil, fmt.Errorf("loading messages: %w", err)
	}

	world, err := cfg.Storage.BuildWorld()
	if err != nil {
		return nil, fmt.Errorf("building world: %w", err)
	}

	start := cfg.startRoom()
	if world.Room(start) == nil {
		return nil, fmt.Errorf("start room %q: %w", start, game.ErrRoomNotFound)
	}

	handler, err := commands.NewHandler(world, catalog)
	if err != nil {
		return nil, fmt.Errorf("creating command handler: %w", err)
	}

	slog.Info("world loaded",
		"rooms", len(world.RoomIds()),
		"items", world.CountItems(),
		"start_room", start,
		"language", catalog.Language().String())

	session := commands.NewSession(game.NewPlayer(start))
	return console.NewConsole(in, out, handler, catalog, session, console.WithWrapWidth(cfg.wrapWidth())), nil
}
