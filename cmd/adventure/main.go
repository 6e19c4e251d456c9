package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/pixil98/go-adventure/cmd/adventure/command"
	"github.com/pixil98/go-service"
)

func main() {
	dir, err := os.MkdirTemp("", "adventure")
	if err != nil {
		slog.Error("creating config dir", "error", err)
		os.Exit(1)
	}

	err = run(dir)
	_ = os.RemoveAll(dir)
	if err != nil {
		os.Exit(1)
	}
}

func run(dir string) error {
	args, err := command.LaunchArgs(os.Args, dir)
	if err != nil {
		slog.Error("preparing arguments", "error", err)
		return err
	}
	os.Args = args

	app, err := service.NewApp(&command.Config{}, command.BuildWorkers)
	if err != nil {
		slog.Error("creating application", "error", err)
		return err
	}

	err = app.Run(context.Background())
	if err != nil {
		slog.Error("running application", "error", err)
		return err
	}

	slog.Info("exiting")
	return nil
}
