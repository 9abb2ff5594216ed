// Command lear-munge converts the MIT HTML edition of King Lear into the
// JSONL scene files bundled with lear.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/kyle-silver/lear"
	"github.com/kyle-silver/lear/fs"
	"github.com/kyle-silver/lear/html"
	"github.com/kyle-silver/lear/jsonl"
	"github.com/kyle-silver/lear/log"
)

// ErrUsage is returned for a malformed command line.
var ErrUsage = errors.New("usage: lear-munge <edition.html> [outdir]")

// App encapsulates the application logic for testing.
type App struct {
	Parser lear.PlayParser
	Saver  lear.SceneSaver
	Logger *slog.Logger
}

// Run parses the edition read from r and saves every scene under dir.
func (a *App) Run(r io.Reader, dir string) error {
	scenes, err := a.Parser.Parse(r)
	if err != nil {
		return err
	}
	if len(scenes) != lear.SceneCount() {
		return fmt.Errorf("parsed %d scenes, want %d", len(scenes), lear.SceneCount())
	}
	for _, scene := range scenes {
		if err := a.Saver.Save(dir, scene); err != nil {
			return fmt.Errorf("save %d.%d: %w", scene.Act, scene.Scene, err)
		}
		a.Logger.Info("scene saved", "act", scene.Act, "scene", scene.Scene, "blocks", len(scene.Blocks))
	}
	return nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return ErrUsage
	}
	dir := fs.DefaultDataDir()
	if len(args) == 2 {
		dir = args[1]
	}

	logger, closer, err := log.New(os.Stderr, log.Options{Level: "info"})
	if err != nil {
		return err
	}
	defer closer.Close()

	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	app := &App{
		Parser: html.NewParser(),
		Saver:  jsonl.NewSaver(),
		Logger: logger,
	}
	if err := app.Run(f, dir); err != nil {
		return err
	}
	logger.Info("point lear at the new scenes with LEAR_DATA_DIR", "dir", dir)
	return nil
}
