package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/exec"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	lg "github.com/charmbracelet/lipgloss"
	"github.com/kyle-silver/lear"
	"github.com/kyle-silver/lear/bubbletea"
	"github.com/kyle-silver/lear/clipboard"
	"github.com/kyle-silver/lear/jsonl"
	"github.com/kyle-silver/lear/lipgloss"
	"github.com/kyle-silver/lear/log"
	"github.com/muesli/termenv"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

// ErrUsage is returned for a malformed command line.
var ErrUsage = errors.New("usage")

const usage = `usage:
  lear [-cite] [-copy]                           print a random passage
  lear [-copy] quote <act> <scene> <start> <end> print lines start-end of a scene
  lear contents                                  print the table of contents
  lear read <act> <scene>                        page through a whole scene
  lear version                                   print the version

flags:
  -cite  cite a random passage
  -copy  also copy the passage, without colors, to the clipboard
`

// App encapsulates the application logic for testing.
type App struct {
	Store     lear.SceneStore
	Presenter lear.Presenter
	Pager     lear.Pager
	Clipboard lear.Clipboard
	Plain     lear.Presenter // renders clipboard copies
	Rand      lear.Rand
	Stdout    io.Writer
	Logger    *slog.Logger
}

// Run executes the command named by args and logs any failure.
func (a *App) Run(ctx context.Context, args []string) error {
	err := a.dispatch(ctx, args)
	switch {
	case err == nil:
	case errors.Is(err, ErrUsage) || lear.IsUserError(err):
		a.logger().Warn(err.Error(), "kind", "user", "args", args)
	default:
		a.logger().Error(err.Error(), "kind", "internal", "args", args)
	}
	return err
}

func (a *App) dispatch(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("lear", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cite := fs.Bool("cite", false, "cite a random passage")
	copyOut := fs.Bool("copy", false, "copy the passage to the clipboard")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			_, err := io.WriteString(a.Stdout, usage)
			return err
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	rest := fs.Args()
	if len(rest) == 0 {
		return a.Random(*cite, *copyOut)
	}

	cmd, params := rest[0], rest[1:]
	switch cmd {
	case "quote":
		nums, err := parseInts(cmd, params, "act", "scene", "start", "end")
		if err != nil {
			return err
		}
		return a.Quote(nums[0], nums[1], lear.Lines(nums[2], nums[3]), *copyOut)
	case "contents":
		if len(params) != 0 {
			return fmt.Errorf("%w: contents takes no arguments", ErrUsage)
		}
		return a.Contents()
	case "read":
		nums, err := parseInts(cmd, params, "act", "scene")
		if err != nil {
			return err
		}
		return a.Read(ctx, nums[0], nums[1])
	case "version":
		_, err := fmt.Fprintf(a.Stdout, "lear %s\n", Version)
		return err
	case "help":
		_, err := io.WriteString(a.Stdout, usage)
		return err
	}
	return fmt.Errorf("%w: unknown command %q", ErrUsage, cmd)
}

// Random prints a few consecutive blocks from a random scene.
func (a *App) Random(cite, copyOut bool) error {
	scene, err := a.Store.RandomScene(a.Rand)
	if err != nil {
		return err
	}
	blocks := lear.RandomWindow(scene.Blocks, a.Rand)
	a.logger().Debug("random passage", "act", scene.Act, "scene", scene.Scene, "blocks", len(blocks))
	return a.print(blocks, cite, copyOut)
}

// Quote prints the lines of a scene inside r, followed by a citation.
func (a *App) Quote(act, scene int, r lear.LineRange, copyOut bool) error {
	if err := r.Validate(); err != nil {
		return err
	}
	s, err := a.Store.Resolve(act, scene)
	if err != nil {
		return err
	}
	blocks, err := lear.Select(s, r)
	if err != nil {
		return err
	}
	a.logger().Debug("quote", "act", act, "scene", scene, "lines", r.String(), "blocks", len(blocks))
	return a.print(blocks, true, copyOut)
}

// print writes blocks to stdout and, if copyOut is set, a plain copy to the
// clipboard.
func (a *App) print(blocks []lear.Block, cite, copyOut bool) error {
	if _, err := io.WriteString(a.Stdout, a.Presenter.Render(blocks, cite)); err != nil {
		return err
	}
	if !copyOut {
		return nil
	}
	if a.Clipboard == nil {
		return clipboard.ErrNoClipboard
	}
	if err := a.Clipboard.Copy(a.Plain.Render(blocks, cite)); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	a.logger().Debug("copied to clipboard", "blocks", len(blocks))
	return nil
}

// Contents prints the table of contents.
func (a *App) Contents() error {
	_, err := io.WriteString(a.Stdout, a.Presenter.RenderContents(lear.Catalog))
	return err
}

// Read pages through a whole scene.
func (a *App) Read(ctx context.Context, act, scene int) error {
	s, err := a.Store.Resolve(act, scene)
	if err != nil {
		return err
	}
	a.logger().Debug("read", "act", act, "scene", scene)
	return a.Pager.Page(ctx, s)
}

func (a *App) logger() *slog.Logger {
	if a.Logger == nil {
		return log.Discard()
	}
	return a.Logger
}

// parseInts parses exactly len(names) integer arguments.
func parseInts(cmd string, args []string, names ...string) ([]int, error) {
	if len(args) != len(names) {
		return nil, fmt.Errorf("%w: %s takes %d arguments, got %d", ErrUsage, cmd, len(names), len(args))
	}
	nums := make([]int, len(args))
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: %s %q is not a number", ErrUsage, names[i], arg)
		}
		nums[i] = n
	}
	return nums, nil
}

// ExitCode maps an error to the process exit status: 0 on success, 2 when
// the play data is unusable and 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var loadErr *lear.DataLoadError
	if errors.As(err, &loadErr) {
		return 2
	}
	return 1
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "lear:", err)
		if errors.Is(err, ErrUsage) {
			fmt.Fprint(os.Stderr, usage)
		}
		os.Exit(ExitCode(err))
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	logger, closer, err := log.New(os.Stderr, log.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
	})
	if err != nil {
		return err
	}
	defer closer.Close()

	theme, err := lipgloss.ThemeByName(cfg.Theme)
	if err != nil {
		return err
	}

	store, err := openStore(cfg.DataDir)
	if err != nil {
		logger.Error(err.Error(), "kind", "internal")
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	presenter := lipgloss.NewPresenter(theme,
		lipgloss.WithRenderer(lg.NewRenderer(os.Stdout)),
		lipgloss.WithWidth(cfg.Width),
	)
	plain := lipgloss.NewPresenter(lipgloss.PlainTheme(),
		lipgloss.WithRenderer(lg.NewRenderer(io.Discard, termenv.WithProfile(termenv.Ascii))),
		lipgloss.WithWidth(cfg.Width),
	)
	app := &App{
		Store:     store,
		Presenter: presenter,
		Pager:     bubbletea.NewPager(presenter, bubbletea.WithTheme(theme)),
		Plain:     plain,
		Rand:      rand.New(rand.NewPCG(seed, seed)),
		Stdout:    os.Stdout,
		Logger:    logger,
	}
	if cb, err := clipboard.Detect(exec.LookPath); err == nil {
		app.Clipboard = cb
	}
	return app.Run(ctx, os.Args[1:])
}

// openStore loads scenes from dir, or the bundled excerpts if dir is empty.
func openStore(dir string) (*jsonl.Store, error) {
	if dir == "" {
		return jsonl.NewStore()
	}
	return jsonl.NewStoreFS(os.DirFS(dir))
}
