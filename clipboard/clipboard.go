// Package clipboard copies passages to the system clipboard via
// platform-specific commands.
package clipboard

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/kyle-silver/lear"
)

// Ensure Command implements the Clipboard interface.
var _ lear.Clipboard = (*Command)(nil)

// ErrNoClipboard is returned when no known clipboard command is installed.
var ErrNoClipboard = errors.New("no clipboard command found")

// candidates are tried in order by Detect.
var candidates = [][]string{
	{"pbcopy"},
	{"wl-copy"},
	{"xclip", "-selection", "clipboard"},
	{"xsel", "--clipboard", "--input"},
	{"clip.exe"},
}

// Command implements Clipboard by piping content into an external command.
type Command struct {
	name string
	args []string
}

// NewCommand returns a Command that runs name with args.
func NewCommand(name string, args ...string) *Command {
	return &Command{name: name, args: args}
}

// Detect returns a Command for the first clipboard tool lookPath finds.
// Callers pass exec.LookPath.
func Detect(lookPath func(string) (string, error)) (*Command, error) {
	for _, c := range candidates {
		if _, err := lookPath(c[0]); err == nil {
			return NewCommand(c[0], c[1:]...), nil
		}
	}
	return nil, ErrNoClipboard
}

// Name returns the command line the clipboard runs.
func (c *Command) Name() string {
	return strings.Join(append([]string{c.name}, c.args...), " ")
}

// Copy writes content to the clipboard.
func (c *Command) Copy(content string) error {
	cmd := exec.Command(c.name, c.args...)
	cmd.Stdin = strings.NewReader(content)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %w: %s", c.name, err, strings.TrimSpace(string(out)))
	}
	return nil
}
