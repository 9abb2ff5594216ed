package clipboard_test

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/kyle-silver/lear/clipboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	t.Run("picks the first available tool", func(t *testing.T) {
		t.Parallel()

		installed := map[string]bool{"xclip": true, "xsel": true}
		lookPath := func(name string) (string, error) {
			if installed[name] {
				return "/usr/bin/" + name, nil
			}
			return "", exec.ErrNotFound
		}

		cb, err := clipboard.Detect(lookPath)

		require.NoError(t, err)
		assert.Equal(t, "xclip -selection clipboard", cb.Name())
	})

	t.Run("reports a missing clipboard", func(t *testing.T) {
		t.Parallel()

		_, err := clipboard.Detect(func(string) (string, error) { return "", exec.ErrNotFound })

		assert.ErrorIs(t, err, clipboard.ErrNoClipboard)
	})
}

func TestCommand_Copy(t *testing.T) {
	t.Parallel()

	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available, skipping clipboard test")
	}

	t.Run("pipes content to the command", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "clip")
		cb := clipboard.NewCommand("sh", "-c", `cat > "$0"`, path)

		err := cb.Copy("Ripeness is all.")

		require.NoError(t, err)
		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "Ripeness is all.", string(got))
	})

	t.Run("reports a failing command", func(t *testing.T) {
		t.Parallel()

		cb := clipboard.NewCommand("sh", "-c", "echo busy >&2; exit 3")

		err := cb.Copy("x")

		var exitErr *exec.ExitError
		require.True(t, errors.As(err, &exitErr))
		assert.ErrorContains(t, err, "busy")
	})
}
