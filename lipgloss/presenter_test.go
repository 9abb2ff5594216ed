package lipgloss_test

import (
	"io"
	"strconv"
	"strings"
	"testing"

	lg "github.com/charmbracelet/lipgloss"
	"github.com/kyle-silver/lear"
	"github.com/kyle-silver/lear/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// asciiPresenter renders without escape sequences so output can be compared
// verbatim.
func asciiPresenter(opts ...lipgloss.PresenterOption) *lipgloss.Presenter {
	renderer := lg.NewRenderer(nil, termenv.WithProfile(termenv.Ascii))
	return lipgloss.NewPresenter(lipgloss.DefaultTheme(), append([]lipgloss.PresenterOption{lipgloss.WithRenderer(renderer)}, opts...)...)
}

func TestPresenter_Render(t *testing.T) {
	t.Parallel()

	t.Run("renders a heading", func(t *testing.T) {
		t.Parallel()

		blocks := []lear.Block{{Heading: &lear.Heading{
			Act:     "ACT V",
			Scene:   "SCENE II",
			Setting: "A field between the two camps.",
			Staging: "Alarum within.",
		}}}

		got := asciiPresenter().Render(blocks, true)

		assert.Equal(t, "ACT V, SCENE II\nA field between the two camps.\n\n\tAlarum within.\n\n", got)
	})

	t.Run("renders directions after text as a separate run", func(t *testing.T) {
		t.Parallel()

		blocks := []lear.Block{{Dialogue: &lear.Dialogue{
			Character: "GLOUCESTER",
			Act:       5, Scene: 2, Start: 5, Stop: 5,
			Lines: []lear.Line{
				lear.Text("Grace go with you, sir!"),
				lear.Direction("Exit EDGAR"),
				lear.Direction("Alarum and retreat within. Re-enter EDGAR"),
			},
		}}}

		got := asciiPresenter().Render(blocks, false)

		assert.Equal(t, "GLOUCESTER\n"+
			"\tGrace go with you, sir!\n"+
			"\n\tExit EDGAR\n"+
			"\tAlarum and retreat within. Re-enter EDGAR\n"+
			"\n", got)
	})

	t.Run("separates alternating text and directions", func(t *testing.T) {
		t.Parallel()

		blocks := []lear.Block{{Dialogue: &lear.Dialogue{
			Character: "KING LEAR",
			Lines: []lear.Line{
				lear.Direction("Aside"),
				lear.Text("one"),
				lear.Text("two"),
				lear.Direction("Kneels"),
				lear.Text("three"),
			},
		}}}

		got := asciiPresenter().Render(blocks, false)

		assert.Equal(t, "KING LEAR\n"+
			"\n\tAside\n"+
			"\n\tone\n"+
			"\ttwo\n"+
			"\n\tKneels\n"+
			"\n\tthree\n"+
			"\n", got)
	})

	t.Run("appends a right-aligned citation", func(t *testing.T) {
		t.Parallel()

		blocks := []lear.Block{
			{Dialogue: &lear.Dialogue{Character: "EDGAR", Act: 5, Scene: 2, Start: 3, Stop: 4, Lines: []lear.Line{lear.Text("a"), lear.Text("b")}}},
			{Dialogue: &lear.Dialogue{Character: "GLOUCESTER", Act: 5, Scene: 2, Start: 5, Stop: 5, Lines: []lear.Line{lear.Text("c")}}},
		}

		got := asciiPresenter().Render(blocks, true)

		lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
		last := lines[len(lines)-1]
		assert.Len(t, last, 80)
		assert.Equal(t, "(Lr. 5.2.3-5)", strings.TrimLeft(last, " "))
	})

	t.Run("omits the citation when not requested", func(t *testing.T) {
		t.Parallel()

		blocks := []lear.Block{
			{Dialogue: &lear.Dialogue{Character: "EDGAR", Act: 5, Scene: 2, Start: 3, Stop: 3, Lines: []lear.Line{lear.Text("a")}}},
		}

		got := asciiPresenter().Render(blocks, false)

		assert.NotContains(t, got, "Lr.")
	})

	t.Run("omits the citation without dialogue", func(t *testing.T) {
		t.Parallel()

		blocks := []lear.Block{{Heading: &lear.Heading{Act: "ACT I", Scene: "SCENE I"}}}

		got := asciiPresenter().Render(blocks, true)

		assert.NotContains(t, got, "Lr.")
	})

	t.Run("styles output for color terminals", func(t *testing.T) {
		t.Parallel()

		r := lg.NewRenderer(io.Discard)
		r.SetColorProfile(termenv.TrueColor)
		p := lipgloss.NewPresenter(lipgloss.DefaultTheme(), lipgloss.WithRenderer(r))
		blocks := []lear.Block{{Dialogue: &lear.Dialogue{
			Character: "EDGAR",
			Lines:     []lear.Line{lear.Text("Ripeness is all: come on."), lear.Direction("Exeunt")},
		}}}

		got := p.Render(blocks, false)

		assert.Contains(t, got, "\x1b[")
		assert.Contains(t, got, "Ripeness is all: come on.")
		assert.NotEqual(t, asciiPresenter().Render(blocks, false), got)
	})
}

func TestPresenter_Citation(t *testing.T) {
	t.Parallel()

	t.Run("fills the configured width", func(t *testing.T) {
		t.Parallel()

		got := asciiPresenter(lipgloss.WithWidth(30)).Citation(lear.Citation{Work: "Lr.", Act: 1, Scene: 1, Start: 12, Stop: 15})

		assert.Equal(t, strings.Repeat(" ", 15)+"(Lr. 1.1.12-15)", got)
	})

	t.Run("ignores non-positive widths", func(t *testing.T) {
		t.Parallel()

		got := asciiPresenter(lipgloss.WithWidth(0)).Citation(lear.Citation{Work: "Lr.", Act: 1, Scene: 1, Start: 1, Stop: 2})

		assert.Len(t, got, lipgloss.DefaultWidth)
	})
}

func TestPresenter_RenderContents(t *testing.T) {
	t.Parallel()

	got := asciiPresenter().RenderContents(lear.Catalog)
	lines := strings.Split(got, "\n")

	t.Run("opens with the title", func(t *testing.T) {
		t.Parallel()

		require.GreaterOrEqual(t, len(lines), 2)
		assert.Equal(t, "The Tragedie of", strings.TrimSpace(lines[0]))
		assert.Equal(t, "KING LEAR", strings.TrimSpace(lines[1]))
		assert.Contains(t, got, "Shakespeare")
	})

	t.Run("draws a rule before each act", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 5, strings.Count(got, strings.Repeat("-", 19)))
	})

	t.Run("lists every scene with its line count", func(t *testing.T) {
		t.Parallel()

		var rows []string
		for _, line := range lines {
			if isRow(line) {
				rows = append(rows, line)
			}
		}
		require.Len(t, rows, len(lear.Catalog))
		assert.Equal(t, []string{"1", "1", "332"}, strings.Fields(rows[0]))
		assert.Equal(t, []string{"2", "191"}, strings.Fields(rows[1]))
		assert.Equal(t, []string{"5", "1", "78"}, strings.Fields(rows[23]))
	})
}

// isRow reports whether line is a catalog row: two or three numeric columns.
func isRow(line string) bool {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return false
	}
	for _, f := range fields {
		if _, err := strconv.Atoi(f); err != nil {
			return false
		}
	}
	return true
}
