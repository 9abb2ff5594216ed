package lipgloss

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kyle-silver/lear"
)

// Compile-time interface verification.
var _ lear.Presenter = (*Presenter)(nil)

// DefaultWidth is the width of the field the citation is right-aligned in.
const DefaultWidth = 80

// contentsWidth is the width of the table of contents.
const contentsWidth = 19

// Presenter implements lear.Presenter with Lipgloss styles.
type Presenter struct {
	styles   lear.Styles
	renderer *lipgloss.Renderer
	width    int
}

// PresenterOption configures a Presenter.
type PresenterOption func(*Presenter)

// WithRenderer sets the renderer used to create styles. Tests use it to pin
// the color profile.
func WithRenderer(r *lipgloss.Renderer) PresenterOption {
	return func(p *Presenter) {
		p.renderer = r
	}
}

// WithWidth sets the width of the citation field.
func WithWidth(width int) PresenterOption {
	return func(p *Presenter) {
		if width > 0 {
			p.width = width
		}
	}
}

// NewPresenter creates a Presenter with the given theme.
func NewPresenter(theme lear.Theme, opts ...PresenterOption) *Presenter {
	p := &Presenter{
		styles: theme.Styles(),
		width:  DefaultWidth,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Render renders blocks in order. If cite is true and blocks contain
// dialogue, a right-aligned citation follows.
func (p *Presenter) Render(blocks []lear.Block, cite bool) string {
	var sb strings.Builder
	for _, b := range blocks {
		switch {
		case b.Heading != nil:
			p.renderHeading(&sb, *b.Heading)
		case b.Dialogue != nil:
			p.renderDialogue(&sb, *b.Dialogue)
		}
	}
	if cite {
		if c, ok := lear.Cite(blocks); ok {
			sb.WriteString(p.Citation(c))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// Citation renders c as "(Lr. 1.1.12-15)", right-aligned in the
// presenter's width.
func (p *Presenter) Citation(c lear.Citation) string {
	style := p.newStyle(p.styles.Citation)
	s := style.Render("(") +
		style.Italic(true).Render(c.Work) +
		style.Render(fmt.Sprintf(" %d.%d.%d-%d)", c.Act, c.Scene, c.Start, c.Stop))
	return lipgloss.PlaceHorizontal(p.width, lipgloss.Right, s)
}

func (p *Presenter) renderHeading(sb *strings.Builder, h lear.Heading) {
	sb.WriteString(p.newStyle(p.styles.Heading).Bold(true).Render(h.Act + ", " + h.Scene))
	sb.WriteString("\n")
	sb.WriteString(p.newStyle(p.styles.Setting).Render(h.Setting))
	sb.WriteString("\n\n\t")
	sb.WriteString(p.newStyle(p.styles.Staging).Italic(true).Render(h.Staging))
	sb.WriteString("\n\n")
}

// renderDialogue writes the speaker and the lines. A blank line separates
// speech from the stage business around it: it precedes a text line that
// follows a direction, and a direction that follows anything but another
// direction.
func (p *Presenter) renderDialogue(sb *strings.Builder, d lear.Dialogue) {
	textStyle := p.newStyle(p.styles.Text)
	directionStyle := p.newStyle(p.styles.Direction).Italic(true)

	sb.WriteString(p.newStyle(p.styles.Character).Bold(true).Render(d.Character))
	sb.WriteString("\n")

	prevDirection := false
	for _, line := range d.Lines {
		switch line.Kind {
		case lear.LineDirection:
			if !prevDirection {
				sb.WriteString("\n")
			}
			sb.WriteString("\t")
			sb.WriteString(directionStyle.Render(line.Content))
		default:
			if prevDirection {
				sb.WriteString("\n")
			}
			sb.WriteString("\t")
			sb.WriteString(textStyle.Render(line.Content))
		}
		sb.WriteString("\n")
		prevDirection = line.Kind == lear.LineDirection
	}
	sb.WriteString("\n")
}

// RenderContents renders the title and one row per scene, with a rule
// before the first scene of each act.
func (p *Presenter) RenderContents(catalog []lear.SceneInfo) string {
	center := func(width int, s string) string {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
	}
	italic := p.newStyle(lear.ColorPair{}).Italic(true)
	bold := p.newStyle(p.styles.Heading).Bold(true)
	rule := p.newStyle(p.styles.Rule)

	var sb strings.Builder
	sb.WriteString(italic.Render(center(contentsWidth, lear.Work.Title)) + "\n")
	sb.WriteString(center(contentsWidth, lear.Work.Name) + "\n\n")
	sb.WriteString(center(contentsWidth, "by") + "\n\n")
	for _, name := range strings.Fields(lear.Work.Author) {
		sb.WriteString(italic.Render(center(contentsWidth, name)) + "\n")
	}
	sb.WriteString("\n")
	sb.WriteString(bold.Render(center(5, "Act")+center(7, "Scene")+center(7, "Lines")) + "\n")

	prevAct := 0
	for _, info := range catalog {
		act := ""
		if info.Act != prevAct {
			sb.WriteString(rule.Render(strings.Repeat("-", contentsWidth)) + "\n")
			act = strconv.Itoa(info.Act)
			prevAct = info.Act
		}
		sb.WriteString(center(5, act) + center(7, strconv.Itoa(info.Scene)) + center(7, strconv.Itoa(info.Lines)))
		sb.WriteString("\n")
	}
	return sb.String()
}

// newStyle creates a style from a color pair using the presenter's renderer.
func (p *Presenter) newStyle(cp lear.ColorPair) lipgloss.Style {
	var style lipgloss.Style
	if p.renderer != nil {
		style = p.renderer.NewStyle()
	} else {
		style = lipgloss.NewStyle()
	}
	if cp.Foreground != "" {
		style = style.Foreground(lipgloss.Color(cp.Foreground))
	}
	if cp.Background != "" {
		style = style.Background(lipgloss.Color(cp.Background))
	}
	return style
}
