// Package lear provides domain types for selecting and presenting excerpts
// from The Tragedie of King Lear.
package lear

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// LineKind distinguishes spoken text from stage directions.
type LineKind int

// Line kinds.
const (
	LineText LineKind = iota
	LineDirection
)

// Ellipsis marks a dialogue block truncated by a selection.
const Ellipsis = "..."

// Line is a single line of a dialogue block. Only text lines carry canonical
// line numbers; directions are interleaved without numbers.
type Line struct {
	Kind    LineKind
	Content string
}

// Text returns a spoken line.
func Text(s string) Line {
	return Line{Kind: LineText, Content: s}
}

// Direction returns a stage direction.
func Direction(s string) Line {
	return Line{Kind: LineDirection, Content: s}
}

// IsText reports whether the line is spoken text.
func (l Line) IsText() bool { return l.Kind == LineText }

// MarshalJSON encodes the line as {"text": ...} or {"direction": ...}.
func (l Line) MarshalJSON() ([]byte, error) {
	switch l.Kind {
	case LineText:
		return json.Marshal(map[string]string{"text": l.Content})
	case LineDirection:
		return json.Marshal(map[string]string{"direction": l.Content})
	default:
		return nil, fmt.Errorf("unknown line kind %d", l.Kind)
	}
}

// UnmarshalJSON decodes either line form.
func (l *Line) UnmarshalJSON(data []byte) error {
	var raw struct {
		Text      *string `json:"text"`
		Direction *string `json:"direction"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch {
	case raw.Text != nil && raw.Direction == nil:
		*l = Text(*raw.Text)
	case raw.Direction != nil && raw.Text == nil:
		*l = Direction(*raw.Direction)
	default:
		return errors.New(`line must have exactly one of "text" or "direction"`)
	}
	return nil
}

// Heading opens a scene. It carries no line numbers.
type Heading struct {
	Act     string `json:"act"`     // "ACT I"
	Scene   string `json:"scene"`   // "SCENE I"
	Setting string `json:"setting"` // "King Lear's palace."
	Staging string `json:"staging"` // "Enter KENT, GLOUCESTER, and EDMUND"
}

// Dialogue is a contiguous speech by one character. Start and Stop are the
// canonical numbers of its first and last text lines.
type Dialogue struct {
	Character string `json:"character"`
	Act       int    `json:"act"`
	Scene     int    `json:"scene"`
	Start     int    `json:"start"`
	Stop      int    `json:"stop"`
	Lines     []Line `json:"lines"`
}

// TextLines returns the number of spoken lines in the dialogue.
func (d Dialogue) TextLines() int {
	n := 0
	for _, line := range d.Lines {
		if line.IsText() {
			n++
		}
	}
	return n
}

// Validate checks that the dialogue's text lines match its numbered range.
func (d Dialogue) Validate() error {
	if d.Start < 1 || d.Stop < d.Start {
		return fmt.Errorf("%s: invalid line range %d-%d", d.Character, d.Start, d.Stop)
	}
	if got, want := d.TextLines(), d.Stop-d.Start+1; got != want {
		return fmt.Errorf("%s %d.%d.%d-%d: %d text lines, want %d",
			d.Character, d.Act, d.Scene, d.Start, d.Stop, got, want)
	}
	return nil
}

// Block is the smallest displayable unit of a scene. Exactly one of Heading
// and Dialogue is set.
type Block struct {
	Heading  *Heading  `json:"Heading,omitempty"`
	Dialogue *Dialogue `json:"Dialogue,omitempty"`
}

// Validate checks that exactly one variant is set.
func (b Block) Validate() error {
	switch {
	case b.Heading != nil && b.Dialogue != nil:
		return errors.New("block has both heading and dialogue")
	case b.Heading != nil:
		return nil
	case b.Dialogue != nil:
		return b.Dialogue.Validate()
	default:
		return errors.New("empty block")
	}
}

// Scene is the ordered block sequence of one act and scene.
type Scene struct {
	Act    int
	Scene  int
	Blocks []Block
}

// Heading returns the scene's heading, if any.
func (s *Scene) Heading() (Heading, bool) {
	for _, b := range s.Blocks {
		if b.Heading != nil {
			return *b.Heading, true
		}
	}
	return Heading{}, false
}

// Dialogues returns the scene's dialogue blocks in order.
func (s *Scene) Dialogues() []Dialogue {
	var out []Dialogue
	for _, b := range s.Blocks {
		if b.Dialogue != nil {
			out = append(out, *b.Dialogue)
		}
	}
	return out
}

// Rand is a source of uniform random integers. *math/rand/v2.Rand satisfies
// it; tests inject seeded or scripted sources.
type Rand interface {
	// IntN returns an integer in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// SceneStore resolves scenes of the play.
type SceneStore interface {
	// Resolve returns the scene at the given act and scene numbers.
	Resolve(act, scene int) (*Scene, error)
	// RandomScene returns a uniformly chosen scene.
	RandomScene(r Rand) (*Scene, error)
}

// Presenter renders blocks as styled text.
type Presenter interface {
	// Render renders blocks, followed by a citation if cite is true and the
	// blocks contain dialogue.
	Render(blocks []Block, cite bool) string
	// RenderContents renders the table of contents.
	RenderContents(catalog []SceneInfo) string
}

// Pager displays a whole scene interactively.
type Pager interface {
	// Page blocks until the user exits.
	Page(ctx context.Context, scene *Scene) error
}

// PlayParser parses a source edition of the play into scenes.
type PlayParser interface {
	Parse(r io.Reader) ([]Scene, error)
}

// SceneSaver writes scenes in the store's on-disk layout.
type SceneSaver interface {
	// Save writes scene under dir, replacing any previous copy.
	Save(dir string, scene Scene) error
}

// Clipboard copies text to the system clipboard.
type Clipboard interface {
	Copy(content string) error
}
