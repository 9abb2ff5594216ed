package lear

import (
	"fmt"
	"slices"
)

// LineRange is an inclusive range of canonical line numbers.
type LineRange struct {
	Start int
	End   int
}

// Lines returns the range [start, end].
func Lines(start, end int) LineRange {
	return LineRange{Start: start, End: end}
}

// Validate rejects inverted ranges and line numbers below 1.
func (r LineRange) Validate() error {
	if r.Start < 1 || r.End < 1 {
		return ErrNonPositiveLine
	}
	if r.End < r.Start {
		return ErrInvertedRange
	}
	return nil
}

// String returns the range as "start-end".
func (r LineRange) String() string {
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

// Overlaps reports whether the two ranges share at least one line.
func (r LineRange) Overlaps(o LineRange) bool {
	return r.Start <= o.End && r.End >= o.Start
}

// Range returns the dialogue's numbered line range.
func (d Dialogue) Range() LineRange {
	return LineRange{Start: d.Start, End: d.Stop}
}

// Select returns the part of the dialogue inside r. Ellipsis lines mark the
// ends truncated by r. It reports false if the dialogue has no text line
// inside r.
func (d Dialogue) Select(r LineRange) (Dialogue, bool) {
	if !d.Range().Overlaps(r) {
		return Dialogue{}, false
	}
	lo, hi := max(r.Start, d.Start), min(r.End, d.Stop)

	// Directions are unnumbered, so line numbers count text lines only.
	first, last := -1, -1
	n := 0
	for i, line := range d.Lines {
		if !line.IsText() {
			continue
		}
		num := d.Start + n
		n++
		if first < 0 && num >= lo {
			first = i
		}
		if num >= hi {
			last = i
			break
		}
	}
	if first < 0 || last < 0 {
		return Dialogue{}, false
	}
	// Untruncated ends keep the directions around the spoken lines.
	if r.Start <= d.Start {
		first = 0
	}
	if r.End >= d.Stop {
		last = len(d.Lines) - 1
	}

	lines := slices.Clone(d.Lines[first : last+1])
	if len(lines) == 0 {
		return Dialogue{}, false
	}
	if r.Start > d.Start {
		lines = slices.Insert(lines, 0, Text(Ellipsis))
	}
	if r.End < d.Stop {
		lines = append(lines, Text(Ellipsis))
	}

	return Dialogue{
		Character: d.Character,
		Act:       d.Act,
		Scene:     d.Scene,
		Start:     lo,
		Stop:      hi,
		Lines:     lines,
	}, true
}

// Select returns the dialogue of scene that falls inside r, truncating
// partial blocks. Headings are never selected. It returns a *LinesError if
// nothing is selected.
func Select(scene *Scene, r LineRange) ([]Block, error) {
	var blocks []Block
	for _, b := range scene.Blocks {
		if b.Dialogue == nil {
			continue
		}
		d, ok := b.Dialogue.Select(r)
		if !ok {
			continue
		}
		blocks = append(blocks, Block{Dialogue: &d})
	}
	if len(blocks) == 0 {
		return nil, &LinesError{Act: scene.Act, Scene: scene.Scene, Lines: r}
	}
	return blocks, nil
}

// Window bounds for random sampling.
const (
	MinWindow = 2
	MaxWindow = 5
)

// RandomWindow returns a random run of whole blocks. Its length is uniform
// in [MinWindow, min(MaxWindow, len(blocks))] and its offset uniform over
// every position where it fits. Fewer than MinWindow blocks are returned
// whole.
func RandomWindow(blocks []Block, r Rand) []Block {
	if len(blocks) < MinWindow {
		return slices.Clone(blocks)
	}
	hi := min(MaxWindow, len(blocks))
	k := MinWindow + r.IntN(hi-MinWindow+1)
	start := r.IntN(len(blocks) - k + 1)
	return slices.Clone(blocks[start : start+k])
}
