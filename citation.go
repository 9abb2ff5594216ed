package lear

import "fmt"

// Citation identifies where a selection comes from.
type Citation struct {
	Work  string
	Act   int
	Scene int
	Start int
	Stop  int
}

// String formats the citation as "Lr. 1.1.12-15".
func (c Citation) String() string {
	return fmt.Sprintf("%s %d.%d.%d-%d", c.Work, c.Act, c.Scene, c.Start, c.Stop)
}

// Cite returns the citation for blocks: act, scene and start from the first
// dialogue and stop from the last. It reports false if blocks contain no
// dialogue.
func Cite(blocks []Block) (Citation, bool) {
	var first, last *Dialogue
	for _, b := range blocks {
		if b.Dialogue == nil {
			continue
		}
		if first == nil {
			first = b.Dialogue
		}
		last = b.Dialogue
	}
	if first == nil {
		return Citation{}, false
	}
	return Citation{
		Work:  Work.Abbreviation,
		Act:   first.Act,
		Scene: first.Scene,
		Start: first.Start,
		Stop:  last.Stop,
	}, true
}
