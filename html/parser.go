// Package html parses the MIT HTML edition of King Lear into scenes.
//
// The edition is a flat sequence of body elements. An <h3> opens a scene: an
// "Act ..." heading updates the act label and is followed by a second <h3>
// of the form "SCENE II. Setting", after which the next element holds the
// opening staging. A speech is an <a> naming the speaker followed by a
// <blockquote> whose <a name="act.scene.line"> children are spoken lines and
// whose <p> children are stage directions.
package html

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kyle-silver/lear"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Compile-time interface verification.
var _ lear.PlayParser = (*Parser)(nil)

// Parser implements lear.PlayParser for the MIT edition.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads an HTML document and returns its scenes in play order.
func (p *Parser) Parse(r io.Reader) ([]lear.Scene, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	body := findBody(doc)
	if body == nil {
		return nil, errors.New("parse html: document has no body")
	}

	var (
		scenes   []lear.Scene
		current  *lear.Scene
		actLabel string
		act      int
		scene    int
	)
	flush := func() {
		if current != nil {
			scenes = append(scenes, *current)
		}
	}

	elems := elements(body)
	for i := 0; i < len(elems); i++ {
		n := elems[i]
		switch n.DataAtom {
		case atom.H3:
			title := textOf(n)
			if strings.HasPrefix(strings.ToLower(title), "act") {
				actLabel = title
				act++
				scene = 0
				i++
				if i >= len(elems) || elems[i].DataAtom != atom.H3 {
					return nil, fmt.Errorf("%s: missing scene heading", actLabel)
				}
				title = textOf(elems[i])
			}
			if act == 0 {
				return nil, fmt.Errorf("scene %q appears before any act", title)
			}
			scene++
			flush()

			heading := sceneHeading(actLabel, title)
			if i+1 < len(elems) && isStaging(elems[i+1]) {
				i++
				heading.Staging = textOf(elems[i])
			}
			current = &lear.Scene{
				Act:    act,
				Scene:  scene,
				Blocks: []lear.Block{{Heading: &heading}},
			}

		case atom.A:
			if current == nil {
				continue
			}
			if i+1 >= len(elems) || elems[i+1].DataAtom != atom.Blockquote {
				return nil, fmt.Errorf("%d.%d: speech by %q has no blockquote", act, scene, textOf(n))
			}
			i++
			d, err := dialogue(textOf(n), elems[i])
			if err != nil {
				return nil, err
			}
			if d.Act != act || d.Scene != scene {
				return nil, fmt.Errorf("%s %d.%d.%d: found under %d.%d", d.Character, d.Act, d.Scene, d.Start, act, scene)
			}
			current.Blocks = append(current.Blocks, lear.Block{Dialogue: &d})
		}
	}
	flush()

	if len(scenes) == 0 {
		return nil, errors.New("parse html: no scenes found")
	}
	return scenes, nil
}

// sceneHeading splits "SCENE II. A field between the two camps." into its
// label and setting.
func sceneHeading(act, title string) lear.Heading {
	label, setting, _ := strings.Cut(title, ".")
	return lear.Heading{
		Act:     act,
		Scene:   strings.TrimSpace(label),
		Setting: strings.TrimSpace(setting),
	}
}

// isStaging reports whether n can hold the opening staging of a scene.
func isStaging(n *html.Node) bool {
	switch n.DataAtom {
	case atom.A, atom.H3:
		return false
	}
	return textOf(n) != ""
}

// dialogue builds a Dialogue from a speaker name and its blockquote.
func dialogue(character string, quote *html.Node) (lear.Dialogue, error) {
	d := lear.Dialogue{Character: character}
	var first, last string
	for _, c := range elements(quote) {
		switch c.DataAtom {
		case atom.A:
			name := attr(c, "name")
			if name == "" {
				continue
			}
			if first == "" {
				first = name
			}
			last = name
			d.Lines = append(d.Lines, lear.Text(textOf(c)))
		case atom.P:
			if s := textOf(c); s != "" {
				d.Lines = append(d.Lines, lear.Direction(s))
			}
		}
	}
	if first == "" {
		return d, fmt.Errorf("speech by %q has no numbered lines", character)
	}

	var err error
	if d.Act, d.Scene, d.Start, err = parseAnchor(first); err != nil {
		return d, fmt.Errorf("speech by %q: %w", character, err)
	}
	if _, _, d.Stop, err = parseAnchor(last); err != nil {
		return d, fmt.Errorf("speech by %q: %w", character, err)
	}
	if err := d.Validate(); err != nil {
		return d, err
	}
	return d, nil
}

// parseAnchor parses an "act.scene.line" anchor name.
func parseAnchor(name string) (act, scene, line int, err error) {
	parts := strings.Split(name, ".")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("line anchor %q: want act.scene.line", name)
	}
	var nums [3]int
	for i, part := range parts {
		if nums[i], err = strconv.Atoi(part); err != nil {
			return 0, 0, 0, fmt.Errorf("line anchor %q: %w", name, err)
		}
	}
	return nums[0], nums[1], nums[2], nil
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == atom.Body {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}

// elements returns the element children of n.
func elements(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, c)
		}
	}
	return out
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}

// textOf returns the text content of n with runs of whitespace collapsed.
func textOf(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}
