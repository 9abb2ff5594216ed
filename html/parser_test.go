package html_test

import (
	"strings"
	"testing"

	"github.com/kyle-silver/lear"
	"github.com/kyle-silver/lear/html"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const edition = `<html>
<head><title>King Lear: Entire Play</title></head>
<body>
<table><tr><td><a href="/Shakespeare">Shakespeare homepage</a></td></tr></table>
<h3>ACT I</h3>
<h3>SCENE I. King Lear's palace.</h3>
<blockquote><i>Enter KENT, GLOUCESTER, and EDMUND</i></blockquote>
<A NAME=speech1><b>KENT</b></a>
<blockquote>
<A NAME=1.1.1>I thought the king had more affected the Duke of</A><br>
<A NAME=1.1.2>Albany than Cornwall.</A><br>
</blockquote>
<A NAME=speech2><b>GLOUCESTER</b></a>
<blockquote>
<A NAME=1.1.3>It did always seem so to us.</A><br>
<p><i>Exit</i></p>
</blockquote>
<h3>SCENE II. The Earl of Gloucester's castle.</h3>
<blockquote><i>Enter EDMUND, with a letter</i></blockquote>
<A NAME=speech1><b>EDMUND</b></a>
<blockquote>
<A NAME=1.2.1>Thou, nature, art my goddess;</A><br>
</blockquote>
<h3>ACT II</h3>
<h3>SCENE I. GLOUCESTER's castle.</h3>
<blockquote><i>Enter EDMUND, and CURAN meets him</i></blockquote>
<A NAME=speech1><b>EDMUND</b></a>
<blockquote>
<p><i>Aside</i></p>
<A NAME=2.1.1>Save thee, Curan.</A><br>
</blockquote>
</body>
</html>`

func TestParser_Parse(t *testing.T) {
	t.Parallel()

	t.Run("splits the edition into scenes", func(t *testing.T) {
		t.Parallel()

		scenes, err := html.NewParser().Parse(strings.NewReader(edition))

		require.NoError(t, err)
		require.Len(t, scenes, 3)
		assert.Equal(t, [2]int{1, 1}, [2]int{scenes[0].Act, scenes[0].Scene})
		assert.Equal(t, [2]int{1, 2}, [2]int{scenes[1].Act, scenes[1].Scene})
		assert.Equal(t, [2]int{2, 1}, [2]int{scenes[2].Act, scenes[2].Scene})
	})

	t.Run("reads the scene heading", func(t *testing.T) {
		t.Parallel()

		scenes, err := html.NewParser().Parse(strings.NewReader(edition))
		require.NoError(t, err)

		h, ok := scenes[0].Heading()

		require.True(t, ok)
		assert.Equal(t, lear.Heading{
			Act:     "ACT I",
			Scene:   "SCENE I",
			Setting: "King Lear's palace.",
			Staging: "Enter KENT, GLOUCESTER, and EDMUND",
		}, h)
	})

	t.Run("reads speeches with their line numbers", func(t *testing.T) {
		t.Parallel()

		scenes, err := html.NewParser().Parse(strings.NewReader(edition))
		require.NoError(t, err)

		got := scenes[0].Dialogues()

		assert.Equal(t, []lear.Dialogue{
			{
				Character: "KENT", Act: 1, Scene: 1, Start: 1, Stop: 2,
				Lines: []lear.Line{
					lear.Text("I thought the king had more affected the Duke of"),
					lear.Text("Albany than Cornwall."),
				},
			},
			{
				Character: "GLOUCESTER", Act: 1, Scene: 1, Start: 3, Stop: 3,
				Lines: []lear.Line{
					lear.Text("It did always seem so to us."),
					lear.Direction("Exit"),
				},
			},
		}, got)
	})

	t.Run("keeps directions that open a speech", func(t *testing.T) {
		t.Parallel()

		scenes, err := html.NewParser().Parse(strings.NewReader(edition))
		require.NoError(t, err)

		got := scenes[2].Dialogues()

		require.Len(t, got, 1)
		assert.Equal(t, []lear.Line{lear.Direction("Aside"), lear.Text("Save thee, Curan.")}, got[0].Lines)
	})

	t.Run("rejects a speech without a blockquote", func(t *testing.T) {
		t.Parallel()

		doc := `<body><h3>ACT I</h3><h3>SCENE I. A heath.</h3><a name="speech1">KENT</a><h3>SCENE II. Elsewhere.</h3></body>`

		_, err := html.NewParser().Parse(strings.NewReader(doc))

		assert.ErrorContains(t, err, "has no blockquote")
	})

	t.Run("rejects a malformed line anchor", func(t *testing.T) {
		t.Parallel()

		doc := `<body><h3>ACT I</h3><h3>SCENE I. A heath.</h3><a name="speech1">KENT</a><blockquote><a name="1.1">Ay.</a></blockquote></body>`

		_, err := html.NewParser().Parse(strings.NewReader(doc))

		assert.ErrorContains(t, err, `line anchor "1.1"`)
	})

	t.Run("rejects a speech filed under the wrong scene", func(t *testing.T) {
		t.Parallel()

		doc := `<body><h3>ACT I</h3><h3>SCENE I. A heath.</h3><a name="speech1">KENT</a><blockquote><a name="1.2.1">Ay.</a></blockquote></body>`

		_, err := html.NewParser().Parse(strings.NewReader(doc))

		assert.ErrorContains(t, err, "found under 1.1")
	})

	t.Run("rejects a document without scenes", func(t *testing.T) {
		t.Parallel()

		_, err := html.NewParser().Parse(strings.NewReader("<p>nothing here</p>"))

		assert.ErrorContains(t, err, "no scenes")
	})
}
