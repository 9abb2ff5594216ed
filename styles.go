package lear

// ColorPair represents a foreground and background color combination.
// Colors should be hex strings in "#RRGGBB" format (e.g., "#ff0000" for red).
// Empty strings are valid and indicate no color override (use terminal default).
type ColorPair struct {
	Foreground string
	Background string
}

// Styles contains color pairs for all visual elements of a passage.
type Styles struct {
	Heading   ColorPair // Act and scene label
	Setting   ColorPair // Scene setting line
	Staging   ColorPair // Opening stage directions of a scene
	Character ColorPair // Speaker name above a dialogue block
	Text      ColorPair // Spoken lines
	Direction ColorPair // Stage directions inside dialogue
	Citation  ColorPair // Trailing (Lr. act.scene.start-stop)
	Rule      ColorPair // Separators in the table of contents
	StatusBar ColorPair // Pager status bar
}

// Theme provides styles for rendering passages.
// Different implementations can provide light/dark variants.
type Theme interface {
	Styles() Styles
}
