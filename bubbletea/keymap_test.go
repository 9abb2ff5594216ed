package bubbletea_test

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kyle-silver/lear/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestDefaultKeyMap(t *testing.T) {
	t.Parallel()

	km := bubbletea.DefaultKeyMap()
	runes := func(r rune) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}} }

	tests := []struct {
		name    string
		msg     tea.KeyMsg
		binding key.Binding
	}{
		{"k scrolls up", runes('k'), km.Up},
		{"arrow up scrolls up", tea.KeyMsg{Type: tea.KeyUp}, km.Up},
		{"j scrolls down", runes('j'), km.Down},
		{"arrow down scrolls down", tea.KeyMsg{Type: tea.KeyDown}, km.Down},
		{"b pages up", runes('b'), km.PageUp},
		{"f pages down", runes('f'), km.PageDown},
		{"ctrl+u half pages up", tea.KeyMsg{Type: tea.KeyCtrlU}, km.HalfPageUp},
		{"ctrl+d half pages down", tea.KeyMsg{Type: tea.KeyCtrlD}, km.HalfPageDown},
		{"g starts go to top", runes('g'), km.GotoTop},
		{"G goes to bottom", runes('G'), km.GotoBottom},
		{"q quits", runes('q'), km.Quit},
		{"esc quits", tea.KeyMsg{Type: tea.KeyEsc}, km.Quit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, km.Quit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.True(t, key.Matches(tt.msg, tt.binding))
		})
	}
}

func TestKeyMap_ShortHelp(t *testing.T) {
	t.Parallel()

	for _, b := range bubbletea.DefaultKeyMap().ShortHelp() {
		assert.NotEmpty(t, b.Help().Key)
		assert.NotEmpty(t, b.Help().Desc)
	}
}
