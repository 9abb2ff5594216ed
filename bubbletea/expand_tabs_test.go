package bubbletea_test

import (
	"testing"

	"github.com/kyle-silver/lear/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestExpandTabs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		startCol int
		expected string
	}{
		{
			name:     "no tabs",
			input:    "Ripeness is all",
			expected: "Ripeness is all",
		},
		{
			name:     "indented verse line",
			input:    "\tMen must endure",
			expected: "        Men must endure",
		},
		{
			name:     "tab after text stops at the next column",
			input:    "abc\tdef",
			expected: "abc     def",
		},
		{
			name:     "two tabs",
			input:    "\t\t",
			expected: "                ",
		},
		{
			name:     "startCol shortens the first tab",
			input:    "\t",
			startCol: 3,
			expected: "     ",
		},
		{
			name:     "wide character counts two columns",
			input:    "日\t",
			expected: "日      ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, bubbletea.ExpandTabs(tt.input, tt.startCol))
		})
	}
}
