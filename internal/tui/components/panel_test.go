package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestPanel_Render_EdgeCases(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		height  int
		title   string
		content string
	}{
		{
			name:    "zero dimensions",
			title:   "Test Panel",
			content: "This is test content",
		},
		{
			name:    "negative dimensions",
			width:   -10,
			height:  -5,
			title:   "Test Panel",
			content: "This is test content",
		},
		{
			name:    "very small dimensions",
			width:   1,
			height:  1,
			title:   "Test Panel",
			content: "This is test content",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			panel := NewPanel(tt.title).
				WithContent(tt.content).
				WithDimensions(tt.width, tt.height)

			assert.NotPanics(t, func() {
				assert.Empty(t, panel.Render())
			})
		})
	}
}

func TestPanel_Render_ExactSize(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		height  int
		footer  string
		content string
	}{
		{"empty content", 40, 10, "", ""},
		{"very long content", 20, 5, "", strings.Repeat("This is a very long line that should be truncated. ", 10)},
		{"multiline content exceeding height", 30, 6, "footer", "Line 1\nLine 2\nLine 3\nLine 4\nLine 5\nLine 6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			panel := NewPanel("Test Panel").
				WithContent(tt.content).
				WithFooter(tt.footer).
				WithDimensions(tt.width, tt.height)

			out := panel.Render()
			assert.Equal(t, tt.width, lipgloss.Width(out))
			assert.Equal(t, tt.height, lipgloss.Height(out))
		})
	}
}

func TestPanel_InnerSize(t *testing.T) {
	w, h := NewPanel("title").WithFooter("keys").WithDimensions(30, 10).InnerSize()
	assert.Equal(t, 26, w)
	assert.Equal(t, 6, h)

	w, h = NewPanel("").WithDimensions(30, 10).InnerSize()
	assert.Equal(t, 26, w)
	assert.Equal(t, 8, h)
}

func TestPanel_TypeDoesNotChangeSize(t *testing.T) {
	base := NewPanel("t").WithContent("x").WithDimensions(20, 4)
	errPanel := NewPanel("t").WithContent("x").WithDimensions(20, 4).WithType(PanelTypeError)

	assert.Equal(t, lipgloss.Width(base.Render()), lipgloss.Width(errPanel.Render()))
	assert.Equal(t, lipgloss.Height(base.Render()), lipgloss.Height(errPanel.Render()))
}
