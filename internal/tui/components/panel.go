package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"audioshelf/internal/tui/design"
)

// PanelType defines the visual style of a panel
type PanelType int

const (
	PanelTypeDefault PanelType = iota
	PanelTypeError
	PanelTypeWarning
)

// Panel is a bordered box with an optional title line on top and footer
// line at the bottom of its content.
type Panel struct {
	Title   string
	Footer  string
	Content string
	Width   int
	Height  int
	Type    PanelType
}

// NewPanel creates a new panel with default settings
func NewPanel(title string) *Panel {
	return &Panel{Title: title}
}

// WithContent sets the panel content
func (p *Panel) WithContent(content string) *Panel {
	p.Content = content
	return p
}

// WithFooter sets the footer line
func (p *Panel) WithFooter(footer string) *Panel {
	p.Footer = footer
	return p
}

// WithDimensions sets the outer panel dimensions
func (p *Panel) WithDimensions(width, height int) *Panel {
	p.Width = width
	p.Height = height
	return p
}

// WithType sets the panel type for styling
func (p *Panel) WithType(panelType PanelType) *Panel {
	p.Type = panelType
	return p
}

// InnerSize is the number of columns and content rows left inside the
// border once the title and footer lines are taken.
func (p *Panel) InnerSize() (int, int) {
	style := p.style()
	w := p.Width - style.GetHorizontalFrameSize()
	h := p.Height - style.GetVerticalFrameSize()
	if p.Title != "" {
		h--
	}
	if p.Footer != "" {
		h--
	}
	return max(w, 0), max(h, 0)
}

// Render returns the styled panel, exactly Width x Height cells.
func (p *Panel) Render() string {
	style := p.style()
	innerWidth, innerHeight := p.InnerSize()
	if innerWidth == 0 || p.Height < style.GetVerticalFrameSize() {
		return ""
	}

	var lines []string
	if p.Title != "" {
		lines = append(lines, lipgloss.PlaceHorizontal(innerWidth, lipgloss.Center, design.TitleStyle.Render(p.Title)))
	}

	content := strings.Split(p.Content, "\n")
	if len(content) > innerHeight {
		content = content[:innerHeight]
	}
	for len(content) < innerHeight {
		content = append(content, "")
	}
	lines = append(lines, content...)

	if p.Footer != "" {
		lines = append(lines, lipgloss.PlaceHorizontal(innerWidth, lipgloss.Center, p.Footer))
	}

	for i, l := range lines {
		lines[i] = lipgloss.NewStyle().Inline(true).MaxWidth(innerWidth).Render(l)
	}

	return style.
		Width(p.Width - style.GetHorizontalBorderSize()).
		Render(strings.Join(lines, "\n"))
}

// style returns the border style for the panel type
func (p *Panel) style() lipgloss.Style {
	switch p.Type {
	case PanelTypeError:
		return design.PanelStyle.BorderForeground(design.ColorError)
	case PanelTypeWarning:
		return design.PanelStyle.BorderForeground(design.ColorWarning)
	default:
		return design.PanelStyle
	}
}
