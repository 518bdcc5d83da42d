package terminal

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/rios0rios0/upgradeselect/internal/domain/repositories"
)

// ColorPalette implements repositories.Palette with lipgloss styles. The
// styles are bound to a renderer for the output stream, so a stream that is
// not a terminal gets plain text.
type ColorPalette struct {
	header  lipgloss.Style
	index   lipgloss.Style
	name    lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
}

var _ repositories.Palette = (*ColorPalette)(nil)

// NewStdColorPalette creates a palette for the stream the console writes to.
func NewStdColorPalette() repositories.Palette {
	return NewColorPalette(os.Stderr)
}

// NewColorPalette creates a palette whose colour support follows out.
func NewColorPalette(out io.Writer) *ColorPalette {
	renderer := lipgloss.NewRenderer(out)
	return NewColorPaletteWithRenderer(renderer)
}

// NewColorPaletteWithRenderer creates a palette on an existing renderer.
func NewColorPaletteWithRenderer(renderer *lipgloss.Renderer) *ColorPalette {
	green := lipgloss.Color("10")
	return &ColorPalette{
		header:  renderer.NewStyle().Foreground(lipgloss.Color("12")),
		index:   renderer.NewStyle().Foreground(green).Background(lipgloss.Color("0")),
		name:    renderer.NewStyle().Foreground(green),
		success: renderer.NewStyle().Foreground(green),
		failure: renderer.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

func (p *ColorPalette) Header(text string) string  { return p.header.Render(text) }
func (p *ColorPalette) Index(text string) string   { return p.index.Render(text) }
func (p *ColorPalette) Name(text string) string    { return p.name.Render(text) }
func (p *ColorPalette) Success(text string) string { return p.success.Render(text) }
func (p *ColorPalette) Failure(text string) string { return p.failure.Render(text) }
