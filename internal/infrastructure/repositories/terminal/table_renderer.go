package terminal

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/rios0rios0/upgradeselect/internal/domain/repositories"
)

// TableRenderer implements repositories.TableRenderer as an ASCII-bordered
// lipgloss table. Cell widths ignore ANSI sequences, so decorated cells line up.
type TableRenderer struct {
	cell lipgloss.Style
}

var _ repositories.TableRenderer = (*TableRenderer)(nil)

// NewTableRenderer creates a renderer with one space of padding per cell.
func NewTableRenderer() repositories.TableRenderer {
	return &TableRenderer{
		cell: lipgloss.NewStyle().Padding(0, 1),
	}
}

func (r *TableRenderer) Render(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.ASCIIBorder()).
		StyleFunc(func(_, _ int) lipgloss.Style { return r.cell }).
		Headers(headers...).
		Rows(rows...).
		String()
}
