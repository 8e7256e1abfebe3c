package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"transformer-calc/internal/ratings"
)

var (
	accent = lipgloss.Color("#E67E22")
	muted  = lipgloss.Color("#6B7280")

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(accent)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
	labelStyle  = lipgloss.NewStyle().Padding(0, 1)
)

// PrintTable renders one rating table with a title line.
func PrintTable(w io.Writer, name ratings.TableName) error {
	info, ok := ratings.TableInfo(name)
	if !ok {
		return fmt.Errorf("unknown table %q", name)
	}

	rows := make([][]string, 0)
	for _, r := range ratings.Category(name) {
		rows = append(rows, r.Cells())
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(muted)).
		Headers(info.Headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case name == ratings.PowerTransformersTable && col == 1:
				return labelStyle
			}
			return cellStyle
		})

	fmt.Fprintln(w, titleStyle.Render(info.Title))
	fmt.Fprintln(w, t.Render())
	return nil
}
