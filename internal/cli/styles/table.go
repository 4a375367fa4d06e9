package styles

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/quadchat/internal/domain/entity"
)

// NewStyledTable creates a themed, unfocused table model. Its View is
// printed once; no program drives it.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithWidth(tableWidth(columns)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	s.Selected = s.Cell.
		Foreground(theme.Text)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	// Header plus its bottom border.
	t.SetHeight(len(rows) + 2)
	return t
}

func tableWidth(columns []table.Column) int {
	w := 0
	for _, c := range columns {
		w += c.Width + 2
	}
	return w
}

// TargetTableColumns returns columns for a chat target table.
func TargetTableColumns() []table.Column {
	return []table.Column{
		{Title: "Slot", Width: 13},
		{Title: "View", Width: 10},
		{Title: "Title", Width: 12},
		{Title: "URL", Width: 38},
	}
}

// TargetRows converts a target table to rows, naming views with viewID.
func TargetRows(targets [entity.QuadrantCount]entity.ChatTarget, viewID func(i int) string) []table.Row {
	rows := make([]table.Row, 0, len(targets))
	for i, target := range targets {
		rows = append(rows, table.Row{entity.Slot(i).String(), viewID(i), target.Title, target.URL})
	}
	return rows
}

// GeometryTableColumns returns columns for a quadrant rectangle table.
func GeometryTableColumns() []table.Column {
	return []table.Column{
		{Title: "Slot", Width: 13},
		{Title: "X", Width: 8},
		{Title: "Y", Width: 8},
		{Title: "Width", Width: 8},
		{Title: "Height", Width: 8},
	}
}

// GeometryRows converts quadrant rectangles to rows.
func GeometryRows(rects [entity.QuadrantCount]entity.Rect) []table.Row {
	rows := make([]table.Row, 0, len(rects))
	for i, r := range rects {
		rows = append(rows, table.Row{
			entity.Slot(i).String(),
			formatPixels(r.X),
			formatPixels(r.Y),
			formatPixels(r.Width),
			formatPixels(r.Height),
		})
	}
	return rows
}

func formatPixels(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
