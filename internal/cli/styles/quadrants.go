package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/quadchat/internal/domain/entity"
)

// QuadrantRenderer renders target tables and quadrant geometry.
type QuadrantRenderer struct {
	theme *Theme
}

// NewQuadrantRenderer creates a new quadrant renderer with the given theme.
func NewQuadrantRenderer(theme *Theme) *QuadrantRenderer {
	return &QuadrantRenderer{theme: theme}
}

// RenderTargets renders one target table under a heading.
func (r *QuadrantRenderer) RenderTargets(heading string, targets [entity.QuadrantCount]entity.ChatTarget, viewID func(i int) string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	tbl := NewStyledTable(r.theme, TargetTableColumns(), TargetRows(targets, viewID))

	return fmt.Sprintf("\n  %s %s\n\n%s\n", iconStyle.Render(IconGlobe), r.theme.Title.Render(heading), indent(tbl.View()))
}

// RenderGeometry renders the four rectangles computed for size and gap.
func (r *QuadrantRenderer) RenderGeometry(size entity.Size, gap float64, rects [entity.QuadrantCount]entity.Rect) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	heading := fmt.Sprintf("%sx%s", formatPixels(size.Width), formatPixels(size.Height))
	detail := r.theme.BadgeMuted.Render("no gutter")
	if gap > 0 {
		detail = r.theme.Badge.Render("gap " + formatPixels(gap) + "px")
	}
	tbl := NewStyledTable(r.theme, GeometryTableColumns(), GeometryRows(rects))

	return fmt.Sprintf("\n  %s %s %s\n\n%s\n",
		iconStyle.Render(IconGrid),
		r.theme.Title.Render(heading),
		detail,
		indent(tbl.View()),
	)
}

func indent(block string) string {
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = "  " + line
	}
	return strings.Join(lines, "\n")
}
