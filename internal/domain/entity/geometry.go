// Package entity contains domain entities representing core business concepts.
// These entities are pure Go types with no infrastructure dependencies.
package entity

// DefaultGutter is the spacing in pixels between grid cells on the
// script-driven layout path. It matches the CSS gap of the injected grid.
const DefaultGutter = 4.0

// QuadrantCount is the number of regions in the 2x2 grid.
const QuadrantCount = 4

// Slot identifies one of the four grid positions.
type Slot int

const (
	SlotTopLeft Slot = iota
	SlotTopRight
	SlotBottomLeft
	SlotBottomRight
)

// String returns a human-readable representation of the slot.
func (s Slot) String() string {
	switch s {
	case SlotTopLeft:
		return "top-left"
	case SlotTopRight:
		return "top-right"
	case SlotBottomLeft:
		return "bottom-left"
	case SlotBottomRight:
		return "bottom-right"
	default:
		return "unknown"
	}
}

// Size is a width/height pair in logical pixels.
type Size struct {
	Width  float64
	Height float64
}

// Rect represents a region's position and size in logical pixels,
// relative to the host window's content area.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Area returns width*height. Degenerate rectangles may return zero or a
// negative value.
func (r Rect) Area() float64 {
	return r.Width * r.Height
}

// Overlaps reports whether r and o share any interior point.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// ComputeQuadrants splits a window into four equal cells with no gutter,
// in slot order. There is no bounds checking.
func ComputeQuadrants(size Size) [QuadrantCount]Rect {
	return ComputeQuadrantsWithGap(size, 0)
}

// ComputeQuadrantsWithGap splits a window into a 2x2 grid of equal cells
// separated by gap pixels, in slot order. This mirrors a CSS grid with
// two 1fr tracks per axis.
func ComputeQuadrantsWithGap(size Size, gap float64) [QuadrantCount]Rect {
	cellW := (size.Width - gap) / 2
	cellH := (size.Height - gap) / 2
	col2 := cellW + gap
	row2 := cellH + gap

	return [QuadrantCount]Rect{
		SlotTopLeft:     {X: 0, Y: 0, Width: cellW, Height: cellH},
		SlotTopRight:    {X: col2, Y: 0, Width: cellW, Height: cellH},
		SlotBottomLeft:  {X: 0, Y: row2, Width: cellW, Height: cellH},
		SlotBottomRight: {X: col2, Y: row2, Width: cellW, Height: cellH},
	}
}
