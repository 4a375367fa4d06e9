package entity

import "fmt"

// QuadrantPosition is a region's measured rectangle as reported by the
// hosted page. It is consumed once by webview provisioning.
type QuadrantPosition struct {
	ID     string  `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Rect returns the position's geometry.
func (p QuadrantPosition) Rect() Rect {
	return Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

// QuadrantID returns the DOM id used by the layout script for a slot.
func QuadrantID(slot Slot) string {
	return fmt.Sprintf("quadrant%d", int(slot)+1)
}

// PositionsFromRects builds position records for rects in slot order.
func PositionsFromRects(rects [QuadrantCount]Rect) []QuadrantPosition {
	positions := make([]QuadrantPosition, 0, QuadrantCount)
	for i, r := range rects {
		positions = append(positions, QuadrantPosition{
			ID:     QuadrantID(Slot(i)),
			X:      r.X,
			Y:      r.Y,
			Width:  r.Width,
			Height: r.Height,
		})
	}
	return positions
}

// QuadURLs carries four addresses for the load-urls event.
// Values are passed through untouched.
type QuadURLs struct {
	URL1 string `json:"url1"`
	URL2 string `json:"url2"`
	URL3 string `json:"url3"`
	URL4 string `json:"url4"`
}

// List returns the URLs in slot order.
func (q QuadURLs) List() [QuadrantCount]string {
	return [QuadrantCount]string{q.URL1, q.URL2, q.URL3, q.URL4}
}
