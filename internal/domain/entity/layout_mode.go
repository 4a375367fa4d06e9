package entity

// LayoutMode selects how the quadrant views are built at startup.
type LayoutMode string

const (
	// LayoutModeScript injects the grid script and provisions views from
	// the positions the page reports back.
	LayoutModeScript LayoutMode = "script"
	// LayoutModeDirect builds the views at computed coordinates.
	LayoutModeDirect LayoutMode = "direct"
)

// Valid reports whether m is a known mode.
func (m LayoutMode) Valid() bool {
	return m == LayoutModeScript || m == LayoutModeDirect
}
