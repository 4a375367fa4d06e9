package port

//go:generate mockgen -source=registry.go -destination=mocks/mock_registry.go -package=mocks

// MainWindowLabel is the label of the window created at startup.
const MainWindowLabel = "main"

// ViewRegistry owns every window and child view created by the process.
// It is created at startup, passed explicitly to whoever needs it, and
// torn down at exit.
type ViewRegistry interface {
	// RegisterWindow adds a host window under its label.
	RegisterWindow(window HostWindow) error
	// Window looks up a host window by label.
	Window(label string) (HostWindow, bool)
	// UnregisterWindow removes a window and forgets its children.
	UnregisterWindow(label string)
	// RegisterChild records a child view under its parent's label.
	RegisterChild(parentLabel string, child ChildView) error
	// Child looks up a registered child of the parent by id.
	Child(parentLabel, id string) (ChildView, bool)
	// Children returns the parent's children in registration order.
	Children(parentLabel string) []ChildView
}
