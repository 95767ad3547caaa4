package bus

import (
	"github.com/mosswm/mosswm/internal/layout"
	"github.com/mosswm/mosswm/internal/wm"
)

// WindowManaged is published when a window enters the registry.
type WindowManaged struct {
	ID       uint64
	App      string
	Title    string
	Floating bool
}

// WindowUnmanaged is published when a window leaves the registry.
type WindowUnmanaged struct {
	ID uint64
}

// WindowsChanged carries a full registry snapshot after every render.
type WindowsChanged struct {
	Windows []wm.Window
}

// LayoutApplied is published after the host applies computed geometry.
type LayoutApplied struct {
	Generation string
	Screen     layout.Rect
	Commands   []layout.Command
}
