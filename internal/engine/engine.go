// Package engine ties the window registry to the tiling math and exposes
// the surface hosts call: registry mutation, ordering, configuration, and
// layout calculation. An Engine is a handle with an explicit lifecycle;
// nothing survives Close.
package engine

import (
	"github.com/google/uuid"
	"github.com/mosswm/mosswm/internal/layout"
	"github.com/mosswm/mosswm/internal/wm"
)

// Engine owns the window order and the layout configuration between New
// and Close. It performs no locking; the host serializes calls.
type Engine struct {
	registry *wm.Registry
	config   layout.Config

	// generation identifies the most recent layout calculation so
	// observers can correlate applied geometry with log lines.
	generation string
}

type Option func(*Engine)

// WithConfig sets the initial layout configuration.
func WithConfig(cfg layout.Config) Option {
	return func(e *Engine) {
		e.config = cfg.Clamp()
	}
}

// WithDuplicatePolicy sets how AddWindow treats an already-registered id.
func WithDuplicatePolicy(policy wm.DuplicatePolicy) Option {
	return func(e *Engine) {
		e.registry = wm.NewRegistry(wm.WithDuplicatePolicy(policy))
	}
}

func New(opts ...Option) *Engine {
	e := &Engine{
		registry: wm.NewRegistry(),
		config:   layout.DefaultConfig,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Close releases the registry. Operations on a closed engine return zero
// values until the handle is replaced.
func (e *Engine) Close() {
	e.registry = nil
}

func (e *Engine) closed() bool {
	return e.registry == nil
}

// AddWindow registers w, copying the record. It reports whether the
// registry changed.
func (e *Engine) AddWindow(w wm.Window) bool {
	if e.closed() {
		return false
	}
	return e.registry.Add(w)
}

// RemoveWindow reports whether a window was removed.
func (e *Engine) RemoveWindow(id uint64) bool {
	if e.closed() {
		return false
	}
	return e.registry.Remove(id)
}

func (e *Engine) WindowCount() int {
	if e.closed() {
		return 0
	}
	return e.registry.Count()
}

func (e *Engine) WindowIDAt(index int) (uint64, error) {
	if e.closed() {
		return 0, wm.ErrOutOfRange
	}
	return e.registry.IDAt(index)
}

// WindowIndexOf returns -1 when id is not registered.
func (e *Engine) WindowIndexOf(id uint64) int {
	if e.closed() {
		return -1
	}
	return e.registry.IndexOf(id)
}

func (e *Engine) SwapWindows(i, j int) error {
	if e.closed() {
		return wm.ErrOutOfRange
	}
	return e.registry.Swap(i, j)
}

func (e *Engine) MoveWindowToFront(id uint64) bool {
	if e.closed() {
		return false
	}
	return e.registry.MoveToFront(id)
}

func (e *Engine) SetFloating(id uint64, floating bool) bool {
	if e.closed() {
		return false
	}
	return e.registry.SetFloating(id, floating)
}

// SetLayoutConfig replaces the layout configuration. Out-of-range values
// are clamped, not rejected.
func (e *Engine) SetLayoutConfig(gaps, padding, masterRatio float64) {
	e.config = layout.Config{Gaps: gaps, Padding: padding, MasterRatio: masterRatio}.Clamp()
}

func (e *Engine) LayoutConfig() layout.Config {
	return e.config
}

// Windows returns a snapshot of the registry order.
func (e *Engine) Windows() []wm.Window {
	if e.closed() {
		return nil
	}
	return e.registry.Windows()
}

func (e *Engine) Window(id uint64) (wm.Window, bool) {
	if e.closed() {
		return wm.Window{}, false
	}
	return e.registry.Window(id)
}

// RequiredCommands returns how many commands the next CalculateLayout
// would produce, so hosts can size their buffers.
func (e *Engine) RequiredCommands() int {
	if e.closed() {
		return 0
	}
	return len(e.registry.TilingIDs())
}

// ComputeLayout returns the full command list for screen: one command per
// non-floating window in registry order. Each command's frame is also
// recorded on the window so its last-known geometry stays current.
func (e *Engine) ComputeLayout(screen layout.Rect) []layout.Command {
	if e.closed() {
		return nil
	}

	cmds := layout.Compute(screen, e.registry.TilingIDs(), e.config)
	for _, cmd := range cmds {
		e.registry.SetFrame(cmd.WindowID, cmd.Frame)
	}
	e.generation = uuid.NewString()
	return cmds
}

// CalculateLayout writes the command list into out, truncating silently
// when the buffer is too small, and returns the number written. Size out
// with RequiredCommands to avoid truncation.
func (e *Engine) CalculateLayout(screen layout.Rect, out []layout.Command) int {
	return layout.WriteInto(e.ComputeLayout(screen), out)
}

// Generation identifies the most recent layout calculation.
func (e *Engine) Generation() string {
	return e.generation
}

// DebugWindows returns a human-readable dump of the registry order.
func (e *Engine) DebugWindows() string {
	if e.closed() {
		return ""
	}
	return e.registry.Dump()
}
