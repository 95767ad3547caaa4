// Package wm owns the ordered set of managed windows. Order encodes
// tiling priority: index 0 is the master slot.
package wm

import (
	"errors"
	"slices"

	"github.com/mosswm/mosswm/internal/layout"
)

// ErrOutOfRange is returned when an index does not correspond to a
// current registry position.
var ErrOutOfRange = errors.New("window index out of range")

type Window struct {
	ID       uint64      `json:"id"`
	App      string      `json:"app"`
	Title    string      `json:"title"`
	Frame    layout.Rect `json:"frame"`
	Floating bool        `json:"floating"`
}

// DuplicatePolicy decides what Add does when the id is already registered.
type DuplicatePolicy int

const (
	// ReplaceInPlace overwrites the existing record without changing
	// its position. This is the default.
	ReplaceInPlace DuplicatePolicy = iota
	// Reject leaves the existing record untouched.
	Reject
	// MoveToEnd replaces the record and demotes it to the end of the order.
	MoveToEnd
)

type Option func(*Registry)

func WithDuplicatePolicy(policy DuplicatePolicy) Option {
	return func(r *Registry) {
		r.duplicates = policy
	}
}

// Registry is an ordered sequence of windows with unique ids. It does no
// locking of its own; callers serialize access.
type Registry struct {
	windows    []Window
	duplicates DuplicatePolicy
}

func NewRegistry(opts ...Option) *Registry {
	r := &Registry{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Add appends w to the end of the order. An already-registered id is
// handled per the registry's duplicate policy; Add reports whether the
// registry changed.
func (r *Registry) Add(w Window) bool {
	idx := r.IndexOf(w.ID)
	if idx == -1 {
		r.windows = append(r.windows, w)
		return true
	}

	switch r.duplicates {
	case Reject:
		return false
	case MoveToEnd:
		r.windows = append(slices.Delete(r.windows, idx, idx+1), w)
	default:
		r.windows[idx] = w
	}
	return true
}

// Remove deletes the window with the given id, preserving the relative
// order of the rest. It reports whether a removal occurred.
func (r *Registry) Remove(id uint64) bool {
	idx := r.IndexOf(id)
	if idx == -1 {
		return false
	}
	r.windows = slices.Delete(r.windows, idx, idx+1)
	return true
}

func (r *Registry) Count() int {
	return len(r.windows)
}

// IDAt returns the id at the given position.
func (r *Registry) IDAt(index int) (uint64, error) {
	if index < 0 || index >= len(r.windows) {
		return 0, ErrOutOfRange
	}
	return r.windows[index].ID, nil
}

// IndexOf returns the position of id, or -1 if it is not registered.
func (r *Registry) IndexOf(id uint64) int {
	return slices.IndexFunc(r.windows, func(w Window) bool { return w.ID == id })
}

// Swap exchanges the windows at positions i and j. Swapping an index
// with itself is a valid no-op.
func (r *Registry) Swap(i, j int) error {
	if i < 0 || i >= len(r.windows) || j < 0 || j >= len(r.windows) {
		return ErrOutOfRange
	}
	r.windows[i], r.windows[j] = r.windows[j], r.windows[i]
	return nil
}

// MoveToFront relocates id to position 0, shifting the windows before it
// down by one. It reports whether the window was found.
func (r *Registry) MoveToFront(id uint64) bool {
	idx := r.IndexOf(id)
	if idx == -1 {
		return false
	}
	if idx > 0 {
		w := r.windows[idx]
		copy(r.windows[1:idx+1], r.windows[:idx])
		r.windows[0] = w
	}
	return true
}

// Window returns the record for id.
func (r *Registry) Window(id uint64) (Window, bool) {
	idx := r.IndexOf(id)
	if idx == -1 {
		return Window{}, false
	}
	return r.windows[idx], true
}

// SetFrame records the last-known frame for id.
func (r *Registry) SetFrame(id uint64, frame layout.Rect) bool {
	idx := r.IndexOf(id)
	if idx == -1 {
		return false
	}
	r.windows[idx].Frame = frame
	return true
}

// SetFloating toggles the tiling exemption for id.
func (r *Registry) SetFloating(id uint64, floating bool) bool {
	idx := r.IndexOf(id)
	if idx == -1 {
		return false
	}
	r.windows[idx].Floating = floating
	return true
}

// Windows returns a copy of the current order.
func (r *Registry) Windows() []Window {
	return slices.Clone(r.windows)
}

// TilingIDs returns the ids of the non-floating windows in registry order.
func (r *Registry) TilingIDs() []uint64 {
	ids := make([]uint64, 0, len(r.windows))
	for _, w := range r.windows {
		if !w.Floating {
			ids = append(ids, w.ID)
		}
	}
	return ids
}
