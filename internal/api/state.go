package api

import (
	"context"
	"sync"

	"github.com/mosswm/mosswm/internal/bus"
	"github.com/mosswm/mosswm/internal/layout"
	"github.com/mosswm/mosswm/internal/wm"
)

// State is a read-only snapshot of the host, kept current through bus
// events so HTTP handlers never touch the engine directly.
type State struct {
	mu         sync.RWMutex
	windows    []wm.Window
	lastLayout bus.LayoutApplied
}

// NewState subscribes a snapshot cache to the bus.
func NewState() *State {
	s := &State{}

	bus.Subscribe("api.State", func(ctx context.Context, event bus.WindowsChanged) error {
		s.mu.Lock()
		s.windows = event.Windows
		s.mu.Unlock()
		return nil
	})
	bus.Subscribe("api.State", func(ctx context.Context, event bus.LayoutApplied) error {
		s.mu.Lock()
		s.lastLayout = event
		s.mu.Unlock()
		return nil
	})

	return s
}

func (s *State) Windows() []wm.Window {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.windows
}

func (s *State) LastLayout() (string, layout.Rect, []layout.Command) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastLayout.Generation, s.lastLayout.Screen, s.lastLayout.Commands
}

func (s *State) Dump() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return wm.DumpWindows(s.windows)
}
