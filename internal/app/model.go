// Package app is the X11 host: it watches client windows come and go,
// mutates the engine's registry, and applies the computed geometry.
package app

import (
	"context"
	"log/slog"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	"github.com/mosswm/mosswm/internal/bus"
	"github.com/mosswm/mosswm/internal/config"
	"github.com/mosswm/mosswm/internal/engine"
	"github.com/mosswm/mosswm/internal/wm"
	"github.com/mosswm/mosswm/internal/xwm"
)

type Model struct {
	Store  config.Store
	Engine *engine.Engine

	Root    xwm.Root
	Focused uint64
}

func (m Model) Init(ctx context.Context, conn *xgb.Conn) (xwm.Model, xwm.Cmd) {
	root, err := xwm.SetupRoot(conn)
	if err != nil {
		return m, xwm.Error(err)
	}
	m.Root = root

	cfg, err := m.Store.GetConfig()
	if err != nil {
		return m, xwm.Error(err)
	}

	lc := cfg.LayoutConfig()
	m.Engine.SetLayoutConfig(lc.Gaps, lc.Padding, lc.MasterRatio)

	return m, nil
}

func (m Model) Update(ctx context.Context, conn *xgb.Conn, msg xwm.Msg) (xwm.Model, xwm.Cmd) {
	switch ev := msg.(type) {
	case xproto.ConfigureNotifyEvent:
		slog.Debug("ConfigureNotifyEvent", "event", ev.String())

		if ev.Window == m.Root.WID {
			m.Root.Width = ev.Width
			m.Root.Height = ev.Height
		}

		return m, nil
	case xproto.MapRequestEvent:
		slog.Debug("MapRequestEvent", "window", ev.Window)

		return m.manage(conn, ev.Window)
	case xproto.ConfigureRequestEvent:
		// Grant configure requests for windows the engine does not tile;
		// tiled windows get their geometry from Render.
		if w, ok := m.Engine.Window(uint64(ev.Window)); !ok || w.Floating {
			xproto.ConfigureWindow(conn, ev.Window,
				xproto.ConfigWindowX|xproto.ConfigWindowY|xproto.ConfigWindowWidth|xproto.ConfigWindowHeight,
				[]uint32{uint32(ev.X), uint32(ev.Y), uint32(ev.Width), uint32(ev.Height)})
		}

		return m, nil
	case xproto.DestroyNotifyEvent:
		slog.Debug("DestroyNotifyEvent", "window", ev.Window)

		return m.unmanage(uint64(ev.Window)), nil
	case xproto.UnmapNotifyEvent:
		slog.Debug("UnmapNotifyEvent", "window", ev.Window)

		return m.unmanage(uint64(ev.Window)), nil
	case xproto.ButtonPressEvent:
		slog.Debug("ButtonPressEvent", "detail", ev.String())

		if ev.Child == 0 {
			return m, nil
		}

		id := uint64(ev.Child)
		if m.Engine.MoveWindowToFront(id) {
			m.Focused = id
			return m, func(ctx context.Context, conn *xgb.Conn) error {
				return xwm.FocusWindow(conn, ev.Child)
			}
		}

		return m, nil
	case xproto.KeyPressEvent:
		slog.Debug("KeyPressEvent", "detail", ev.String())

		switch ev.Detail {
		case 24: // q
			slog.Debug("exit: quit key pressed")
			return m, xwm.Quit
		case 36: // <return>
			m.Engine.MoveWindowToFront(m.Focused)
			return m, nil
		case 65: // <space>
			if w, ok := m.Engine.Window(m.Focused); ok {
				m.Engine.SetFloating(m.Focused, !w.Floating)
			}
			return m, nil
		case 113: // <left>
			return m.swapFocused(-1), nil
		case 114: // <right>
			return m.swapFocused(1), nil
		default:
			return m, nil
		}
	case SetLayoutConfigMsg:
		m.Engine.SetLayoutConfig(ev.Gaps, ev.Padding, ev.MasterRatio)

		err := m.Store.UpdateConfig(func(cfg config.Config) (config.Config, error) {
			lc := m.Engine.LayoutConfig()
			cfg.Layout = config.Layout{Gaps: lc.Gaps, Padding: lc.Padding, MasterRatio: lc.MasterRatio}
			return cfg, nil
		})
		if err != nil {
			slog.Error("Failed to persist layout config", "error", err)
		}

		return m, nil
	case MoveToFrontMsg:
		m.Engine.MoveWindowToFront(ev.ID)
		return m, nil
	case SwapMsg:
		if err := m.Engine.SwapWindows(ev.I, ev.J); err != nil {
			slog.Debug("swap out of range", "i", ev.I, "j", ev.J)
		}
		return m, nil
	case SetFloatingMsg:
		m.Engine.SetFloating(ev.ID, ev.Floating)
		return m, nil
	case error:
		slog.Debug("X error", "error", ev)
		return m, nil
	default:
		slog.Debug("unknown event", "event", ev)
		return m, nil
	}
}

func (m Model) Render(ctx context.Context, conn *xgb.Conn) error {
	cmds := m.Engine.ComputeLayout(m.Root.Rect())
	for _, cmd := range cmds {
		if err := xwm.ConfigureWindow(conn, xproto.Window(cmd.WindowID), cmd.Frame); err != nil {
			slog.Error("Failed to configure window", "window", cmd.WindowID, "error", err)
		}
	}

	bus.Publish(bus.LayoutApplied{
		Generation: m.Engine.Generation(),
		Screen:     m.Root.Rect(),
		Commands:   cmds,
	})
	bus.Publish(bus.WindowsChanged{Windows: m.Engine.Windows()})

	return nil
}

func (m Model) manage(conn *xgb.Conn, wid xproto.Window) (xwm.Model, xwm.Cmd) {
	attrs, err := xproto.GetWindowAttributes(conn, wid).Reply()
	if err == nil && attrs.OverrideRedirect {
		return m, nil
	}

	cfg, err := m.Store.GetConfig()
	if err != nil {
		return m, xwm.Error(err)
	}

	app := xwm.WindowClass(conn, wid)
	title := xwm.WindowName(conn, wid)
	frame, err := xwm.WindowGeometry(conn, wid)
	if err != nil {
		slog.Debug("Failed to get geometry", "window", wid, "error", err)
	}

	window := wm.Window{
		ID:       uint64(wid),
		App:      app,
		Title:    title,
		Frame:    frame,
		Floating: cfg.Floats(app),
	}
	m.Engine.AddWindow(window)
	m.Focused = window.ID

	bus.Publish(bus.WindowManaged{
		ID:       window.ID,
		App:      window.App,
		Title:    window.Title,
		Floating: window.Floating,
	})

	return m, func(ctx context.Context, conn *xgb.Conn) error {
		return xwm.MapWindow(conn, wid)
	}
}

func (m Model) unmanage(id uint64) Model {
	if !m.Engine.RemoveWindow(id) {
		return m
	}

	if m.Focused == id {
		m.Focused = 0
		if first, err := m.Engine.WindowIDAt(0); err == nil {
			m.Focused = first
		}
	}

	bus.Publish(bus.WindowUnmanaged{ID: id})

	return m
}

// swapFocused exchanges the focused window with its neighbor in the
// registry order.
func (m Model) swapFocused(dir int) Model {
	idx := m.Engine.WindowIndexOf(m.Focused)
	if idx == -1 {
		return m
	}

	if err := m.Engine.SwapWindows(idx, idx+dir); err != nil {
		slog.Debug("swap out of range", "index", idx, "dir", dir)
	}

	return m
}
