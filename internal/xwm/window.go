package xwm

import (
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	"github.com/mosswm/mosswm/internal/layout"
	"github.com/mosswm/mosswm/internal/xcursor"
)

type Root struct {
	WID    xproto.Window
	Width  uint16
	Height uint16
}

// Rect returns the root geometry as a screen rectangle.
func (r Root) Rect() layout.Rect {
	return layout.Rect{X: 0, Y: 0, W: float64(r.Width), H: float64(r.Height)}
}

// SetupRoot claims window management on the default screen's root window.
// Fails if another window manager is already running.
func SetupRoot(conn *xgb.Conn) (Root, error) {
	screen := xproto.Setup(conn).DefaultScreen(conn)

	cursor, err := xcursor.CreateCursor(conn, xcursor.LeftPtr)
	if err != nil {
		return Root{}, err
	}

	if err := xproto.ChangeWindowAttributesChecked(conn, screen.Root,
		xproto.CwEventMask|xproto.CwCursor,
		[]uint32{
			xproto.EventMaskSubstructureRedirect |
				xproto.EventMaskSubstructureNotify |
				xproto.EventMaskStructureNotify |
				xproto.EventMaskKeyPress |
				xproto.EventMaskButtonPress,
			uint32(cursor),
		}).Check(); err != nil {
		return Root{}, err
	}

	return Root{
		WID:    screen.Root,
		Width:  screen.WidthInPixels,
		Height: screen.HeightInPixels,
	}, nil
}

// ConfigureWindow moves and resizes a client window to frame.
func ConfigureWindow(conn *xgb.Conn, wid xproto.Window, frame layout.Rect) error {
	return xproto.ConfigureWindowChecked(conn, wid,
		xproto.ConfigWindowX|xproto.ConfigWindowY|xproto.ConfigWindowWidth|xproto.ConfigWindowHeight,
		[]uint32{uint32(int16(frame.X)), uint32(int16(frame.Y)), uint32(uint16(frame.W)), uint32(uint16(frame.H))}).
		Check()
}

// MapWindow shows a client window.
func MapWindow(conn *xgb.Conn, wid xproto.Window) error {
	return xproto.MapWindowChecked(conn, wid).Check()
}

// FocusWindow gives wid input focus.
func FocusWindow(conn *xgb.Conn, wid xproto.Window) error {
	return xproto.SetInputFocusChecked(conn, xproto.InputFocusPointerRoot, wid, xproto.TimeCurrentTime).Check()
}

// WindowGeometry returns the client's current frame.
func WindowGeometry(conn *xgb.Conn, wid xproto.Window) (layout.Rect, error) {
	geom, err := xproto.GetGeometry(conn, xproto.Drawable(wid)).Reply()
	if err != nil {
		return layout.Rect{}, err
	}
	return layout.Rect{
		X: float64(geom.X),
		Y: float64(geom.Y),
		W: float64(geom.Width),
		H: float64(geom.Height),
	}, nil
}

// WindowClass returns the client's application name from WM_CLASS.
func WindowClass(conn *xgb.Conn, wid xproto.Window) string {
	return windowProperty(conn, wid, xproto.AtomWmClass)
}

// WindowName returns the client's title from WM_NAME.
func WindowName(conn *xgb.Conn, wid xproto.Window) string {
	return windowProperty(conn, wid, xproto.AtomWmName)
}

func windowProperty(conn *xgb.Conn, wid xproto.Window, atom xproto.Atom) string {
	prop, err := xproto.GetProperty(conn, false, wid, atom, xproto.AtomString, 0, 256).Reply()
	if err != nil || prop == nil {
		return ""
	}

	value := prop.Value
	// WM_CLASS is two NUL-terminated strings; take the first.
	for i, b := range value {
		if b == 0 {
			value = value[:i]
			break
		}
	}
	return string(value)
}
