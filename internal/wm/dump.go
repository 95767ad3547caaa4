package wm

import "github.com/k0kubun/pp/v3"

var dump = func() *pp.PrettyPrinter {
	p := pp.New()
	p.SetColoringEnabled(false)
	return p
}()

// Dump renders the current registry order for humans. Informational
// only; hosts must not parse it.
func (r *Registry) Dump() string {
	return DumpWindows(r.windows)
}

// DumpWindows renders a window snapshot the same way Dump does.
func DumpWindows(windows []Window) string {
	return dump.Sprint(windows)
}
