// Package layout computes master/stack tiling geometry. It is pure math
// over its own types; callers adapt window records to ordered ids.
package layout

type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Command pairs a window id with the frame it should occupy.
type Command struct {
	WindowID uint64 `json:"window_id"`
	Frame    Rect   `json:"frame"`
}

const (
	ratioMin = 0.1
	ratioMax = 0.9
)

type Config struct {
	Gaps        float64 `json:"gaps"`
	Padding     float64 `json:"padding"`
	MasterRatio float64 `json:"master_ratio"`
}

var DefaultConfig = Config{
	Gaps:        8,
	Padding:     8,
	MasterRatio: 0.6,
}

// Clamp returns the config with every field forced into its valid range.
// Out-of-range values are tolerated rather than rejected.
func (c Config) Clamp() Config {
	if c.Gaps < 0 {
		c.Gaps = 0
	}
	if c.Padding < 0 {
		c.Padding = 0
	}
	if c.MasterRatio < ratioMin {
		c.MasterRatio = ratioMin
	} else if c.MasterRatio > ratioMax {
		c.MasterRatio = ratioMax
	}
	return c
}

// Compute partitions screen among ids in order: ids[0] is the master
// column, the rest stack vertically beside it. Identical inputs always
// yield identical rectangles. A degenerate usable area yields nil.
func Compute(screen Rect, ids []uint64, cfg Config) []Command {
	cfg = cfg.Clamp()

	if len(ids) == 0 {
		return nil
	}

	usable := Rect{
		X: screen.X + cfg.Padding,
		Y: screen.Y + cfg.Padding,
		W: screen.W - 2*cfg.Padding,
		H: screen.H - 2*cfg.Padding,
	}
	if usable.W <= 0 || usable.H <= 0 {
		return nil
	}

	cmds := make([]Command, 0, len(ids))

	if len(ids) == 1 {
		return append(cmds, Command{WindowID: ids[0], Frame: usable})
	}

	masterW := max(usable.W*cfg.MasterRatio-cfg.Gaps/2, 0)
	cmds = append(cmds, Command{
		WindowID: ids[0],
		Frame:    Rect{X: usable.X, Y: usable.Y, W: masterW, H: usable.H},
	})

	stack := ids[1:]
	stackX := usable.X + usable.W*cfg.MasterRatio + cfg.Gaps/2
	stackW := max(usable.W*(1-cfg.MasterRatio)-cfg.Gaps/2, 0)
	stackH := max((usable.H-cfg.Gaps*float64(len(stack)-1))/float64(len(stack)), 0)

	for i, id := range stack {
		cmds = append(cmds, Command{
			WindowID: id,
			Frame: Rect{
				X: stackX,
				Y: usable.Y + float64(i)*(stackH+cfg.Gaps),
				W: stackW,
				H: stackH,
			},
		})
	}

	return cmds
}

// WriteInto copies cmds into out up to cap(out), truncating silently.
// It returns the number of commands written.
func WriteInto(cmds []Command, out []Command) int {
	n := copy(out, cmds)
	return n
}
