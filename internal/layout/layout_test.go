package layout

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var testScreen = Rect{X: 0, Y: 0, W: 1000, H: 800}

func TestComputeEmpty(t *testing.T) {
	cmds := Compute(testScreen, nil, DefaultConfig)
	require.Empty(t, cmds)
}

func TestComputeSingleWindowFillsUsableArea(t *testing.T) {
	cfg := Config{Gaps: 10, Padding: 0, MasterRatio: 0.6}

	cmds := Compute(testScreen, []uint64{7}, cfg)
	require.Len(t, cmds, 1)
	require.Equal(t, uint64(7), cmds[0].WindowID)
	require.Equal(t, Rect{X: 0, Y: 0, W: 1000, H: 800}, cmds[0].Frame)
}

func TestComputeSingleWindowPadding(t *testing.T) {
	cfg := Config{Gaps: 0, Padding: 20, MasterRatio: 0.6}

	cmds := Compute(testScreen, []uint64{1}, cfg)
	require.Len(t, cmds, 1)
	require.Equal(t, Rect{X: 20, Y: 20, W: 960, H: 760}, cmds[0].Frame)
}

func TestComputeMasterAndStack(t *testing.T) {
	cfg := Config{Gaps: 10, Padding: 0, MasterRatio: 0.6}

	cmds := Compute(testScreen, []uint64{1, 2}, cfg)
	require.Len(t, cmds, 2)

	master := cmds[0]
	require.Equal(t, uint64(1), master.WindowID)
	require.InDelta(t, 0, master.Frame.X, 1e-9)
	require.InDelta(t, 595, master.Frame.W, 1e-9)
	require.InDelta(t, 800, master.Frame.H, 1e-9)

	stack := cmds[1]
	require.Equal(t, uint64(2), stack.WindowID)
	require.InDelta(t, 605, stack.Frame.X, 1e-9)
	require.InDelta(t, 395, stack.Frame.W, 1e-9)
	require.InDelta(t, 800, stack.Frame.H, 1e-9)
}

func TestComputeThreeWindowsStackSplit(t *testing.T) {
	cfg := Config{Gaps: 10, Padding: 0, MasterRatio: 0.6}

	cmds := Compute(testScreen, []uint64{1, 2, 3}, cfg)
	require.Len(t, cmds, 3)

	require.InDelta(t, 395, cmds[1].Frame.H, 1e-9)
	require.InDelta(t, 395, cmds[2].Frame.H, 1e-9)
	require.InDelta(t, 0, cmds[1].Frame.Y, 1e-9)
	require.InDelta(t, 405, cmds[2].Frame.Y, 1e-9)
	require.Equal(t, cmds[1].Frame.X, cmds[2].Frame.X)
}

func TestComputeDegenerateScreen(t *testing.T) {
	cfg := Config{Gaps: 10, Padding: 50, MasterRatio: 0.6}

	cmds := Compute(Rect{W: 100, H: 400}, []uint64{1, 2}, cfg)
	require.Empty(t, cmds)

	cmds = Compute(Rect{W: 400, H: 100}, []uint64{1, 2}, cfg)
	require.Empty(t, cmds)

	cmds = Compute(Rect{W: -10, H: 400}, []uint64{1}, Config{})
	require.Empty(t, cmds)
}

func TestComputeDeterministic(t *testing.T) {
	cfg := Config{Gaps: 6, Padding: 12, MasterRatio: 0.55}
	ids := []uint64{4, 9, 2, 7}

	first := Compute(testScreen, ids, cfg)
	second := Compute(testScreen, ids, cfg)
	require.Equal(t, first, second)
}

func TestConfigClamp(t *testing.T) {
	tests := []struct {
		name  string
		ratio float64
		want  float64
	}{
		{"zero", 0, ratioMin},
		{"one", 1, ratioMax},
		{"negative", -3, ratioMin},
		{"above", 1.5, ratioMax},
		{"valid", 0.5, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Config{MasterRatio: tt.ratio}.Clamp()
			require.Equal(t, tt.want, got.MasterRatio)
		})
	}

	got := Config{Gaps: -1, Padding: -2, MasterRatio: 0.5}.Clamp()
	require.Equal(t, float64(0), got.Gaps)
	require.Equal(t, float64(0), got.Padding)
}

func TestComputeClampedRatioNeverNegative(t *testing.T) {
	for _, ratio := range []float64{-5, 0, 0.0001, 0.9999, 1, 42} {
		cmds := Compute(Rect{W: 30, H: 30}, []uint64{1, 2, 3}, Config{Gaps: 100, MasterRatio: ratio})
		for _, cmd := range cmds {
			require.GreaterOrEqual(t, cmd.Frame.W, float64(0), "ratio %v", ratio)
			require.GreaterOrEqual(t, cmd.Frame.H, float64(0), "ratio %v", ratio)
		}
	}
}

func TestWriteInto(t *testing.T) {
	cfg := Config{Gaps: 10, Padding: 0, MasterRatio: 0.6}
	cmds := Compute(testScreen, []uint64{1, 2, 3}, cfg)

	out := make([]Command, 2)
	n := WriteInto(cmds, out)
	require.Equal(t, 2, n)
	require.Equal(t, cmds[:2], out)

	big := make([]Command, 8)
	n = WriteInto(cmds, big)
	require.Equal(t, 3, n)
	require.Equal(t, cmds, big[:3])
}
