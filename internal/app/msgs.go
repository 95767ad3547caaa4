package app

// Messages injected into the event loop by the inspection API. The loop
// is the only goroutine that touches the engine, so mutations travel as
// messages instead of direct calls.

type SetLayoutConfigMsg struct {
	Gaps        float64
	Padding     float64
	MasterRatio float64
}

type MoveToFrontMsg struct {
	ID uint64
}

type SwapMsg struct {
	I int
	J int
}

type SetFloatingMsg struct {
	ID       uint64
	Floating bool
}
