package menu

import "time"

// Surface is the character display the controller draws on.
//
// Columns and rows are zero based. Print writes from the current cursor
// position and does not wrap.
type Surface interface {
	Rows() int
	Cols() int
	Clear()
	SetCursor(col, row int)
	Write(c byte)
	Print(s string)
}

// Scroller is implemented by surfaces that can shift their whole content
// one column sideways.
type Scroller interface {
	ScrollLeft()
	ScrollRight()
}

// Direction of a wipe transition.
type Direction uint8

const (
	WipeLeft Direction = iota
	WipeRight
)

// Transition animates the display between screens.
type Transition interface {
	Wipe(dir Direction)
}

// NoTransition switches screens instantly.
type NoTransition struct{}

func (NoTransition) Wipe(Direction) {}

// ScrollWipe scrolls the surface off screen one column at a time.
type ScrollWipe struct {
	Surface Surface
	// Delay is the pause between columns. Zero means no pause.
	Delay time.Duration
	// Sleep defaults to time.Sleep.
	Sleep func(time.Duration)
}

// NewScrollWipe returns a wipe with the classic 10ms column delay.
func NewScrollWipe(s Surface) *ScrollWipe {
	return &ScrollWipe{Surface: s, Delay: 10 * time.Millisecond}
}

func (w *ScrollWipe) Wipe(dir Direction) {
	if w == nil || w.Surface == nil {
		return
	}
	sc, ok := w.Surface.(Scroller)
	if !ok {
		return
	}
	sleep := w.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	for i := 0; i < w.Surface.Cols(); i++ {
		if dir == WipeLeft {
			sc.ScrollLeft()
		} else {
			sc.ScrollRight()
		}
		if w.Delay > 0 {
			sleep(w.Delay)
		}
	}
}
