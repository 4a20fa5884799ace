package input

import (
	"testing"

	"gridsnake/game/entity"
	"gridsnake/game/types"
)

func TestKeyMapping(t *testing.T) {
	tests := []struct {
		name    string
		start   types.Direction
		want    types.Direction
		handled bool
	}{
		{KeyArrowUp, types.Right, types.Up, true},
		{KeyArrowDown, types.Right, types.Down, true},
		{KeyArrowLeft, types.Up, types.Left, true},
		{KeyArrowRight, types.Up, types.Right, true},
		{"w", types.Left, types.Up, true},
		{"S", types.Left, types.Down, true},
		{"a", types.Down, types.Left, true},
		{"D", types.Down, types.Right, true},
		// Recognized but rejected turns are still swallowed.
		{KeyArrowLeft, types.Right, types.Right, true},
		{KeyArrowRight, types.Right, types.Right, true},
		{"x", types.Right, types.Right, false},
		{"Enter", types.Right, types.Right, false},
		{"", types.Right, types.Right, false},
	}

	for _, tt := range tests {
		h := entity.NewHeading(tt.start)
		r := NewResolver(h)
		if got := r.Key(tt.name); got != tt.handled {
			t.Errorf("Key(%q): expected handled=%v, got %v", tt.name, tt.handled, got)
		}
		if h.Current() != tt.want {
			t.Errorf("Key(%q) from %v: expected %v, got %v", tt.name, tt.start, tt.want, h.Current())
		}
	}
}

func TestSwipeRight(t *testing.T) {
	h := entity.NewHeading(types.Up)
	r := NewResolver(h)

	r.TouchStart(Pointer{X: 100, Y: 100})
	r.TouchEnd(Pointer{X: 180, Y: 110})

	if h.Current() != types.Right {
		t.Errorf("Expected right, got %v", h.Current())
	}
	if _, ok := r.Pending(); ok {
		t.Error("Gesture start should be cleared after touch end")
	}
}

func TestSwipeClassification(t *testing.T) {
	tests := []struct {
		dx, dy float64
		want   types.Direction
	}{
		{80, 10, types.Right},
		{-80, 10, types.Left},
		{10, 80, types.Down},
		{10, -80, types.Up},
		{30, 30, types.Down},
		{-30, -30, types.Up},
		{0, 0, types.None},
	}

	for _, tt := range tests {
		if got := Swipe(tt.dx, tt.dy); got != tt.want {
			t.Errorf("Swipe(%v, %v): expected %v, got %v", tt.dx, tt.dy, tt.want, got)
		}
	}
}

func TestTouchEndWithoutStart(t *testing.T) {
	h := entity.NewHeading(types.Right)
	r := NewResolver(h)

	r.TouchEnd(Pointer{X: 50, Y: 400})
	if h.Current() != types.Right {
		t.Errorf("Expected heading unchanged, got %v", h.Current())
	}
}

func TestRejectedSwipeStillClearsStart(t *testing.T) {
	h := entity.NewHeading(types.Right)
	r := NewResolver(h)

	r.TouchStart(Pointer{X: 200, Y: 100})
	r.TouchEnd(Pointer{X: 100, Y: 100}) // reversal, ignored
	if h.Current() != types.Right {
		t.Errorf("Expected right, got %v", h.Current())
	}
	if _, ok := r.Pending(); ok {
		t.Error("Gesture start should be cleared after a rejected swipe")
	}

	// A second end without a new start does nothing.
	r.TouchEnd(Pointer{X: 200, Y: 300})
	if h.Current() != types.Right {
		t.Errorf("Expected right, got %v", h.Current())
	}
}

func TestTouchStartReplacesReference(t *testing.T) {
	h := entity.NewHeading(types.Right)
	r := NewResolver(h)

	r.TouchStart(Pointer{X: 0, Y: 0})
	r.TouchStart(Pointer{X: 100, Y: 100})
	p, ok := r.Pending()
	if !ok || p != (Pointer{X: 100, Y: 100}) {
		t.Errorf("Expected pending (100,100), got %v %v", p, ok)
	}
	r.TouchEnd(Pointer{X: 110, Y: 40})
	if h.Current() != types.Up {
		t.Errorf("Expected up, got %v", h.Current())
	}
}

func TestOnTurnFiresOnlyForAcceptedTurns(t *testing.T) {
	h := entity.NewHeading(types.Right)
	r := NewResolver(h)

	var turns []types.Direction
	r.OnTurn = func(d types.Direction) { turns = append(turns, d) }

	r.Key(KeyArrowLeft)  // reversal
	r.Key(KeyArrowRight) // redundant
	r.Key(KeyArrowDown)  // accepted
	r.Key("q")           // unknown

	if len(turns) != 1 || turns[0] != types.Down {
		t.Errorf("Expected [down], got %v", turns)
	}
}
