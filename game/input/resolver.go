// Package input maps keyboard keys and swipe gestures to heading changes.
package input

import (
	"strings"

	"gridsnake/game/entity"
	"gridsnake/game/types"
)

// Key names as delivered by hosts.
const (
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
)

var keyDirections = map[string]types.Direction{
	KeyArrowUp:    types.Up,
	KeyArrowDown:  types.Down,
	KeyArrowLeft:  types.Left,
	KeyArrowRight: types.Right,
	"w":           types.Up,
	"s":           types.Down,
	"a":           types.Left,
	"d":           types.Right,
}

// Pointer is a position in the host's pointer coordinates.
type Pointer struct {
	X, Y float64
}

// Resolver turns raw input into heading requests. Keyboard and gesture
// input both go through Heading.Request, which alone decides validity.
type Resolver struct {
	heading *entity.Heading

	touchStart *Pointer

	// OnTurn, if set, is called for every accepted direction change.
	OnTurn func(types.Direction)
}

func NewResolver(h *entity.Heading) *Resolver {
	return &Resolver{heading: h}
}

// Key handles a key-down. It returns true when name is a navigation key,
// whether or not the turn was accepted, so the host can swallow it.
func (r *Resolver) Key(name string) bool {
	d, ok := lookupKey(name)
	if !ok {
		return false
	}
	r.request(d)
	return true
}

func lookupKey(name string) (types.Direction, bool) {
	if d, ok := keyDirections[name]; ok {
		return d, true
	}
	if len(name) == 1 {
		d, ok := keyDirections[strings.ToLower(name)]
		return d, ok
	}
	return types.None, false
}

// TouchStart records the gesture's reference point.
func (r *Resolver) TouchStart(p Pointer) {
	r.touchStart = &p
}

// TouchEnd resolves the gesture started by TouchStart into a swipe along
// the dominant axis. The reference point is always cleared.
func (r *Resolver) TouchEnd(p Pointer) {
	start := r.touchStart
	r.touchStart = nil
	if start == nil {
		return
	}

	d := Swipe(p.X-start.X, p.Y-start.Y)
	if d != types.None {
		r.request(d)
	}
}

// Pending reports the recorded gesture start, if any.
func (r *Resolver) Pending() (Pointer, bool) {
	if r.touchStart == nil {
		return Pointer{}, false
	}
	return *r.touchStart, true
}

// Swipe classifies a displacement. Ties go to the vertical axis; a zero
// component on the chosen axis yields None.
func Swipe(dx, dy float64) types.Direction {
	if abs(dx) > abs(dy) {
		switch {
		case dx > 0:
			return types.Right
		case dx < 0:
			return types.Left
		}
		return types.None
	}
	switch {
	case dy > 0:
		return types.Down
	case dy < 0:
		return types.Up
	}
	return types.None
}

func (r *Resolver) request(d types.Direction) {
	if r.heading.Request(d) && r.OnTurn != nil {
		r.OnTurn(d)
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
