package entity

import "gridsnake/game/types"

// Heading is the snake's direction state. Input writes the current
// direction; the simulation step commits it.
type Heading struct {
	current types.Direction
	applied types.Direction
}

func NewHeading(d types.Direction) *Heading {
	return &Heading{current: d, applied: d}
}

// Current returns the direction the next step will use.
func (h *Heading) Current() types.Direction {
	return h.current
}

// Applied returns the direction used by the last step.
func (h *Heading) Applied() types.Direction {
	return h.applied
}

// Request turns the heading to d. Only perpendicular turns are accepted,
// and never the reverse of the last applied direction, so several inputs
// inside one tick cannot fold the snake back onto itself.
func (h *Heading) Request(d types.Direction) bool {
	if d.Axis() == types.NoAxis || d.Axis() == h.current.Axis() {
		return false
	}
	if d == h.applied.Opposite() {
		return false
	}
	h.current = d
	return true
}

// Commit marks the current direction as applied and returns it.
func (h *Heading) Commit() types.Direction {
	h.applied = h.current
	return h.applied
}
