package entity

import (
	"gridsnake/game/types"
)

// Snake is an ordered run of cells, head first. Its length never changes.
type Snake struct {
	Body []types.Point
}

// NewSnake lays out length segments with the tail trailing behind head,
// opposite to the given heading. Length below 1 is raised to 1.
func NewSnake(head types.Point, length int, heading types.Direction, grid types.Grid) *Snake {
	if length < 1 {
		length = 1
	}
	back := heading.Opposite().ToPoint()

	body := make([]types.Point, length)
	p := grid.Wrap(head)
	for i := range body {
		body[i] = p
		p = grid.Wrap(p.Add(back))
	}
	return &Snake{Body: body}
}

// Advance moves the head one step and drops the last segment. It reports
// false and does nothing when the body is empty.
func (s *Snake) Advance(step types.Point, grid types.Grid) bool {
	if len(s.Body) == 0 {
		return false
	}
	newHead := grid.Wrap(s.Body[0].Add(step))
	copy(s.Body[1:], s.Body[:len(s.Body)-1])
	s.Body[0] = newHead
	return true
}

func (s *Snake) GetHead() (types.Point, bool) {
	if len(s.Body) == 0 {
		return types.Point{}, false
	}
	return s.Body[0], true
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Segments returns a copy of the body so callers cannot alias it.
func (s *Snake) Segments() []types.Point {
	body := make([]types.Point, len(s.Body))
	copy(body, s.Body)
	return body
}
