package types

type Direction int

const (
	None  Direction = iota // 0
	Up                     // 1
	Right                  // 2
	Down                   // 3
	Left                   // 4
)

// Axis is the axis a direction moves along.
type Axis int

const (
	NoAxis Axis = iota
	Horizontal
	Vertical
)

// ToPoint converts a Direction into its unit step.
func (d Direction) ToPoint() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Right:
		return Point{X: 1, Y: 0}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	default:
		return Point{X: 0, Y: 0}
	}
}

// Axis returns the axis holding the direction's nonzero component.
func (d Direction) Axis() Axis {
	switch d {
	case Left, Right:
		return Horizontal
	case Up, Down:
		return Vertical
	default:
		return NoAxis
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	default:
		return None
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "none"
	}
}

// DirectionOf maps a unit step back to its Direction. Anything that is not
// a unit vector maps to None.
func DirectionOf(p Point) Direction {
	switch p {
	case Point{X: 0, Y: -1}:
		return Up
	case Point{X: 1, Y: 0}:
		return Right
	case Point{X: 0, Y: 1}:
		return Down
	case Point{X: -1, Y: 0}:
		return Left
	default:
		return None
	}
}

// ParseDirection accepts the names produced by String.
func ParseDirection(s string) (Direction, bool) {
	for _, d := range []Direction{Up, Right, Down, Left} {
		if d.String() == s {
			return d, true
		}
	}
	return None, false
}
