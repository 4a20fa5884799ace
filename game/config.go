package game

import (
	"time"

	"github.com/pkg/errors"

	"gridsnake/game/clock"
	"gridsnake/game/types"
)

// Config contains everything a Session needs at startup.
type Config struct {
	Cols     int // Grid width in cells
	Rows     int // Grid height in cells
	TileSize int // Cell edge in logical pixels

	TickInterval time.Duration // Simulation step length

	Start   types.Point     // Initial head position
	Length  int             // Snake length, constant for the session
	Heading types.Direction // Initial direction
}

// DefaultConfig returns the 30x20 board with a one-cell snake at (10,10)
// heading right, stepping every 150ms.
func DefaultConfig() Config {
	return Config{
		Cols:         30,
		Rows:         20,
		TileSize:     20,
		TickInterval: clock.DefaultInterval,
		Start:        types.Point{X: 10, Y: 10},
		Length:       1,
		Heading:      types.Right,
	}
}

func (c Config) Grid() types.Grid {
	return types.Grid{Width: c.Cols, Height: c.Rows}
}

// Validate reports the first setting that cannot produce a playable board.
func (c Config) Validate() error {
	if c.Cols <= 0 || c.Rows <= 0 {
		return errors.Errorf("grid must be at least 1x1, got %dx%d", c.Cols, c.Rows)
	}
	if c.TileSize <= 0 {
		return errors.Errorf("tile size must be positive, got %d", c.TileSize)
	}
	if c.TickInterval <= 0 {
		return errors.Errorf("tick interval must be positive, got %v", c.TickInterval)
	}
	if c.Length < 1 {
		return errors.Errorf("snake length must be at least 1, got %d", c.Length)
	}
	if c.Length > c.Cols*c.Rows {
		return errors.Errorf("snake length %d does not fit a %dx%d grid", c.Length, c.Cols, c.Rows)
	}
	if c.Heading.Axis() == types.NoAxis {
		return errors.New("initial heading must be up, down, left or right")
	}
	return nil
}
