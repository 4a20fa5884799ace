package game

import (
	"context"
	"time"

	"github.com/golang/glog"
	"github.com/google/uuid"

	"gridsnake/game/clock"
	"gridsnake/game/entity"
	"gridsnake/game/input"
	"gridsnake/game/types"
	"gridsnake/ui"
)

// Session owns all mutable game state: snake, heading, clock and gesture
// state. It is driven by a single host loop and needs no locking.
type Session struct {
	UUID string

	grid     types.Grid
	snake    *entity.Snake
	heading  *entity.Heading
	clock    *clock.Clock
	resolver *input.Resolver

	surface  ui.Surface
	density  func() float64
	viewport ui.Viewport
	renderer *ui.Renderer
	geometry ui.Geometry

	steps   int
	stopped bool
}

// Snapshot is a copy of the session state at one moment.
type Snapshot struct {
	Body        []types.Point
	Heading     types.Direction
	Steps       int
	Accumulated time.Duration
	Geometry    ui.Geometry
}

// NewSession builds a session drawing to surface. density reports the
// current device pixel ratio and is read on every resize.
func NewSession(cfg Config, surface ui.Surface, density func() float64) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if density == nil {
		density = func() float64 { return 1 }
	}

	grid := cfg.Grid()
	heading := entity.NewHeading(cfg.Heading)

	s := &Session{
		UUID:     uuid.NewString(),
		grid:     grid,
		snake:    entity.NewSnake(cfg.Start, cfg.Length, cfg.Heading, grid),
		heading:  heading,
		clock:    clock.New(cfg.TickInterval),
		resolver: input.NewResolver(heading),
		surface:  surface,
		density:  density,
		viewport: ui.Viewport{Cols: cfg.Cols, Rows: cfg.Rows, TileSize: cfg.TileSize},
		renderer: ui.NewRenderer(surface, ui.DefaultPalette),
	}
	s.resolver.OnTurn = func(d types.Direction) {
		glog.V(2).Infof("session %s: turn %v", s.UUID, d)
	}
	return s, nil
}

// OnTurn registers fn to run after every accepted direction change.
func (s *Session) OnTurn(fn func(types.Direction)) {
	prev := s.resolver.OnTurn
	s.resolver.OnTurn = func(d types.Direction) {
		if prev != nil {
			prev(d)
		}
		fn(d)
	}
}

// Run mounts the session on host and blocks until ctx is cancelled or the
// host quits. The session is stopped on return.
func (s *Session) Run(ctx context.Context, host ui.Host) error {
	defer s.Stop()

	s.Resize()
	glog.Infof("session %s: running on %dx%d grid, tick %v", s.UUID, s.grid.Width, s.grid.Height, s.clock.Interval())
	return host.Run(ctx, s)
}

// Frame advances the simulation to ts and redraws if anything moved.
func (s *Session) Frame(ts time.Duration) {
	if s.stopped {
		return
	}

	ticks := s.clock.Advance(ts)
	moved := false
	for i := 0; i < ticks; i++ {
		if s.step() {
			moved = true
		}
	}
	if ticks > 1 {
		glog.V(2).Infof("session %s: caught up %d ticks", s.UUID, ticks)
	}
	if moved {
		s.render()
	}
}

func (s *Session) step() bool {
	if s.snake.Len() == 0 {
		return false
	}
	d := s.heading.Commit()
	s.snake.Advance(d.ToPoint(), s.grid)
	s.steps++
	return true
}

// Resize re-applies the viewport at the current density, drops in-flight
// clock time and redraws.
func (s *Session) Resize() {
	if s.stopped {
		return
	}
	s.geometry = s.viewport.Resize(s.surface, s.density())
	s.clock.Reset()
	glog.V(1).Infof("session %s: resized to %dx%d (backing %dx%d)", s.UUID,
		s.geometry.Width, s.geometry.Height, s.geometry.BackingWidth, s.geometry.BackingHeight)
	s.render()
}

func (s *Session) render() {
	s.renderer.Render(s.snake.Body, s.geometry)
}

func (s *Session) Key(name string) bool {
	if s.stopped {
		return false
	}
	return s.resolver.Key(name)
}

func (s *Session) TouchStart(x, y float64) {
	if s.stopped {
		return
	}
	s.resolver.TouchStart(input.Pointer{X: x, Y: y})
}

func (s *Session) TouchEnd(x, y float64) {
	if s.stopped {
		return
	}
	s.resolver.TouchEnd(input.Pointer{X: x, Y: y})
}

// Stop detaches the session: later frames, input and resizes are ignored.
func (s *Session) Stop() {
	if s.stopped {
		return
	}
	s.stopped = true
	glog.Infof("session %s: stopped after %d steps", s.UUID, s.steps)
}

func (s *Session) Stopped() bool {
	return s.stopped
}

func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Body:        s.snake.Segments(),
		Heading:     s.heading.Current(),
		Steps:       s.steps,
		Accumulated: s.clock.Accumulated(),
		Geometry:    s.geometry,
	}
}

var _ ui.Handler = (*Session)(nil)
