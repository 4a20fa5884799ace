package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"gridsnake/audio"
	"gridsnake/game"
	"gridsnake/game/types"
	"gridsnake/ui"
	"gridsnake/ui/terminal"
	"gridsnake/ui/window"
)

func main() {
	cfg := game.DefaultConfig()
	flag.IntVar(&cfg.Cols, "cols", cfg.Cols, "Grid width in cells")
	flag.IntVar(&cfg.Rows, "rows", cfg.Rows, "Grid height in cells")
	flag.IntVar(&cfg.TileSize, "tile", cfg.TileSize, "Cell size in logical pixels")
	flag.DurationVar(&cfg.TickInterval, "tick", cfg.TickInterval, "Simulation step length")
	flag.IntVar(&cfg.Length, "length", cfg.Length, "Snake length in cells")
	flag.IntVar(&cfg.Start.X, "x", cfg.Start.X, "Initial head column")
	flag.IntVar(&cfg.Start.Y, "y", cfg.Start.Y, "Initial head row")
	heading := flag.String("heading", cfg.Heading.String(), "Initial heading: up, right, down or left")
	term := flag.Bool("term", false, "Run in the terminal instead of a window")
	sound := flag.Bool("sound", false, "Play a tone on every turn")
	fps := flag.Int("fps", 60, "Window frame rate cap")
	flag.Parse()
	defer glog.Flush()

	if err := run(cfg, *heading, *term, *sound, *fps); err != nil {
		glog.Errorf("%+v", err)
		fmt.Fprintln(os.Stderr, "gridsnake:", err)
		glog.Flush()
		os.Exit(1)
	}
}

func run(cfg game.Config, heading string, term, sound bool, fps int) error {
	d, ok := types.ParseDirection(heading)
	if !ok {
		return errors.Errorf("unknown heading %q", heading)
	}
	cfg.Heading = d
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	host, err := newHost(cfg, term, fps)
	if err != nil {
		return err
	}
	defer host.Close()

	session, err := game.NewSession(cfg, host.Surface(), host.Density)
	if err != nil {
		return err
	}

	if sound {
		blipper, err := audio.NewBlipper()
		if err != nil {
			glog.Warningf("sound disabled: %v", err)
		}
		defer blipper.Close()
		session.OnTurn(blipper.Blip)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return session.Run(ctx, host)
}

func newHost(cfg game.Config, term bool, fps int) (ui.Host, error) {
	if term {
		glog.Info("starting terminal host")
		return terminal.NewHost(cfg.TileSize)
	}
	glog.Info("starting window host")
	return window.NewHost(window.Options{
		Title:     "Snake",
		Width:     cfg.Cols * cfg.TileSize,
		Height:    cfg.Rows * cfg.TileSize,
		TargetFPS: fps,
	}), nil
}
