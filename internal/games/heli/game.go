// Package heli implements the helicopter game: a vehicle falls under gravity,
// rises on a flap, and must fly through the gaps of scrolling pipes.
//
// World holds the whole simulation and is advanced by Tick with an explicit
// clock reading; Game adapts it to the platform's Game interface.
package heli

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/heli-arcade/internal/config"
	"github.com/vovakirdan/heli-arcade/internal/core"
	"github.com/vovakirdan/heli-arcade/internal/registry"
)

// ID is the game identifier used by the CLI and in logs.
const ID = "heli"

// Score text position in playfield pixels.
const (
	scoreX = 10
	scoreY = 10
)

// Game adapts World to the platform Game interface.
type Game struct {
	cfg      config.HeliConfig
	clock    core.Clock
	logger   *log.Logger
	world    *World
	paused   bool
	pausedAt time.Duration
	reloads  <-chan config.Reload
}

var _ registry.Game = (*Game)(nil)

// New creates a game that reads time from clock. Reset must be called before Step.
func New(cfg config.HeliConfig, clock core.Clock, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		cfg:    cfg,
		clock:  clock,
		logger: logger,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Helicopter Game"
}

// PlayfieldSize returns the simulated area in pixels. A reloaded config only
// changes it once the world has been reset.
func (g *Game) PlayfieldSize() (int, int) {
	cfg := g.cfg
	if g.world != nil {
		cfg = g.world.Config()
	}
	return cfg.Playfield.Width, cfg.Playfield.Height
}

// Reset starts a fresh world seeded from the runtime config. A zero seed
// picks a time-based one.
func (g *Game) Reset(rc core.RuntimeConfig) {
	seed := sessionSeed(rc.Seed)
	g.logger.Debug("new session", "seed", seed)
	g.world = NewWorld(g.cfg, seed, g.clock.Now(), g.logger)
	g.paused = false
}

func sessionSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	if seed = time.Now().UnixNano(); seed == 0 {
		seed = 1
	}
	return seed
}

// WatchConfig makes the game apply configs received on ch at the next reset.
func (g *Game) WatchConfig(ch <-chan config.Reload) {
	g.reloads = ch
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.drainReloads()

	if in.Has(core.ActionPause) && g.world.Phase() == PhaseRunning {
		g.togglePause()
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	res := g.world.Tick(g.clock.Now(), in.Has(core.ActionFlap))
	return core.StepResult{State: g.State(), Reset: res.Reset}
}

// togglePause freezes or resumes the world. Time spent paused is skipped so
// the spawn cadence continues where it stopped.
func (g *Game) togglePause() {
	now := g.clock.Now()
	if g.paused {
		g.world.Skip(now - g.pausedAt)
	} else {
		g.pausedAt = now
	}
	g.paused = !g.paused
}

// drainReloads queues the newest valid config without blocking.
func (g *Game) drainReloads() {
	if g.reloads == nil {
		return
	}
	for {
		select {
		case r, ok := <-g.reloads:
			if !ok {
				g.reloads = nil
				return
			}
			if r.Err != nil {
				g.logger.Warn("config reload rejected", "error", r.Err)
				continue
			}
			g.cfg = r.Config
			g.world.QueueConfig(r.Config)
			g.logger.Info("config reloaded, applies after the current game")
		default:
			return
		}
	}
}

// Draw emits the frame: background, score, actor, then the pipes.
func (g *Game) Draw(dst *core.DrawList) {
	w, h := g.world.cfg.Playfield.Width, g.world.cfg.Playfield.Height
	dst.Reset(w, h)

	dst.Sprite(core.SpriteBackground, core.NewRect(0, 0, w, h))
	dst.Text(scoreX, scoreY, fmt.Sprintf("Score: %d", g.world.Score()))
	dst.Sprite(core.SpriteActor, g.world.Actor().Rect())

	spec := g.world.Spec()
	obstacles := g.world.Obstacles()
	for i := 0; i < obstacles.Len(); i++ {
		o := obstacles.At(i)
		dst.Sprite(core.SpriteUpperPipe, spec.UpperRect(o))
		dst.Sprite(core.SpriteLowerPipe, spec.LowerRect(o, h))
	}

	switch {
	case g.paused:
		dst.Banner("PAUSED", "Press P to resume")
	case g.world.Phase() == PhaseGameOver:
		dst.Banner("GAME OVER", fmt.Sprintf("Hit the %s  |  Final score: %d", g.world.Cause(), g.world.Score()))
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.world.Score(),
		GameOver: g.world.Phase() == PhaseGameOver,
		Paused:   g.paused,
	}
}

// World exposes the simulation for inspection.
func (g *Game) World() *World {
	return g.world
}
