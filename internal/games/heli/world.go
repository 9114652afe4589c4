package heli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/heli-arcade/internal/config"
)

// Phase is the session state machine.
type Phase int

const (
	PhaseRunning  Phase = iota // Simulating and accepting input
	PhaseGameOver              // Frozen until the reset deadline passes
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Cause records why a session ended.
type Cause int

const (
	CauseNone   Cause = iota // Session still running
	CauseGround              // Actor touched the floor
	CausePipe                // Actor hit a pipe section
)

// String returns the cause name.
func (c Cause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseGround:
		return "ground"
	case CausePipe:
		return "pipe"
	default:
		return "unknown"
	}
}

// TickResult reports what happened during one World.Tick.
type TickResult struct {
	Spawned  bool  // A new obstacle entered at the right edge
	Pruned   int   // Obstacles removed from the left edge
	Scored   int   // Obstacles passed this tick
	GameOver Cause // Non-zero on the tick that entered PhaseGameOver
	Reset    bool  // The world was reset to its spawn state this tick
}

// World is the complete simulation state. It is advanced only by Tick and
// carries no backend state, so it runs headless in tests.
type World struct {
	cfg       config.HeliConfig
	spec      PipeSpec
	bound     HorizontalBound
	actor     Actor
	obstacles *ObstacleQueue
	spawner   *Spawner
	score     int
	phase     Phase
	cause     Cause
	resumeAt  time.Duration
	pending   *config.HeliConfig
	logger    *log.Logger
}

// NewWorld creates a world in its spawn state. now is the current reading of
// the clock the caller will pass to Tick.
func NewWorld(cfg config.HeliConfig, seed int64, now time.Duration, logger *log.Logger) *World {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	w := &World{
		obstacles: NewObstacleQueue(),
		spawner:   NewSpawner(cfg.SpawnInterval(), seed, now),
		logger:    logger,
	}
	w.configure(cfg)
	w.Reset(now)
	return w
}

// configure installs a config. Geometry only changes between sessions.
func (w *World) configure(cfg config.HeliConfig) {
	w.cfg = cfg
	w.spec = NewPipeSpec(cfg)
	w.bound = BoundObstacle
	if cfg.Collision.LegacyHorizontalBound {
		w.bound = BoundLegacy
	}
	w.spawner.SetInterval(cfg.SpawnInterval())
}

// QueueConfig stores a config to be applied by the next reset.
func (w *World) QueueConfig(cfg config.HeliConfig) {
	w.pending = &cfg
}

// Reset restores the spawn state: actor at its spawn point at rest, no
// obstacles, score zero, running. A queued config is applied first. The
// spawn cadence carries over unless the config asks for a restart.
func (w *World) Reset(now time.Duration) {
	if w.pending != nil {
		w.configure(*w.pending)
		w.pending = nil
		w.logger.Info("config applied", "gravity", w.cfg.Physics.Gravity, "lift", w.cfg.Physics.Lift)
	}

	w.actor = NewActor(w.cfg)
	w.obstacles.Clear()
	w.score = 0
	w.phase = PhaseRunning
	w.cause = CauseNone
	w.resumeAt = 0

	if w.cfg.Session.ResetSpawnTimer {
		w.spawner.Restart(now)
	}
}

// Skip removes d of clock time from the session, as after a pause. The spawn
// cadence and any pending reset deadline move forward by d.
func (w *World) Skip(d time.Duration) {
	if d <= 0 {
		return
	}
	w.spawner.Delay(d)
	if w.phase == PhaseGameOver {
		w.resumeAt += d
	}
}

// Tick advances the simulation by one frame at clock reading now.
// A flap takes effect before gravity is applied on the same tick.
//
// While in PhaseGameOver nothing moves; the tick that reaches the reset
// deadline resets the world instead of simulating.
func (w *World) Tick(now time.Duration, flap bool) TickResult {
	var res TickResult

	if w.phase == PhaseGameOver {
		if now >= w.resumeAt {
			w.Reset(now)
			res.Reset = true
		}
		return res
	}

	if o, ok := w.spawner.Spawn(now, w.cfg.Playfield.Width, w.cfg.Playfield.Height, w.spec); ok {
		w.obstacles.Push(o)
		res.Spawned = true
	}
	w.obstacles.Scroll(w.cfg.Obstacles.ScrollSpeedPx)

	if flap {
		w.actor.Flap()
	}
	grounded := w.actor.Integrate(w.cfg.Playfield.Height)

	res.Pruned = w.obstacles.Prune(w.spec)

	contact := Resolve(w.actor, w.obstacles, w.spec, w.cfg.Playfield.Height, w.bound)
	res.Scored = contact.Scored
	w.score += contact.Scored
	if contact.Scored > 0 {
		w.logger.Debug("obstacle passed", "score", w.score)
	}

	switch {
	case contact.Collided:
		w.logger.Info("collided with pipe", "pipe_x", contact.Hit.X, "gap_y", contact.Hit.GapY)
		// A pipe hit forfeits the score before it is reported.
		w.score = 0
		w.enterGameOver(now, CausePipe)
		res.GameOver = CausePipe
	case grounded:
		w.enterGameOver(now, CauseGround)
		res.GameOver = CauseGround
	}

	if w.phase == PhaseGameOver && now >= w.resumeAt {
		w.Reset(now)
		res.Reset = true
	}
	return res
}

func (w *World) enterGameOver(now time.Duration, cause Cause) {
	w.phase = PhaseGameOver
	w.cause = cause
	w.resumeAt = now + w.cfg.GameOverDelay()
	w.logger.Info("game over", "final_score", w.score, "cause", cause)
}

// Actor returns a copy of the actor.
func (w *World) Actor() Actor {
	return w.actor
}

// Obstacles returns the live obstacle queue. Callers must not modify it.
func (w *World) Obstacles() *ObstacleQueue {
	return w.obstacles
}

// Spec returns the shared pipe geometry.
func (w *World) Spec() PipeSpec {
	return w.spec
}

// Score returns the current score.
func (w *World) Score() int {
	return w.score
}

// Phase returns the current session phase.
func (w *World) Phase() Phase {
	return w.phase
}

// Cause returns why the current game-over phase was entered.
func (w *World) Cause() Cause {
	return w.cause
}

// Config returns the config in effect.
func (w *World) Config() config.HeliConfig {
	return w.cfg
}
