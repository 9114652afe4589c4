package heli

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/heli-arcade/internal/config"
)

const ms = time.Millisecond

// hoverConfig returns a config where the actor holds its height and no
// obstacle spawns on its own, so tests place obstacles by hand.
func hoverConfig() config.HeliConfig {
	cfg := config.DefaultHeliConfig()
	cfg.Physics.Gravity = 0
	cfg.Obstacles.SpawnIntervalMS = 1 << 30
	return cfg
}

func TestNewWorldSpawnState(t *testing.T) {
	cfg := config.DefaultHeliConfig()
	w := NewWorld(cfg, 1, 0, nil)

	if w.Actor() != NewActor(cfg) {
		t.Errorf("actor = %+v, expected spawn state", w.Actor())
	}
	if w.Score() != 0 || w.Phase() != PhaseRunning || w.Obstacles().Len() != 0 {
		t.Error("new world should be running with no score and no obstacles")
	}
}

func TestTickSpawnsThenScrolls(t *testing.T) {
	w := NewWorld(config.DefaultHeliConfig(), 1, 0, nil)

	if res := w.Tick(2000*ms, false); res.Spawned {
		t.Error("no spawn before a full interval has passed")
	}

	res := w.Tick(2001*ms, false)
	if !res.Spawned {
		t.Fatal("expected a spawn after the interval")
	}
	if got := w.Obstacles().Front().X; got != 1195 {
		t.Errorf("new obstacle x = %d, expected 1200 scrolled by 5", got)
	}
}

func TestTickFlapBeforeGravity(t *testing.T) {
	w := NewWorld(config.DefaultHeliConfig(), 1, 0, nil)
	w.Tick(16*ms, true)

	a := w.Actor()
	if a.Velocity > -6.69 || a.Velocity < -6.71 {
		t.Errorf("velocity = %v, expected lift plus one tick of gravity (-6.7)", a.Velocity)
	}
	if a.Y >= 300 {
		t.Errorf("y = %v, flap should move the actor up", a.Y)
	}
}

func TestScoreIncrementsOncePerObstacle(t *testing.T) {
	w := NewWorld(hoverConfig(), 1, 0, nil)
	w.obstacles.Push(Obstacle{X: 300, GapY: 300})

	scored, pruned := 0, 0
	for i := 1; i <= 100; i++ {
		res := w.Tick(time.Duration(i)*16*ms, false)
		if res.GameOver != CauseNone {
			t.Fatalf("tick %d: unexpected game over (%s)", i, res.GameOver)
		}
		scored += res.Scored
		pruned += res.Pruned
	}

	if scored != 1 || w.Score() != 1 {
		t.Errorf("scored %d times, score %d; expected exactly 1", scored, w.Score())
	}
	if pruned != 1 || w.Obstacles().Len() != 0 {
		t.Errorf("pruned %d, %d left; expected the obstacle to be removed", pruned, w.Obstacles().Len())
	}
}

func TestPipeCollisionZeroesScore(t *testing.T) {
	w := NewWorld(hoverConfig(), 1, 0, nil)
	w.score = 3
	w.obstacles.Push(Obstacle{X: 200, GapY: 100}) // Gap [-25, 225], actor bottom 375

	res := w.Tick(10*ms, false)

	if res.GameOver != CausePipe {
		t.Fatalf("GameOver = %s, expected pipe", res.GameOver)
	}
	if w.Score() != 0 {
		t.Errorf("score = %d, pipe collision should zero it immediately", w.Score())
	}
	if w.Phase() != PhaseGameOver || res.Reset {
		t.Error("world should wait in game over before resetting")
	}
}

func TestGroundContactKeepsScoreUntilReset(t *testing.T) {
	cfg := config.DefaultHeliConfig()
	w := NewWorld(cfg, 1, 0, nil)
	w.score = 4
	w.actor.Y = 520
	w.actor.Velocity = 6

	res := w.Tick(100*ms, false)
	if res.GameOver != CauseGround {
		t.Fatalf("GameOver = %s, expected ground", res.GameOver)
	}
	if w.Score() != 4 {
		t.Errorf("score = %d, ground contact should not zero it directly", w.Score())
	}
	if w.Cause() != CauseGround {
		t.Errorf("Cause() = %s", w.Cause())
	}

	frozen := w.Actor()
	if res := w.Tick(600*ms, true); res.Reset {
		t.Fatal("reset before the delay elapsed")
	}
	if w.Actor() != frozen {
		t.Error("actor should not move during the game-over pause")
	}

	res = w.Tick(1100*ms, false)
	if !res.Reset {
		t.Fatal("expected reset once the delay elapsed")
	}
	if w.Score() != 0 {
		t.Errorf("score after reset = %d, expected 0", w.Score())
	}
	if w.Actor() != NewActor(cfg) {
		t.Errorf("actor after reset = %+v, expected spawn state", w.Actor())
	}
	if w.Phase() != PhaseRunning || w.Obstacles().Len() != 0 {
		t.Error("reset should resume running with no obstacles")
	}
}

func TestZeroDelayResetsSameTick(t *testing.T) {
	cfg := hoverConfig()
	cfg.Session.GameOverDelayMS = 0
	w := NewWorld(cfg, 1, 0, nil)
	w.obstacles.Push(Obstacle{X: 200, GapY: 100})

	res := w.Tick(10*ms, false)
	if res.GameOver != CausePipe || !res.Reset {
		t.Errorf("result = %+v, expected pipe game over and reset in one tick", res)
	}
	if w.Phase() != PhaseRunning {
		t.Error("world should be running again")
	}
}

func TestSpawnTimerAcrossReset(t *testing.T) {
	run := func(restart bool) bool {
		cfg := config.DefaultHeliConfig()
		cfg.Session.ResetSpawnTimer = restart
		w := NewWorld(cfg, 1, 0, nil)
		w.actor.Y = 525
		w.actor.Velocity = 1

		w.Tick(1500*ms, false) // Ground, reset due at 2500ms
		if !w.Tick(2500*ms, false).Reset {
			t.Fatal("expected reset at 2500ms")
		}
		return w.Tick(2600*ms, false).Spawned
	}

	if !run(false) {
		t.Error("spawn cadence should carry over a reset by default")
	}
	if run(true) {
		t.Error("reset_spawn_timer should restart the cadence at reset")
	}
}

func TestQueuedConfigAppliesOnReset(t *testing.T) {
	w := NewWorld(config.DefaultHeliConfig(), 1, 0, nil)

	next := config.DefaultHeliConfig()
	next.Physics.Lift = -9
	next.Collision.LegacyHorizontalBound = true
	w.QueueConfig(next)

	if w.Actor().Lift != -7 {
		t.Error("queued config must not change the running game")
	}

	w.Reset(0)
	if w.Actor().Lift != -9 {
		t.Errorf("lift after reset = %v, expected -9", w.Actor().Lift)
	}
	if w.bound != BoundLegacy {
		t.Error("collision bound should follow the new config")
	}
}

func TestResetRestoresSpawnState(t *testing.T) {
	cfg := config.DefaultHeliConfig()
	w := NewWorld(cfg, 3, 0, nil)
	for i := 1; i <= 400; i++ {
		w.Tick(time.Duration(i)*16*ms, i%20 == 0)
	}

	w.Reset(6400 * ms)

	if w.Score() != 0 || w.Obstacles().Len() != 0 || w.Phase() != PhaseRunning {
		t.Error("reset should clear score, obstacles and game over")
	}
	if w.Actor() != NewActor(cfg) {
		t.Errorf("actor = %+v, expected exact spawn state", w.Actor())
	}
}

func TestWorldInvariants(t *testing.T) {
	cfg := config.DefaultHeliConfig()
	w := NewWorld(cfg, 99, 0, nil)
	rng := rand.New(rand.NewSource(99))
	spec := w.Spec()
	maxY := cfg.Playfield.Height - cfg.Player.Height

	for i := 1; i <= 20000; i++ {
		w.Tick(time.Duration(i)*16*ms, rng.Intn(15) == 0)

		a := w.Actor()
		if a.Velocity > a.TerminalVelocity {
			t.Fatalf("tick %d: velocity %v exceeds terminal", i, a.Velocity)
		}
		if a.Y < 0 || a.Y > maxY {
			t.Fatalf("tick %d: y %d out of bounds", i, a.Y)
		}
		if w.Score() < 0 {
			t.Fatalf("tick %d: negative score", i)
		}

		q := w.Obstacles()
		for j := 0; j < q.Len(); j++ {
			o := q.At(j)
			if spec.Right(o) < 0 {
				t.Fatalf("tick %d: obstacle at x=%d should have been pruned", i, o.X)
			}
			if j > 0 && q.At(j-1).X >= o.X {
				t.Fatalf("tick %d: obstacles out of spawn order", i)
			}
		}
	}
}

func TestSkipMovesResetDeadline(t *testing.T) {
	w := NewWorld(hoverConfig(), 1, 0, nil)
	w.obstacles.Push(Obstacle{X: 200, GapY: 100})
	w.Tick(10*ms, false) // Pipe hit, reset due at 1010ms

	w.Skip(500 * ms)
	if w.Tick(1010*ms, false).Reset {
		t.Fatal("reset should wait for the skipped time")
	}
	if !w.Tick(1510*ms, false).Reset {
		t.Error("expected reset at the shifted deadline")
	}
}
