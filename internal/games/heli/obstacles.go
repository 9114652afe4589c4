package heli

import (
	"math/rand"
	"time"

	"gopkg.in/eapache/queue.v1"

	"github.com/vovakirdan/heli-arcade/internal/config"
	"github.com/vovakirdan/heli-arcade/internal/core"
)

// Obstacle is a pipe pair with a vertical gap. Width and gap height are shared
// by all obstacles and live in PipeSpec.
type Obstacle struct {
	X      int  // Left edge
	GapY   int  // Center of the gap
	Passed bool // Whether the actor has scored this obstacle
}

// PipeSpec holds the geometry shared by every obstacle.
type PipeSpec struct {
	Width     int
	GapHeight int
}

// NewPipeSpec reads the pipe geometry from the game config.
func NewPipeSpec(cfg config.HeliConfig) PipeSpec {
	return PipeSpec{
		Width:     cfg.Obstacles.PipeWidthPx,
		GapHeight: cfg.Obstacles.GapHeightPx,
	}
}

// Right returns the obstacle's right edge.
func (s PipeSpec) Right(o *Obstacle) int {
	return o.X + s.Width
}

// GapTop returns the y-coordinate where the gap starts.
func (s PipeSpec) GapTop(o *Obstacle) int {
	return o.GapY - s.GapHeight/2
}

// GapBottom returns the y-coordinate where the gap ends.
func (s PipeSpec) GapBottom(o *Obstacle) int {
	return o.GapY + s.GapHeight/2
}

// UpperRect returns the pipe section above the gap.
func (s PipeSpec) UpperRect(o *Obstacle) core.Rect {
	return core.NewRect(o.X, 0, s.Width, s.GapTop(o))
}

// LowerRect returns the pipe section below the gap, down to the floor.
func (s PipeSpec) LowerRect(o *Obstacle, playfieldH int) core.Rect {
	bottom := s.GapBottom(o)
	return core.NewRect(o.X, bottom, s.Width, playfieldH-bottom)
}

// ObstacleQueue holds live obstacles in spawn order, oldest first.
// Obstacles only move left at a shared speed, so spawn order is also x order
// and anything that has left the playfield is at the front.
type ObstacleQueue struct {
	q *queue.Queue
}

// NewObstacleQueue creates an empty queue.
func NewObstacleQueue() *ObstacleQueue {
	return &ObstacleQueue{q: queue.New()}
}

// Len returns the number of live obstacles.
func (oq *ObstacleQueue) Len() int {
	return oq.q.Length()
}

// At returns the i-th oldest obstacle. It panics if i is out of range.
func (oq *ObstacleQueue) At(i int) *Obstacle {
	return oq.q.Get(i).(*Obstacle)
}

// Push appends a newly spawned obstacle.
func (oq *ObstacleQueue) Push(o Obstacle) {
	oq.q.Add(&o)
}

// Front returns the oldest obstacle, or nil when the queue is empty.
func (oq *ObstacleQueue) Front() *Obstacle {
	if oq.q.Length() == 0 {
		return nil
	}
	return oq.q.Peek().(*Obstacle)
}

// Scroll moves every obstacle left by dx.
func (oq *ObstacleQueue) Scroll(dx int) {
	for i := 0; i < oq.q.Length(); i++ {
		oq.At(i).X -= dx
	}
}

// Prune removes obstacles from the front whose right edge has moved past x=0
// and returns how many were removed.
func (oq *ObstacleQueue) Prune(spec PipeSpec) int {
	removed := 0
	for oq.q.Length() > 0 && spec.Right(oq.Front()) < 0 {
		oq.q.Remove()
		removed++
	}
	return removed
}

// Clear removes every obstacle.
func (oq *ObstacleQueue) Clear() {
	oq.q = queue.New()
}

// Spawner emits obstacles at a fixed wall-clock cadence, independent of the
// tick rate.
type Spawner struct {
	interval  time.Duration
	lastSpawn time.Duration
	rng       *rand.Rand
}

// NewSpawner creates a spawner whose first obstacle is due one interval after now.
func NewSpawner(interval time.Duration, seed int64, now time.Duration) *Spawner {
	return &Spawner{
		interval:  interval,
		lastSpawn: now,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// Due reports whether more than one interval has elapsed since the last spawn.
func (s *Spawner) Due(now time.Duration) bool {
	return now-s.lastSpawn > s.interval
}

// Restart makes the next obstacle due one interval after now.
func (s *Spawner) Restart(now time.Duration) {
	s.lastSpawn = now
}

// Delay pushes the next spawn back by d.
func (s *Spawner) Delay(d time.Duration) {
	s.lastSpawn += d
}

// SetInterval changes the cadence without moving the last spawn time.
func (s *Spawner) SetInterval(interval time.Duration) {
	s.interval = interval
}

// Spawn returns a new obstacle at the right edge of the playfield if one is
// due. The gap center is drawn so that the whole gap fits on screen.
func (s *Spawner) Spawn(now time.Duration, playfieldW, playfieldH int, spec PipeSpec) (Obstacle, bool) {
	if !s.Due(now) {
		return Obstacle{}, false
	}
	s.lastSpawn = now
	return Obstacle{
		X:    playfieldW,
		GapY: s.rng.Intn(playfieldH-spec.GapHeight) + spec.GapHeight/2,
	}, true
}
