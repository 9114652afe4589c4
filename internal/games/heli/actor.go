package heli

import (
	"github.com/vovakirdan/heli-arcade/internal/config"
	"github.com/vovakirdan/heli-arcade/internal/core"
)

// Actor is the player-controlled helicopter.
// X is fixed for the whole session; Y and Velocity change every tick.
// Position is in whole playfield pixels while velocity keeps its fraction,
// so slow speeds accumulate over several ticks before the actor moves.
type Actor struct {
	X, Y          int
	Width, Height int
	Velocity      float64 // Positive = falling

	Gravity          float64 // Added to Velocity every tick
	Lift             float64 // Velocity set by a flap
	TerminalVelocity float64 // Upper bound on Velocity after integration
}

// NewActor returns the actor at its spawn point: an eighth of the way across
// and halfway down the playfield, at rest.
func NewActor(cfg config.HeliConfig) Actor {
	return Actor{
		X:                cfg.Playfield.Width / 8,
		Y:                cfg.Playfield.Height / 2,
		Width:            cfg.Player.Width,
		Height:           cfg.Player.Height,
		Gravity:          cfg.Physics.Gravity,
		Lift:             cfg.Physics.Lift,
		TerminalVelocity: cfg.Physics.TerminalVelocity,
	}
}

// Flap overrides the current velocity with Lift. It is not additive.
func (a *Actor) Flap() {
	a.Velocity = a.Lift
}

// Integrate advances the actor one tick inside a playfield of the given height
// and reports whether it touched the ground.
//
// The new position is truncated toward zero. The downward clamp applies after
// the position update, so the tick that crosses TerminalVelocity still moves
// by the unclamped amount. Upward velocity is unbounded; the ceiling stops the
// actor without ending the game.
func (a *Actor) Integrate(playfieldH int) (grounded bool) {
	a.Velocity += a.Gravity
	a.Y = int(float64(a.Y) + a.Velocity)

	if a.Velocity > a.TerminalVelocity {
		a.Velocity = a.TerminalVelocity
	}

	floor := playfieldH - a.Height
	if y := core.Clamp(a.Y, 0, floor); y != a.Y {
		grounded = a.Y > floor
		a.Y = y
		a.Velocity = 0
	}
	return grounded
}

// Left returns the actor's left edge.
func (a Actor) Left() int {
	return a.X
}

// Right returns the actor's leading edge.
func (a Actor) Right() int {
	return a.X + a.Width
}

// Top returns the actor's top edge.
func (a Actor) Top() int {
	return a.Y
}

// Bottom returns the actor's bottom edge.
func (a Actor) Bottom() int {
	return a.Y + a.Height
}

// Rect returns the actor's bounds.
func (a Actor) Rect() core.Rect {
	return core.NewRect(a.X, a.Y, a.Width, a.Height)
}
