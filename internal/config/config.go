// Package config provides YAML-based game configuration loading, validation
// and hot reload for the helicopter game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// HeliConfig contains all configuration for the helicopter game.
// Distances are in playfield pixels, times in milliseconds.
type HeliConfig struct {
	Playfield HeliPlayfield `yaml:"playfield"`
	Physics   HeliPhysics   `yaml:"physics"`
	Obstacles HeliObstacles `yaml:"obstacles"`
	Player    HeliPlayer    `yaml:"player"`
	Session   HeliSession   `yaml:"session"`
	Collision HeliCollision `yaml:"collision"`
	Assets    HeliAssets    `yaml:"assets"`
}

// HeliPlayfield defines the simulated area and the window size.
type HeliPlayfield struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// HeliPhysics defines the actor's motion coefficients.
type HeliPhysics struct {
	Gravity          float64 `yaml:"gravity"`           // Added to velocity every tick
	Lift             float64 `yaml:"lift"`              // Velocity set on flap (negative = up)
	TerminalVelocity float64 `yaml:"terminal_velocity"` // Maximum downward velocity
}

// HeliObstacles defines pipe spawning and geometry.
type HeliObstacles struct {
	SpawnIntervalMS int `yaml:"spawn_interval_ms"`
	ScrollSpeedPx   int `yaml:"scroll_speed_px"`
	GapHeightPx     int `yaml:"gap_height_px"`
	PipeWidthPx     int `yaml:"pipe_width_px"`
}

// HeliPlayer defines the actor's hitbox size.
type HeliPlayer struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// HeliSession defines game-over behavior.
type HeliSession struct {
	GameOverDelayMS int `yaml:"game_over_delay_ms"`
	// ResetSpawnTimer restarts the spawn cadence when the game resets.
	ResetSpawnTimer bool `yaml:"reset_spawn_timer"`
}

// HeliCollision selects between collision test variants.
type HeliCollision struct {
	// LegacyHorizontalBound compares the actor's left edge against its own
	// x plus the pipe width instead of the obstacle's right edge. The right
	// side of the overlap test is then always true.
	LegacyHorizontalBound bool `yaml:"legacy_horizontal_bound"`
}

// HeliAssets names the files the window backend loads at startup.
// Paths are relative to Dir unless absolute.
type HeliAssets struct {
	Dir        string `yaml:"dir"`
	Actor      string `yaml:"actor"`
	UpperPipe  string `yaml:"upper_pipe"`
	LowerPipe  string `yaml:"lower_pipe"`
	Background string `yaml:"background"`
	// Font is a TTF path or "builtin:goregular".
	Font     string  `yaml:"font"`
	FontSize float64 `yaml:"font_size"`
}

// SpawnInterval returns the obstacle spawn cadence as a duration.
func (c HeliConfig) SpawnInterval() time.Duration {
	return time.Duration(c.Obstacles.SpawnIntervalMS) * time.Millisecond
}

// GameOverDelay returns the pause between game over and reset.
func (c HeliConfig) GameOverDelay() time.Duration {
	return time.Duration(c.Session.GameOverDelayMS) * time.Millisecond
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks that the configuration describes a playable game.
func (c HeliConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Playfield.Width > 0, "playfield.width must be positive, got %d", c.Playfield.Width)
	check(c.Playfield.Height > 0, "playfield.height must be positive, got %d", c.Playfield.Height)
	check(c.Player.Width > 0 && c.Player.Height > 0, "player size must be positive, got %dx%d", c.Player.Width, c.Player.Height)
	check(c.Player.Height < c.Playfield.Height, "player.height %d must be less than playfield.height %d", c.Player.Height, c.Playfield.Height)
	check(c.Physics.TerminalVelocity > 0, "physics.terminal_velocity must be positive, got %v", c.Physics.TerminalVelocity)
	check(c.Obstacles.SpawnIntervalMS > 0, "obstacles.spawn_interval_ms must be positive, got %d", c.Obstacles.SpawnIntervalMS)
	check(c.Obstacles.ScrollSpeedPx > 0, "obstacles.scroll_speed_px must be positive, got %d", c.Obstacles.ScrollSpeedPx)
	check(c.Obstacles.PipeWidthPx > 0, "obstacles.pipe_width_px must be positive, got %d", c.Obstacles.PipeWidthPx)
	check(c.Obstacles.GapHeightPx > 0 && c.Obstacles.GapHeightPx < c.Playfield.Height,
		"obstacles.gap_height_px must be in (0, %d), got %d", c.Playfield.Height, c.Obstacles.GapHeightPx)
	check(c.Session.GameOverDelayMS >= 0, "session.game_over_delay_ms must not be negative, got %d", c.Session.GameOverDelayMS)

	return errors.Join(errs...)
}
