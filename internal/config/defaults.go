package config

import (
	_ "embed"
)

//go:embed defaults/heli.yaml
var defaultHeliYAML []byte

// BuiltinFont selects the Go regular font bundled with golang.org/x/image.
const BuiltinFont = "builtin:goregular"

// DefaultHeliConfig returns the default helicopter game configuration.
// It mirrors defaults/heli.yaml.
func DefaultHeliConfig() HeliConfig {
	return HeliConfig{
		Playfield: HeliPlayfield{
			Width:  1200,
			Height: 600,
		},
		Physics: HeliPhysics{
			Gravity:          0.3,
			Lift:             -7,
			TerminalVelocity: 10,
		},
		Obstacles: HeliObstacles{
			SpawnIntervalMS: 2000,
			ScrollSpeedPx:   5,
			GapHeightPx:     250,
			PipeWidthPx:     50,
		},
		Player: HeliPlayer{
			Width:  75,
			Height: 75,
		},
		Session: HeliSession{
			GameOverDelayMS: 1000,
		},
		Assets: HeliAssets{
			Dir:        ".",
			Actor:      "sprites/heli.png",
			UpperPipe:  "sprites/up_pipe.png",
			LowerPipe:  "sprites/low_pipe.png",
			Background: "sprites/background.png",
			Font:       "font.ttf",
			FontSize:   24,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultHeliYAML
}
