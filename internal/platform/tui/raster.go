package tui

import (
	"github.com/vovakirdan/heli-arcade/internal/core"
)

// Glyphs used to stand in for sprites on a terminal.
const (
	GroundChar   = '▔'
	SkyChar      = ' '
	ActorChar    = '█'
	ActorNose    = '▶'
	PipeChar     = '█'
	PipeCapUpper = '▀'
	PipeCapLower = '▄'
)

// Rasterize scales a playfield draw list onto a cell screen. Sprites become
// filled glyph blocks, text keeps its characters and only its anchor is
// scaled, banners are centered on the screen.
func Rasterize(dl *core.DrawList, dst *core.Screen) {
	dst.Clear()
	if dl.Width <= 0 || dl.Height <= 0 {
		return
	}
	sx := float64(dst.Width()) / float64(dl.Width)
	sy := float64(dst.Height()) / float64(dl.Height)

	for _, cmd := range dl.Cmds {
		switch cmd.Kind {
		case core.DrawSprite:
			drawSprite(dst, cmd.Sprite, cmd.Rect.Scale(sx, sy))
		case core.DrawText:
			r := cmd.Rect.Scale(sx, sy)
			dst.DrawTextColored(r.X, r.Y, cmd.Text, core.ColorWhite)
		case core.DrawBanner:
			drawBanner(dst, cmd.Text, cmd.Subtitle)
		}
	}
}

func drawSprite(dst *core.Screen, s core.Sprite, r core.Rect) {
	switch s {
	case core.SpriteBackground:
		dst.DrawRectColored(r, SkyChar, core.ColorDefault)
		dst.DrawHLine(r.X, r.Bottom()-1, r.W, GroundChar, core.ColorGray)

	case core.SpriteActor:
		dst.DrawRectColored(r, ActorChar, core.ColorBrightYellow)
		dst.SetColored(r.Right()-1, r.Y, ActorNose, core.ColorYellow)

	case core.SpriteUpperPipe:
		if r.H <= 0 {
			return
		}
		dst.DrawRectColored(r, PipeChar, core.ColorGreen)
		dst.DrawHLine(r.X, r.Bottom()-1, r.W, PipeCapUpper, core.ColorBrightGreen)

	case core.SpriteLowerPipe:
		if r.H <= 0 {
			return
		}
		dst.DrawRectColored(r, PipeChar, core.ColorGreen)
		dst.DrawHLine(r.X, r.Y, r.W, PipeCapLower, core.ColorBrightGreen)
	}
}

// drawBanner draws a message box in the center of the screen.
func drawBanner(dst *core.Screen, title, subtitle string) {
	titleW := len([]rune(title))
	subtitleW := len([]rune(subtitle))

	boxW := core.Max(titleW, subtitleW) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextColored(box.X+(boxW-titleW)/2, box.Y+1, title, core.ColorRed)
	dst.DrawTextCentered(box.Y+3, subtitle)
}
