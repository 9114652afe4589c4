// Package window is the desktop display backend built on Ebitengine. It opens
// a window the size of the playfield, draws the game's draw list with the
// configured sprites and font, and maps mouse and keyboard input to actions.
package window

import (
	"context"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/vovakirdan/heli-arcade/internal/core"
	"github.com/vovakirdan/heli-arcade/internal/registry"
)

// BackendID is the name the window backend registers under.
const BackendID = "window"

var (
	clearColor  = color.Black
	textColor   = color.White
	bannerColor = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200}
)

// Backend runs the game in a desktop window.
type Backend struct{}

// ID returns the backend identifier.
func (Backend) ID() string {
	return BackendID
}

// Title returns a human-readable backend name.
func (Backend) Title() string {
	return "Window (Ebitengine)"
}

// Run loads the assets, opens the window and blocks until it is closed,
// Q is pressed, or ctx ends.
func (Backend) Run(ctx context.Context, game registry.Game, opts registry.RunOptions) error {
	assets, err := LoadAssets(opts.Assets)
	if err != nil {
		return fmt.Errorf("window backend: %w", err)
	}

	w, h := game.PlayfieldSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(game.Title())
	if opts.Runtime.TickRate > 0 {
		ebiten.SetTPS(opts.Runtime.TickRate)
	}

	game.Reset(opts.Runtime)
	r := &runner{
		ctx:    ctx,
		game:   game,
		assets: assets,
		input:  core.NewInputFrame(),
	}

	if opts.Logger != nil {
		opts.Logger.Debug("window opened", "width", w, "height", h)
	}
	if err := ebiten.RunGame(r); err != nil {
		return fmt.Errorf("window backend: %w", err)
	}
	return nil
}

// runner adapts a registry.Game to ebiten.Game.
type runner struct {
	ctx    context.Context
	game   registry.Game
	assets *Assets
	input  core.InputFrame
	draw   core.DrawList
}

// Update polls input and advances the game one tick.
func (r *runner) Update() error {
	if r.ctx.Err() != nil || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	r.input.Clear()
	if flapPressed() {
		r.input.Set(core.ActionFlap)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		r.input.Set(core.ActionPause)
	}

	r.game.Step(r.input)
	return nil
}

// flapPressed reports a flap from any mouse button, a touch, or Space/Up/W.
func flapPressed() bool {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		return true
	}
	if len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		return true
	}
	for _, k := range []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW} {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// Draw replays the game's draw list onto the window.
func (r *runner) Draw(screen *ebiten.Image) {
	screen.Fill(clearColor)
	r.game.Draw(&r.draw)

	for _, cmd := range r.draw.Cmds {
		switch cmd.Kind {
		case core.DrawSprite:
			r.drawSprite(screen, cmd.Sprite, cmd.Rect)
		case core.DrawText:
			op := &text.DrawOptions{}
			op.GeoM.Translate(float64(cmd.Rect.X), float64(cmd.Rect.Y))
			op.ColorScale.ScaleWithColor(textColor)
			text.Draw(screen, cmd.Text, r.assets.Face(), op)
		case core.DrawBanner:
			r.drawBanner(screen, cmd.Text, cmd.Subtitle)
		}
	}
}

func (r *runner) drawSprite(screen *ebiten.Image, s core.Sprite, dst core.Rect) {
	img := r.assets.Sprite(s)
	if img == nil || dst.W <= 0 || dst.H <= 0 {
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM = stretchGeoM(b.Dx(), b.Dy(), dst)
	screen.DrawImage(img, op)
}

func (r *runner) drawBanner(screen *ebiten.Image, title, subtitle string) {
	face := r.assets.Face()
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	lineH := face.Metrics().HAscent + face.Metrics().HDescent

	box := bannerRect(sw, sh, int(lineH*3))
	screen.SubImage(box).(*ebiten.Image).Fill(bannerColor)

	for i, line := range []string{title, subtitle} {
		op := &text.DrawOptions{}
		op.PrimaryAlign = text.AlignCenter
		op.GeoM.Translate(float64(sw)/2, float64(box.Min.Y)+lineH*(0.5+1.2*float64(i)))
		op.ColorScale.ScaleWithColor(textColor)
		text.Draw(screen, line, face, op)
	}
}

// Layout keeps the logical screen at the playfield size; Ebitengine scales
// it to the window.
func (r *runner) Layout(_, _ int) (int, int) {
	return r.game.PlayfieldSize()
}

// stretchGeoM maps an image of size srcW x srcH onto dst.
func stretchGeoM(srcW, srcH int, dst core.Rect) ebiten.GeoM {
	var m ebiten.GeoM
	if srcW > 0 && srcH > 0 {
		m.Scale(float64(dst.W)/float64(srcW), float64(dst.H)/float64(srcH))
	}
	m.Translate(float64(dst.X), float64(dst.Y))
	return m
}

// bannerRect returns a box spanning the middle half of the screen width,
// vertically centered.
func bannerRect(screenW, screenH, height int) image.Rectangle {
	x0 := screenW / 4
	y0 := (screenH - height) / 2
	return image.Rect(x0, y0, screenW-x0, y0+height)
}

func init() {
	registry.Register(BackendID, func() registry.Backend {
		return Backend{}
	})
}
