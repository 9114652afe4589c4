package window

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png" // Register the PNG decoder for sprite files
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/heli-arcade/internal/config"
	"github.com/vovakirdan/heli-arcade/internal/core"
)

// Assets holds every texture and the font, loaded once at startup.
type Assets struct {
	sprites map[core.Sprite]*ebiten.Image
	face    text.Face
}

// spritePaths lists the sprite files named by the asset config.
func spritePaths(cfg config.HeliAssets) map[core.Sprite]string {
	return map[core.Sprite]string{
		core.SpriteBackground: cfg.ResolveAsset(cfg.Background),
		core.SpriteActor:      cfg.ResolveAsset(cfg.Actor),
		core.SpriteUpperPipe:  cfg.ResolveAsset(cfg.UpperPipe),
		core.SpriteLowerPipe:  cfg.ResolveAsset(cfg.LowerPipe),
	}
}

// LoadAssets loads all sprites and the font. The first failure is returned
// naming the resource that could not be loaded.
func LoadAssets(cfg config.HeliAssets) (*Assets, error) {
	a := &Assets{sprites: make(map[core.Sprite]*ebiten.Image, 4)}

	for sprite, path := range spritePaths(cfg) {
		img, err := decodeImage(path)
		if err != nil {
			return nil, fmt.Errorf("load %s texture: %w", sprite, err)
		}
		a.sprites[sprite] = ebiten.NewImageFromImage(img)
	}

	src, err := loadFontSource(cfg.ResolveAsset(cfg.Font))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	a.face = &text.GoTextFace{Source: src, Size: cfg.FontSize}

	return a, nil
}

// Sprite returns the texture for s.
func (a *Assets) Sprite(s core.Sprite) *ebiten.Image {
	return a.sprites[s]
}

// Face returns the text face used for the score and banners.
func (a *Assets) Face() text.Face {
	return a.face
}

// decodeImage reads and decodes an image file.
func decodeImage(path string) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// readFont returns TTF bytes from a file or the bundled Go font.
func readFont(path string) ([]byte, error) {
	if path == config.BuiltinFont {
		return goregular.TTF, nil
	}
	return os.ReadFile(path)
}

func loadFontSource(path string) (*text.GoTextFaceSource, error) {
	data, err := readFont(path)
	if err != nil {
		return nil, err
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return src, nil
}
