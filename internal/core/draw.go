package core

// Sprite identifies an image the display backend owns.
type Sprite int

const (
	SpriteBackground Sprite = iota
	SpriteActor
	SpriteUpperPipe
	SpriteLowerPipe
)

// String returns the sprite name used in logs and error messages.
func (s Sprite) String() string {
	switch s {
	case SpriteBackground:
		return "background"
	case SpriteActor:
		return "actor"
	case SpriteUpperPipe:
		return "upper_pipe"
	case SpriteLowerPipe:
		return "lower_pipe"
	default:
		return "unknown"
	}
}

// DrawKind is the type of a draw command.
type DrawKind int

const (
	DrawSprite DrawKind = iota // Stretch a sprite over Rect
	DrawText                   // Draw Text with its top-left corner at Rect.X, Rect.Y
	DrawBanner                 // Centered message box with Text and Subtitle
)

// DrawCmd is a single backend-independent draw command in playfield coordinates.
type DrawCmd struct {
	Kind     DrawKind
	Sprite   Sprite
	Rect     Rect
	Text     string
	Subtitle string
}

// DrawList collects the draw commands for one frame in painter's order.
// The backend clears its surface before replaying the list and presents after.
type DrawList struct {
	Width, Height int // Playfield size the coordinates refer to
	Cmds          []DrawCmd
}

// Reset empties the list for a new frame, keeping its capacity.
func (l *DrawList) Reset(width, height int) {
	l.Width = width
	l.Height = height
	l.Cmds = l.Cmds[:0]
}

// Sprite appends a sprite draw.
func (l *DrawList) Sprite(s Sprite, r Rect) {
	l.Cmds = append(l.Cmds, DrawCmd{Kind: DrawSprite, Sprite: s, Rect: r})
}

// Text appends a text draw at (x, y).
func (l *DrawList) Text(x, y int, text string) {
	l.Cmds = append(l.Cmds, DrawCmd{Kind: DrawText, Rect: NewRect(x, y, 0, 0), Text: text})
}

// Banner appends a centered message box.
func (l *DrawList) Banner(title, subtitle string) {
	l.Cmds = append(l.Cmds, DrawCmd{Kind: DrawBanner, Text: title, Subtitle: subtitle})
}
