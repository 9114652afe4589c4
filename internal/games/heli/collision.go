package heli

// HorizontalBound selects how the right side of the horizontal overlap test is computed.
type HorizontalBound int

const (
	// BoundObstacle tests the actor's left edge against the obstacle's right edge.
	BoundObstacle HorizontalBound = iota
	// BoundLegacy tests the actor's left edge against its own x plus the pipe
	// width, which always holds. Any obstacle whose left edge is behind the
	// actor's leading edge then counts as overlapping, even long after it has
	// been passed.
	BoundLegacy
)

// Overlaps reports whether the actor's horizontal span intersects the obstacle's.
func (b HorizontalBound) Overlaps(a Actor, o *Obstacle, spec PipeSpec) bool {
	if a.Right() <= o.X {
		return false
	}
	if b == BoundLegacy {
		return a.Left() < a.Left()+spec.Width
	}
	return a.Left() < spec.Right(o)
}

// OutsideGap reports whether the actor reaches into either pipe section.
// The actor's top edge is compared with the top of the gap and its bottom
// edge with the bottom of the gap.
func OutsideGap(a Actor, o *Obstacle, spec PipeSpec) bool {
	return a.Top() < spec.GapTop(o) || a.Bottom() > spec.GapBottom(o)
}

// Hits reports whether the actor collides with o in a playfield of height
// playfieldH. With the obstacle bound this is a plain overlap test against the
// two pipe sections; the legacy bound keeps its own horizontal comparison.
func (b HorizontalBound) Hits(a Actor, o *Obstacle, spec PipeSpec, playfieldH int) bool {
	if b == BoundLegacy {
		return b.Overlaps(a, o, spec) && OutsideGap(a, o, spec)
	}
	r := a.Rect()
	return r.Intersects(spec.UpperRect(o)) || r.Intersects(spec.LowerRect(o, playfieldH))
}

// Contact is the outcome of scanning the obstacles for one tick.
type Contact struct {
	Scored   int       // Obstacles newly passed this tick
	Collided bool      // Whether the actor hit a pipe
	Hit      *Obstacle // The first obstacle hit, if any
}

// Resolve walks the live obstacles oldest first, marking newly passed ones and
// stopping at the first collision. An obstacle is passed once the actor's
// left edge is strictly beyond its right edge; the Passed flag keeps it from
// scoring twice.
func Resolve(a Actor, obstacles *ObstacleQueue, spec PipeSpec, playfieldH int, bound HorizontalBound) Contact {
	var c Contact
	for i := 0; i < obstacles.Len(); i++ {
		o := obstacles.At(i)

		if !o.Passed && a.Left() > spec.Right(o) {
			o.Passed = true
			c.Scored++
		}

		if bound.Hits(a, o, spec, playfieldH) {
			c.Collided = true
			c.Hit = o
			break
		}
	}
	return c
}
