package geom

// Rect is a rectangle in viewport coordinates. Layout code keeps W and H
// non-negative; use Clamped to repair rects coming from user gestures.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the point (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Right returns the first x coordinate past the right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the first y coordinate past the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// Empty reports whether r has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Clamped returns r shrunk and moved so it lies inside bounds.
// Size is reduced first, so a rect that already fits keeps its size and
// only slides back into view.
func (r Rect) Clamped(bounds Rect) Rect {
	if r.W > bounds.W {
		r.W = bounds.W
	}
	if r.H > bounds.H {
		r.H = bounds.H
	}
	if r.W < 0 {
		r.W = 0
	}
	if r.H < 0 {
		r.H = 0
	}
	r.X = Clamp(r.X, bounds.X, bounds.Right()-r.W)
	r.Y = Clamp(r.Y, bounds.Y, bounds.Bottom()-r.H)
	return r
}

// Axis is the direction panels stack along inside a zone.
type Axis int

const (
	Vertical Axis = iota
	Horizontal
)

// Clamp bounds v to [lo, hi]. If hi < lo the lower bound wins.
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi && hi >= lo {
		return hi
	}
	return v
}
