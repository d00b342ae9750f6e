// Package core provides fundamental types and utilities shared by the game
// and its front ends. It has no external dependencies (no Bubble Tea, no
// ebiten, no audio) so simulation logic stays pure and testable.
package core

// Box is an axis-aligned bounding box in playfield pixels.
// Right and Bottom are edge coordinates, so Width is Right-Left.
type Box struct {
	Left, Top, Right, Bottom int
}

// NewBox creates a box from its top-left corner and size.
func NewBox(x, y, w, h int) Box {
	return Box{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// CenteredBox creates a box of the given size centered on (cx, cy).
// Odd sizes put the extra pixel on the right/bottom side.
func CenteredBox(cx, cy, w, h int) Box {
	return NewBox(cx-w/2, cy-h/2, w, h)
}

// Width returns the horizontal extent of the box.
func (b Box) Width() int {
	return b.Right - b.Left
}

// Height returns the vertical extent of the box.
func (b Box) Height() int {
	return b.Bottom - b.Top
}

// CenterX returns the horizontal center, rounded towards the left edge.
func (b Box) CenterX() int {
	return b.Left + b.Width()/2
}

// CenterY returns the vertical center, rounded towards the top edge.
func (b Box) CenterY() int {
	return b.Top + b.Height()/2
}

// Translate returns the box moved by (dx, dy).
func (b Box) Translate(dx, dy int) Box {
	return Box{
		Left:   b.Left + dx,
		Top:    b.Top + dy,
		Right:  b.Right + dx,
		Bottom: b.Bottom + dy,
	}
}

// Overlaps reports whether other touches b.
//
// The test is deliberately one-sided: on each axis one of other's edges must
// fall inside b's closed interval. Touching edges count as overlap, and an
// other box that strictly contains b on an axis is not detected. Callers rely
// on the receiver being the larger target (defender, alien) and the argument
// the projectile.
func (b Box) Overlaps(other Box) bool {
	inX := (b.Left <= other.Left && other.Left <= b.Right) ||
		(b.Left <= other.Right && other.Right <= b.Right)
	inY := (b.Top <= other.Top && other.Top <= b.Bottom) ||
		(b.Top <= other.Bottom && other.Bottom <= b.Bottom)
	return inX && inY
}

// Union returns the smallest box containing both b and other.
func (b Box) Union(other Box) Box {
	return Box{
		Left:   Min(b.Left, other.Left),
		Top:    Min(b.Top, other.Top),
		Right:  Max(b.Right, other.Right),
		Bottom: Max(b.Bottom, other.Bottom),
	}
}

// BoundingBox returns the union of all boxes.
// The second result is false when no boxes are given.
func BoundingBox(boxes ...Box) (Box, bool) {
	if len(boxes) == 0 {
		return Box{}, false
	}
	u := boxes[0]
	for _, b := range boxes[1:] {
		u = u.Union(b)
	}
	return u, true
}

// DiffToCenter returns the offset that moves inner so its center lines up
// with the center of outer.
func DiffToCenter(inner, outer Box) (dx, dy int) {
	dx = (outer.Left + outer.Width()/2) - (inner.Left + inner.Width()/2)
	dy = (outer.Top + outer.Height()/2) - (inner.Top + inner.Height()/2)
	return dx, dy
}

// Rect is a cell-space rectangle used by the terminal renderers.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects reports whether the rectangles share at least one cell.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
