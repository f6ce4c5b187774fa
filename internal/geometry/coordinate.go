package geometry

import "fmt"

// Coordinate is an integer grid position.
type Coordinate struct {
	X, Y int
}

// Add returns the coordinate obtained by adding the two coordinates
// component-wise.
func (c Coordinate) Add(o Coordinate) Coordinate {
	return Coordinate{X: c.X + o.X, Y: c.Y + o.Y}
}

// Sub returns the coordinate obtained by subtracting o from c
// component-wise.
func (c Coordinate) Sub(o Coordinate) Coordinate {
	return Coordinate{X: c.X - o.X, Y: c.Y - o.Y}
}

// InBounds reports whether c lies inside a W-by-W grid.
func (c Coordinate) InBounds(w int) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < w && c.Y < w
}

// Index returns the linear row-major index of c in a W-by-W grid.
// Callers must check InBounds first; Index does not validate.
func (c Coordinate) Index(w int) int {
	return c.Y*w + c.X
}

// String renders the coordinate the way the contestant protocol expects:
// "<x> <y>".
func (c Coordinate) String() string {
	return fmt.Sprintf("%d %d", c.X, c.Y)
}

// Unseen is the sentinel coordinate sent to a contestant in place of an
// opponent pawn it cannot see.
var Unseen = Coordinate{X: -1, Y: -1}

// Dist returns the Chebyshev distance between a and b, used for
// visibility.
func Dist(a, b Coordinate) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}
