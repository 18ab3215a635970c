package entities

import "fmt"

// DefaultTolerance is the pixel slack used by Intersects.
const DefaultTolerance = 10

// Point is a pixel coordinate. It is mutated in place by Move and the setters.
type Point struct {
	X, Y int
}

// Move shifts the point by value pixels in direction d.
func (p *Point) Move(d Direction, value int) {
	dx, dy := DirDelta(d)
	p.X += dx * value
	p.Y += dy * value
}

func (p *Point) SetX(x int) *Point {
	p.X = x
	return p
}

func (p *Point) SetY(y int) *Point {
	p.Y = y
	return p
}

func (p Point) Equals(o Point) bool {
	return p.X == o.X && p.Y == o.Y
}

// Intersects is IntersectsWithin with DefaultTolerance.
func (p Point) Intersects(o Point) bool {
	return p.IntersectsWithin(o, DefaultTolerance)
}

// IntersectsWithin reports whether both axis deltas are within tolerance.
func (p Point) IntersectsWithin(o Point, tolerance int) bool {
	return abs(p.X-o.X) <= tolerance && abs(p.Y-o.Y) <= tolerance
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
