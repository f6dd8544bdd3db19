package btnmatrix

// Point is a pixel position.
type Point struct {
	X, Y int
}

// Area is an axis-aligned rectangle with inclusive corners, so a one pixel
// wide area has X1 == X2.
type Area struct {
	X1, Y1 int
	X2, Y2 int
}

// Width returns the number of pixel columns covered by the area.
func (a Area) Width() int {
	return a.X2 - a.X1 + 1
}

// Height returns the number of pixel rows covered by the area.
func (a Area) Height() int {
	return a.Y2 - a.Y1 + 1
}

// Contains reports whether p lies inside the area, edges included.
func (a Area) Contains(p Point) bool {
	return p.X >= a.X1 && p.X <= a.X2 && p.Y >= a.Y1 && p.Y <= a.Y2
}

// Offset returns the area moved by dx, dy.
func (a Area) Offset(dx, dy int) Area {
	return Area{X1: a.X1 + dx, Y1: a.Y1 + dy, X2: a.X2 + dx, Y2: a.Y2 + dy}
}

// Intersects reports whether the two areas share at least one pixel.
func (a Area) Intersects(b Area) bool {
	return a.X1 <= b.X2 && b.X1 <= a.X2 && a.Y1 <= b.Y2 && b.Y1 <= a.Y2
}

// Center returns the middle pixel, rounding towards the top-left.
func (a Area) Center() Point {
	return Point{X: a.X1 + a.Width()/2, Y: a.Y1 + a.Height()/2}
}

// Insets holds the padding of each container edge.
type Insets struct {
	Left, Top, Right, Bottom int
}

// Direction is the base text direction of the matrix.
type Direction int

const (
	LeftToRight Direction = iota
	RightToLeft
)

func (d Direction) String() string {
	if d == RightToLeft {
		return "rtl"
	}
	return "ltr"
}
