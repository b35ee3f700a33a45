package surface

import "github.com/dshills/areaselect/internal/input/pointer"

// Rect is an axis-aligned rectangle of terminal cells.
// X, Y is the top-left cell; W and H are the size in cells.
type Rect struct {
	X, Y int
	W, H int
}

// RectFromPoints returns the smallest rectangle covering both cells.
func RectFromPoints(a, b pointer.Position) Rect {
	x0, x1 := a.X, b.X
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	y0, y1 := a.Y, b.Y
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return Rect{X: x0, Y: y0, W: x1 - x0 + 1, H: y1 - y0 + 1}
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.H }

// IsEmpty reports whether the rectangle covers no cells.
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// Origin returns the top-left cell.
func (r Rect) Origin() pointer.Position {
	return pointer.Position{X: r.X, Y: r.Y}
}

// Contains reports whether the cell at p lies inside r.
func (r Rect) Contains(p pointer.Position) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Intersects reports whether r and o share at least one cell.
func (r Rect) Intersects(o Rect) bool {
	if r.IsEmpty() || o.IsEmpty() {
		return false
	}
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Translate returns r moved by d.
func (r Rect) Translate(d pointer.Position) Rect {
	r.X += d.X
	r.Y += d.Y
	return r
}
