package richtext

// Vec2 is a 2D point or offset in pixels.
type Vec2 struct {
	X, Y float64
}

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Size is a width/height pair in pixels.
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned rectangle. Min is the top-left corner.
type Rect struct {
	Min, Max Vec2
}

// RectFromPosSize returns the rectangle at pos with the given size.
func RectFromPosSize(pos Vec2, s Size) Rect {
	return Rect{Min: pos, Max: Vec2{X: pos.X + s.Width, Y: pos.Y + s.Height}}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Size returns the size of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

// Contains reports whether p lies inside r. The max edges are exclusive.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Overlaps reports whether r and o share any area.
// A zero-sized rectangle overlaps o if it lies inside it,
// so that zero-width glyph quads are not culled by a clip rectangle.
func (r Rect) Overlaps(o Rect) bool {
	return r.Min.X <= o.Max.X && o.Min.X <= r.Max.X &&
		r.Min.Y <= o.Max.Y && o.Min.Y <= r.Max.Y
}

// Padding is extra space around an element's content.
type Padding struct {
	Left, Top, Right, Bottom float64
}

// Horizontal returns Left+Right.
func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

// Vertical returns Top+Bottom.
func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

// Position returns the top-left offset the padding introduces.
func (p Padding) Position() Vec2 {
	return Vec2{X: p.Left, Y: p.Top}
}
