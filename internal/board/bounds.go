package board

// Vec2 is a point or size in board space.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{v.X * f, v.Y * f}
}

// Bounds is an axis-aligned rectangle anchored at its bottom left corner.
type Bounds struct {
	Position Vec2
	Size     Vec2
}

// Contains is inclusive on every side.
func (b Bounds) Contains(p Vec2) bool {
	return p.X >= b.Position.X &&
		p.Y >= b.Position.Y &&
		p.X <= b.Position.X+b.Size.X &&
		p.Y <= b.Position.Y+b.Size.Y
}
