package game

// Rect is an axis-aligned bounding box in playfield pixel coordinates.
// Every overlap test in the game goes through Intersects.
type Rect struct {
	X, Y float64
	W, H float64
}

// Intersects reports strict AABB overlap. Rects that merely touch along
// an edge do not collide, so a tank flush against a wall is not in
// contact with it.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W &&
		r.X+r.W > o.X &&
		r.Y < o.Y+o.H &&
		r.Y+r.H > o.Y
}

// Contains reports whether the point (px,py) lies inside r.
func (r Rect) Contains(px, py float64) bool {
	return px >= r.X && px < r.X+r.W && py >= r.Y && py < r.Y+r.H
}
