package physics

// Overlaps reports whether two axis-aligned boxes intersect.
// Edges that merely touch do not count.
func Overlaps(a, b Bounds) bool {
	return a.Right() > b.Left() && a.Bottom() > b.Top() &&
		a.Left() < b.Right() && a.Top() < b.Bottom()
}
