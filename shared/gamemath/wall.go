package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// BodyScale is the share of a tile an occupant's half-extent covers.
const BodyScale = 0.9

// Overlaps reports whether two centred boxes with the given half-extents
// intersect. Touching edges do not count.
func Overlaps(a dmath.Vec2, halfA float64, b dmath.Vec2, halfB float64) bool {
	return math.Abs(a.X-b.X) < halfA+halfB && math.Abs(a.Y-b.Y) < halfA+halfB
}

// CanOccupy reports whether a body centred at target fits without touching
// any wall. Walls have a half-extent of tileSize, the body 0.9*tileSize.
func CanOccupy(target dmath.Vec2, walls []dmath.Vec2, tileSize float64) bool {
	for _, w := range walls {
		if Overlaps(target, tileSize*BodyScale, w, tileSize) {
			return false
		}
	}
	return true
}
