// Package gamemath holds the engine-free movement and overlap math shared by
// the client and the headless server.
package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Direction returns the unit vector from `from` to `to`, or the zero vector
// when the points coincide.
func Direction(from, to dmath.Vec2) dmath.Vec2 {
	dx, dy := to.X-from.X, to.Y-from.Y
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist == 0 {
		return dmath.Vec2{}
	}
	return dmath.Vec2{X: dx / dist, Y: dy / dist}
}

// StepToward returns the displacement for moving from `from` toward `to` at
// speed units per second over dt seconds.
func StepToward(from, to dmath.Vec2, speed, dt float64) dmath.Vec2 {
	dir := Direction(from, to)
	return dmath.Vec2{X: dir.X * speed * dt, Y: dir.Y * speed * dt}
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b dmath.Vec2) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// ClampFloat clamps v to [lo, hi].
func ClampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
