// Package mapgen partitions a rectangular area into rooms with a binary space
// partition and derives the doorways and wall tiles between them.
// It has no dependencies on ebitengine, donburi or resolv.
package mapgen

import "math/rand"

// splitRatio is the aspect ratio above which a room is always cut across its
// longer axis.
const splitRatio = 1.25

// Room is a node of the partition. Only rooms that were never subdivided are
// playable.
type Room struct {
	X, Y, W, H float64

	// Subdivided is set once the room has been split into two children.
	Subdivided bool
	// Unsplittable marks a room that still exceeds the maximum leaf size but
	// has no valid split offset left.
	Unsplittable bool
	// Parent is the index of the node this room was split from, -1 for the root.
	Parent int
}

// Terminal reports whether the room is a leaf of the partition.
func (r Room) Terminal() bool {
	return !r.Subdivided
}

func (r Room) Right() float64  { return r.X + r.W }
func (r Room) Bottom() float64 { return r.Y + r.H }

// Center returns the centre point of the room.
func (r Room) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Area returns W*H.
func (r Room) Area() float64 {
	return r.W * r.H
}

// Contains reports whether the point lies inside the room (edges inclusive).
func (r Room) Contains(x, y float64) bool {
	return x >= r.X && x <= r.Right() && y >= r.Y && y <= r.Bottom()
}

func (r Room) oversized(maxLeaf float64) bool {
	return r.W > maxLeaf || r.H > maxLeaf
}

// split cuts the room in two. A room that is too short along the chosen axis
// is flagged Unsplittable and left alone.
func (r *Room) split(rng *rand.Rand, minLeaf float64) (Room, Room, bool) {
	if r.Subdivided || r.Unsplittable {
		return Room{}, Room{}, false
	}

	horizontal := rng.Intn(2) == 0 // cut across the height
	if r.W > r.H && r.W/r.H >= splitRatio {
		horizontal = false
	} else if r.H > r.W && r.H/r.W >= splitRatio {
		horizontal = true
	}

	length := r.W
	if horizontal {
		length = r.H
	}

	// The other axis is not tried: a near-square room whose random axis is too
	// short stays Unsplittable even if the other axis could still be cut.
	hi := length - minLeaf
	if hi <= minLeaf {
		r.Unsplittable = true
		return Room{}, Room{}, false
	}
	offset := minLeaf + rng.Float64()*(hi-minLeaf)

	var a, b Room
	if horizontal {
		a = Room{X: r.X, Y: r.Y, W: r.W, H: offset}
		b = Room{X: r.X, Y: r.Y + offset, W: r.W, H: r.H - offset}
	} else {
		a = Room{X: r.X, Y: r.Y, W: offset, H: r.H}
		b = Room{X: r.X + offset, Y: r.Y, W: r.W - offset, H: r.H}
	}
	r.Subdivided = true
	return a, b, true
}
