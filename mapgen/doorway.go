package mapgen

import "math"

// Side names the edge of the first room on which a doorway sits.
type Side int

const (
	SideLeft Side = iota
	SideRight
	SideTop
	SideBottom
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	}
	return "unknown"
}

// Opposite returns the side as seen from the other room.
func (s Side) Opposite() Side {
	switch s {
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	case SideTop:
		return SideBottom
	}
	return SideTop
}

// Vertical reports whether the doorway sits on a vertical edge (left or right).
func (s Side) Vertical() bool {
	return s == SideLeft || s == SideRight
}

// Doorway is a passable point on the edge shared by two terminal rooms.
// A and B index into Layout.Rooms().
type Doorway struct {
	X, Y float64
	A, B int
	Side Side // edge of room A
}

// DetectDoorways returns the doorway points on every edge shared by a and b.
// Edges count as shared when they lie within tol of each other and overlap
// by more than tol. The result does not depend on operand order apart from
// the reported side.
func DetectDoorways(a, b Room, tol float64) []Doorway {
	var out []Doorway

	// a's right edge against b's left edge, and the mirror case.
	if d, ok := sharedVertical(a.Right(), b.X, a, b, tol); ok {
		d.Side = SideRight
		out = append(out, d)
	}
	if d, ok := sharedVertical(a.X, b.Right(), a, b, tol); ok {
		d.Side = SideLeft
		out = append(out, d)
	}
	// a's bottom edge against b's top edge, and the mirror case.
	if d, ok := sharedHorizontal(a.Bottom(), b.Y, a, b, tol); ok {
		d.Side = SideBottom
		out = append(out, d)
	}
	if d, ok := sharedHorizontal(a.Y, b.Bottom(), a, b, tol); ok {
		d.Side = SideTop
		out = append(out, d)
	}
	return out
}

func sharedVertical(edgeA, edgeB float64, a, b Room, tol float64) (Doorway, bool) {
	if math.Abs(edgeA-edgeB) > tol {
		return Doorway{}, false
	}
	lo := math.Max(a.Y, b.Y)
	hi := math.Min(a.Bottom(), b.Bottom())
	if hi-lo <= tol {
		return Doorway{}, false
	}
	return Doorway{X: (edgeA + edgeB) / 2, Y: (lo + hi) / 2}, true
}

func sharedHorizontal(edgeA, edgeB float64, a, b Room, tol float64) (Doorway, bool) {
	if math.Abs(edgeA-edgeB) > tol {
		return Doorway{}, false
	}
	lo := math.Max(a.X, b.X)
	hi := math.Min(a.Right(), b.Right())
	if hi-lo <= tol {
		return Doorway{}, false
	}
	return Doorway{X: (lo + hi) / 2, Y: (edgeA + edgeB) / 2}, true
}

func findDoorways(rooms []Room, tol float64) []Doorway {
	var doors []Doorway
	for i := 0; i < len(rooms); i++ {
		for j := i + 1; j < len(rooms); j++ {
			for _, d := range DetectDoorways(rooms[i], rooms[j], tol) {
				d.A, d.B = i, j
				doors = append(doors, d)
			}
		}
	}
	return doors
}

// Connected reports whether every terminal room can be reached from the first
// one through doorways.
func (l *Layout) Connected() bool {
	rooms := l.Rooms()
	if len(rooms) == 0 {
		return false
	}
	adj := make(map[int][]int, len(rooms))
	for _, d := range l.Doorways {
		adj[d.A] = append(adj[d.A], d.B)
		adj[d.B] = append(adj[d.B], d.A)
	}
	seen := map[int]bool{0: true}
	queue := []int{0}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range adj[cur] {
			if !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}
	return len(seen) == len(rooms)
}
