package mapgen

import (
	"errors"
	"fmt"
	"math/rand"
)

// DefaultDoorTolerance is the maximum gap between two edges still considered
// shared.
const DefaultDoorTolerance = 1.0

// ErrInvalidParams is returned when the generation parameters cannot produce
// a partition.
var ErrInvalidParams = errors.New("mapgen: invalid parameters")

// Params configures a generation pass.
type Params struct {
	Width, Height float64
	MinLeafSize   float64
	MaxLeafSize   float64
	DoorTolerance float64 // defaults to DefaultDoorTolerance when zero
}

// Validate checks that the parameters describe a non-empty area and a
// sensible leaf size range.
func (p Params) Validate() error {
	switch {
	case p.Width <= 0 || p.Height <= 0:
		return fmt.Errorf("%w: area %vx%v must be positive", ErrInvalidParams, p.Width, p.Height)
	case p.MinLeafSize <= 0:
		return fmt.Errorf("%w: min leaf size %v must be positive", ErrInvalidParams, p.MinLeafSize)
	case p.MaxLeafSize < p.MinLeafSize:
		return fmt.Errorf("%w: max leaf size %v below min leaf size %v", ErrInvalidParams, p.MaxLeafSize, p.MinLeafSize)
	case p.DoorTolerance < 0:
		return fmt.Errorf("%w: negative door tolerance %v", ErrInvalidParams, p.DoorTolerance)
	}
	return nil
}

// Layout is the result of one generation pass.
type Layout struct {
	Width, Height float64
	// Nodes holds every room produced, split or not, in creation order.
	// Nodes[0] is the root.
	Nodes    []Room
	Doorways []Doorway
}

// Generate partitions a Width x Height area anchored at the origin. The
// random source decides split axes and offsets; pass a seeded source for a
// reproducible layout.
func Generate(rng *rand.Rand, p Params) (*Layout, error) {
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidParams)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if p.DoorTolerance == 0 {
		p.DoorTolerance = DefaultDoorTolerance
	}

	nodes := []Room{{W: p.Width, H: p.Height, Parent: -1}}

	for changed := true; changed; {
		changed = false
		// Children appended during this pass are visited on the next one.
		n := len(nodes)
		for i := 0; i < n; i++ {
			if !nodes[i].Terminal() || !nodes[i].oversized(p.MaxLeafSize) {
				continue
			}
			a, b, ok := nodes[i].split(rng, p.MinLeafSize)
			if !ok {
				continue
			}
			a.Parent, b.Parent = i, i
			nodes = append(nodes, a, b)
			changed = true
		}
	}

	l := &Layout{Width: p.Width, Height: p.Height, Nodes: nodes}
	l.Doorways = findDoorways(l.Rooms(), p.DoorTolerance)
	return l, nil
}

// Rooms returns the terminal rooms in creation order.
func (l *Layout) Rooms() []Room {
	rooms := make([]Room, 0, len(l.Nodes)/2+1)
	for _, n := range l.Nodes {
		if n.Terminal() {
			rooms = append(rooms, n)
		}
	}
	return rooms
}

// Children returns the indices of the nodes split from node i.
func (l *Layout) Children(i int) []int {
	var out []int
	for j, n := range l.Nodes {
		if n.Parent == i {
			out = append(out, j)
		}
	}
	return out
}

// RoomAt returns the terminal room containing the point.
func (l *Layout) RoomAt(x, y float64) (Room, bool) {
	for _, r := range l.Rooms() {
		if r.Contains(x, y) {
			return r, true
		}
	}
	return Room{}, false
}
