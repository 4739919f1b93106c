package mapgen

import "math"

// Tile is the centre of a wall tile.
type Tile struct {
	X, Y float64
}

type tileKey struct{ x, y int64 }

func keyOf(x, y float64) tileKey {
	return tileKey{int64(math.Round(x * 1000)), int64(math.Round(y * 1000))}
}

// WallTiles lays wall tiles along the perimeter of every terminal room.
// Tiles sit on a global grid with a spacing of twice tileSize so that the
// walls of neighbouring rooms coincide; duplicates are dropped. Tiles within
// doorHalfWidth of a doorway along its edge are left out.
func (l *Layout) WallTiles(tileSize, doorHalfWidth float64) []Tile {
	if tileSize <= 0 {
		return nil
	}
	spacing := tileSize * 2
	seen := make(map[tileKey]bool)
	var tiles []Tile

	add := func(x, y float64) {
		k := keyOf(x, y)
		if seen[k] {
			return
		}
		seen[k] = true
		if l.inDoorway(x, y, doorHalfWidth) {
			return
		}
		tiles = append(tiles, Tile{X: x, Y: y})
	}

	for _, r := range l.Rooms() {
		for _, x := range gridSteps(r.X, r.Right(), spacing) {
			add(x, r.Y)
			add(x, r.Bottom())
		}
		for _, y := range gridSteps(r.Y, r.Bottom(), spacing) {
			add(r.X, y)
			add(r.Right(), y)
		}
	}
	return tiles
}

// gridSteps returns the multiples of spacing within [from, to], always
// including both ends so corners are closed.
func gridSteps(from, to, spacing float64) []float64 {
	steps := []float64{from}
	for k := math.Floor(from/spacing) + 1; k*spacing < to; k++ {
		steps = append(steps, k*spacing)
	}
	if to > from {
		steps = append(steps, to)
	}
	return steps
}

// inDoorway reports whether the tile lies on a doorway's edge line within
// halfWidth of the doorway point.
func (l *Layout) inDoorway(x, y, halfWidth float64) bool {
	const edgeTol = 0.5
	for _, d := range l.Doorways {
		if d.Side.Vertical() && math.Abs(x-d.X) <= edgeTol && math.Abs(y-d.Y) < halfWidth {
			return true
		}
		if !d.Side.Vertical() && math.Abs(y-d.Y) <= edgeTol && math.Abs(x-d.X) < halfWidth {
			return true
		}
	}
	return false
}
