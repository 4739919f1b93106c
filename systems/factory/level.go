package factory

import (
	"fmt"
	"math/rand"

	"github.com/automoto/shapebattle/archetypes"
	"github.com/automoto/shapebattle/components"
	cfg "github.com/automoto/shapebattle/config"
	"github.com/automoto/shapebattle/mapgen"
	"github.com/automoto/shapebattle/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// LevelParams returns the generation parameters for a window-sized level.
func LevelParams() mapgen.Params {
	return mapgen.Params{
		Width:         float64(cfg.C.Width),
		Height:        float64(cfg.C.Height),
		MinLeafSize:   cfg.Map.MinLeafSize,
		MaxLeafSize:   cfg.Map.MaxLeafSize,
		DoorTolerance: cfg.Map.DoorTolerance,
	}
}

// CreateLevel generates a room layout and builds its walls.
func CreateLevel(ecs *ecs.ECS, rng *rand.Rand) (*donburi.Entry, error) {
	layout, err := mapgen.Generate(rng, LevelParams())
	if err != nil {
		return nil, fmt.Errorf("create level: %w", err)
	}

	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{Layout: layout, Generation: 1})
	buildWalls(ecs, layout)

	return level, nil
}

// RegenerateLevel replaces the walls of an existing level with a fresh
// layout.
func RegenerateLevel(ecs *ecs.ECS, level *donburi.Entry, rng *rand.Rand) error {
	layout, err := mapgen.Generate(rng, LevelParams())
	if err != nil {
		return fmt.Errorf("regenerate level: %w", err)
	}

	ClearWalls(ecs)
	data := components.Level.Get(level)
	data.Layout = layout
	data.Generation++
	buildWalls(ecs, layout)

	return nil
}

func buildWalls(ecs *ecs.ECS, layout *mapgen.Layout) {
	for _, t := range layout.WallTiles(cfg.Map.TileSize, cfg.Map.DoorHalfWidth) {
		CreateWall(ecs, t.X, t.Y)
	}
}

// ClearWalls removes every wall tile from the world and the collision space.
func ClearWalls(ecs *ecs.ECS) {
	var walls []*donburi.Entry
	tags.Wall.Each(ecs.World, func(e *donburi.Entry) {
		walls = append(walls, e)
	})

	spaceEntry, hasSpace := components.Space.First(ecs.World)
	for _, w := range walls {
		if hasSpace {
			components.Space.Get(spaceEntry).Remove(components.Object.Get(w).Object)
		}
		ecs.World.Remove(w.Entity())
	}
}

// SpawnPoint returns the centre of the first room of the layout.
func SpawnPoint(layout *mapgen.Layout) dmath.Vec2 {
	rooms := layout.Rooms()
	if len(rooms) == 0 {
		return dmath.Vec2{X: layout.Width / 2, Y: layout.Height / 2}
	}
	x, y := rooms[0].Center()
	return dmath.Vec2{X: x, Y: y}
}
