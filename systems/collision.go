package systems

import (
	"github.com/automoto/shapebattle/components"
	cfg "github.com/automoto/shapebattle/config"
	"github.com/automoto/shapebattle/shared/gamemath"
	"github.com/automoto/shapebattle/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// nearbyWalls returns the centres of the wall tiles that could touch a body
// at pos. With a collision space the candidates come from its cells;
// otherwise every wall is returned.
func nearbyWalls(ecs *ecs.ECS, pos dmath.Vec2) []dmath.Vec2 {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return allWalls(ecs)
	}
	space := components.Space.Get(spaceEntry)

	reach := cfg.Map.TileSize * (1 + gamemath.BodyScale)
	probe := resolv.NewObject(pos.X-reach, pos.Y-reach, reach*2, reach*2, tags.ResolvProbe)
	space.Add(probe)
	defer space.Remove(probe)

	check := probe.Check(0, 0, tags.ResolvSolid)
	if check == nil {
		return nil
	}
	solids := check.ObjectsByTags(tags.ResolvSolid)
	walls := make([]dmath.Vec2, 0, len(solids))
	for _, o := range solids {
		walls = append(walls, dmath.Vec2{X: o.X + o.W/2, Y: o.Y + o.H/2})
	}
	return walls
}

func allWalls(ecs *ecs.ECS) []dmath.Vec2 {
	var walls []dmath.Vec2
	tags.Wall.Each(ecs.World, func(e *donburi.Entry) {
		walls = append(walls, components.Transform.Get(e).Position)
	})
	return walls
}

// canOccupy reports whether a body centred at target stays clear of walls.
func canOccupy(ecs *ecs.ECS, target dmath.Vec2) bool {
	return gamemath.CanOccupy(target, nearbyWalls(ecs, target), cfg.Map.TileSize)
}

// slide applies step to pos one axis at a time, dropping any axis whose
// result would touch a wall so that movement can slide along it. With
// escape set, a body that already overlaps a wall may move freely.
func slide(ecs *ecs.ECS, pos, step dmath.Vec2, escape bool) dmath.Vec2 {
	if step.X != 0 {
		next := dmath.Vec2{X: pos.X + step.X, Y: pos.Y}
		if canOccupy(ecs, next) || (escape && !canOccupy(ecs, pos)) {
			pos = next
		}
	}
	if step.Y != 0 {
		next := dmath.Vec2{X: pos.X, Y: pos.Y + step.Y}
		if canOccupy(ecs, next) || (escape && !canOccupy(ecs, pos)) {
			pos = next
		}
	}
	return pos
}
