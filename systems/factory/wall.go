package factory

import (
	"github.com/automoto/shapebattle/archetypes"
	"github.com/automoto/shapebattle/components"
	cfg "github.com/automoto/shapebattle/config"
	"github.com/automoto/shapebattle/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateWall places a wall tile centred on (x, y). Its half-extent is one
// tile size.
func CreateWall(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	pos := dmath.Vec2{X: x, Y: y}
	components.Transform.SetValue(wall, components.TransformData{Position: pos})
	newObject(ecs, wall, pos, cfg.Map.TileSize, cfg.Map.TileSize, tags.ResolvSolid)

	return wall
}
