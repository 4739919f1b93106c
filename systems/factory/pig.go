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

func CreatePig(ecs *ecs.ECS, pos dmath.Vec2) *donburi.Entry {
	pig := archetypes.Pig.Spawn(ecs)

	components.Transform.SetValue(pig, components.TransformData{
		Position: pos,
		Depth:    cfg.Drops.Depth,
	})
	components.Pig.SetValue(pig, components.PigData{
		Remaining: cfg.Pig.SellAfter,
		Price:     cfg.Pig.SalePrice,
	})

	Adopt(ecs.World, tags.PigParent, pig)
	return pig
}
