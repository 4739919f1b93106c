package factory

import (
	"github.com/automoto/shapebattle/archetypes"
	"github.com/automoto/shapebattle/components"
	cfg "github.com/automoto/shapebattle/config"
	"github.com/automoto/shapebattle/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateDrop places a pickup of the given type. Drops sit behind the
// gameplay layers.
func CreateDrop(ecs *ecs.ECS, pos dmath.Vec2, dropType components.DropType) *donburi.Entry {
	drop := archetypes.Drop.Spawn(ecs)

	components.Transform.SetValue(drop, components.TransformData{
		Position: pos,
		Depth:    cfg.Drops.Depth,
	})
	components.Drop.SetValue(drop, components.DropData{Type: dropType})

	// Bob between 0 and BobHeight, flipping direction whenever the tween ends.
	components.Bob.SetValue(drop, components.BobData{
		Tween:  gween.New(0, float32(cfg.Drops.BobHeight), float32(cfg.Drops.BobDuration), ease.InOutQuad),
		Rising: true,
	})

	Adopt(ecs.World, tags.DropParent, drop)
	return drop
}
