package factory

import (
	"math/rand"

	"github.com/automoto/shapebattle/archetypes"
	"github.com/automoto/shapebattle/components"
	cfg "github.com/automoto/shapebattle/config"
	"github.com/automoto/shapebattle/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// RollEnemy draws the stats of a freshly spawned enemy. The side count is
// uniform in [MinSides, MaxSides] and multiplies health; the radius is
// uniform in [RadiusMin, RadiusMax) scaled by RadiusScale.
func RollEnemy(rng *rand.Rand) components.EnemyData {
	sides := cfg.Enemy.MinSides + rng.Intn(cfg.Enemy.MaxSides-cfg.Enemy.MinSides+1)
	radius := cfg.Enemy.RadiusMin + rng.Float64()*(cfg.Enemy.RadiusMax-cfg.Enemy.RadiusMin)
	return components.EnemyData{
		Health:        cfg.Enemy.HealthPerSide * float64(sides),
		Speed:         cfg.Enemy.Speed,
		ContactDamage: cfg.Enemy.ContactDamage,
		Radius:        radius * cfg.Enemy.RadiusScale,
		Sides:         sides,
	}
}

func CreateEnemy(ecs *ecs.ECS, x, y float64, data components.EnemyData) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	pos := dmath.Vec2{X: x, Y: y}
	components.Transform.SetValue(enemy, components.TransformData{
		Position: pos,
		Depth:    cfg.Enemy.Depth,
	})
	components.Enemy.SetValue(enemy, data)
	newObject(ecs, enemy, pos, data.Radius, data.Radius, tags.ResolvEnemy)

	Adopt(ecs.World, tags.EnemyParent, enemy)
	return enemy
}
