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

// CreateProjectile fires a projectile from pos along the unit vector dir.
func CreateProjectile(ecs *ecs.ECS, pos, dir dmath.Vec2) *donburi.Entry {
	p := archetypes.Projectile.Spawn(ecs)

	components.Transform.SetValue(p, components.TransformData{
		Position: pos,
		Depth:    cfg.Player.Depth,
	})
	components.Projectile.SetValue(p, components.ProjectileData{
		Velocity:  dmath.Vec2{X: dir.X * cfg.Projectile.Speed, Y: dir.Y * cfg.Projectile.Speed},
		Remaining: cfg.Projectile.Lifetime,
		Damage:    cfg.Projectile.Damage,
	})

	Adopt(ecs.World, tags.ProjectileParent, p)
	return p
}
