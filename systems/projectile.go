package systems

import (
	"github.com/automoto/shapebattle/components"
	cfg "github.com/automoto/shapebattle/config"
	"github.com/automoto/shapebattle/shared/gamemath"
	"github.com/automoto/shapebattle/systems/factory"
	"github.com/automoto/shapebattle/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateProjectiles moves projectiles, expires them and queues damage on the
// first enemy each one reaches.
func UpdateProjectiles(ecs *ecs.ECS) {
	session, ok := getSession(ecs)
	if !ok {
		return
	}
	dt := session.Delta

	type hit struct {
		target *donburi.Entry
		damage float64
	}
	var spent []*donburi.Entry
	var hits []hit
	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Projectile.Get(e)
		tf := components.Transform.Get(e)

		tf.Position = dmath.Vec2{X: tf.Position.X + p.Velocity.X*dt, Y: tf.Position.Y + p.Velocity.Y*dt}
		p.Remaining -= dt
		if p.Remaining <= 0 {
			spent = append(spent, e)
			return
		}

		if target, ok := projectileTarget(ecs, tf.Position); ok {
			hits = append(hits, hit{target: target, damage: p.Damage})
			spent = append(spent, e)
		}
	})

	for _, h := range hits {
		queueDamage(h.target, h.damage)
	}
	for _, e := range spent {
		factory.Destroy(ecs, tags.ProjectileParent, e)
	}
}

// projectileTarget returns the first enemy within hit range of pos.
func projectileTarget(ecs *ecs.ECS, pos dmath.Vec2) (*donburi.Entry, bool) {
	for _, e := range enemiesNear(ecs, pos, cfg.Projectile.HitRadius) {
		if !e.Valid() || !e.HasComponent(components.Enemy) {
			continue
		}
		if gamemath.Distance(components.Transform.Get(e).Position, pos) < cfg.Projectile.HitRadius {
			return e, true
		}
	}
	return nil, false
}

// enemiesNear returns enemies whose collision boxes share a space cell with
// a box of the given half-extent around pos, or every enemy without a space.
func enemiesNear(ecs *ecs.ECS, pos dmath.Vec2, reach float64) []*donburi.Entry {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		var all []*donburi.Entry
		tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
			all = append(all, e)
		})
		return all
	}
	space := components.Space.Get(spaceEntry)

	probe := resolv.NewObject(pos.X-reach, pos.Y-reach, reach*2, reach*2, tags.ResolvProbe)
	space.Add(probe)
	defer space.Remove(probe)

	check := probe.Check(0, 0, tags.ResolvEnemy)
	if check == nil {
		return nil
	}
	var found []*donburi.Entry
	for _, o := range check.ObjectsByTags(tags.ResolvEnemy) {
		if e, ok := o.Data.(*donburi.Entry); ok {
			found = append(found, e)
		}
	}
	return found
}

func queueDamage(e *donburi.Entry, amount float64) {
	if e.HasComponent(components.DamageEvent) {
		components.DamageEvent.Get(e).Amount += amount
		return
	}
	donburi.Add(e, components.DamageEvent, &components.DamageEventData{Amount: amount})
}
