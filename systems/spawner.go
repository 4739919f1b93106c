package systems

import (
	"github.com/automoto/shapebattle/components"
	cfg "github.com/automoto/shapebattle/config"
	"github.com/automoto/shapebattle/systems/factory"
	"github.com/automoto/shapebattle/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSpawner counts every spawner down and spawns one enemy at a random
// window position each time its timer runs out. The population is not
// capped.
func UpdateSpawner(ecs *ecs.ECS) {
	session, ok := getSession(ecs)
	if !ok {
		return
	}
	if _, ok := single(ecs.World, tags.EnemyParent); !ok {
		return
	}

	var due int
	components.Spawner.Each(ecs.World, func(e *donburi.Entry) {
		spawner := components.Spawner.Get(e)
		spawner.Timer -= session.Delta
		if spawner.Timer <= 0 {
			spawner.Timer = spawner.Cooldown
			due++
		}
	})

	rng := session.Rand
	for i := 0; i < due; i++ {
		x := rng.Float64() * float64(cfg.C.Width)
		y := rng.Float64() * float64(cfg.C.Height)
		factory.CreateEnemy(ecs, x, y, factory.RollEnemy(rng))
	}
}
