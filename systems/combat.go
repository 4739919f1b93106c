package systems

import (
	"math"

	"github.com/automoto/shapebattle/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCombat applies queued damage events to enemies. Removal of dead
// enemies is left to UpdateEnemies so that every death leaves a drop.
func UpdateCombat(ecs *ecs.ECS) {
	var hit []*donburi.Entry
	for e := range components.DamageEvent.Iter(ecs.World) {
		hit = append(hit, e)
	}

	for _, e := range hit {
		dmg := components.DamageEvent.Get(e)
		if e.HasComponent(components.Enemy) {
			enemy := components.Enemy.Get(e)
			enemy.Health = math.Max(0, enemy.Health-dmg.Amount)
		}

		// Remove the damage event component so it is processed only once.
		donburi.Remove[components.DamageEventData](e, components.DamageEvent)
	}
}
