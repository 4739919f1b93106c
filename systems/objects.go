package systems

import (
	"github.com/automoto/shapebattle/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects moves each collision box onto its entity's position and
// refreshes its space cells.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		if e.HasComponent(components.Transform) {
			pos := components.Transform.Get(e).Position
			obj.X = pos.X - obj.W/2
			obj.Y = pos.Y - obj.H/2
		}
		obj.Update()
	}
}
