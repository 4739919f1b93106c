package factory

import (
	"github.com/automoto/shapebattle/archetypes"
	"github.com/automoto/shapebattle/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// newObject builds a collision box of the given half-extents centred on pos,
// links it to e and registers it with the space when one exists.
func newObject(ecs *ecs.ECS, e *donburi.Entry, pos dmath.Vec2, halfW, halfH float64, objTags ...string) *resolv.Object {
	obj := resolv.NewObject(pos.X-halfW, pos.Y-halfH, halfW*2, halfH*2, objTags...)
	obj.SetShape(resolv.NewRectangle(0, 0, halfW*2, halfH*2))
	obj.Data = e // Link for O(1) lookup

	components.Object.SetValue(e, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return obj
}
