package factory

import (
	"github.com/automoto/shapebattle/archetypes"
	"github.com/automoto/shapebattle/components"
	"github.com/automoto/shapebattle/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ContainerTag is satisfied by the parent tags in package tags.
type ContainerTag interface {
	First(w donburi.World) (*donburi.Entry, bool)
}

// CreateContainers creates the parent entities that enemies, drops,
// projectiles and pigs are registered under.
func CreateContainers(ecs *ecs.ECS) {
	spawnContainer(archetypes.EnemyParent.Spawn(ecs), "enemies")
	spawnContainer(archetypes.DropParent.Spawn(ecs), "drops")
	spawnContainer(archetypes.ProjectileParent.Spawn(ecs), "projectiles")
	spawnContainer(archetypes.PigParent.Spawn(ecs), "pigs")
}

func spawnContainer(e *donburi.Entry, name string) {
	components.Container.SetValue(e, components.ContainerData{Name: name})
}

// Adopt registers child under the container carrying tag. It is a no-op when
// the container does not exist.
func Adopt(w donburi.World, tag ContainerTag, child *donburi.Entry) {
	if parent, ok := tag.First(w); ok {
		components.Container.Get(parent).Adopt(child.Entity())
	}
}

// Destroy removes e from its container, the collision space and the world.
func Destroy(ecs *ecs.ECS, tag ContainerTag, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	if parent, ok := tag.First(ecs.World); ok {
		components.Container.Get(parent).Release(e.Entity())
	}
	if e.HasComponent(components.Object) {
		if spaceEntry, ok := components.Space.First(ecs.World); ok {
			components.Space.Get(spaceEntry).Remove(components.Object.Get(e).Object)
		}
	}
	ecs.World.Remove(e.Entity())
}

// ClearContainer destroys every child of the container carrying tag.
func ClearContainer(ecs *ecs.ECS, tag ContainerTag) int {
	parent, ok := tag.First(ecs.World)
	if !ok {
		return 0
	}
	children := append([]donburi.Entity(nil), components.Container.Get(parent).Children...)
	for _, child := range children {
		if ecs.World.Valid(child) {
			Destroy(ecs, tag, ecs.World.Entry(child))
		}
	}
	components.Container.Get(parent).Children = nil
	return len(children)
}

// ClearAll empties every container.
func ClearAll(ecs *ecs.ECS) {
	ClearContainer(ecs, tags.EnemyParent)
	ClearContainer(ecs, tags.DropParent)
	ClearContainer(ecs, tags.ProjectileParent)
	ClearContainer(ecs, tags.PigParent)
}
