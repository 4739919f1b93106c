package archetypes

import (
	"github.com/automoto/shapebattle/components"
	cfg "github.com/automoto/shapebattle/config"
	"github.com/automoto/shapebattle/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Transform,
		components.Object,
	)
	Wallet = newArchetype(
		components.Wallet,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Transform,
		components.Object,
	)
	Drop = newArchetype(
		tags.Drop,
		components.Drop,
		components.Transform,
		components.Bob,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Transform,
		components.Object,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Transform,
	)
	Pig = newArchetype(
		tags.Pig,
		components.Pig,
		components.Transform,
	)
	Spawner = newArchetype(
		components.Spawner,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Session = newArchetype(
		components.Session,
	)
	Input = newArchetype(
		components.Input,
	)
	Pause = newArchetype(
		components.Pause,
	)
	HUD = newArchetype(
		components.HUD,
		components.Debug,
	)
	EnemyParent = newArchetype(
		tags.EnemyParent,
		components.Container,
	)
	DropParent = newArchetype(
		tags.DropParent,
		components.Container,
	)
	ProjectileParent = newArchetype(
		tags.ProjectileParent,
		components.Container,
	)
	PigParent = newArchetype(
		tags.PigParent,
		components.Container,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
