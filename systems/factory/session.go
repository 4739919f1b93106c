package factory

import (
	"math/rand"

	"github.com/automoto/shapebattle/archetypes"
	"github.com/automoto/shapebattle/components"
	cfg "github.com/automoto/shapebattle/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession creates the clock and random source singleton.
func CreateSession(ecs *ecs.ECS, rng *rand.Rand) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)
	components.Session.SetValue(session, components.SessionData{Rand: rng})
	return session
}

func CreateSpawner(ecs *ecs.ECS) *donburi.Entry {
	spawner := archetypes.Spawner.Spawn(ecs)
	components.Spawner.SetValue(spawner, components.SpawnerData{
		Cooldown: cfg.Spawner.Cooldown,
		Timer:    cfg.Spawner.InitialTimer,
	})
	return spawner
}

func CreateInput(ecs *ecs.ECS) *donburi.Entry {
	return archetypes.Input.Spawn(ecs)
}

func CreateHUD(ecs *ecs.ECS) *donburi.Entry {
	hud := archetypes.HUD.Spawn(ecs)
	components.Debug.SetValue(hud, components.DebugData{Enabled: cfg.Debug.Overlay})
	return hud
}
