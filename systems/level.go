package systems

import (
	"log"

	"github.com/automoto/shapebattle/components"
	cfg "github.com/automoto/shapebattle/config"
	"github.com/automoto/shapebattle/systems/factory"
	"github.com/automoto/shapebattle/tags"
	"github.com/yohamta/donburi/ecs"
)

// NewLevelSystem returns the system that restarts a lost session. With
// autoRestart set the level is rebuilt as soon as the player is defeated;
// otherwise it waits for the restart action.
func NewLevelSystem(autoRestart bool) ecs.System {
	return func(ecs *ecs.ECS) {
		session, ok := getSession(ecs)
		if !ok || session.State != cfg.StateDefeated {
			return
		}
		if !autoRestart && !GetAction(getOrCreateInput(ecs), cfg.ActionRestart).JustPressed {
			return
		}
		if err := RestartLevel(ecs); err != nil {
			log.Printf("Restart failed: %v", err)
		}
	}
}

// RestartLevel tears down every container, builds a fresh layout and resets
// the player, the wallet and the spawners.
func RestartLevel(ecs *ecs.ECS) error {
	session, ok := getSession(ecs)
	if !ok {
		return nil
	}
	levelEntry, ok := single(ecs.World, components.Level)
	if !ok {
		return nil
	}

	factory.ClearAll(ecs)
	if err := factory.RegenerateLevel(ecs, levelEntry, session.Rand); err != nil {
		return err
	}
	level := components.Level.Get(levelEntry)

	if playerEntry, ok := single(ecs.World, tags.Player); ok {
		player := components.Player.Get(playerEntry)
		player.Health = cfg.Player.Health
		player.Defeated = false
		player.ShootCooldown = 0
		components.Transform.Get(playerEntry).Position = factory.SpawnPoint(level.Layout)
	}
	if walletEntry, ok := single(ecs.World, components.Wallet); ok {
		components.Wallet.Get(walletEntry).Currency = cfg.Player.StartingCurrency
	}
	for e := range components.Spawner.Iter(ecs.World) {
		spawner := components.Spawner.Get(e)
		spawner.Timer = cfg.Spawner.InitialTimer
	}

	session.State = cfg.StatePlaying
	if GetOrCreatePause(ecs).IsPaused {
		session.State = cfg.StatePaused
	}
	log.Printf("Level restarted, generation %d with %d rooms", level.Generation, len(level.Layout.Rooms()))
	return nil
}
