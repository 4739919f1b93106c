package scenes

import (
	"fmt"
	"math/rand"

	cfg "github.com/automoto/shapebattle/config"
	"github.com/automoto/shapebattle/components"
	"github.com/automoto/shapebattle/systems"
	"github.com/automoto/shapebattle/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Options configures a game world.
type Options struct {
	Keys systems.KeySource
	Rand *rand.Rand
	// AutoRestart rebuilds the level as soon as the player is defeated.
	AutoRestart bool
	// Mirror systems run after every gameplay system, e.g. network sync.
	Mirror []ecs.System
}

// NewWorld builds the level, the player and the singletons, and registers
// the systems in their fixed order.
func NewWorld(opts Options) (*ecs.ECS, error) {
	if opts.Keys == nil {
		opts.Keys = systems.NoKeys{}
	}
	if opts.Rand == nil {
		return nil, fmt.Errorf("new world: nil random source")
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	factory.CreateSession(ecs, opts.Rand)
	factory.CreateInput(ecs)
	systems.GetOrCreatePause(ecs)
	factory.CreateSpace(ecs, cfg.C.Width, cfg.C.Height, cfg.Map.CellSize, cfg.Map.CellSize)
	factory.CreateContainers(ecs)

	levelEntry, err := factory.CreateLevel(ecs, opts.Rand)
	if err != nil {
		return nil, fmt.Errorf("new world: %w", err)
	}
	spawn := factory.SpawnPoint(components.Level.Get(levelEntry).Layout)
	factory.CreatePlayer(ecs, spawn.X, spawn.Y)
	factory.CreateWallet(ecs)
	factory.CreateSpawner(ecs)
	factory.CreateHUD(ecs)

	// Systems that always run
	ecs.AddSystem(systems.NewInputSystem(opts.Keys))
	ecs.AddSystem(systems.UpdatePause)

	// Game systems wrapped with pause and defeat checks
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdatePigs))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateProjectiles))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateCombat))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateSpawner))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateEnemies))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateDrops))
	ecs.AddSystem(systems.WithPauseCheck(systems.NewLevelSystem(opts.AutoRestart)))
	ecs.AddSystem(systems.UpdateObjects)
	ecs.AddSystem(systems.UpdateHUD)

	for _, s := range opts.Mirror {
		ecs.AddSystem(s)
	}

	ecs.AddRenderer(cfg.Default, systems.DrawWorld)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.LayerHUD, systems.DrawHUD)
	ecs.AddRenderer(cfg.LayerHUD, systems.DrawPause)

	return ecs, nil
}

// WorldScene drives a world from the ebitengine game loop.
type WorldScene struct {
	ecs *ecs.ECS
}

func NewWorldScene(opts Options) (*WorldScene, error) {
	w, err := NewWorld(opts)
	if err != nil {
		return nil, err
	}
	return &WorldScene{ecs: w}, nil
}

func (ws *WorldScene) Update() {
	systems.AdvanceClock(ws.ecs, 1/float64(ebiten.TPS()))
	ws.ecs.Update()
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	ws.ecs.Draw(screen)
}
