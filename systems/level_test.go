package systems

import (
	"testing"

	"github.com/automoto/shapebattle/components"
	cfg "github.com/automoto/shapebattle/config"
	"github.com/automoto/shapebattle/systems/factory"
	"github.com/automoto/shapebattle/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

func newLevelWorld(t *testing.T) (*ecs.ECS, *components.LevelData) {
	t.Helper()
	w := newTestWorld(t)
	levelEntry, err := factory.CreateLevel(w, testSession(t, w).Rand)
	require.NoError(t, err)
	level := components.Level.Get(levelEntry)
	spawn := factory.SpawnPoint(level.Layout)
	factory.CreatePlayer(w, spawn.X, spawn.Y)
	factory.CreateSpawner(w)
	return w, level
}

func TestLevelBuildsWalls(t *testing.T) {
	w, level := newLevelWorld(t)

	walls := count(w, tags.Wall)
	assert.Equal(t, len(level.Layout.WallTiles(cfg.Map.TileSize, cfg.Map.DoorHalfWidth)), walls)
	assert.Positive(t, walls)

	playerEntry, _ := tags.Player.First(w.World)
	assert.True(t, canOccupy(w, components.Transform.Get(playerEntry).Position))
}

func TestRestartLevel(t *testing.T) {
	w, level := newLevelWorld(t)
	playerEntry, _ := tags.Player.First(w.World)
	for i := 0; i < 5; i++ {
		factory.CreateEnemy(w, 50, 50, testEnemy(5))
	}
	factory.CreateDrop(w, dmath.Vec2{X: 70, Y: 70}, components.DropCoin)
	factory.CreatePig(w, dmath.Vec2{X: 70, Y: 70})
	factory.CreateProjectile(w, dmath.Vec2{X: 70, Y: 70}, dmath.Vec2{X: 1})

	player := components.Player.Get(playerEntry)
	player.Health = 0
	components.Transform.Get(playerEntry).Position = dmath.Vec2{X: 1, Y: 1}
	testWallet(t, w).Currency = 40
	tick(w, UpdatePlayer)
	require.Equal(t, cfg.StateDefeated, testSession(t, w).State)

	require.NoError(t, RestartLevel(w))

	assert.Equal(t, 2, level.Generation)
	assert.Equal(t, 0, count(w, tags.Enemy))
	assert.Equal(t, 0, count(w, tags.Drop))
	assert.Equal(t, 0, count(w, tags.Pig))
	assert.Equal(t, 0, count(w, tags.Projectile))
	assert.Equal(t, cfg.Player.Health, player.Health)
	assert.False(t, player.Defeated)
	assert.Equal(t, factory.SpawnPoint(level.Layout), components.Transform.Get(playerEntry).Position)
	assert.Equal(t, cfg.Player.StartingCurrency, testWallet(t, w).Currency)
	assert.Equal(t, cfg.StatePlaying, testSession(t, w).State)
	assert.Equal(t, len(level.Layout.WallTiles(cfg.Map.TileSize, cfg.Map.DoorHalfWidth)), count(w, tags.Wall))

	spawnerEntry, _ := components.Spawner.First(w.World)
	assert.Equal(t, cfg.Spawner.InitialTimer, components.Spawner.Get(spawnerEntry).Timer)
}

func TestLevelSystemWaitsForRestartKey(t *testing.T) {
	w, level := newLevelWorld(t)
	playerEntry, _ := tags.Player.First(w.World)
	components.Player.Get(playerEntry).Health = 0

	keys := KeySet{}
	input := NewInputSystem(keys)
	levelSystem := NewLevelSystem(false)

	tick(w, input, UpdatePlayer, levelSystem)
	assert.Equal(t, cfg.StateDefeated, testSession(t, w).State)
	assert.Equal(t, 1, level.Generation)

	keys[ebiten.KeyR] = true
	tick(w, input, UpdatePlayer, levelSystem)
	assert.Equal(t, cfg.StatePlaying, testSession(t, w).State)
	assert.Equal(t, 2, level.Generation)
}

func TestLevelSystemAutoRestart(t *testing.T) {
	w, level := newLevelWorld(t)
	playerEntry, _ := tags.Player.First(w.World)
	components.Player.Get(playerEntry).Health = 0

	tick(w, UpdatePlayer, NewLevelSystem(true))

	assert.Equal(t, 2, level.Generation)
	assert.Equal(t, cfg.Player.Health, components.Player.Get(playerEntry).Health)
}
