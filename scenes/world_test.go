package scenes

import (
	"math/rand"
	"testing"

	"github.com/automoto/shapebattle/components"
	cfg "github.com/automoto/shapebattle/config"
	"github.com/automoto/shapebattle/systems"
	"github.com/automoto/shapebattle/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestNewWorldBuildsSession(t *testing.T) {
	w, err := NewWorld(Options{Rand: rand.New(rand.NewSource(12345))})
	require.NoError(t, err)

	_, ok := tags.Player.First(w.World)
	assert.True(t, ok)
	_, ok = components.Wallet.First(w.World)
	assert.True(t, ok)
	_, ok = tags.EnemyParent.First(w.World)
	assert.True(t, ok)

	walls := 0
	tags.Wall.Each(w.World, func(*donburi.Entry) { walls++ })
	assert.Positive(t, walls)

	// The player starts clear of every wall.
	playerEntry, _ := tags.Player.First(w.World)
	pos := components.Transform.Get(playerEntry).Position
	levelEntry, _ := components.Level.First(w.World)
	room, ok := components.Level.Get(levelEntry).Layout.RoomAt(pos.X, pos.Y)
	require.True(t, ok)
	assert.Greater(t, room.W, 0.0)
}

func TestNewWorldSpawnsEnemiesOverTime(t *testing.T) {
	w, err := NewWorld(Options{Rand: rand.New(rand.NewSource(7))})
	require.NoError(t, err)

	// Three seconds at 60 ticks per second with a one second cooldown.
	for i := 0; i < 180; i++ {
		systems.AdvanceClock(w, 1.0/60)
		w.Update()
	}

	enemies := 0
	tags.Enemy.Each(w.World, func(*donburi.Entry) { enemies++ })
	assert.GreaterOrEqual(t, enemies, 2)

	hudEntry, _ := components.HUD.First(w.World)
	hud := components.HUD.Get(hudEntry)
	assert.Contains(t, hud.MoneyText, "Money: $")
	assert.Contains(t, hud.HealthText, "HP")
	assert.Equal(t, 1.0, cfg.Spawner.Cooldown)
}

func TestNewWorldRequiresRand(t *testing.T) {
	_, err := NewWorld(Options{})
	assert.Error(t, err)
}
