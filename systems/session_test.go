package systems

import (
	"testing"

	"github.com/automoto/shapebattle/components"
	cfg "github.com/automoto/shapebattle/config"
	"github.com/automoto/shapebattle/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/ecs"
)

func TestAdvanceClock(t *testing.T) {
	w := newTestWorld(t)

	AdvanceClock(w, 0.5)
	AdvanceClock(w, 0.25)

	s := testSession(t, w)
	assert.Equal(t, 0.25, s.Delta)
	assert.Equal(t, 0.75, s.Elapsed)
	assert.Equal(t, 2, s.Tick)
}

func TestSingleStrictPanics(t *testing.T) {
	w := newTestWorld(t)
	factory.CreateWallet(w)

	assert.Panics(t, func() { single(w.World, components.Wallet) })

	cfg.Debug.StrictSingletons = false
	entry, ok := single(w.World, components.Wallet)
	assert.True(t, ok)
	assert.NotNil(t, entry)
}

func TestSingleMissing(t *testing.T) {
	w := newTestWorld(t)

	_, ok := single(w.World, components.Player)
	assert.False(t, ok)

	// Systems skip their work while a singleton is missing.
	assert.NotPanics(t, func() {
		tick(w, UpdatePlayer, UpdateEnemies, UpdateDrops, UpdatePigs, UpdateHUD)
	})
}

func TestInputEdges(t *testing.T) {
	w := newTestWorld(t)
	keys := KeySet{ebiten.KeyP: true}
	input := NewInputSystem(keys)

	input(w)
	state := GetAction(getOrCreateInput(w), cfg.ActionPause)
	assert.True(t, state.Pressed)
	assert.True(t, state.JustPressed)

	input(w)
	state = GetAction(getOrCreateInput(w), cfg.ActionPause)
	assert.True(t, state.Pressed)
	assert.False(t, state.JustPressed)

	delete(keys, ebiten.KeyP)
	input(w)
	state = GetAction(getOrCreateInput(w), cfg.ActionPause)
	assert.False(t, state.Pressed)
	assert.True(t, state.JustReleased)
}

func TestPauseSkipsGameplay(t *testing.T) {
	w := newTestWorld(t)
	keys := KeySet{ebiten.KeyEscape: true}
	input := NewInputSystem(keys)

	ran := 0
	gameplay := WithGameplayChecks(func(*ecs.ECS) { ran++ })

	tick(w, input, UpdatePause, gameplay)
	assert.True(t, GetOrCreatePause(w).IsPaused)
	assert.Equal(t, cfg.StatePaused, testSession(t, w).State)
	assert.Equal(t, 0, ran)

	delete(keys, ebiten.KeyEscape)
	tick(w, input, UpdatePause, gameplay)
	keys[ebiten.KeyEscape] = true
	tick(w, input, UpdatePause, gameplay)

	assert.False(t, GetOrCreatePause(w).IsPaused)
	assert.Equal(t, cfg.StatePlaying, testSession(t, w).State)
	assert.Equal(t, 1, ran)
}

func TestHUDText(t *testing.T) {
	assert.Equal(t, "Money: $100", MoneyText(100))
	assert.Equal(t, "Health: 199.5 HP", HealthText(199.5))

	w := newTestWorld(t)
	playerEntry := factory.CreatePlayer(w, 300, 300)
	components.Player.Get(playerEntry).Health = 150
	testWallet(t, w).Currency = 110

	tick(w, UpdateHUD)

	hudEntry, ok := components.HUD.First(w.World)
	require.True(t, ok)
	hud := components.HUD.Get(hudEntry)
	assert.Equal(t, "Money: $110", hud.MoneyText)
	assert.Equal(t, "Health: 150 HP", hud.HealthText)
}

func TestToggleDebugOverlay(t *testing.T) {
	w := newTestWorld(t)
	input := NewInputSystem(KeySet{ebiten.KeyF1: true})

	tick(w, input, UpdateHUD)

	hudEntry, _ := components.HUD.First(w.World)
	assert.True(t, components.Debug.Get(hudEntry).Enabled)
}
