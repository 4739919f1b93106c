package systems

import (
	"math/rand"
	"testing"

	"github.com/automoto/shapebattle/components"
	cfg "github.com/automoto/shapebattle/config"
	"github.com/automoto/shapebattle/systems/factory"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const testDT = 1.0 / 60

// testRNG returns a seeded RNG for deterministic tests
func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

// newTestWorld builds the singletons and containers with the real factories.
// There is no level, so no walls exist until a test adds them.
func newTestWorld(t *testing.T) *ecs.ECS {
	t.Helper()
	cfg.SetDefaults()
	cfg.Debug.StrictSingletons = true

	w := ecs.NewECS(donburi.NewWorld())
	factory.CreateSession(w, testRNG())
	factory.CreateInput(w)
	GetOrCreatePause(w)
	factory.CreateSpace(w, cfg.C.Width, cfg.C.Height, cfg.Map.CellSize, cfg.Map.CellSize)
	factory.CreateContainers(w)
	factory.CreateWallet(w)
	factory.CreateHUD(w)
	return w
}

// tick advances the clock once and runs the given systems in order.
func tick(w *ecs.ECS, systems ...ecs.System) {
	AdvanceClock(w, testDT)
	for _, s := range systems {
		s(w)
	}
}

func testEnemy(radius float64) components.EnemyData {
	return components.EnemyData{Health: 25, Speed: 20, ContactDamage: 1, Radius: radius, Sides: 3}
}

func count(w *ecs.ECS, q query) int {
	n := 0
	q.Each(w.World, func(*donburi.Entry) { n++ })
	return n
}

func testWallet(t *testing.T, w *ecs.ECS) *components.WalletData {
	t.Helper()
	entry, ok := components.Wallet.First(w.World)
	require.True(t, ok)
	return components.Wallet.Get(entry)
}

func testSession(t *testing.T, w *ecs.ECS) *components.SessionData {
	t.Helper()
	s, ok := getSession(w)
	require.True(t, ok)
	return s
}

func children(t *testing.T, w *ecs.ECS, tag factory.ContainerTag) []donburi.Entity {
	t.Helper()
	parent, ok := tag.First(w.World)
	require.True(t, ok)
	return components.Container.Get(parent).Children
}
