package systems

import (
	"testing"

	"github.com/automoto/shapebattle/components"
	"github.com/automoto/shapebattle/shared/gamemath"
	"github.com/automoto/shapebattle/systems/factory"
	"github.com/automoto/shapebattle/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnemyReachesPlayerAndDealsContactDamage(t *testing.T) {
	w := newTestWorld(t)
	playerEntry := factory.CreatePlayer(w, 300, 300)
	enemyEntry := factory.CreateEnemy(w, 400, 300, testEnemy(5))
	player := components.Player.Get(playerEntry)

	// Contact range is 5+8; at 20 units/s the gap of 87 closes in ~4.35s.
	firstHit := -1
	prev := player.Health
	for i := 1; i <= 300; i++ {
		tick(w, UpdateEnemies)
		diff := prev - player.Health
		require.True(t, diff == 0 || diff == 1, "tick %d took %v damage", i, diff)
		if diff == 1 && firstHit < 0 {
			firstHit = i
			assert.Equal(t, 199.0, player.Health)
		}
		prev = player.Health
	}

	require.Positive(t, firstHit)
	assert.InDelta(t, 261, firstHit, 3)
	assert.Less(t, player.Health, 200.0)
	assert.GreaterOrEqual(t, player.Health, 200.0-float64(300-firstHit+1))

	dist := gamemath.Distance(components.Transform.Get(enemyEntry).Position, components.Transform.Get(playerEntry).Position)
	assert.Less(t, dist, 14.0)
}

func TestContactPushesPlayerAway(t *testing.T) {
	w := newTestWorld(t)
	playerEntry := factory.CreatePlayer(w, 300, 300)
	enemyEntry := factory.CreateEnemy(w, 313.2, 300, testEnemy(5))

	tick(w, UpdateEnemies)

	// The enemy holds and the player is pushed by half the enemy's step.
	assert.Equal(t, 313.2, components.Transform.Get(enemyEntry).Position.X)
	assert.InDelta(t, 300-20*testDT*0.5, components.Transform.Get(playerEntry).Position.X, 1e-9)
	assert.Equal(t, 199.0, components.Player.Get(playerEntry).Health)
}

func TestContactDamageClampsAtZero(t *testing.T) {
	w := newTestWorld(t)
	playerEntry := factory.CreatePlayer(w, 300, 300)
	data := testEnemy(5)
	data.ContactDamage = 50
	factory.CreateEnemy(w, 310, 300, data)
	components.Player.Get(playerEntry).Health = 20

	tick(w, UpdateEnemies)

	assert.Equal(t, 0.0, components.Player.Get(playerEntry).Health)
}

func TestOverlappingEnemiesBlockEachOther(t *testing.T) {
	w := newTestWorld(t)
	factory.CreatePlayer(w, 100, 300)
	lead := factory.CreateEnemy(w, 400, 300, testEnemy(5))
	trail := factory.CreateEnemy(w, 408, 300, testEnemy(5))

	// The lead's step to 399.67 still overlaps the trailing box at 408, so
	// neither commits.
	for i := 0; i < 10; i++ {
		tick(w, UpdateEnemies)
	}

	assert.Equal(t, 400.0, components.Transform.Get(lead).Position.X)
	assert.Equal(t, 408.0, components.Transform.Get(trail).Position.X)
}

func TestTrailingEnemyIsBlockedByLeadStep(t *testing.T) {
	w := newTestWorld(t)
	factory.CreatePlayer(w, 100, 300)
	lead := factory.CreateEnemy(w, 400, 300, testEnemy(5))
	trail := factory.CreateEnemy(w, 410.2, 300, testEnemy(5))

	tick(w, UpdateEnemies)

	// Lead at 399.67 clears the trailing box (gap 10.53). The trailing step
	// to 409.87 would overlap the lead's current box.
	assert.InDelta(t, 400-20*testDT, components.Transform.Get(lead).Position.X, 1e-9)
	assert.Equal(t, 410.2, components.Transform.Get(trail).Position.X)
}

func TestSeparatedEnemiesMoveFreely(t *testing.T) {
	w := newTestWorld(t)
	factory.CreatePlayer(w, 100, 300)
	a := factory.CreateEnemy(w, 400, 300, testEnemy(5))
	b := factory.CreateEnemy(w, 400, 400, testEnemy(5))

	tick(w, UpdateEnemies)

	assert.Less(t, components.Transform.Get(a).Position.X, 400.0)
	assert.Less(t, components.Transform.Get(b).Position.X, 400.0)
}

func TestDeadEnemyLeavesExactlyOneDrop(t *testing.T) {
	w := newTestWorld(t)
	factory.CreatePlayer(w, 100, 100)
	enemyEntry := factory.CreateEnemy(w, 600, 400, testEnemy(5))
	enemyID := enemyEntry.Entity()
	components.Enemy.Get(enemyEntry).Health = 0

	tick(w, UpdateEnemies)

	assert.False(t, w.World.Valid(enemyID))
	assert.Empty(t, children(t, w, tags.EnemyParent))
	require.Equal(t, 1, count(w, tags.Drop))

	dropEntry, ok := tags.Drop.First(w.World)
	require.True(t, ok)
	assert.Equal(t, 600.0, components.Transform.Get(dropEntry).Position.X)
	assert.Equal(t, 400.0, components.Transform.Get(dropEntry).Position.Y)
	assert.Contains(t, components.DropTypes, components.Drop.Get(dropEntry).Type)
	assert.Len(t, children(t, w, tags.DropParent), 1)

	// Nothing is left to die a second time.
	tick(w, UpdateEnemies)
	assert.Equal(t, 1, count(w, tags.Drop))
}

func TestEnemiesWaitForPlayer(t *testing.T) {
	w := newTestWorld(t)
	enemyEntry := factory.CreateEnemy(w, 400, 300, testEnemy(5))
	components.Enemy.Get(enemyEntry).Health = 0

	tick(w, UpdateEnemies)

	assert.True(t, enemyEntry.Valid())
	assert.Equal(t, 0, count(w, tags.Drop))
}

func TestDropRollCoversEveryType(t *testing.T) {
	w := newTestWorld(t)
	factory.CreatePlayer(w, 10, 10)
	for i := 0; i < 60; i++ {
		e := factory.CreateEnemy(w, 600, 400, testEnemy(5))
		components.Enemy.Get(e).Health = 0
	}

	tick(w, UpdateEnemies)

	seen := map[components.DropType]int{}
	for e := range components.Drop.Iter(w.World) {
		seen[components.Drop.Get(e).Type]++
	}
	assert.Len(t, seen, 3)
	assert.Equal(t, 60, count(w, tags.Drop))
}
