package factory

import (
	"math/rand"
	"testing"

	"github.com/automoto/shapebattle/components"
	cfg "github.com/automoto/shapebattle/config"
	"github.com/automoto/shapebattle/mapgen"
	"github.com/automoto/shapebattle/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

func newTestECS() *ecs.ECS {
	cfg.SetDefaults()
	w := ecs.NewECS(donburi.NewWorld())
	CreateSpace(w, cfg.C.Width, cfg.C.Height, cfg.Map.CellSize, cfg.Map.CellSize)
	CreateContainers(w)
	return w
}

func TestRollEnemyRanges(t *testing.T) {
	cfg.SetDefaults()
	rng := rand.New(rand.NewSource(12345))
	sides := map[int]bool{}

	for i := 0; i < 500; i++ {
		e := RollEnemy(rng)
		sides[e.Sides] = true
		assert.GreaterOrEqual(t, e.Sides, 3)
		assert.LessOrEqual(t, e.Sides, 7)
		assert.Equal(t, 25*float64(e.Sides), e.Health)
		assert.GreaterOrEqual(t, e.Radius, 5.0)
		assert.Less(t, e.Radius, 15.0)
		assert.Equal(t, 20.0, e.Speed)
		assert.Equal(t, 1.0, e.ContactDamage)
	}
	assert.Len(t, sides, 5)
}

func TestDestroyReleasesFromContainer(t *testing.T) {
	w := newTestECS()
	a := CreateEnemy(w, 10, 10, RollEnemy(rand.New(rand.NewSource(1))))
	b := CreateEnemy(w, 20, 20, RollEnemy(rand.New(rand.NewSource(2))))

	parent, ok := tags.EnemyParent.First(w.World)
	require.True(t, ok)
	require.Len(t, components.Container.Get(parent).Children, 2)

	obj := components.Object.Get(a).Object
	spaceEntry, _ := components.Space.First(w.World)
	space := components.Space.Get(spaceEntry)
	require.Contains(t, space.Objects(), obj)

	Destroy(w, tags.EnemyParent, a)

	assert.False(t, a.Valid())
	assert.Equal(t, []donburi.Entity{b.Entity()}, components.Container.Get(parent).Children)
	assert.NotContains(t, space.Objects(), obj)

	// Destroying twice is harmless.
	Destroy(w, tags.EnemyParent, a)
	assert.Len(t, components.Container.Get(parent).Children, 1)
}

func TestClearAllEmptiesContainers(t *testing.T) {
	w := newTestECS()
	CreateEnemy(w, 10, 10, RollEnemy(rand.New(rand.NewSource(1))))
	CreateDrop(w, dmath.Vec2{X: 5, Y: 5}, components.DropCoin)
	CreatePig(w, dmath.Vec2{X: 5, Y: 5})
	CreateProjectile(w, dmath.Vec2{X: 5, Y: 5}, dmath.Vec2{X: 1})
	CreateWall(w, 100, 100)

	ClearAll(w)

	for _, tag := range []ContainerTag{tags.EnemyParent, tags.DropParent, tags.PigParent, tags.ProjectileParent} {
		parent, ok := tag.First(w.World)
		require.True(t, ok)
		assert.Empty(t, components.Container.Get(parent).Children)
	}
	for _, tag := range []ContainerTag{tags.Enemy, tags.Drop, tags.Pig, tags.Projectile} {
		_, ok := tag.First(w.World)
		assert.False(t, ok)
	}
	_, ok := tags.Wall.First(w.World)
	assert.True(t, ok, "walls are not owned by a container")
}

func TestSpawnPoint(t *testing.T) {
	layout := &mapgen.Layout{Width: 400, Height: 200, Nodes: []mapgen.Room{
		{W: 400, H: 200, Parent: -1, Subdivided: true},
		{W: 200, H: 200, Parent: 0},
		{X: 200, W: 200, H: 200, Parent: 0},
	}}
	assert.Equal(t, dmath.Vec2{X: 100, Y: 100}, SpawnPoint(layout))
	assert.Equal(t, dmath.Vec2{X: 50, Y: 25}, SpawnPoint(&mapgen.Layout{Width: 100, Height: 50}))
}

func TestCreateLevelBuildsWalls(t *testing.T) {
	w := newTestECS()
	level, err := CreateLevel(w, rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	data := components.Level.Get(level)
	assert.Equal(t, 1, data.Generation)
	walls := 0
	tags.Wall.Each(w.World, func(*donburi.Entry) { walls++ })
	assert.Len(t, data.Layout.WallTiles(cfg.Map.TileSize, cfg.Map.DoorHalfWidth), walls)

	require.NoError(t, RegenerateLevel(w, level, rand.New(rand.NewSource(4))))
	assert.Equal(t, 2, data.Generation)
	walls = 0
	tags.Wall.Each(w.World, func(*donburi.Entry) { walls++ })
	assert.Len(t, data.Layout.WallTiles(cfg.Map.TileSize, cfg.Map.DoorHalfWidth), walls)
}

func TestCreateLevelRejectsBadParams(t *testing.T) {
	w := newTestECS()
	cfg.Map.MinLeafSize = 0

	_, err := CreateLevel(w, rand.New(rand.NewSource(3)))
	assert.ErrorIs(t, err, mapgen.ErrInvalidParams)
}
