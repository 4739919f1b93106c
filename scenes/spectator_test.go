package scenes

import (
	"testing"

	"github.com/automoto/shapebattle/shared/netcomponents"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestComponentTypesFromInstances(t *testing.T) {
	ctypes := componentTypesFromInstances([]any{
		netcomponents.NetPositionData{X: 1},
		netcomponents.NetPlayerStateData{Health: 5},
		"ignored",
	})
	require.Len(t, ctypes, 2)
}

func TestApplyComponentToEntry(t *testing.T) {
	world := donburi.NewWorld()
	entry := world.Entry(world.Create(netcomponents.NetEnemy))

	applyComponentToEntry(entry, netcomponents.NetEnemyData{X: 3, Y: 4, Sides: 5, Radius: 10, Health: 125})
	applyComponentToEntry(entry, netcomponents.NetPositionData{X: 3, Y: 4})

	assert.Equal(t, 5, netcomponents.NetEnemy.Get(entry).Sides)
	require.True(t, entry.HasComponent(netcomponents.NetPosition))
	assert.Equal(t, 3.0, netcomponents.NetPosition.Get(entry).X)
}
