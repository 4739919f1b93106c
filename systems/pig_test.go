package systems

import (
	"testing"

	"github.com/automoto/shapebattle/systems/factory"
	"github.com/automoto/shapebattle/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

func TestBuyAndSellPig(t *testing.T) {
	w := newTestWorld(t)
	factory.CreatePlayer(w, 300, 300)
	keys := KeySet{ebiten.KeySpace: true}
	input := NewInputSystem(keys)

	tick(w, input, UpdatePigs)
	assert.Equal(t, 90.0, testWallet(t, w).Currency)
	assert.Equal(t, 1, count(w, tags.Pig))

	// Holding the key does not buy again.
	tick(w, input, UpdatePigs)
	assert.Equal(t, 1, count(w, tags.Pig))

	delete(keys, ebiten.KeySpace)
	for i := 0; i < 125; i++ {
		tick(w, input, UpdatePigs)
	}
	assert.Equal(t, 0, count(w, tags.Pig))
	assert.Equal(t, 105.0, testWallet(t, w).Currency)
	assert.Empty(t, children(t, w, tags.PigParent))
}

func TestPigNeedsFunds(t *testing.T) {
	w := newTestWorld(t)
	factory.CreatePlayer(w, 300, 300)
	testWallet(t, w).Currency = 5

	tick(w, NewInputSystem(KeySet{ebiten.KeySpace: true}), UpdatePigs)

	assert.Equal(t, 0, count(w, tags.Pig))
	assert.Equal(t, 5.0, testWallet(t, w).Currency)
}
