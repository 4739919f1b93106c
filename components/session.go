package components

import (
	"math/rand"

	"github.com/automoto/shapebattle/config"
	"github.com/yohamta/donburi"
)

// SessionData is the per-world clock and random source. Every system that
// needs randomness draws from Rand so a seeded session is reproducible.
type SessionData struct {
	Rand    *rand.Rand
	Delta   float64 // seconds covered by the current tick
	Elapsed float64
	Tick    int
	State   config.GameStateID
}

var Session = donburi.NewComponentType[SessionData]()
