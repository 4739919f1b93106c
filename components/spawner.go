package components

import "github.com/yohamta/donburi"

// SpawnerData counts down to the next enemy spawn.
type SpawnerData struct {
	Cooldown float64
	Timer    float64
}

var Spawner = donburi.NewComponentType[SpawnerData]()
