package components

import (
	"github.com/automoto/shapebattle/mapgen"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Layout *mapgen.Layout
	// Generation counts how many layouts this session has built.
	Generation int
}

var Level = donburi.NewComponentType[LevelData]()
