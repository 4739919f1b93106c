package netcomponents

import "github.com/yohamta/donburi"

// NetRoom is one terminal room of the current layout.
type NetRoom struct {
	X, Y, W, H float64
}

type NetGameStateData struct {
	State      int // config.GameStateID
	Elapsed    float64
	Enemies    int
	Generation int
	Rooms      []NetRoom
}

var NetGameState = donburi.NewComponentType[NetGameStateData]()
