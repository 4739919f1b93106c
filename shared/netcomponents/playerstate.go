package netcomponents

import "github.com/yohamta/donburi"

type NetPlayerStateData struct {
	Health   float64
	Currency float64
	Defeated bool
}

var NetPlayerState = donburi.NewComponentType[NetPlayerStateData]()
