package netcomponents

import "github.com/yohamta/donburi"

type NetDropData struct {
	X, Y float64
	Type string // "coin", "health" or "damage_up"
}

var NetDrop = donburi.NewComponentType[NetDropData]()
