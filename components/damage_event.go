package components

import "github.com/yohamta/donburi"

// DamageEventData is queued on an enemy and applied by the combat system.
type DamageEventData struct {
	Amount float64
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()
