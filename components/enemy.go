package components

import "github.com/yohamta/donburi"

type EnemyData struct {
	Health        float64
	Speed         float64
	ContactDamage float64
	Radius        float64 // collision half-extent
	Sides         int     // polygon sides, also the health multiplier
}

var Enemy = donburi.NewComponentType[EnemyData]()
