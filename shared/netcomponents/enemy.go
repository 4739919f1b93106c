package netcomponents

import "github.com/yohamta/donburi"

type NetEnemyData struct {
	X, Y   float64
	Sides  int
	Radius float64
	Health float64
}

var NetEnemy = donburi.NewComponentType[NetEnemyData]()

// LerpNetEnemy interpolates between two enemy states
func LerpNetEnemy(from, to NetEnemyData, t float64) *NetEnemyData {
	return &NetEnemyData{
		X:      from.X + (to.X-from.X)*t,
		Y:      from.Y + (to.Y-from.Y)*t,
		Sides:  to.Sides,
		Radius: to.Radius,
		Health: to.Health,
	}
}
