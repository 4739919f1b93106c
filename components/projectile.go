package components

import (
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

type ProjectileData struct {
	Velocity  dmath.Vec2
	Remaining float64 // seconds left before it expires
	Damage    float64
}

var Projectile = donburi.NewComponentType[ProjectileData]()
