package components

import (
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

type PlayerData struct {
	Speed  float64
	Health float64
	Radius float64

	Facing        dmath.Vec2 // last shot direction
	ShootCooldown float64    // seconds until the next shot
	Defeated      bool       // health reached zero
}

var Player = donburi.NewComponentType[PlayerData]()

// WalletData holds the session currency.
type WalletData struct {
	Currency float64
}

var Wallet = donburi.NewComponentType[WalletData]()
