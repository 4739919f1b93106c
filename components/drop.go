package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// DropType names the effect of a pickup.
type DropType string

const (
	DropCoin     DropType = "coin"
	DropHealth   DropType = "health"
	DropDamageUp DropType = "damage_up"
)

// DropTypes lists every type an enemy can leave behind.
var DropTypes = []DropType{DropHealth, DropCoin, DropDamageUp}

type DropData struct {
	Type DropType
}

var Drop = donburi.NewComponentType[DropData]()

// BobData drives the idle up-and-down motion of a drop. It only affects
// drawing.
type BobData struct {
	Tween  *gween.Tween
	Offset float32
	Rising bool
}

var Bob = donburi.NewComponentType[BobData]()
