package components

import "github.com/yohamta/donburi"

// HUDData holds the text lines the HUD renderer draws. It is display only.
type HUDData struct {
	MoneyText  string
	HealthText string
}

var HUD = donburi.NewComponentType[HUDData]()

// DebugData toggles the collision overlay.
type DebugData struct {
	Enabled bool
}

var Debug = donburi.NewComponentType[DebugData]()
