package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionShootLeft
	ActionShootRight
	ActionShootUp
	ActionShootDown
	ActionBuyPig
	ActionPause
	ActionToggleDebug
	ActionRestart
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys bound to an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft:    {Keys: []ebiten.Key{ebiten.KeyA}},
			ActionMoveRight:   {Keys: []ebiten.Key{ebiten.KeyD}},
			ActionMoveUp:      {Keys: []ebiten.Key{ebiten.KeyW}},
			ActionMoveDown:    {Keys: []ebiten.Key{ebiten.KeyS}},
			ActionShootLeft:   {Keys: []ebiten.Key{ebiten.KeyArrowLeft}},
			ActionShootRight:  {Keys: []ebiten.Key{ebiten.KeyArrowRight}},
			ActionShootUp:     {Keys: []ebiten.Key{ebiten.KeyArrowUp}},
			ActionShootDown:   {Keys: []ebiten.Key{ebiten.KeyArrowDown}},
			ActionBuyPig:      {Keys: []ebiten.Key{ebiten.KeySpace}},
			ActionPause:       {Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP}},
			ActionToggleDebug: {Keys: []ebiten.Key{ebiten.KeyF1}},
			ActionRestart:     {Keys: []ebiten.Key{ebiten.KeyR}},
		},
	}
}
