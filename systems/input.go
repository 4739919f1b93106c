package systems

import (
	"github.com/automoto/shapebattle/components"
	cfg "github.com/automoto/shapebattle/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// KeySource reports which keyboard keys are held.
type KeySource interface {
	IsKeyPressed(key ebiten.Key) bool
}

// EbitenKeys reads the keyboard through ebitengine.
type EbitenKeys struct{}

func (EbitenKeys) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

// NoKeys never reports a pressed key. The headless server uses it.
type NoKeys struct{}

func (NoKeys) IsKeyPressed(ebiten.Key) bool {
	return false
}

// KeySet is a fixed set of held keys.
type KeySet map[ebiten.Key]bool

func (k KeySet) IsKeyPressed(key ebiten.Key) bool {
	return k[key]
}

// NewInputSystem returns the system that polls src into the input buffer.
// Must run BEFORE every system that reads actions.
func NewInputSystem(src KeySource) ecs.System {
	return func(ecs *ecs.ECS) {
		input := getOrCreateInput(ecs)

		// Swap buffers: current becomes previous, then zero out current
		input.Previous = input.Current
		input.Current = [cfg.ActionCount]bool{}

		for actionID, binding := range cfg.Input.Bindings {
			for _, key := range binding.Keys {
				if src.IsKeyPressed(key) {
					input.Current[actionID] = true
				}
			}
		}
	}
}

func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
