package systems

import (
	"github.com/automoto/shapebattle/components"
	cfg "github.com/automoto/shapebattle/config"
	"github.com/automoto/shapebattle/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const pausedLabel = "PAUSED"

// UpdatePause handles the pause toggle.
// This system should run AFTER the input system but BEFORE other game systems.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	input := getOrCreateInput(ecs)

	// Toggle pause on ESC or P
	if GetAction(input, cfg.ActionPause).JustPressed {
		pause.IsPaused = !pause.IsPaused
		if session, ok := getSession(ecs); ok && session.State != cfg.StateDefeated {
			session.State = cfg.StatePlaying
			if pause.IsPaused {
				session.State = cfg.StatePaused
			}
		}
	}
}

// DrawPause renders the pause overlay.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)
	if !pause.IsPaused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.UI.PauseOverlay,
		false,
	)

	if !fonts.HUD.Loaded() {
		return
	}
	// Center text horizontally (approximate width for the HUD face)
	textWidth := len(pausedLabel) * int(cfg.UI.HUDFontSize*0.6)
	x := int((width - float64(textWidth)) / 2)
	text.Draw(screen, pausedLabel, fonts.HUD.Get(), x, int(height/2), cfg.UI.HUDTextColor)
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused or when
// the player has been defeated.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(func(e *ecs.ECS) {
		if session, ok := getSession(e); ok && session.State == cfg.StateDefeated {
			return
		}
		system(e)
	})
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{IsPaused: false})
	}

	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}
