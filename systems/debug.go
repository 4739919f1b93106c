package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/shapebattle/components"
	cfg "github.com/automoto/shapebattle/config"
	"github.com/automoto/shapebattle/fonts"
	"github.com/automoto/shapebattle/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines the collision objects, the room partition and the
// doorways when the overlay is enabled.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	hudEntry, ok := components.HUD.First(ecs.World)
	if !ok || !components.Debug.Get(hudEntry).Enabled {
		return
	}

	if levelEntry, ok := components.Level.First(ecs.World); ok {
		layout := components.Level.Get(levelEntry).Layout
		for _, r := range layout.Rooms() {
			vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, cfg.UI.DebugColor, false)
		}
		for _, d := range layout.Doorways {
			vector.DrawFilledCircle(screen, float32(d.X), float32(d.Y), 3, cfg.UI.DebugColor, true)
		}
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			// Determine color based on tags
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvSolid) {
				c = color.RGBA{100, 100, 100, 255} // Grey
			} else if obj.HasTags(tags.ResolvPlayer) {
				c = color.RGBA{0, 0, 255, 255} // Blue
			} else if obj.HasTags(tags.ResolvEnemy) {
				c = color.RGBA{255, 0, 0, 255} // Red
			}

			x, y := float32(obj.X), float32(obj.Y)
			vector.FillRect(screen, x, y, float32(obj.W), 1, c, false)                  // Top
			vector.FillRect(screen, x, y+float32(obj.H)-1, float32(obj.W), 1, c, false) // Bottom
			vector.FillRect(screen, x, y, 1, float32(obj.H), c, false)                  // Left
			vector.FillRect(screen, x+float32(obj.W)-1, y, 1, float32(obj.H), c, false) // Right
		}
	}

	if fonts.Debug.Loaded() {
		enemies := 0
		tags.Enemy.Each(ecs.World, func(*donburi.Entry) { enemies++ })
		msg := fmt.Sprintf("TPS: %0.0f  FPS: %0.0f  enemies: %d", ebiten.ActualTPS(), ebiten.ActualFPS(), enemies)
		text.Draw(screen, msg, fonts.Debug.Get(), int(cfg.UI.HUDMargin), screen.Bounds().Dy()-int(cfg.UI.HUDMargin), cfg.UI.HUDTextColor)
	}
}
