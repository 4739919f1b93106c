package systems

import (
	"fmt"

	cfg "github.com/automoto/shapebattle/config"
	"github.com/automoto/shapebattle/fonts"
	"github.com/automoto/shapebattle/shared/netcomponents"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawMirror renders the entities received from a server with the same
// shapes the local renderer uses.
func DrawMirror(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.UI.BackgroundColor)

	esync.NetworkEntityQuery.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(netcomponents.NetGameState) {
			return
		}
		for _, r := range netcomponents.NetGameState.Get(entry).Rooms {
			vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 2, cfg.UI.WallColor, false)
		}
	})

	esync.NetworkEntityQuery.Each(e.World, func(entry *donburi.Entry) {
		switch {
		case entry.HasComponent(netcomponents.NetDrop):
			drop := netcomponents.NetDrop.Get(entry)
			c, ok := cfg.UI.DropColors[drop.Type]
			if !ok {
				c = cfg.White
			}
			vector.DrawFilledCircle(screen, float32(drop.X), float32(drop.Y), 3, c, true)
		case entry.HasComponent(netcomponents.NetEnemy):
			enemy := netcomponents.NetEnemy.Get(entry)
			drawPolygon(screen, float32(enemy.X), float32(enemy.Y), float32(enemy.Radius), enemy.Sides, cfg.UI.EnemyColor)
		case entry.HasComponent(netcomponents.NetPosition):
			pos := netcomponents.NetPosition.Get(entry)
			r := float32(cfg.Player.Radius)
			vector.FillRect(screen, float32(pos.X)-r, float32(pos.Y)-r, r*2, r*2, cfg.UI.PlayerColor, false)
		}
	})
}

// DrawMirrorHUD shows the mirrored player's HUD lines and the entity count.
func DrawMirrorHUD(e *ecs.ECS, screen *ebiten.Image) {
	if !fonts.HUD.Loaded() {
		return
	}
	face := fonts.HUD.Get()
	margin := int(cfg.UI.HUDMargin)
	lineHeight := int(cfg.UI.HUDFontSize) + 4

	entityCount := 0
	esync.NetworkEntityQuery.Each(e.World, func(entry *donburi.Entry) {
		entityCount++
		if !entry.HasComponent(netcomponents.NetPlayerState) {
			return
		}
		state := netcomponents.NetPlayerState.Get(entry)
		text.Draw(screen, MoneyText(state.Currency), face, margin, margin+lineHeight, cfg.UI.HUDTextColor)
		text.Draw(screen, HealthText(state.Health), face, margin, margin+lineHeight*2, cfg.UI.HUDTextColor)
	})

	info := fmt.Sprintf("Spectating - Entities: %d", entityCount)
	text.Draw(screen, info, fonts.Debug.Get(), margin, screen.Bounds().Dy()-margin, cfg.UI.HUDTextColor)
}
