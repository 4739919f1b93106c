package systems

import (
	"fmt"
	"strconv"

	"github.com/automoto/shapebattle/components"
	cfg "github.com/automoto/shapebattle/config"
	"github.com/automoto/shapebattle/fonts"
	"github.com/automoto/shapebattle/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

const defeatedLabel = "DEFEATED - press R to restart"

// MoneyText formats the currency line of the HUD.
func MoneyText(currency float64) string {
	return fmt.Sprintf("Money: $%s", formatAmount(currency))
}

// HealthText formats the health line of the HUD.
func HealthText(health float64) string {
	return fmt.Sprintf("Health: %s HP", formatAmount(health))
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// UpdateHUD refreshes the HUD text from the wallet and the player, and
// toggles the debug overlay.
func UpdateHUD(ecs *ecs.ECS) {
	hudEntry, ok := single(ecs.World, components.HUD)
	if !ok {
		return
	}
	hud := components.HUD.Get(hudEntry)

	if GetAction(getOrCreateInput(ecs), cfg.ActionToggleDebug).JustPressed {
		debug := components.Debug.Get(hudEntry)
		debug.Enabled = !debug.Enabled
	}

	if walletEntry, ok := single(ecs.World, components.Wallet); ok {
		hud.MoneyText = MoneyText(components.Wallet.Get(walletEntry).Currency)
	}
	if playerEntry, ok := single(ecs.World, tags.Player); ok {
		hud.HealthText = HealthText(components.Player.Get(playerEntry).Health)
	}
}

// DrawHUD renders the HUD text in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	hudEntry, ok := components.HUD.First(ecs.World)
	if !ok || !fonts.HUD.Loaded() {
		return
	}
	hud := components.HUD.Get(hudEntry)
	face := fonts.HUD.Get()

	margin := int(cfg.UI.HUDMargin)
	lineHeight := int(cfg.UI.HUDFontSize) + 4
	text.Draw(screen, hud.MoneyText, face, margin, margin+lineHeight, cfg.UI.HUDTextColor)
	text.Draw(screen, hud.HealthText, face, margin, margin+lineHeight*2, cfg.UI.HUDTextColor)

	if session, ok := getSession(ecs); ok && session.State == cfg.StateDefeated {
		width := screen.Bounds().Dx()
		x := (width - len(defeatedLabel)*int(cfg.UI.HUDFontSize*0.6)) / 2
		text.Draw(screen, defeatedLabel, face, x, screen.Bounds().Dy()/2, cfg.UI.HUDTextColor)
	}
}
