package factory

import (
	"github.com/automoto/shapebattle/archetypes"
	"github.com/automoto/shapebattle/components"
	cfg "github.com/automoto/shapebattle/config"
	"github.com/automoto/shapebattle/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	pos := dmath.Vec2{X: x, Y: y}
	components.Transform.SetValue(player, components.TransformData{
		Position: pos,
		Depth:    cfg.Player.Depth,
	})
	components.Player.SetValue(player, components.PlayerData{
		Speed:  cfg.Player.Speed,
		Health: cfg.Player.Health,
		Radius: cfg.Player.Radius,
		Facing: dmath.Vec2{X: 1},
	})

	half := cfg.Map.TileSize * 0.9
	newObject(ecs, player, pos, half, half, tags.ResolvPlayer)

	return player
}

// CreateWallet creates the currency singleton with the starting balance.
func CreateWallet(ecs *ecs.ECS) *donburi.Entry {
	wallet := archetypes.Wallet.Spawn(ecs)
	components.Wallet.SetValue(wallet, components.WalletData{Currency: cfg.Player.StartingCurrency})
	return wallet
}
