package systems

import (
	"log"

	"github.com/automoto/shapebattle/components"
	cfg "github.com/automoto/shapebattle/config"
	"github.com/automoto/shapebattle/shared/gamemath"
	"github.com/automoto/shapebattle/systems/factory"
	"github.com/automoto/shapebattle/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDrops applies and removes every drop within pickup range of the
// player. A drop is consumed at most once; the entry is gone before the next
// drop is examined.
func UpdateDrops(ecs *ecs.ECS) {
	playerEntry, ok := single(ecs.World, tags.Player)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	playerPos := components.Transform.Get(playerEntry).Position

	var wallet *components.WalletData
	if walletEntry, ok := single(ecs.World, components.Wallet); ok {
		wallet = components.Wallet.Get(walletEntry)
	}

	var picked []*donburi.Entry
	tags.Drop.Each(ecs.World, func(e *donburi.Entry) {
		pos := components.Transform.Get(e).Position
		if gamemath.Distance(pos, playerPos) < cfg.Drops.PickupRadius {
			picked = append(picked, e)
		}
	})

	for _, e := range picked {
		if !e.Valid() {
			continue
		}
		applyDrop(components.Drop.Get(e).Type, player, wallet)
		factory.Destroy(ecs, tags.DropParent, e)
	}

	if session, ok := getSession(ecs); ok {
		updateBobbing(ecs, session.Delta)
	}
}

func applyDrop(dropType components.DropType, player *components.PlayerData, wallet *components.WalletData) {
	switch dropType {
	case components.DropCoin:
		if wallet != nil {
			wallet.Currency += cfg.Drops.CoinValue
		}
	case components.DropHealth:
		player.Health += cfg.Drops.HealthValue
	default:
		log.Printf("Picked up %s drop, no effect", dropType)
	}
}

// updateBobbing advances the idle motion of every drop.
func updateBobbing(ecs *ecs.ECS, dt float64) {
	components.Bob.Each(ecs.World, func(e *donburi.Entry) {
		bob := components.Bob.Get(e)
		if bob.Tween == nil {
			return
		}
		value, finished := bob.Tween.Update(float32(dt))
		bob.Offset = value
		if !bob.Rising {
			bob.Offset = float32(cfg.Drops.BobHeight) - value
		}
		if finished {
			bob.Rising = !bob.Rising
			bob.Tween.Reset()
		}
	})
}
