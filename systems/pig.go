package systems

import (
	"log"

	"github.com/automoto/shapebattle/components"
	cfg "github.com/automoto/shapebattle/config"
	"github.com/automoto/shapebattle/systems/factory"
	"github.com/automoto/shapebattle/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePigs buys a pig at the player's position when the buy action is
// pressed and the wallet can pay, and sells every pig whose timer ran out.
func UpdatePigs(ecs *ecs.ECS) {
	walletEntry, ok := single(ecs.World, components.Wallet)
	if !ok {
		return
	}
	session, ok := getSession(ecs)
	if !ok {
		return
	}
	wallet := components.Wallet.Get(walletEntry)
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionBuyPig).JustPressed && wallet.Currency >= cfg.Pig.Cost {
		if playerEntry, ok := single(ecs.World, tags.Player); ok {
			wallet.Currency -= cfg.Pig.Cost
			factory.CreatePig(ecs, components.Transform.Get(playerEntry).Position)
			log.Printf("Bought pig for $%v. Current Money: $%v", cfg.Pig.Cost, wallet.Currency)
		}
	}

	var sold []*donburi.Entry
	tags.Pig.Each(ecs.World, func(e *donburi.Entry) {
		pig := components.Pig.Get(e)
		pig.Remaining -= session.Delta
		if pig.Remaining <= 0 {
			sold = append(sold, e)
		}
	})

	for _, e := range sold {
		price := components.Pig.Get(e).Price
		wallet.Currency += price
		factory.Destroy(ecs, tags.PigParent, e)
		log.Printf("Pig sold for $%v! Current Money: $%v", price, wallet.Currency)
	}
}
