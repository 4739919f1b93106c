package systems

import (
	"log"

	"github.com/automoto/shapebattle/components"
	cfg "github.com/automoto/shapebattle/config"
	"github.com/automoto/shapebattle/systems/factory"
	"github.com/automoto/shapebattle/tags"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdatePlayer turns held movement actions into wall-gated movement, fires
// projectiles and flags defeat once health runs out.
func UpdatePlayer(ecs *ecs.ECS) {
	playerEntry, ok := single(ecs.World, tags.Player)
	if !ok {
		return
	}
	session, ok := getSession(ecs)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	tf := components.Transform.Get(playerEntry)
	input := getOrCreateInput(ecs)

	if player.Health <= 0 {
		markDefeated(player, session)
		return
	}

	dir := movementDirection(input)
	step := dmath.Vec2{X: dir.X * player.Speed * session.Delta, Y: dir.Y * player.Speed * session.Delta}
	tf.Position = slide(ecs, tf.Position, step, false)

	if player.ShootCooldown > 0 {
		player.ShootCooldown -= session.Delta
	}
	if aim, firing := shootDirection(input); firing {
		player.Facing = aim
		if player.ShootCooldown <= 0 {
			factory.CreateProjectile(ecs, tf.Position, aim)
			player.ShootCooldown = cfg.Projectile.Cooldown
		}
	}
}

func markDefeated(player *components.PlayerData, session *components.SessionData) {
	if player.Defeated {
		return
	}
	player.Defeated = true
	session.State = cfg.StateDefeated
	log.Printf("Player defeated after %.1fs", session.Elapsed)
}

// movementDirection returns the held movement axes. Diagonals are not
// normalised; each axis moves at full speed.
func movementDirection(input *components.InputData) dmath.Vec2 {
	var dir dmath.Vec2
	if GetAction(input, cfg.ActionMoveLeft).Pressed {
		dir.X--
	}
	if GetAction(input, cfg.ActionMoveRight).Pressed {
		dir.X++
	}
	if GetAction(input, cfg.ActionMoveUp).Pressed {
		dir.Y--
	}
	if GetAction(input, cfg.ActionMoveDown).Pressed {
		dir.Y++
	}
	return dir
}

// shootDirection returns the direction of the first held shoot action.
func shootDirection(input *components.InputData) (dmath.Vec2, bool) {
	switch {
	case GetAction(input, cfg.ActionShootLeft).Pressed:
		return dmath.Vec2{X: -1}, true
	case GetAction(input, cfg.ActionShootRight).Pressed:
		return dmath.Vec2{X: 1}, true
	case GetAction(input, cfg.ActionShootUp).Pressed:
		return dmath.Vec2{Y: -1}, true
	case GetAction(input, cfg.ActionShootDown).Pressed:
		return dmath.Vec2{Y: 1}, true
	}
	return dmath.Vec2{}, false
}
