package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Wall       = donburi.NewTag().SetName("Wall")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Drop       = donburi.NewTag().SetName("Drop")
	Projectile = donburi.NewTag().SetName("Projectile")
	Pig        = donburi.NewTag().SetName("Pig")

	// Containers for bulk teardown
	EnemyParent      = donburi.NewTag().SetName("EnemyParent")
	DropParent       = donburi.NewTag().SetName("DropParent")
	ProjectileParent = donburi.NewTag().SetName("ProjectileParent")
	PigParent        = donburi.NewTag().SetName("PigParent")
)

// Resolv tags for collision queries
const (
	ResolvSolid      = "solid"
	ResolvPlayer     = "Player"
	ResolvEnemy      = "Enemy"
	ResolvDrop       = "Drop"
	ResolvProjectile = "Projectile"
	ResolvProbe      = "probe"
)
