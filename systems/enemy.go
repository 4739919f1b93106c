package systems

import (
	"log"
	"math"

	"github.com/automoto/shapebattle/components"
	cfg "github.com/automoto/shapebattle/config"
	"github.com/automoto/shapebattle/shared/gamemath"
	"github.com/automoto/shapebattle/systems/factory"
	"github.com/automoto/shapebattle/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// enemyMove is one enemy's plan for the current tick.
type enemyMove struct {
	entry   *donburi.Entry
	enemy   *components.EnemyData
	tf      *components.TransformData
	step    dmath.Vec2
	next    dmath.Vec2
	blocked bool
}

// UpdateEnemies removes dead enemies, leaving a drop behind each, then moves
// the survivors toward the player. It does nothing until both the player and
// the enemy container exist.
func UpdateEnemies(ecs *ecs.ECS) {
	playerEntry, ok := single(ecs.World, tags.Player)
	if !ok {
		return
	}
	parent, ok := single(ecs.World, tags.EnemyParent)
	if !ok {
		return
	}
	session, ok := getSession(ecs)
	if !ok {
		return
	}

	removeDeadEnemies(ecs, parent, session)
	moveEnemies(ecs, activeEnemies(ecs, parent), playerEntry, session.Delta)
}

// activeEnemies returns the container's live enemies in spawn order.
func activeEnemies(ecs *ecs.ECS, parent *donburi.Entry) []*donburi.Entry {
	children := components.Container.Get(parent).Children
	enemies := make([]*donburi.Entry, 0, len(children))
	for _, child := range children {
		if !ecs.World.Valid(child) {
			continue
		}
		e := ecs.World.Entry(child)
		if e.HasComponent(components.Enemy) {
			enemies = append(enemies, e)
		}
	}
	return enemies
}

func removeDeadEnemies(ecs *ecs.ECS, parent *donburi.Entry, session *components.SessionData) {
	for _, e := range activeEnemies(ecs, parent) {
		enemy := components.Enemy.Get(e)
		if enemy.Health > 0 {
			continue
		}
		pos := components.Transform.Get(e).Position
		dropType := components.DropTypes[session.Rand.Intn(len(components.DropTypes))]
		factory.CreateDrop(ecs, pos, dropType)
		factory.Destroy(ecs, tags.EnemyParent, e)
		log.Printf("Enemy with %d sides destroyed, dropped %s", enemy.Sides, dropType)
	}
}

func moveEnemies(ecs *ecs.ECS, enemies []*donburi.Entry, playerEntry *donburi.Entry, dt float64) {
	player := components.Player.Get(playerEntry)
	playerTf := components.Transform.Get(playerEntry)

	moves := make([]*enemyMove, 0, len(enemies))
	for _, e := range enemies {
		m := &enemyMove{
			entry: e,
			enemy: components.Enemy.Get(e),
			tf:    components.Transform.Get(e),
		}
		m.step = gamemath.StepToward(m.tf.Position, playerTf.Position, m.enemy.Speed, dt)
		m.next = dmath.Vec2{X: m.tf.Position.X + m.step.X, Y: m.tf.Position.Y + m.step.Y}

		if gamemath.Distance(m.next, playerTf.Position) < m.enemy.Radius+player.Radius {
			contactPlayer(ecs, m, player, playerTf)
		}
		moves = append(moves, m)
	}

	blockCrowded(moves)

	for _, m := range moves {
		if m.blocked {
			continue
		}
		m.tf.Position = slide(ecs, m.tf.Position, m.step, true)
	}
}

// contactPlayer pushes the player along the enemy's step and applies the
// enemy's contact damage. The enemy holds its position.
func contactPlayer(ecs *ecs.ECS, m *enemyMove, player *components.PlayerData, playerTf *components.TransformData) {
	k := cfg.Enemy.ContactPushFactor
	push := dmath.Vec2{X: m.step.X * k, Y: m.step.Y * k}
	playerTf.Position = slide(ecs, playerTf.Position, push, false)
	player.Health = math.Max(0, player.Health-m.enemy.ContactDamage)

	m.blocked = true
	m.step = dmath.Vec2{}
	m.next = m.tf.Position
}

// blockCrowded tests every unordered pair of enemies. An enemy is blocked
// when its prospective box overlaps the other's current or prospective box.
// Overlapping enemies stay put until the other side moves away.
func blockCrowded(moves []*enemyMove) {
	for i := 0; i < len(moves); i++ {
		for j := i + 1; j < len(moves); j++ {
			a, b := moves[i], moves[j]
			if crowds(a, b) {
				a.blocked = true
			}
			if crowds(b, a) {
				b.blocked = true
			}
		}
	}
}

func crowds(m, other *enemyMove) bool {
	if m.step == (dmath.Vec2{}) {
		return false
	}
	r, ro := m.enemy.Radius, other.enemy.Radius
	return gamemath.Overlaps(m.next, r, other.tf.Position, ro) ||
		gamemath.Overlaps(m.next, r, other.next, ro)
}
