package core

import (
	"log"

	"github.com/automoto/shapebattle/components"
	"github.com/automoto/shapebattle/shared/netcomponents"
	"github.com/automoto/shapebattle/tags"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Kind names what a mirrored entity represents.
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
	KindDrop
	KindGameState
)

// TrackFunc marks an entity for network sync once its net components exist.
type TrackFunc func(w donburi.World, e donburi.Entity, kind Kind) error

// Mirror copies the simulation into net components every tick.
type Mirror struct {
	track      TrackFunc
	state      donburi.Entity
	hasState   bool
	generation int
	errors     int
}

func NewMirror(track TrackFunc) *Mirror {
	return &Mirror{track: track, generation: -1}
}

// Errors returns how many entities failed to register for sync.
func (m *Mirror) Errors() int {
	return m.errors
}

func (m *Mirror) Update(ecs *ecs.ECS) {
	m.mirrorPlayer(ecs.World)
	m.mirrorEnemies(ecs.World)
	m.mirrorDrops(ecs.World)
	m.mirrorGameState(ecs.World)
}

func (m *Mirror) register(w donburi.World, e donburi.Entity, kind Kind) {
	if err := m.track(w, e, kind); err != nil {
		m.errors++
		log.Printf("Failed to setup network sync for %v: %v", kind, err)
	}
}

func (m *Mirror) mirrorPlayer(w donburi.World) {
	entry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	if !entry.HasComponent(netcomponents.NetPlayerState) {
		donburi.Add(entry, netcomponents.NetPosition, &netcomponents.NetPositionData{})
		donburi.Add(entry, netcomponents.NetPlayerState, &netcomponents.NetPlayerStateData{})
		m.register(w, entry.Entity(), KindPlayer)
	}

	player := components.Player.Get(entry)
	netcomponents.NetPosition.SetValue(entry, netcomponents.PositionOf(components.Transform.Get(entry).Position))
	state := netcomponents.NetPlayerState.Get(entry)
	state.Health = player.Health
	state.Defeated = player.Defeated
	if walletEntry, ok := components.Wallet.First(w); ok {
		state.Currency = components.Wallet.Get(walletEntry).Currency
	}
}

func (m *Mirror) mirrorEnemies(w donburi.World) {
	var fresh []*donburi.Entry
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		if !e.HasComponent(netcomponents.NetEnemy) {
			fresh = append(fresh, e)
		}
	})
	for _, e := range fresh {
		donburi.Add(e, netcomponents.NetEnemy, &netcomponents.NetEnemyData{})
		m.register(w, e.Entity(), KindEnemy)
	}

	tags.Enemy.Each(w, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		pos := components.Transform.Get(e).Position
		netcomponents.NetEnemy.SetValue(e, netcomponents.NetEnemyData{
			X:      pos.X,
			Y:      pos.Y,
			Sides:  enemy.Sides,
			Radius: enemy.Radius,
			Health: enemy.Health,
		})
	})
}

func (m *Mirror) mirrorDrops(w donburi.World) {
	var fresh []*donburi.Entry
	tags.Drop.Each(w, func(e *donburi.Entry) {
		if !e.HasComponent(netcomponents.NetDrop) {
			fresh = append(fresh, e)
		}
	})
	// Drops never move, so the value is written once.
	for _, e := range fresh {
		pos := components.Transform.Get(e).Position
		donburi.Add(e, netcomponents.NetDrop, &netcomponents.NetDropData{
			X:    pos.X,
			Y:    pos.Y,
			Type: string(components.Drop.Get(e).Type),
		})
		m.register(w, e.Entity(), KindDrop)
	}
}

func (m *Mirror) mirrorGameState(w donburi.World) {
	if !m.hasState || !w.Valid(m.state) {
		m.state = w.Create(netcomponents.NetGameState)
		m.hasState = true
		m.generation = -1
		m.register(w, m.state, KindGameState)
	}
	state := netcomponents.NetGameState.Get(w.Entry(m.state))

	if sessionEntry, ok := components.Session.First(w); ok {
		session := components.Session.Get(sessionEntry)
		state.State = int(session.State)
		state.Elapsed = session.Elapsed
	}

	enemies := 0
	tags.Enemy.Each(w, func(*donburi.Entry) { enemies++ })
	state.Enemies = enemies

	levelEntry, ok := components.Level.First(w)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	if level.Generation == m.generation || level.Layout == nil {
		return
	}
	m.generation = level.Generation
	state.Generation = level.Generation
	rooms := level.Layout.Rooms()
	state.Rooms = make([]netcomponents.NetRoom, 0, len(rooms))
	for _, r := range rooms {
		state.Rooms = append(state.Rooms, netcomponents.NetRoom{X: r.X, Y: r.Y, W: r.W, H: r.H})
	}
}

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindDrop:
		return "drop"
	case KindGameState:
		return "game state"
	}
	return "unknown"
}

// SyncEntity registers an entity with esync, listing the net components its
// kind carries.
func SyncEntity(w donburi.World, e donburi.Entity, kind Kind) error {
	switch kind {
	case KindPlayer:
		return srvsync.NetworkSync(w, &e, netcomponents.NetPosition, netcomponents.NetPlayerState)
	case KindEnemy:
		return srvsync.NetworkSync(w, &e, netcomponents.NetEnemy)
	case KindDrop:
		return srvsync.NetworkSync(w, &e, netcomponents.NetDrop)
	}
	return srvsync.NetworkSync(w, &e, netcomponents.NetGameState)
}
