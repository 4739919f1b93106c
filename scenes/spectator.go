package scenes

import (
	"image/color"
	"log"
	"sync"

	cfg "github.com/automoto/shapebattle/config"
	"github.com/automoto/shapebattle/network"
	"github.com/automoto/shapebattle/shared/netcomponents"
	"github.com/automoto/shapebattle/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpectatorScene draws a world mirrored from a headless server.
type SpectatorScene struct {
	ecsWorld   *ecs.ECS
	netClient  *network.Client
	once       sync.Once
	presentIDs map[esync.NetworkId]bool
	lost       bool
}

func NewSpectatorScene(client *network.Client) *SpectatorScene {
	return &SpectatorScene{
		netClient:  client,
		presentIDs: make(map[esync.NetworkId]bool),
	}
}

func (ss *SpectatorScene) Update() {
	ss.once.Do(ss.configure)

	state := ss.netClient.State()
	if (state == network.StateDisconnected || state == network.StateError) && !ss.lost {
		ss.lost = true
		log.Printf("[spectator] connection to %s lost: %v", ss.netClient.Address(), ss.netClient.LastError())
	}

	if snap := ss.netClient.LatestSnapshot(); snap != nil {
		applySnapshot(ss.ecsWorld.World, *snap, ss.presentIDs)
	}

	ss.ecsWorld.Update()
}

func (ss *SpectatorScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if ss.ecsWorld == nil {
		return
	}

	ss.ecsWorld.Draw(screen)
}

func (ss *SpectatorScene) configure() {
	ss.ecsWorld = ecs.NewECS(donburi.NewWorld())
	ss.ecsWorld.AddRenderer(cfg.Default, systems.DrawMirror)
	ss.ecsWorld.AddRenderer(cfg.LayerHUD, systems.DrawMirrorHUD)
}

// applySnapshot creates, updates and removes mirrored entities so the world
// matches the snapshot.
func applySnapshot(world donburi.World, snapshot esync.WorldSnapshot, present map[esync.NetworkId]bool) {
	clear(present)

	for _, ent := range snapshot {
		present[ent.Id] = true

		var compData []any
		for _, componentBytes := range ent.State {
			instance, err := esync.Mapper.Deserialize(componentBytes)
			if err != nil {
				continue
			}
			compData = append(compData, instance)
		}

		entity := esync.FindByNetworkId(world, ent.Id)
		if !world.Valid(entity) {
			entity = world.Create(componentTypesFromInstances(compData)...)

			entry := world.Entry(entity)
			entry.AddComponent(esync.NetworkIdComponent)
			esync.NetworkIdComponent.SetValue(entry, ent.Id)
		}

		entry := world.Entry(entity)
		for _, data := range compData {
			applyComponentToEntry(entry, data)
		}
	}

	var stale []*donburi.Entry
	esync.NetworkEntityQuery.Each(world, func(entry *donburi.Entry) {
		id := esync.GetNetworkId(entry)
		if id == nil || !present[*id] {
			stale = append(stale, entry)
		}
	})
	for _, entry := range stale {
		entry.Remove()
	}
}

func componentTypesFromInstances(components []any) []donburi.IComponentType {
	var ctypes []donburi.IComponentType
	for _, data := range components {
		switch data.(type) {
		case netcomponents.NetPositionData:
			ctypes = append(ctypes, netcomponents.NetPosition)
		case netcomponents.NetPlayerStateData:
			ctypes = append(ctypes, netcomponents.NetPlayerState)
		case netcomponents.NetEnemyData:
			ctypes = append(ctypes, netcomponents.NetEnemy)
		case netcomponents.NetDropData:
			ctypes = append(ctypes, netcomponents.NetDrop)
		case netcomponents.NetGameStateData:
			ctypes = append(ctypes, netcomponents.NetGameState)
		}
	}
	return ctypes
}

func applyComponentToEntry(entry *donburi.Entry, data any) {
	switch v := data.(type) {
	case netcomponents.NetPositionData:
		if !entry.HasComponent(netcomponents.NetPosition) {
			entry.AddComponent(netcomponents.NetPosition)
		}
		netcomponents.NetPosition.SetValue(entry, v)
	case netcomponents.NetPlayerStateData:
		if !entry.HasComponent(netcomponents.NetPlayerState) {
			entry.AddComponent(netcomponents.NetPlayerState)
		}
		netcomponents.NetPlayerState.SetValue(entry, v)
	case netcomponents.NetEnemyData:
		if !entry.HasComponent(netcomponents.NetEnemy) {
			entry.AddComponent(netcomponents.NetEnemy)
		}
		netcomponents.NetEnemy.SetValue(entry, v)
	case netcomponents.NetDropData:
		if !entry.HasComponent(netcomponents.NetDrop) {
			entry.AddComponent(netcomponents.NetDrop)
		}
		netcomponents.NetDrop.SetValue(entry, v)
	case netcomponents.NetGameStateData:
		if !entry.HasComponent(netcomponents.NetGameState) {
			entry.AddComponent(netcomponents.NetGameState)
		}
		netcomponents.NetGameState.SetValue(entry, v)
	}
}
