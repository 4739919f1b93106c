package protocol

import (
	"github.com/automoto/shapebattle/shared/netcomponents"
	"github.com/leap-fish/necs/esync"
)

// Sync ID constants - ID 1 is reserved by necs for NetworkId
const (
	SyncIDNetPosition    uint = 10
	SyncIDNetPlayerState uint = 11
	SyncIDNetEnemy       uint = 12
	SyncIDNetDrop        uint = 13
	SyncIDNetGameState   uint = 14
)

// Interpolation IDs (uint8 for WithInterpFn)
const (
	InterpIDNetPosition uint8 = 10
	InterpIDNetEnemy    uint8 = 12
)

// RegisterComponents registers all network components with necs for serialization.
// Both the server and spectating clients call it once before any network operations.
func RegisterComponents() error {
	if err := esync.RegisterComponent(
		SyncIDNetPosition,
		netcomponents.NetPositionData{},
		netcomponents.NetPosition,
		esync.WithInterpFn(InterpIDNetPosition, netcomponents.LerpNetPosition),
	); err != nil {
		return err
	}

	if err := esync.RegisterComponent(
		SyncIDNetPlayerState,
		netcomponents.NetPlayerStateData{},
		netcomponents.NetPlayerState,
	); err != nil {
		return err
	}

	if err := esync.RegisterComponent(
		SyncIDNetEnemy,
		netcomponents.NetEnemyData{},
		netcomponents.NetEnemy,
		esync.WithInterpFn(InterpIDNetEnemy, netcomponents.LerpNetEnemy),
	); err != nil {
		return err
	}

	// Drops and the game state change discretely
	if err := esync.RegisterComponent(
		SyncIDNetDrop,
		netcomponents.NetDropData{},
		netcomponents.NetDrop,
	); err != nil {
		return err
	}

	if err := esync.RegisterComponent(
		SyncIDNetGameState,
		netcomponents.NetGameStateData{},
		netcomponents.NetGameState,
	); err != nil {
		return err
	}

	return nil
}
