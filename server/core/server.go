package core

import (
	"fmt"
	"log"
	"math/rand"
	"sync"

	"github.com/automoto/shapebattle/scenes"
	"github.com/automoto/shapebattle/systems"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/yohamta/donburi/ecs"
)

// Options configures a headless server.
type Options struct {
	TickRate        int
	Seed            int64
	RestartOnDefeat bool
}

// Server runs the simulation headless and mirrors it to spectators.
// Only the game loop goroutine touches the world; router callbacks only
// update the spectator count.
type Server struct {
	world     *ecs.ECS
	mirror    *Mirror
	loop      *GameLoop
	transport *transports.WsServerTransport

	spectators int
	mu         sync.RWMutex
}

// NewServer builds the world and wires the esync mirror into it.
func NewServer(opts Options, track TrackFunc) (*Server, error) {
	if opts.TickRate <= 0 {
		return nil, fmt.Errorf("new server: tick rate %d must be positive", opts.TickRate)
	}
	if track == nil {
		track = SyncEntity
	}

	s := &Server{mirror: NewMirror(track)}
	world, err := scenes.NewWorld(scenes.Options{
		Keys:        systems.NoKeys{},
		Rand:        rand.New(rand.NewSource(opts.Seed)),
		AutoRestart: opts.RestartOnDefeat,
		Mirror:      []ecs.System{s.mirror.Update},
	})
	if err != nil {
		return nil, fmt.Errorf("new server: %w", err)
	}
	s.world = world
	s.loop = NewGameLoop(s, opts.TickRate)

	return s, nil
}

// Start begins the server on the given port
func (s *Server) Start(port uint) error {
	// Set up the world for esync
	srvsync.UseEsync(s.world.World)
	s.setupRouterCallbacks()

	go s.loop.Run()

	s.transport = transports.NewWsServerTransport(port, "", nil)
	return s.transport.Start()
}

// Stop gracefully shuts down the server
func (s *Server) Stop() {
	s.loop.Stop()
}

// Step advances the simulation by one tick.
func (s *Server) Step(dt float64) {
	systems.AdvanceClock(s.world, dt)
	s.world.Update()
}

func (s *Server) setupRouterCallbacks() {
	router.OnConnect(func(client *router.NetworkClient) {
		n := s.addSpectator(1)
		log.Printf("Spectator connected: %s (%d watching)", client.Id(), n)
	})

	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		n := s.addSpectator(-1)
		if err != nil {
			log.Printf("Spectator %s disconnected with error: %v (%d watching)", client.Id(), err, n)
			return
		}
		log.Printf("Spectator %s disconnected (%d watching)", client.Id(), n)
	})

	router.OnError(func(client *router.NetworkClient, err error) {
		log.Printf("Client error: %v", err)
	})
}

func (s *Server) addSpectator(delta int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.spectators = max(0, s.spectators+delta)
	return s.spectators
}

// SpectatorCount returns the number of connected spectators
func (s *Server) SpectatorCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.spectators
}

// World returns the ECS world
func (s *Server) World() *ecs.ECS {
	return s.world
}
