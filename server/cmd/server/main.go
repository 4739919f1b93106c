package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/automoto/shapebattle/config"
	"github.com/automoto/shapebattle/server/core"
	"github.com/automoto/shapebattle/shared/protocol"
)

func main() {
	configPath := flag.String("config", "", "YAML file overriding the default tuning values")
	port := flag.Uint("port", 0, "Server port (0 uses the configured port)")
	tickRate := flag.Int("tickrate", 0, "Server tick rate in updates per second (0 uses the configured rate)")
	seed := flag.Int64("seed", 0, "Random seed for level generation and spawns (0 uses the clock)")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *port == 0 {
		*port = uint(config.Server.Port)
	}
	if *tickRate == 0 {
		*tickRate = config.Server.TickRate
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register components: %v", err)
	}

	server, err := core.NewServer(core.Options{
		TickRate:        *tickRate,
		Seed:            *seed,
		RestartOnDefeat: config.Server.RestartOnDefeat,
	}, core.SyncEntity)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down server...")
		server.Stop()
		os.Exit(0)
	}()

	log.Printf("Starting Shape Battle server on port %d (tick rate: %d/s, seed: %d)", *port, *tickRate, *seed)
	if err := server.Start(*port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
