package main

import (
	"flag"
	"image"
	"log"
	"math/rand"
	"time"

	"github.com/automoto/shapebattle/config"
	"github.com/automoto/shapebattle/fonts"
	"github.com/automoto/shapebattle/network"
	"github.com/automoto/shapebattle/scenes"
	"github.com/automoto/shapebattle/shared/protocol"
	"github.com/automoto/shapebattle/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(seed int64, spectate string) (*Game, error) {
	if err := fonts.LoadDefaults(config.UI.HUDFontSize, config.UI.DebugFontSize); err != nil {
		return nil, err
	}

	if spectate != "" {
		// Register network components for client-side deserialization
		if err := protocol.RegisterComponents(); err != nil {
			return nil, err
		}
		client := network.NewClient()
		client.Connect(spectate)
		return &Game{scene: scenes.NewSpectatorScene(client)}, nil
	}

	scene, err := scenes.NewWorldScene(scenes.Options{
		Keys:        systems.EbitenKeys{},
		Rand:        rand.New(rand.NewSource(seed)),
		AutoRestart: false,
	})
	if err != nil {
		return nil, err
	}
	return &Game{scene: scene}, nil
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the default tuning values")
	seed := flag.Int64("seed", 0, "Random seed for level generation and spawns (0 uses the clock)")
	debug := flag.Bool("debug", false, "Start with the debug overlay enabled")
	spectate := flag.String("spectate", "", "Watch a headless server at host:port instead of playing")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *debug {
		config.Debug.Overlay = true
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.Printf("Starting Shape Battle with seed %d", *seed)

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	game, err := NewGame(*seed, *spectate)
	if err != nil {
		log.Fatalf("Failed to start game: %v", err)
	}
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
