package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Render layers.
const (
	Default ecs.LayerID = iota
	LayerHUD
)

// Config holds general game configuration
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"` // fixed update rate of the client
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Speed            float64 `yaml:"speed"`
	Health           float64 `yaml:"health"`
	Radius           float64 `yaml:"radius"`
	StartingCurrency float64 `yaml:"starting_currency"`
	Depth            float64 `yaml:"depth"`
}

// EnemyConfig contains enemy stats and spawn scaling
type EnemyConfig struct {
	Speed         float64 `yaml:"speed"`
	ContactDamage float64 `yaml:"contact_damage"`
	HealthPerSide float64 `yaml:"health_per_side"`
	MinSides      int     `yaml:"min_sides"`
	MaxSides      int     `yaml:"max_sides"` // inclusive

	// Collision radius is U[RadiusMin, RadiusMax) * RadiusScale
	RadiusMin   float64 `yaml:"radius_min"`
	RadiusMax   float64 `yaml:"radius_max"`
	RadiusScale float64 `yaml:"radius_scale"`

	// Share of the enemy step applied to the player on contact
	ContactPushFactor float64 `yaml:"contact_push_factor"`
	Depth             float64 `yaml:"depth"`
}

// SpawnerConfig contains spawn timing
type SpawnerConfig struct {
	Cooldown     float64 `yaml:"cooldown"`      // seconds between spawns
	InitialTimer float64 `yaml:"initial_timer"` // seconds before the first spawn
}

// DropsConfig contains loot values
type DropsConfig struct {
	PickupRadius float64 `yaml:"pickup_radius"`
	CoinValue    float64 `yaml:"coin_value"`
	HealthValue  float64 `yaml:"health_value"`
	Depth        float64 `yaml:"depth"` // behind gameplay layers

	BobHeight   float64 `yaml:"bob_height"`
	BobDuration float64 `yaml:"bob_duration"` // seconds per half cycle
}

// MapConfig contains level generation parameters
type MapConfig struct {
	MinLeafSize   float64 `yaml:"min_leaf_size"`
	MaxLeafSize   float64 `yaml:"max_leaf_size"`
	DoorTolerance float64 `yaml:"door_tolerance"`
	TileSize      float64 `yaml:"tile_size"`
	DoorHalfWidth float64 `yaml:"door_half_width"`
	CellSize      int     `yaml:"cell_size"` // resolv space cell size
}

// ProjectileConfig contains player projectile values
type ProjectileConfig struct {
	Speed     float64 `yaml:"speed"`
	Lifetime  float64 `yaml:"lifetime"`
	HitRadius float64 `yaml:"hit_radius"`
	Damage    float64 `yaml:"damage"`
	Size      float64 `yaml:"size"`
	Cooldown  float64 `yaml:"cooldown"`
}

// PigConfig contains the pig trade values
type PigConfig struct {
	Cost      float64 `yaml:"cost"`
	SalePrice float64 `yaml:"sale_price"`
	SellAfter float64 `yaml:"sell_after"` // seconds
}

// UIConfig contains HUD and debug drawing values
type UIConfig struct {
	HUDFontSize   float64 `yaml:"hud_font_size"`
	DebugFontSize float64 `yaml:"debug_font_size"`
	HUDMargin     float64 `yaml:"hud_margin"`

	BackgroundColor color.RGBA `yaml:"-"`
	HUDTextColor    color.RGBA `yaml:"-"`
	PlayerColor     color.RGBA `yaml:"-"`
	EnemyColor      color.RGBA `yaml:"-"`
	WallColor       color.RGBA `yaml:"-"`
	ProjectileColor color.RGBA `yaml:"-"`
	PigColor        color.RGBA `yaml:"-"`
	DropColors      map[string]color.RGBA `yaml:"-"`
	DebugColor      color.RGBA `yaml:"-"`
	PauseOverlay    color.RGBA `yaml:"-"`
}

// DebugConfig contains debug/testing options, can be overridden by CLI flags
type DebugConfig struct {
	Overlay bool `yaml:"overlay"` // draw collision objects and room outlines
	// StrictSingletons panics when a singleton component has more than one
	// instance instead of using the first one.
	StrictSingletons bool `yaml:"strict_singletons"`
}

// ServerConfig contains headless server options
type ServerConfig struct {
	Port            int  `yaml:"port"`
	TickRate        int  `yaml:"tick_rate"`
	RestartOnDefeat bool `yaml:"restart_on_defeat"`
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Spawner SpawnerConfig
var Drops DropsConfig
var Map MapConfig
var Projectile ProjectileConfig
var Pig PigConfig
var UI UIConfig
var Debug DebugConfig
var Server ServerConfig

var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Gray         = color.RGBA{R: 90, G: 90, B: 100, A: 255}
	Yellow       = color.RGBA{R: 255, G: 220, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Pink         = color.RGBA{R: 255, G: 150, B: 190, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	DarkNavy     = color.RGBA{R: 18, G: 20, B: 32, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	SetDefaults()
}

// SetDefaults resets every configuration instance to its built-in values.
func SetDefaults() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "Shape Battle",
		TPS:    60,
	}

	Player = PlayerConfig{
		Speed:            50.0,
		Health:           200.0,
		Radius:           8.0,
		StartingCurrency: 100.0,
		Depth:            1.0,
	}

	Enemy = EnemyConfig{
		Speed:             20.0,
		ContactDamage:     1.0,
		HealthPerSide:     25.0,
		MinSides:          3,
		MaxSides:          7,
		RadiusMin:         1.0,
		RadiusMax:         3.0,
		RadiusScale:       5.0,
		ContactPushFactor: 0.5,
		Depth:             0.5,
	}

	Spawner = SpawnerConfig{
		Cooldown:     1.0,
		InitialTimer: 1.0,
	}

	Drops = DropsConfig{
		PickupRadius: 10.0,
		CoinValue:    10.0,
		HealthValue:  10.0,
		Depth:        -1.0,
		BobHeight:    2.0,
		BobDuration:  0.6,
	}

	Map = MapConfig{
		MinLeafSize:   200.0,
		MaxLeafSize:   600.0,
		DoorTolerance: 1.0,
		TileSize:      8.0,
		DoorHalfWidth: 32.0, // four tiles either side of the doorway point
		CellSize:      16,
	}

	Projectile = ProjectileConfig{
		Speed:     200.0,
		Lifetime:  4.0,
		HitRadius: 10.0,
		Damage:    25.0,
		Size:      4.0,
		Cooldown:  0.25,
	}

	Pig = PigConfig{
		Cost:      10.0,
		SalePrice: 15.0,
		SellAfter: 2.0,
	}

	UI = UIConfig{
		HUDFontSize:     16,
		DebugFontSize:   10,
		HUDMargin:       10,
		BackgroundColor: DarkNavy,
		HUDTextColor:    White,
		PlayerColor:     LightBlue,
		EnemyColor:      LightRed,
		WallColor:       Gray,
		ProjectileColor: Yellow,
		PigColor:        Pink,
		DropColors: map[string]color.RGBA{
			"coin":      Yellow,
			"health":    Green,
			"damage_up": Purple,
		},
		DebugColor:   Magenta,
		PauseOverlay: BlackOverlay,
	}

	Debug = DebugConfig{}

	Server = ServerConfig{
		Port:            7373,
		TickRate:        30,
		RestartOnDefeat: true,
	}
}
