package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned when a loaded configuration fails validation.
var ErrInvalid = errors.New("config: invalid value")

// File mirrors the YAML layout accepted by LoadFile. Sections and keys that
// are missing keep their current values.
type File struct {
	Window     Config           `yaml:"window"`
	Player     PlayerConfig     `yaml:"player"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Spawner    SpawnerConfig    `yaml:"spawner"`
	Drops      DropsConfig      `yaml:"drops"`
	Map        MapConfig        `yaml:"map"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Pig        PigConfig        `yaml:"pig"`
	Debug      DebugConfig      `yaml:"debug"`
	Server     ServerConfig     `yaml:"server"`
}

func current() File {
	return File{
		Window:     *C,
		Player:     Player,
		Enemy:      Enemy,
		Spawner:    Spawner,
		Drops:      Drops,
		Map:        Map,
		Projectile: Projectile,
		Pig:        Pig,
		Debug:      Debug,
		Server:     Server,
	}
}

func (f File) apply() {
	window := f.Window
	C = &window
	Player = f.Player
	Enemy = f.Enemy
	Spawner = f.Spawner
	Drops = f.Drops
	Map = f.Map
	Projectile = f.Projectile
	Pig = f.Pig
	Debug = f.Debug
	Server = f.Server
}

// LoadFile overlays the YAML file at path onto the current configuration.
// Nothing is changed when reading, parsing or validation fails.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	return Load(data)
}

// Load overlays YAML data onto the current configuration.
func Load(data []byte) error {
	f := current()
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("config: parse: %w", err)
	}
	if err := f.Validate(); err != nil {
		return err
	}
	f.apply()
	return nil
}

// Validate rejects values the game cannot run with.
func (f File) Validate() error {
	switch {
	case f.Window.Width <= 0 || f.Window.Height <= 0:
		return fmt.Errorf("%w: window %dx%d", ErrInvalid, f.Window.Width, f.Window.Height)
	case f.Map.MinLeafSize <= 0 || f.Map.MaxLeafSize < f.Map.MinLeafSize:
		return fmt.Errorf("%w: leaf sizes %v..%v", ErrInvalid, f.Map.MinLeafSize, f.Map.MaxLeafSize)
	case f.Map.TileSize <= 0:
		return fmt.Errorf("%w: tile size %v", ErrInvalid, f.Map.TileSize)
	case f.Map.CellSize <= 0:
		return fmt.Errorf("%w: cell size %d", ErrInvalid, f.Map.CellSize)
	case f.Enemy.MinSides < 3 || f.Enemy.MaxSides < f.Enemy.MinSides:
		return fmt.Errorf("%w: enemy sides %d..%d", ErrInvalid, f.Enemy.MinSides, f.Enemy.MaxSides)
	case f.Enemy.RadiusMax <= f.Enemy.RadiusMin:
		return fmt.Errorf("%w: enemy radius range %v..%v", ErrInvalid, f.Enemy.RadiusMin, f.Enemy.RadiusMax)
	case f.Enemy.ContactPushFactor < 0 || f.Enemy.ContactPushFactor >= 1:
		return fmt.Errorf("%w: contact push factor %v", ErrInvalid, f.Enemy.ContactPushFactor)
	case f.Spawner.Cooldown <= 0:
		return fmt.Errorf("%w: spawner cooldown %v", ErrInvalid, f.Spawner.Cooldown)
	case f.Server.TickRate <= 0:
		return fmt.Errorf("%w: tick rate %d", ErrInvalid, f.Server.TickRate)
	}
	return nil
}
