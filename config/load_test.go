package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFileOverlaysDefaults(t *testing.T) {
	t.Cleanup(SetDefaults)

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	data := []byte(`
player:
  speed: 75
enemy:
  contact_damage: 2.5
spawner:
  cooldown: 0.5
debug:
  strict_singletons: true
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	require.NoError(t, LoadFile(path))

	assert.Equal(t, 75.0, Player.Speed)
	assert.Equal(t, 200.0, Player.Health, "unset keys keep their default")
	assert.Equal(t, 2.5, Enemy.ContactDamage)
	assert.Equal(t, 20.0, Enemy.Speed)
	assert.Equal(t, 0.5, Spawner.Cooldown)
	assert.True(t, Debug.StrictSingletons)
	assert.Equal(t, 1280, C.Width)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Cleanup(SetDefaults)

	tests := []struct {
		name string
		yaml string
	}{
		{"leaf sizes", "map:\n  min_leaf_size: 500\n  max_leaf_size: 100\n"},
		{"push factor", "enemy:\n  contact_push_factor: 1.5\n"},
		{"sides", "enemy:\n  min_sides: 2\n"},
		{"window", "window:\n  width: 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Load([]byte(tt.yaml))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}

	// A failed load leaves the configuration untouched.
	assert.Equal(t, 200.0, Map.MinLeafSize)
	assert.Equal(t, 0.5, Enemy.ContactPushFactor)
}

func TestLoadFileMissing(t *testing.T) {
	err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadMalformed(t *testing.T) {
	t.Cleanup(SetDefaults)
	assert.Error(t, Load([]byte("player: [1, 2")))
	assert.Equal(t, 50.0, Player.Speed)
}
