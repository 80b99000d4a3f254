package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 800, cfg.Graphics.Width)
	assert.Equal(t, 600, cfg.Graphics.Height)
	assert.True(t, cfg.Graphics.VSync)

	assert.Equal(t, float32(50), cfg.Cuboid.HalfA)
	assert.Equal(t, float32(100), cfg.Cuboid.HalfB)
	assert.Equal(t, float32(100), cfg.Cuboid.HalfC)
	assert.False(t, cfg.Cuboid.ShowAxis)

	assert.Equal(t, [3]float32{200, 150, 0}, cfg.Camera.Origin)
	assert.Equal(t, float32(0.005), cfg.Camera.DragSensitivity)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Empty(t, cfg.Logging.LogFile)
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "wirebox.yaml")

	yamlContent := `
graphics:
  width: 1024
  height: 768
  vsync: false

cuboid:
  half_a: 25
  half_b: 75
  show_axis: true

camera:
  origin: [320, 240, 0]
  drag_sensitivity: 0.01

logging:
  level: debug
`
	require.NoError(t, os.WriteFile(configPath, []byte(yamlContent), 0644))

	cfg := Default()
	require.NoError(t, loadFromFile(cfg, configPath))

	assert.Equal(t, 1024, cfg.Graphics.Width)
	assert.Equal(t, 768, cfg.Graphics.Height)
	assert.False(t, cfg.Graphics.VSync)

	assert.Equal(t, float32(25), cfg.Cuboid.HalfA)
	assert.Equal(t, float32(75), cfg.Cuboid.HalfB)
	// Unset keys keep their defaults.
	assert.Equal(t, float32(100), cfg.Cuboid.HalfC)
	assert.True(t, cfg.Cuboid.ShowAxis)

	assert.Equal(t, [3]float32{320, 240, 0}, cfg.Camera.Origin)
	assert.Equal(t, float32(0.01), cfg.Camera.DragSensitivity)
	assert.Equal(t, float32(0.1), cfg.Camera.ZoomSensitivity)

	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadFromMissingFile(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "wirebox.yaml")

	cfg := Default()
	cfg.Graphics.Width = 1600
	cfg.Cuboid.HalfA = 33
	cfg.Camera.Origin = [3]float32{10, 20, 30}
	require.NoError(t, cfg.SaveTo(configPath))

	loaded := Default()
	require.NoError(t, loadFromFile(loaded, configPath))
	assert.Equal(t, cfg, loaded)
}
