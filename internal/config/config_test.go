package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "voxelview.yaml")
	data := []byte(`
window:
  width: 1280
  height: 720
render_distance: 8
world_radius: 6
generator: flat
seed: 99
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1280, s.Window.Width)
	assert.Equal(t, 720, s.Window.Height)
	assert.Equal(t, 8, s.RenderDistance)
	assert.Equal(t, 6, s.WorldRadius)
	assert.Equal(t, "flat", s.Generator)
	assert.Equal(t, int64(99), s.Seed)
	// Unset fields keep their defaults.
	assert.Equal(t, Default().FontPath, s.FontPath)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "voxelview.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window: ["), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestRenderDistanceClamped(t *testing.T) {
	defer SetRenderDistance(Default().RenderDistance)

	SetRenderDistance(0)
	assert.Equal(t, 1, GetRenderDistance())

	SetRenderDistance(100)
	assert.Equal(t, 32, GetRenderDistance())

	SetRenderDistance(12)
	assert.Equal(t, 12, GetRenderDistance())
}
