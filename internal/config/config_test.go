package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDefaults(t *testing.T) {
	var c Config
	c.Resolve(Flags{})

	assert.Equal(t, "renders", c.OutputDir)
	assert.Equal(t, 700, c.Width)
	assert.Equal(t, 700, c.Height)
	assert.Equal(t, 1, c.Supersample)
	assert.Equal(t, "webp", c.Format)
	assert.Equal(t, 1, c.Frames)
	require.NotNil(t, c.StepDeg)
	assert.Equal(t, 10.0, *c.StepDeg)
	assert.Equal(t, runtime.NumCPU(), c.Workers)
	assert.False(t, c.Reference)
	assert.Empty(t, c.SceneFile)
}

func TestResolveFlagsOverride(t *testing.T) {
	c := Config{Width: 320, Height: 240, Format: "png", Frames: 4}
	c.Resolve(Flags{Width: 640, Format: "tga", Workers: 2, Reference: true, SceneFile: "s.json"})

	assert.Equal(t, 640, c.Width)
	assert.Equal(t, 240, c.Height)
	assert.Equal(t, "tga", c.Format)
	assert.Equal(t, 4, c.Frames)
	assert.Equal(t, 2, c.Workers)
	assert.True(t, c.Reference)
	assert.Equal(t, "s.json", c.SceneFile)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	data := `{"scene_file": "scenes/demo.json", "width": 128, "supersample": 2, "reference": true}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "scenes", "demo.json"), c.SceneFile)
	assert.Equal(t, 128, c.Width)
	assert.Equal(t, 2, c.Supersample)
	assert.True(t, c.Reference)
	assert.Zero(t, c.Height)
}

func TestStepDegZeroKept(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"frames": 4, "step_deg": 0}`), 0644))

	c, err := Load(path)
	require.NoError(t, err)
	c.Resolve(Flags{})
	require.NotNil(t, c.StepDeg)
	assert.Equal(t, 0.0, *c.StepDeg)
	assert.Equal(t, 4, c.Frames)

	// A flag overrides the file, including with zero.
	step := 0.0
	c = Config{}
	c.Resolve(Flags{StepDeg: &step})
	assert.Equal(t, 0.0, *c.StepDeg)

	fifteen := 15.0
	c.Resolve(Flags{StepDeg: &fifteen})
	assert.Equal(t, 15.0, *c.StepDeg)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(filepath.Join(dir, "missing.json"))
	assert.ErrorContains(t, err, "config: read")

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0644))
	_, err = Load(bad)
	assert.ErrorContains(t, err, "config: parse")
}
