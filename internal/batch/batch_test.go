package batch

import (
	"encoding/json"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tri-raster/internal/output"
	"tri-raster/internal/raster"
	"tri-raster/internal/scene"
)

func testConfig(t *testing.T) Config {
	return Config{
		Scene:       scene.Default(),
		OutputDir:   t.TempDir(),
		Width:       64,
		Height:      48,
		Supersample: 1,
		Format:      output.PNG,
		Options:     raster.DefaultOptions(),
		Frames:      5,
		StepDeg:     15,
		Workers:     3,
	}
}

func TestRun(t *testing.T) {
	cfg := testConfig(t)
	results := Run(cfg)
	require.Len(t, results, 5)

	for i, r := range results {
		require.True(t, r.Success, "frame %d: %s", i, r.Error)
		assert.Equal(t, i, r.Frame)
		assert.Equal(t, float64(i)*15, r.Angle)
		assert.Equal(t, FrameName(i, output.PNG), r.Image)

		f, err := os.Open(filepath.Join(cfg.OutputDir, r.Image))
		require.NoError(t, err)
		img, err := png.DecodeConfig(f)
		f.Close()
		require.NoError(t, err)
		assert.Equal(t, 64, img.Width)
		assert.Equal(t, 48, img.Height)
	}
}

func TestRunSupersample(t *testing.T) {
	cfg := testConfig(t)
	cfg.Frames = 1
	cfg.Supersample = 3
	results := Run(cfg)
	require.True(t, results[0].Success, results[0].Error)

	f, err := os.Open(filepath.Join(cfg.OutputDir, results[0].Image))
	require.NoError(t, err)
	defer f.Close()
	img, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Width)
}

func TestRunReferenceModeFails(t *testing.T) {
	cfg := testConfig(t)
	cfg.Frames = 2
	cfg.Options = raster.Options{ClampBounds: false}
	// Pull the camera close enough that the triangles leave the frame.
	sc := scene.Default()
	sc.Camera.Eye[2] = -1
	cfg.Scene = sc

	for _, r := range Run(cfg) {
		assert.False(t, r.Success)
		assert.Contains(t, r.Error, "raster:")
	}
}

func TestWriteManifest(t *testing.T) {
	results := []Result{
		{Frame: 0, Angle: 0, Image: "frame_0000.png", Success: true},
		{Frame: 1, Angle: 10, Image: "frame_0001.png", Error: "boom"},
		{Frame: 2, Angle: 20, Image: "frame_0002.png", Success: true},
	}
	path := filepath.Join(t.TempDir(), "manifest.json")
	require.NoError(t, WriteManifest(path, 64, 48, results))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var m Manifest
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, 64, m.Width)
	require.Len(t, m.Frames, 2)
	assert.Equal(t, "frame_0002.png", m.Frames[1].Image)
	assert.Equal(t, 20.0, m.Frames[1].Angle)
}

func TestFrameName(t *testing.T) {
	assert.Equal(t, "frame_0007.webp", FrameName(7, output.WebP))
}
