package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"tri-raster/internal/batch"
	"tri-raster/internal/config"
	"tri-raster/internal/output"
	"tri-raster/internal/raster"
	"tri-raster/internal/scene"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	sceneFile := flag.String("scene", "", "Path to scene JSON (default: built-in demo scene)")
	outputDir := flag.String("output", "", "Output directory (default: renders)")
	width := flag.Int("width", 0, "Image width in pixels (default: 700)")
	height := flag.Int("height", 0, "Image height in pixels (default: 700)")
	format := flag.String("format", "", "Image format: webp, png or tga (default: webp)")
	frames := flag.Int("frames", 0, "Number of turntable frames (default: 1)")
	angle := flag.Float64("angle", 0, "Rotation angle of the first frame in degrees")
	step := flag.Float64("step", 10, "Rotation step between frames in degrees")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	reference := flag.Bool("reference", false, "Disable scan-bounds clamping; off-screen triangles fail the draw")

	flag.Parse()

	var stepDeg *float64
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "step" {
			stepDeg = step
		}
	})

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		SceneFile: *sceneFile,
		OutputDir: *outputDir,
		Width:     *width,
		Height:    *height,
		Format:    *format,
		Frames:    *frames,
		StepDeg:   stepDeg,
		Workers:   *workers,
		Reference: *reference,
	})

	imgFormat, err := output.ParseFormat(cfg.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Load scene
	sc := scene.Default()
	if cfg.SceneFile != "" {
		sc, err = scene.Parse(cfg.SceneFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading scene: %v\n", err)
			os.Exit(1)
		}
	}
	if err := sc.Perspective(cfg.Width, cfg.Height).Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: scene camera: %v\n", err)
		os.Exit(1)
	}

	opts := raster.DefaultOptions()
	opts.ClampBounds = !cfg.Reference

	// Print summary
	mode := ""
	if cfg.Reference {
		mode = " (reference: no bounds clamping)"
	}
	fmt.Printf("Software rasterizer → %s%s\n", imgFormat, mode)
	fmt.Printf("Meshes: %d, Size: %dx%d, Frames: %d, Workers: %d\n",
		len(sc.Meshes), cfg.Width, cfg.Height, cfg.Frames, cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	results := batch.Run(batch.Config{
		Scene:       sc,
		OutputDir:   cfg.OutputDir,
		Width:       cfg.Width,
		Height:      cfg.Height,
		Supersample: cfg.Supersample,
		Format:      imgFormat,
		Options:     opts,
		Frames:      cfg.Frames,
		StartDeg:    *angle,
		StepDeg:     *cfg.StepDeg,
		Workers:     cfg.Workers,
		Progress:    true,
	})

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(results))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := min(len(errors), 20)
		for _, e := range errors[:limit] {
			fmt.Printf("  frame %d: %s\n", e.Frame, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	if err := batch.WriteManifest(manifestPath, cfg.Width, cfg.Height, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
