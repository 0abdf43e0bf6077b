// Package batch renders turntable sequences of a scene on a worker pool.
package batch

import (
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"tri-raster/internal/output"
	"tri-raster/internal/raster"
	"tri-raster/internal/scene"
)

// Config holds all shared resources for a batch run.
type Config struct {
	Scene       *scene.Scene
	OutputDir   string
	Width       int
	Height      int
	Supersample int
	Format      output.Format
	Options     raster.Options
	Frames      int
	StartDeg    float64
	StepDeg     float64
	Workers     int
	Progress    bool // print a progress line every two seconds
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Frame   int
	Angle   float64
	Image   string // path relative to OutputDir
	Success bool
	Error   string
}

// Run renders cfg.Frames frames, each rotated StepDeg further than the
// last. Every worker owns its own Rasterizer; the scene is uploaded once
// per worker.
func Run(cfg Config) []Result {
	total := cfg.Frames
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	if cfg.Progress {
		go func() {
			ticker := time.NewTicker(2 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					p := processed.Load()
					if p > 0 {
						elapsed := time.Since(start).Seconds()
						rate := float64(p) / elapsed
						fmt.Printf("  [%d/%d] %.1f frames/sec\n", p, total, rate)
					}
				}
			}
		}()
	}

	workers := max(cfg.Workers, 1)
	frameChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ss := max(cfg.Supersample, 1)
			r := raster.NewWithOptions(cfg.Width*ss, cfg.Height*ss, cfg.Options)
			handles := cfg.Scene.Upload(r)
			for idx := range frameChan {
				results[idx] = renderFrame(cfg, r, handles, idx)
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := 0; i < total; i++ {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return results
}

// FrameName returns the output file name of frame i.
func FrameName(i int, f output.Format) string {
	return fmt.Sprintf("frame_%04d%s", i, f.Ext())
}

func renderFrame(cfg Config, r *raster.Rasterizer, handles []scene.Handles, idx int) Result {
	angle := cfg.StartDeg + float64(idx)*cfg.StepDeg
	res := Result{
		Frame: idx,
		Angle: angle,
		Image: FrameName(idx, cfg.Format),
	}

	if err := cfg.Scene.Render(r, handles, angle); err != nil {
		res.Error = err.Error()
		return res
	}

	img := output.ToNRGBA(r)
	if cfg.Supersample > 1 {
		img = output.Downsample(img, cfg.Width, cfg.Height)
	}

	if err := output.WriteFile(filepath.Join(cfg.OutputDir, res.Image), img, cfg.Format); err != nil {
		res.Error = err.Error()
		return res
	}

	res.Success = true
	return res
}
