package batch

import (
	"encoding/json"
	"os"
)

// ManifestEntry represents one rendered frame in the output manifest.
type ManifestEntry struct {
	Frame int     `json:"frame"`
	Angle float64 `json:"angle_deg"`
	Image string  `json:"image"`
}

// Manifest describes a finished batch run.
type Manifest struct {
	Width  int             `json:"width"`
	Height int             `json:"height"`
	Frames []ManifestEntry `json:"frames"`
}

// WriteManifest writes manifest.json listing every successful frame.
func WriteManifest(path string, width, height int, results []Result) error {
	m := Manifest{Width: width, Height: height, Frames: []ManifestEntry{}}
	for _, r := range results {
		if !r.Success {
			continue
		}
		m.Frames = append(m.Frames, ManifestEntry{
			Frame: r.Frame,
			Angle: r.Angle,
			Image: r.Image,
		})
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
