package worley

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config drives one generation run. Zero values fall back to the package
// defaults in const.go.
type Config struct {
	Size     int   `json:"size"`
	GridSize int   `json:"gridSize"`
	Seed     int64 `json:"seed,omitempty"`
	Seeded   bool  `json:"seeded,omitempty"` // false: fresh ambient entropy per run
	Workers  int   `json:"workers,omitempty"`

	GIFOut   string `json:"gifOut,omitempty"`
	GIFDelay int    `json:"gifDelay,omitempty"`
	Gamma    Real   `json:"gamma,omitempty"`
	Scale    int    `json:"scale,omitempty"` // integer frame upscale for GIF/PNG export

	RawOut    string `json:"rawOut,omitempty"`
	ReportOut string `json:"reportOut,omitempty"`
	HistBins  int    `json:"histBins,omitempty"`
}

// loadConfig reads a JSON config; an empty path yields pure defaults.
// Ill-formed grid parameters are rejected here so the core never sees them.
func loadConfig(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
	}
	// Defaults / validation
	if cfg.Size <= 0 {
		cfg.Size = Size
	}
	if cfg.GridSize <= 0 {
		cfg.GridSize = GridSize
	}
	if cfg.GridSize > cfg.Size {
		return nil, fmt.Errorf("gridSize %d exceeds size %d", cfg.GridSize, cfg.Size)
	}
	if cfg.GIFOut == "" {
		cfg.GIFOut = GIFOut
	}
	if cfg.GIFDelay <= 0 {
		cfg.GIFDelay = GIFDelay
	}
	if cfg.Gamma <= 0 {
		cfg.Gamma = Gamma
	}
	if cfg.Scale <= 0 {
		cfg.Scale = Scale
	}
	if cfg.HistBins <= 0 {
		cfg.HistBins = HistBins
	}
	DebugLog("Loaded config from %q: size=%d, grid=%d, seeded=%v, seed=%d, gamma=%f",
		path, cfg.Size, cfg.GridSize, cfg.Seeded, cfg.Seed, cfg.Gamma)
	return &cfg, nil
}
