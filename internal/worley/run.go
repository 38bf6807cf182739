package worley

import (
	"fmt"
	"strings"
	"time"
)

// Run loads a config (empty path: defaults), generates one noise volume and
// writes the configured outputs.
func Run(cfgPath string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}
	if cfg.Workers != 0 {
		Workers = cfg.Workers
	}

	start := time.Now()
	var vol *Volume
	if cfg.Seeded {
		vol = Noise3DSeeded(cfg.Size, cfg.GridSize, cfg.Seed)
	} else {
		vol = Noise3D(cfg.Size, cfg.GridSize)
	}
	elapsed := time.Since(start)
	DebugLog("Volume %d^3, grid %d^3, time: %s", cfg.Size, cfg.GridSize, elapsed)

	if Debug {
		fmt.Println(Summarize(vol))
	}

	if PNG {
		prefix := strings.TrimSuffix(cfg.GIFOut, ".gif")
		prefix = strings.Replace(prefix, "gifs/", "pngs/", 1)
		if err := SavePNGSequence16(vol, prefix, cfg.Gamma, cfg.Scale); err != nil {
			return err
		}
		DebugLog("Saved PNG sequence with prefix: %s", prefix)
	} else {
		if err := SaveAnimatedGIF(vol, cfg.GIFOut, cfg.GIFDelay, cfg.Gamma, cfg.Scale); err != nil {
			return err
		}
		DebugLog("Saved animated GIF: %s", cfg.GIFOut)
	}

	if RAW {
		out := cfg.RawOut
		if out == "" {
			out = strings.TrimSuffix(cfg.GIFOut, ".gif") + ".raw"
		}
		if err := SaveRawVolume(vol, out); err != nil {
			return err
		}
		DebugLog("Saved raw volume: %s", out)
	}

	if Report {
		out := cfg.ReportOut
		if out == "" {
			out = strings.TrimSuffix(cfg.GIFOut, ".gif") + ".html"
		}
		if err := WriteHistogramHTML(vol, out, cfg.HistBins); err != nil {
			return err
		}
		DebugLog("Saved histogram report: %s", out)
	}

	return nil
}
