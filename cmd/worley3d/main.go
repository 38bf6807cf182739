package main

import (
	"fmt"
	"os"
	"runtime/pprof"
	"strconv"

	"github.com/yntfwyk/WorleyNoise3D/internal/worley"
)

func main() {
	worley.Debug = os.Getenv("DEBUG") != ""
	worley.PNG = os.Getenv("PNG") != ""
	worley.RAW = os.Getenv("RAW") != ""
	worley.Report = os.Getenv("REPORT") != ""
	if w := os.Getenv("WORKERS"); w != "" {
		if n, err := strconv.Atoi(w); err == nil {
			worley.Workers = n
		}
	}
	profile := os.Getenv("PROFILE") != ""
	if profile {
		f, err := os.Create("cpu.out")
		if err != nil {
			panic(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	cfg := ""
	if len(os.Args) > 1 {
		cfg = os.Args[1]
	}
	if err := worley.Run(cfg); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
