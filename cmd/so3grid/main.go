// Command so3grid enumerates orientation search grids as CSV.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/cryofold/so3grid"
)

func main() {
	cfgPath := flag.String("config", "", "path to YAML search plan (optional)")
	mode := flag.String("mode", "global", "grid to enumerate: global, local or roll")
	flag.Parse()

	cfg := &so3grid.SearchConfig{}
	if *cfgPath != "" {
		loaded, err := so3grid.LoadConfig(*cfgPath)
		if err != nil {
			log.Fatalf("so3grid: %v", err)
		}
		cfg = loaded
	}

	angles, err := generate(cfg, *mode, *cfgPath != "")
	if err != nil {
		log.Fatalf("so3grid: %v", err)
	}

	if err := writeCSV(os.Stdout, angles); err != nil {
		log.Fatalf("so3grid: write output: %v", err)
	}
}

func generate(cfg *so3grid.SearchConfig, mode string, haveConfig bool) ([]so3grid.Triple, error) {
	switch mode {
	case "global":
		opts := so3grid.DefaultUniformGridOptions()
		if haveConfig {
			var err error
			if opts, err = cfg.UniformGridOptions(); err != nil {
				return nil, err
			}
		}
		return so3grid.UniformEulerAngles(opts)
	case "local":
		opts := so3grid.DefaultLocalGridOptions()
		if haveConfig {
			var err error
			if opts, err = cfg.LocalGridOptions(); err != nil {
				return nil, err
			}
		}
		return so3grid.LocalHighResolutionAngles(opts)
	case "roll":
		opts := so3grid.DefaultRollGridOptions()
		if haveConfig {
			opts = cfg.RollGridOptions()
		}
		return so3grid.RollAngles(opts)
	default:
		return nil, fmt.Errorf("unknown mode '%s', expected global, local or roll", mode)
	}
}

func writeCSV(f *os.File, angles []so3grid.Triple) error {
	w := csv.NewWriter(f)
	if err := w.Write([]string{"phi", "theta", "psi"}); err != nil {
		return err
	}
	record := make([]string, 3)
	for _, t := range angles {
		record[0] = strconv.FormatFloat(t.Phi, 'g', -1, 64)
		record[1] = strconv.FormatFloat(t.Theta, 'g', -1, 64)
		record[2] = strconv.FormatFloat(t.Psi, 'g', -1, 64)
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
