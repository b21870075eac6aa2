// Command fruitsim runs the arena without a window and prints a yaml report.
package main

import (
	"flag"
	"os"

	"github.com/milk9111/fruitmerge/common"
	"github.com/milk9111/fruitmerge/prefabs"
	"gopkg.in/yaml.v3"
)

func main() {
	var opts options
	flag.StringVar(&opts.WorldFile, "world", prefabs.WorldFile(), "world spec in prefabs/ (embedded copy used when missing on disk)")
	flag.IntVar(&opts.Frames, "frames", 3600, "frames to simulate at 60 per second")
	flag.IntVar(&opts.DropEvery, "drop-every", 40, "frames between drop requests")
	flag.Uint64Var(&opts.Seed, "seed", 1, "seed for drop positions")
	flag.BoolVar(&opts.Snapshot, "snapshot", false, "include every body in the report")
	out := flag.String("o", "", "write the report to this file instead of stdout")
	flag.Parse()

	logger := common.NewLogger("sim")

	sum, err := simulate(opts)
	if err != nil {
		logger.Error("simulate", "err", err)
		os.Exit(1)
	}

	report, err := yaml.Marshal(sum)
	if err != nil {
		logger.Error("marshal report", "err", err)
		os.Exit(1)
	}
	if *out == "" {
		_, _ = os.Stdout.Write(report)
		return
	}
	if err := os.WriteFile(*out, report, 0o644); err != nil {
		logger.Error("write report", "path", *out, "err", err)
		os.Exit(1)
	}
	logger.Info("report written", "path", *out, "frames", sum.Frames, "bodies", len(sum.Bodies))
}
