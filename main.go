package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/fruitmerge/common"
	"github.com/milk9111/fruitmerge/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "draw velocity vectors")
	watch := flag.Bool("watch", false, "reload the world spec and drop script when they change on disk")
	worldFile := flag.String("world", prefabs.WorldFile(), "world spec in prefabs/ (embedded copy used when missing on disk)")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if err := run(*worldFile, *debug, *watch, *baseMonitor); err != nil {
		common.NewLogger("game").Error("exit", "err", err)
		os.Exit(1)
	}
}

func run(worldFile string, debug, watch, baseMonitor bool) error {
	if baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("fruitmerge")

	game, err := NewGame(worldFile, debug, watch)
	if err != nil {
		return fmt.Errorf("start: %w", err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
