// Command fruitterm plays the fruit-merge arena in a terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/fruitmerge/common"
	"github.com/milk9111/fruitmerge/physics"
	"github.com/milk9111/fruitmerge/prefabs"
)

type options struct {
	worldFile string
	mute      bool
	logFile   string
}

func main() {
	var opts options
	flag.StringVar(&opts.worldFile, "world", prefabs.WorldFile(), "world spec in prefabs/ (embedded copy used when missing on disk)")
	flag.BoolVar(&opts.mute, "mute", false, "disable merge sounds")
	flag.StringVar(&opts.logFile, "log", "", "write logs to this file instead of discarding them")
	flag.Parse()

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "fruitterm: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	var logOut io.Writer = io.Discard
	if opts.logFile != "" {
		f, err := os.Create(opts.logFile)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	common.SetLogOutput(logOut)
	logger := common.NewLogger("term")

	s, err := newSession(opts.worldFile)
	if err != nil {
		return err
	}

	sound := newSoundBoard()
	if !opts.mute {
		if err := sound.Init(); err != nil {
			logger.Warn("audio disabled", "err", err)
		}
	}
	defer sound.Close()
	s.pipeline.Score.OnMerge = func(m physics.Merge) { sound.Pop(m.Tier) }

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer screen.Fini()

	loop(screen, s)
	logger.Info("bye", "frame", s.physics.Frame())
	return nil
}

func loop(screen tcell.Screen, s *session) {
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	cols, rows := screen.Size()
	v := newView(s.physics.Config().Arena, cols, rows)
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !s.handleKey(ev.Key(), ev.Rune()) {
					return
				}
			case *tcell.EventResize:
				screen.Sync()
				cols, rows = screen.Size()
				v = newView(s.physics.Config().Arena, cols, rows)
			}

		case <-ticker.C:
			s.tick()
			screen.Clear()
			v.draw(screen, s.world, s.physics, s.spec, s.dropper, s.paused)
			screen.Show()
		}
	}
}
