package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/fruitmerge/common"
	"github.com/milk9111/fruitmerge/ecs"
	"github.com/milk9111/fruitmerge/ecs/entity"
	"github.com/milk9111/fruitmerge/ecs/render"
	"github.com/milk9111/fruitmerge/ecs/system"
	"github.com/milk9111/fruitmerge/physics"
	"github.com/milk9111/fruitmerge/prefabs"
)

type Game struct {
	world     *ecs.World
	physics   *physics.World
	scheduler *ecs.Scheduler
	renderer  *render.Renderer
	watcher   *prefabs.Watcher
	pauseUI   *ebitenui.UI
	paused    bool
	log       *log.Logger
}

func NewGame(worldFile string, debug, watch bool) (*Game, error) {
	logger := common.NewLogger("game")

	spec, err := prefabs.LoadWorldSpec(worldFile)
	if err != nil {
		return nil, err
	}
	cfg, err := spec.PhysicsConfig()
	if err != nil {
		return nil, err
	}

	w := ecs.NewWorld()
	pw, err := physics.NewWorld(w, cfg)
	if err != nil {
		return nil, err
	}
	if _, err := entity.NewDropper(w, cfg.Arena, spec.Drop); err != nil {
		return nil, err
	}

	picker, err := system.NewDropPicker(spec.Drop.Script)
	if err != nil {
		logger.Warn("drop script unavailable, dropping cherries only", "err", err)
	}

	pipeline := system.NewPipeline(pw, spec, picker)

	g := &Game{
		world:    w,
		physics:  pw,
		renderer: render.NewRenderer(pw),
		log:      logger,
	}
	g.renderer.Debug = debug

	before := []ecs.System{NewInputSystem()}
	if watch {
		dirs := prefabs.WatchDirs()
		watcher, err := prefabs.NewWatcher(dirs...)
		if err != nil || len(dirs) == 0 {
			logger.Warn("hot reload disabled", "dir", prefabs.Dir(), "err", err)
			if watcher != nil {
				_ = watcher.Close()
			}
		} else {
			g.watcher = watcher
			before = append([]ecs.System{pipeline.HotReload(watcher, worldFile)}, before...)
		}
	}

	g.scheduler = pipeline.Scheduler(before...)
	g.pauseUI = NewPauseUI(g)

	logger.Info("world ready", "name", spec.Name, "tiers", cfg.Tiers.Len(), "substeps", cfg.Substeps)
	return g, nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if err := copySnapshot(g.physics); err != nil {
			g.log.Warn("copy snapshot", "err", err)
		} else {
			g.log.Info("snapshot copied to clipboard", "bodies", g.physics.Len())
		}
	}

	if g.paused {
		g.pauseUI.Update()
		return nil
	}
	g.scheduler.Update(g.world)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(g.world, screen)
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}

// Restart clears the arena on the next unpaused tick.
func (g *Game) Restart() {
	if err := system.RequestRestart(g.world); err != nil {
		g.log.Warn("restart", "err", err)
	}
	g.paused = false
}

func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			g.log.Warn("close watcher", "err", fmt.Errorf("prefabs: %w", err))
		}
	}
}
