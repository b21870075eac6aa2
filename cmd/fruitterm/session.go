package main

import (
	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/fruitmerge/common"
	"github.com/milk9111/fruitmerge/ecs"
	"github.com/milk9111/fruitmerge/ecs/component"
	"github.com/milk9111/fruitmerge/ecs/entity"
	"github.com/milk9111/fruitmerge/ecs/system"
	"github.com/milk9111/fruitmerge/physics"
	"github.com/milk9111/fruitmerge/prefabs"
)

// aimSteps is how many key presses cross the arena.
const aimSteps = 40.0

// session is one running arena driven by terminal keys.
type session struct {
	world     *ecs.World
	physics   *physics.World
	spec      *prefabs.WorldSpec
	dropper   ecs.Entity
	pipeline  *system.Pipeline
	scheduler *ecs.Scheduler
	paused    bool
	log       *log.Logger
}

func newSession(worldFile string) (*session, error) {
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
	dropper, err := entity.NewDropper(w, cfg.Arena, spec.Drop)
	if err != nil {
		return nil, err
	}

	s := &session{
		world:   w,
		physics: pw,
		spec:    spec,
		dropper: dropper,
		log:     common.NewLogger("term"),
	}
	picker, err := system.NewDropPicker(spec.Drop.Script)
	if err != nil {
		s.log.Warn("drop script unavailable, dropping cherries only", "err", err)
	}
	s.pipeline = system.NewPipeline(pw, spec, picker)
	s.scheduler = s.pipeline.Scheduler()
	return s, nil
}

// tick advances one frame unless paused.
func (s *session) tick() {
	if s.paused {
		return
	}
	s.scheduler.Update(s.world)
}

// handleKey applies one key press and reports whether the viewer should
// keep running.
func (s *session) handleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		s.aim(-1)
	case tcell.KeyRight:
		s.aim(1)
	case tcell.KeyEnter:
		s.drop()
	case tcell.KeyRune:
		switch r {
		case 'q':
			return false
		case 'a', 'h':
			s.aim(-1)
		case 'd', 'l':
			s.aim(1)
		case ' ':
			s.drop()
		case 'p':
			s.paused = !s.paused
		case 'r':
			if err := system.RequestRestart(s.world); err != nil {
				s.log.Warn("restart", "err", err)
			}
			s.paused = false
		}
	}
	return true
}

// aim nudges the dropper; DropSystem clamps it to the walls on the next tick.
func (s *session) aim(dir float64) {
	in, ok := ecs.Get(s.world, s.dropper, component.InputComponent.Kind())
	if !ok {
		return
	}
	in.AimX += dir * s.physics.Config().Arena.Width() / aimSteps
}

// drop presses the drop button for the next tick.
func (s *session) drop() {
	if s.paused {
		return
	}
	if in, ok := ecs.Get(s.world, s.dropper, component.InputComponent.Kind()); ok {
		in.DropPressed = true
	}
}
