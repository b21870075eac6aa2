package system

import (
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/milk9111/fruitmerge/common"
	"github.com/milk9111/fruitmerge/ecs"
	"github.com/milk9111/fruitmerge/physics"
	"github.com/milk9111/fruitmerge/prefabs"
)

// ChangeSource reports changed prefab paths without blocking.
// *prefabs.Watcher implements it.
type ChangeSource interface {
	Poll() []string
}

// HotReloadSystem re-reads the world spec and the drop script when their
// files change and pushes the result into the running systems.
type HotReloadSystem struct {
	Source    ChangeSource
	WorldFile string
	Physics   *physics.World
	Spawn     *SpawnSystem
	Drop      *DropSystem
	Score     *ScoreSystem
	Death     *DeathSystem
	log       *log.Logger
}

func NewHotReloadSystem(source ChangeSource, worldFile string, pw *physics.World) *HotReloadSystem {
	return &HotReloadSystem{
		Source:    source,
		WorldFile: worldFile,
		Physics:   pw,
		log:       common.NewLogger("reload"),
	}
}

func (s *HotReloadSystem) Update(w *ecs.World) {
	if s == nil || s.Source == nil || s.Physics == nil || w == nil {
		return
	}
	changed := s.Source.Poll()
	if len(changed) == 0 {
		return
	}
	relevant := false
	for _, name := range changed {
		if prefabs.IsScriptFile(name) || filepath.Base(name) == filepath.Base(s.WorldFile) {
			relevant = true
			break
		}
	}
	if !relevant {
		return
	}
	if err := s.Reload(); err != nil {
		s.log.Warn("reload failed, keeping previous config", "err", err)
	}
}

// Reload applies the current world spec. Nothing changes when the spec or
// its drop script is invalid.
func (s *HotReloadSystem) Reload() error {
	spec, err := prefabs.LoadWorldSpec(s.WorldFile)
	if err != nil {
		return err
	}
	cfg, err := spec.PhysicsConfig()
	if err != nil {
		return err
	}
	var picker *DropPicker
	if spec.Drop.Script != "" {
		if picker, err = NewDropPicker(spec.Drop.Script); err != nil {
			return err
		}
	}
	if err := s.Physics.SetConfig(cfg); err != nil {
		return err
	}

	if s.Spawn != nil {
		s.Spawn.Spec = spec
	}
	if s.Score != nil {
		s.Score.Spec = spec
	}
	if s.Death != nil {
		s.Death.BurstFrames = spec.Effects.BurstFrames
	}
	if s.Drop != nil {
		s.Drop.Spec = spec
		s.Drop.Drop = spec.Drop
		s.Drop.Picker = picker
	}
	s.log.Info("world reloaded", "name", spec.Name, "tiers", cfg.Tiers.Len(), "script", spec.Drop.Script)
	return nil
}
