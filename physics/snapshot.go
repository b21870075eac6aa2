package physics

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Snapshot is a read-only dump of the world between frames.
type Snapshot struct {
	Frame  uint64         `yaml:"frame"`
	Arena  Arena          `yaml:"arena"`
	Bodies []BodySnapshot `yaml:"bodies"`
}

type BodySnapshot struct {
	Entity string  `yaml:"entity"`
	Tier   int     `yaml:"tier"`
	Name   string  `yaml:"name,omitempty"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	VX     float64 `yaml:"vx"`
	VY     float64 `yaml:"vy"`
	Radius float64 `yaml:"radius"`
}

func (w *World) Snapshot() Snapshot {
	snap := Snapshot{Frame: w.frame, Arena: w.cfg.Arena}
	for _, e := range w.order {
		b, ok := w.registered(e)
		if !ok {
			continue
		}
		spec, _ := w.cfg.Tiers.Spec(b.Tier)
		v := Velocity(b)
		snap.Bodies = append(snap.Bodies, BodySnapshot{
			Entity: e.String(),
			Tier:   int(b.Tier),
			Name:   spec.Name,
			X:      b.Current.X,
			Y:      b.Current.Y,
			VX:     v.X,
			VY:     v.Y,
			Radius: b.Radius,
		})
	}
	return snap
}

// CountByTier returns the number of bodies per tier name.
func (s Snapshot) CountByTier() map[string]int {
	out := make(map[string]int)
	for _, b := range s.Bodies {
		name := b.Name
		if name == "" {
			name = fmt.Sprintf("tier%d", b.Tier)
		}
		out[name]++
	}
	return out
}

func (s Snapshot) YAML() ([]byte, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("physics: marshal snapshot: %w", err)
	}
	return out, nil
}
