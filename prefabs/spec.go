package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/fruitmerge/common"
	"github.com/milk9111/fruitmerge/physics"
	"gopkg.in/yaml.v3"
)

// WorldFileEnv overrides the world spec file name.
const WorldFileEnv = "FRUITMERGE_WORLD"

const DefaultWorldFile = "world.yaml"

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// WorldFile returns the configured world spec name.
func WorldFile() string {
	return common.GetEnv(WorldFileEnv, DefaultWorldFile)
}

type WorldSpec struct {
	Name            string        `yaml:"name"`
	Arena           physics.Arena `yaml:"arena"`
	Gravity         VectorSpec    `yaml:"gravity"`
	Substeps        int           `yaml:"substeps"`
	JitterThreshold *float64      `yaml:"jitter_threshold"`
	Tiers           []TierSpec    `yaml:"tiers"`
	Drop            DropSpec      `yaml:"drop"`
	Effects         EffectsSpec   `yaml:"effects"`
}

type VectorSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type TierSpec struct {
	Name   string     `yaml:"name"`
	Radius float64    `yaml:"radius"`
	Color  *YAMLColor `yaml:"color"`
	Points int        `yaml:"points"`
}

// DropSpec configures the dropper. Y is the release height, usually above
// the arena top; MaxTier caps the tiers it hands out.
type DropSpec struct {
	Y              float64 `yaml:"y"`
	CooldownFrames int     `yaml:"cooldown_frames"`
	MaxTier        int     `yaml:"max_tier"`
	Script         string  `yaml:"script"`
	Speed          float64 `yaml:"speed"`
}

type EffectsSpec struct {
	BurstFrames int `yaml:"burst_frames"`
}

func LoadWorldSpec(filename string) (*WorldSpec, error) {
	spec, err := LoadSpec[WorldSpec](filename)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// PhysicsConfig converts the spec into a validated simulation config.
// Missing substeps and jitter threshold fall back to the defaults.
func (s *WorldSpec) PhysicsConfig() (physics.Config, error) {
	cfg := physics.Config{
		Gravity:         cp.Vector{X: s.Gravity.X, Y: s.Gravity.Y},
		Arena:           s.Arena,
		Substeps:        s.Substeps,
		JitterThreshold: physics.DefaultJitterThreshold,
	}
	if cfg.Substeps == 0 {
		cfg.Substeps = physics.DefaultSubsteps
	}
	if s.JitterThreshold != nil {
		cfg.JitterThreshold = *s.JitterThreshold
	}
	tiers := make([]physics.TierSpec, 0, len(s.Tiers))
	for _, t := range s.Tiers {
		tiers = append(tiers, physics.TierSpec{Name: t.Name, Radius: t.Radius})
	}
	cfg.Tiers = physics.NewTierTable(tiers...)
	if err := cfg.Validate(); err != nil {
		return physics.Config{}, fmt.Errorf("prefabs: world %s: %w", s.Name, err)
	}
	return cfg, nil
}

// TierColor returns the configured color of tier i.
func (s *WorldSpec) TierColor(i int) (color.NRGBA, bool) {
	if s == nil || i < 0 || i >= len(s.Tiers) || s.Tiers[i].Color == nil {
		return color.NRGBA{}, false
	}
	return s.Tiers[i].Color.NRGBA, true
}

func (s *WorldSpec) TierName(i int) string {
	if s != nil && i >= 0 && i < len(s.Tiers) {
		return s.Tiers[i].Name
	}
	return ""
}

func (s *WorldSpec) TierPoints(i int) int {
	if s != nil && i >= 0 && i < len(s.Tiers) {
		return s.Tiers[i].Points
	}
	return 0
}

type YAMLColor struct {
	color.NRGBA
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}
	a := uint8(0xff)
	if len(s) == 8 {
		if a, err = parse(6); err != nil {
			return err
		}
	}

	c.NRGBA = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
