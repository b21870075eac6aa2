package physics

import (
	"errors"
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
)

const (
	DefaultSubsteps = 8
	// DefaultJitterThreshold is the per-substep correction above which a
	// constrained body loses its velocity.
	DefaultJitterThreshold = 3.0
)

var ErrInvalidConfig = errors.New("physics: invalid config")

// Arena is the container rectangle in screen space: Y grows downward, so
// Top < Bottom and "up" is negative Y. Top is not enforced.
type Arena struct {
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
}

func (a Arena) Width() float64 {
	return a.Right - a.Left
}

func (a Arena) Height() float64 {
	return a.Bottom - a.Top
}

// BB returns the arena as a chipmunk bounding box. cp.BB is y-up, so the
// screen-space Top maps to B.
func (a Arena) BB() cp.BB {
	return cp.BB{L: a.Left, B: a.Top, R: a.Right, T: a.Bottom}
}

// Contains reports whether a circle at p with radius r satisfies the
// enforced borders (bottom, left, right) within eps.
func (a Arena) Contains(p cp.Vector, r, eps float64) bool {
	return p.X >= a.Left+r-eps && p.X <= a.Right-r+eps && p.Y <= a.Bottom-r+eps
}

type Config struct {
	Gravity         cp.Vector
	Arena           Arena
	Substeps        int
	JitterThreshold float64
	Tiers           TierTable
}

func DefaultConfig() Config {
	return Config{
		Gravity:         cp.Vector{X: 0, Y: 1000},
		Arena:           Arena{Top: 0, Bottom: 600, Left: 0, Right: 400},
		Substeps:        DefaultSubsteps,
		JitterThreshold: DefaultJitterThreshold,
		Tiers:           DefaultTiers(),
	}
}

// Validate rejects configurations the simulation cannot run with.
func (c Config) Validate() error {
	if c.Substeps < 1 {
		return fmt.Errorf("%w: substeps %d < 1", ErrInvalidConfig, c.Substeps)
	}
	if !finite(c.Gravity.X) || !finite(c.Gravity.Y) {
		return fmt.Errorf("%w: gravity %v is not finite", ErrInvalidConfig, c.Gravity)
	}
	a := c.Arena
	if !finite(a.Left) || !finite(a.Right) || !finite(a.Top) || !finite(a.Bottom) {
		return fmt.Errorf("%w: arena %+v is not finite", ErrInvalidConfig, a)
	}
	if a.Left >= a.Right {
		return fmt.Errorf("%w: left border %v not left of right border %v", ErrInvalidConfig, a.Left, a.Right)
	}
	if a.Top >= a.Bottom {
		return fmt.Errorf("%w: top border %v not above bottom border %v", ErrInvalidConfig, a.Top, a.Bottom)
	}
	if !finite(c.JitterThreshold) || c.JitterThreshold < 0 {
		return fmt.Errorf("%w: jitter threshold %v", ErrInvalidConfig, c.JitterThreshold)
	}
	if err := c.Tiers.validate(); err != nil {
		return err
	}
	if r, _ := c.Tiers.Radius(c.Tiers.Max()); 2*r > a.Width() {
		return fmt.Errorf("%w: largest tier diameter %v exceeds arena width %v", ErrInvalidConfig, 2*r, a.Width())
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func finiteVect(v cp.Vector) bool {
	return finite(v.X) && finite(v.Y)
}
