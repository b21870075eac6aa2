package physics

import (
	"errors"
	"fmt"

	"github.com/milk9111/fruitmerge/ecs/component"
)

var ErrUnknownTier = errors.New("physics: unknown tier")

// TierSpec describes one rung of the size progression.
type TierSpec struct {
	Name   string
	Radius float64
}

// TierTable is the ordered size progression. Index i is component.Tier(i);
// radii strictly increase and the last tier has no successor.
type TierTable struct {
	specs []TierSpec
}

func NewTierTable(specs ...TierSpec) TierTable {
	copied := make([]TierSpec, len(specs))
	copy(copied, specs)
	return TierTable{specs: copied}
}

// DefaultTiers is the classic eleven-fruit progression.
func DefaultTiers() TierTable {
	return NewTierTable(
		TierSpec{Name: "cherry", Radius: 12},
		TierSpec{Name: "strawberry", Radius: 16},
		TierSpec{Name: "grape", Radius: 21},
		TierSpec{Name: "dekopon", Radius: 26},
		TierSpec{Name: "persimmon", Radius: 32},
		TierSpec{Name: "apple", Radius: 39},
		TierSpec{Name: "pear", Radius: 46},
		TierSpec{Name: "peach", Radius: 54},
		TierSpec{Name: "pineapple", Radius: 63},
		TierSpec{Name: "melon", Radius: 73},
		TierSpec{Name: "watermelon", Radius: 85},
	)
}

func (t TierTable) Len() int {
	return len(t.specs)
}

func (t TierTable) Valid(tier component.Tier) bool {
	return tier >= 0 && int(tier) < len(t.specs)
}

func (t TierTable) Spec(tier component.Tier) (TierSpec, bool) {
	if !t.Valid(tier) {
		return TierSpec{}, false
	}
	return t.specs[tier], true
}

func (t TierTable) Radius(tier component.Tier) (float64, bool) {
	spec, ok := t.Spec(tier)
	return spec.Radius, ok
}

// Next returns the tier a merge of two tier bodies produces. It reports
// false for the largest tier and for unknown tiers.
func (t TierTable) Next(tier component.Tier) (component.Tier, bool) {
	if !t.Valid(tier) || int(tier) == len(t.specs)-1 {
		return 0, false
	}
	return tier + 1, true
}

// Max returns the largest tier, or -1 for an empty table.
func (t TierTable) Max() component.Tier {
	return component.Tier(len(t.specs) - 1)
}

// Specs returns a copy of the table rows.
func (t TierTable) Specs() []TierSpec {
	out := make([]TierSpec, len(t.specs))
	copy(out, t.specs)
	return out
}

func (t TierTable) validate() error {
	if len(t.specs) == 0 {
		return fmt.Errorf("%w: empty tier table", ErrInvalidConfig)
	}
	prev := 0.0
	for i, spec := range t.specs {
		if !finite(spec.Radius) || spec.Radius <= 0 {
			return fmt.Errorf("%w: tier %d (%s) radius %v must be positive", ErrInvalidConfig, i, spec.Name, spec.Radius)
		}
		if spec.Radius <= prev {
			return fmt.Errorf("%w: tier %d (%s) radius %v does not exceed previous tier %v", ErrInvalidConfig, i, spec.Name, spec.Radius, prev)
		}
		prev = spec.Radius
	}
	return nil
}
