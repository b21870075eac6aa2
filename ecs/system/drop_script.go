package system

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/fruitmerge/ecs/component"
	"github.com/milk9111/fruitmerge/prefabs"
)

// dropDispatchScript is appended to drop scripts; they must define
// pick(count, max_tier).
const dropDispatchScript = `
__result := pick(__drop_count, __max_tier)
`

// DropPicker chooses the tier of the next dropped fruit by running a tengo
// script.
type DropPicker struct {
	path     string
	compiled *tengo.Compiled
}

func NewDropPicker(scriptPath string) (*DropPicker, error) {
	src, err := prefabs.LoadScript(scriptPath)
	if err != nil {
		return nil, fmt.Errorf("drop: load script %s: %w", scriptPath, err)
	}
	p, err := NewDropPickerSource(src)
	if err != nil {
		return nil, fmt.Errorf("drop: %s: %w", scriptPath, err)
	}
	p.path = scriptPath
	return p, nil
}

func NewDropPickerSource(src []byte) (*DropPicker, error) {
	script := tengo.NewScript(append(append([]byte{}, src...), dropDispatchScript...))
	_ = script.Add("__drop_count", 0)
	_ = script.Add("__max_tier", 0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, err
	}
	return &DropPicker{compiled: compiled}, nil
}

func (p *DropPicker) Path() string {
	if p == nil {
		return ""
	}
	return p.path
}

// Pick returns a tier in [0, maxTier]. Script errors and a nil picker yield
// tier 0.
func (p *DropPicker) Pick(drops int, maxTier component.Tier) (component.Tier, error) {
	if maxTier < 0 {
		maxTier = 0
	}
	if p == nil || p.compiled == nil {
		return 0, nil
	}
	if err := p.compiled.Set("__drop_count", drops); err != nil {
		return 0, err
	}
	if err := p.compiled.Set("__max_tier", int(maxTier)); err != nil {
		return 0, err
	}
	if err := p.compiled.Run(); err != nil {
		return 0, fmt.Errorf("drop: run script: %w", err)
	}
	v := p.compiled.Get("__result")
	if v == nil || v.IsUndefined() {
		return 0, fmt.Errorf("drop: pick returned nothing")
	}
	tier := component.Tier(v.Int())
	if tier < 0 {
		tier = 0
	}
	if tier > maxTier {
		tier = maxTier
	}
	return tier, nil
}
