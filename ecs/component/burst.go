package component

import "image/color"

// Burst is the short-lived ring drawn where a fruit popped.
type Burst struct {
	Radius float64
	Color  color.NRGBA
}

var BurstComponent = NewComponent[Burst]()
