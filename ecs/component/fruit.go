package component

import "image/color"

// Fruit is the presentation side of a body entity.
type Fruit struct {
	Name  string
	Color color.NRGBA
}

var FruitComponent = NewComponent[Fruit]()
