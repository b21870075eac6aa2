package component

import "github.com/jakecoffman/cp"

// Tier indexes the fruit tier table. Bodies of equal tier merge.
type Tier int

// Body is a Verlet-integrated circle. The displacement between Current and
// Previous is its implicit velocity; Radius is fixed by Tier at creation.
type Body struct {
	Current      cp.Vector
	Previous     cp.Vector
	Acceleration cp.Vector
	Radius       float64
	Tier         Tier
}

var BodyComponent = NewComponent[Body]()
