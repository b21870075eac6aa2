package component

// Dead marks an entity whose body left the simulation. The death system
// destroys it at the end of the frame.
type Dead struct {
	Cause string
}

var DeadComponent = NewComponent[Dead]()
