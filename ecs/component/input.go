package component

// Input stores per-frame input state for the dropper.
type Input struct {
	// AimX is the requested drop column in arena coordinates.
	AimX float64
	// MoveX nudges the aim left (-1) or right (+1).
	MoveX       float64
	DropPressed bool
}

var InputComponent = NewComponent[Input]()
