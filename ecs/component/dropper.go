package component

// Dropper holds the fruit waiting to be released above the arena.
type Dropper struct {
	X        float64
	Y        float64
	NextTier Tier
	// Cooldown is the number of frames left before the next drop.
	Cooldown int
	Drops    int
}

var DropperComponent = NewComponent[Dropper]()
