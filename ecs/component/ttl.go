package component

// TTL is a simple frame-based time-to-live component. Systems may add this
// component to an entity to have it automatically destroyed after the given
// number of update ticks.
type TTL struct {
	// Frames remaining for the TTL (in update ticks)
	Frames int
	// Total is the initial frame count, used to compute fade progress.
	Total int
}

// Progress returns how far the TTL has run, from 0 to 1.
func (t TTL) Progress() float64 {
	if t.Total <= 0 {
		return 1
	}
	p := 1 - float64(t.Frames)/float64(t.Total)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

var TTLComponent = NewComponent[TTL]()
