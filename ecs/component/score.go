package component

// Score counts merges for the HUD. Best is the largest tier a merge has
// produced so far.
type Score struct {
	Points int
	Merges int
	Best   Tier
}

var ScoreComponent = NewComponent[Score]()
