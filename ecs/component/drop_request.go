package component

// DropRequest asks the drop system to release the dropper's fruit at X.
type DropRequest struct {
	X float64
}

var DropRequestComponent = NewComponent[DropRequest]()
