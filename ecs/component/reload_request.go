package component

// ReloadRequest is a marker component used to signal the game loop to clear
// the arena and start over. Systems may create a short-lived entity with this
// component to request a restart.
type ReloadRequest struct{}

var ReloadRequestComponent = NewComponent[ReloadRequest]()
