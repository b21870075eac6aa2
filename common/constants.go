package common

// Logical screen size of the desktop viewer.
const (
	BaseWidth  = 480
	BaseHeight = 720
)
