package main

import (
	"fmt"
	"sync"

	"github.com/milk9111/fruitmerge/physics"
	"golang.design/x/clipboard"
)

var (
	clipboardOnce sync.Once
	clipboardErr  error
)

// copySnapshot writes a yaml dump of the arena to the system clipboard.
func copySnapshot(pw *physics.World) error {
	clipboardOnce.Do(func() {
		clipboardErr = clipboard.Init()
	})
	if clipboardErr != nil {
		return fmt.Errorf("clipboard: init: %w", clipboardErr)
	}
	out, err := pw.Snapshot().YAML()
	if err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtText, out)
	return nil
}
