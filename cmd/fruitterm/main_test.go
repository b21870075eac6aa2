package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/fruitmerge/common"
	"github.com/milk9111/fruitmerge/prefabs"
)

func TestRunReturnsStartupErrors(t *testing.T) {
	t.Setenv(prefabs.DirEnv, t.TempDir())
	defer common.SetLogOutput(os.Stderr)

	logFile := filepath.Join(t.TempDir(), "term.log")
	err := run(options{worldFile: "missing.yaml", mute: true, logFile: logFile})
	if err == nil {
		t.Fatal("expected an error for a missing world spec")
	}
	if _, statErr := os.Stat(logFile); statErr != nil {
		t.Fatalf("log file should be created before startup fails: %v", statErr)
	}
}

func TestRunRejectsUnwritableLog(t *testing.T) {
	defer common.SetLogOutput(os.Stderr)

	err := run(options{worldFile: prefabs.DefaultWorldFile, mute: true, logFile: filepath.Join(t.TempDir(), "no", "such", "dir", "x.log")})
	if err == nil {
		t.Fatal("expected an error for an unwritable log path")
	}
}
