package testkit

import (
	"sync"
	"testing"
)

var serialMu sync.Mutex

// Swap replaces a package-level seam for the duration of the test and restores it after
func Swap[T any](t *testing.T, target *T, replacement T) {
	t.Helper()
	orig := *target
	*target = replacement
	t.Cleanup(func() { *target = orig })
}

// Serial runs the test under a global lock so tests that mutate
// package-level seams cannot interfere with each other
func Serial(t *testing.T) {
	t.Helper()
	serialMu.Lock()
	t.Cleanup(serialMu.Unlock)
}
