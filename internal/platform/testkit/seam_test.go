package testkit

import (
	"testing"
)

var (
	normalizeFn = func(s string) string { return s }
	swapTargetI = 10
)

func TestSwapFunctionAndRestore(t *testing.T) {
	// run swap in a subtest so Cleanup runs before we validate restoration
	t.Run("swap-in-subtest", func(t *testing.T) {
		if got := normalizeFn("x"); got != "x" {
			t.Fatalf("precondition failed, got %q", got)
		}
		Swap(t, &normalizeFn, func(string) string { return "swapped" })
		if got := normalizeFn("x"); got != "swapped" {
			t.Fatalf("swap did not take effect, got %q", got)
		}
	})

	// after subtest completes, Cleanup restored the original
	if got := normalizeFn("x"); got != "x" {
		t.Fatalf("swap did not restore original, got %q", got)
	}
}

func TestSwapNonFunctionType(t *testing.T) {
	t.Run("int", func(t *testing.T) {
		if swapTargetI != 10 {
			t.Fatalf("precondition failed, got %d", swapTargetI)
		}
		Swap(t, &swapTargetI, 42)
		if swapTargetI != 42 {
			t.Fatalf("swap failed, got %d want 42", swapTargetI)
		}
	})
	if swapTargetI != 10 {
		t.Fatalf("swap did not restore original, got %d want 10", swapTargetI)
	}
}
