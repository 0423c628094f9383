package config

import (
	"testing"
	"time"

	kit "csvforge/internal/platform/testkit"
)

func TestPrefixAndKey(t *testing.T) {
	root := New()
	api := root.Prefix("API_")
	if got := api.key("PORT"); got != "API_PORT" {
		t.Fatalf("key() = %q, want %q", got, "API_PORT")
	}
	// nested prefix
	apiLog := api.Prefix("LOG_")
	if got := apiLog.key("LEVEL"); got != "API_LOG_LEVEL" {
		t.Fatalf("nested key() = %q, want %q", got, "API_LOG_LEVEL")
	}
}

// Must* panics

func TestMustString(t *testing.T) {
	c := New().Prefix("APP_")
	t.Setenv("APP_NAME", "  csvforge ")
	got := c.MustString("NAME")
	if got != "csvforge" {
		t.Fatalf("MustString = %q, want %q", got, "csvforge")
	}

	kit.MustPanic(t, func() { _ = c.MustString("MISSING") })
}

func TestMustInt(t *testing.T) {
	c := New().Prefix("SVC_")
	t.Setenv("SVC_WORKERS", "  8 ")
	if got := c.MustInt("WORKERS"); got != 8 {
		t.Fatalf("MustInt = %d, want %d", got, 8)
	}
	kit.MustPanic(t, func() { _ = c.MustInt("MISSING") })
	t.Setenv("SVC_BAD", "x")
	kit.MustPanic(t, func() { _ = c.MustInt("BAD") })
}

func TestMustPort(t *testing.T) {
	c := New().Prefix("P_")
	t.Setenv("P_PORT", "4000")
	if got := c.MustPort("PORT"); got != ":4000" {
		t.Fatalf("MustPort = %q, want %q", got, ":4000")
	}
	t.Setenv("P_BAD", "abc")
	kit.MustPanic(t, func() { _ = c.MustPort("BAD") })
	t.Setenv("P_OOB", "70000")
	kit.MustPanic(t, func() { _ = c.MustPort("OOB") })
}

func TestRequire(t *testing.T) {
	c := New().Prefix("REQ_")
	t.Setenv("REQ_A", "x")
	t.Setenv("REQ_B", "y")
	// should not panic
	c.Require("A", "B")

	// missing C should panic
	kit.MustPanic(t, func() { c.Require("A", "C") })
}

// May* fallbacks

func TestMayString(t *testing.T) {
	c := New().Prefix("S_")
	if got := c.MayString("MISSING", "def"); got != "def" {
		t.Fatalf("MayString default = %q, want %q", got, "def")
	}
	t.Setenv("S_NAME", " csvforge ")
	if got := c.MayString("NAME", "x"); got != "csvforge" {
		t.Fatalf("MayString value = %q, want %q", got, "csvforge")
	}
}

func TestMayInt(t *testing.T) {
	c := New().Prefix("I_")
	if got := c.MayInt("MISSING", 9); got != 9 {
		t.Fatalf("MayInt default = %d, want %d", got, 9)
	}
	t.Setenv("I_OK", " 12 ")
	if got := c.MayInt("OK", 1); got != 12 {
		t.Fatalf("MayInt value = %d, want %d", got, 12)
	}
	t.Setenv("I_BAD", "x")
	if got := c.MayInt("BAD", 7); got != 7 {
		t.Fatalf("MayInt invalid should fall back, got %d", got)
	}
}

func TestMayBool(t *testing.T) {
	c := New().Prefix("B_")
	if got := c.MayBool("MISSING", true); !got {
		t.Fatalf("MayBool default expected true")
	}
	t.Setenv("B_ON", " true ")
	if !c.MayBool("ON", false) {
		t.Fatalf("MayBool value expected true")
	}
	t.Setenv("B_BAD", "notabool")
	if c.MayBool("BAD", false) {
		t.Fatalf("MayBool invalid should fall back to default")
	}
}

func TestMayDuration(t *testing.T) {
	c := New().Prefix("D_")
	if got := c.MayDuration("MISSING", time.Second); got != time.Second {
		t.Fatalf("MayDuration default = %v", got)
	}
	t.Setenv("D_TIMEOUT", " 250ms ")
	if got := c.MayDuration("TIMEOUT", time.Second); got != 250*time.Millisecond {
		t.Fatalf("MayDuration = %v, want %v", got, 250*time.Millisecond)
	}
	t.Setenv("D_BAD", "nope")
	if got := c.MayDuration("BAD", time.Minute); got != time.Minute {
		t.Fatalf("MayDuration invalid should fall back, got %v", got)
	}
}

func TestMayEnum(t *testing.T) {
	c := New().Prefix("E_")
	if got := c.MayEnum("MISSING", "basic", "none", "basic", "strict"); got != "basic" {
		t.Fatalf("MayEnum default = %q", got)
	}
	t.Setenv("E_LEVEL", "STRICT")
	if got := c.MayEnum("LEVEL", "basic", "none", "basic", "strict"); got != "STRICT" {
		t.Fatalf("MayEnum should accept case-insensitive match, got %q", got)
	}
	t.Setenv("E_BAD", "paranoid")
	kit.MustPanic(t, func() { _ = c.MayEnum("BAD", "basic", "none", "basic", "strict") })
}
