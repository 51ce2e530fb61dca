package config

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestFlagTracker_Basic(t *testing.T) {
	ft := NewFlagTracker()

	if ft.WasSet("theme") {
		t.Error("Expected flag 'theme' to not be set initially")
	}

	ft.Set("theme")
	if !ft.WasSet("theme") {
		t.Error("Expected flag 'theme' to be set after Set()")
	}
}

func TestFlagTracker_FromFlagSet(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("theme", "classic", "")
	flags.String("direction", "TB", "")
	flags.Bool("recursive", true, "")

	if err := flags.Parse([]string{"--theme", "dark"}); err != nil {
		t.Fatalf("Failed to parse flags: %v", err)
	}

	ft := NewFlagTrackerFromFlags(flags)

	if !ft.WasSet("theme") {
		t.Error("Expected theme to be tracked as set")
	}
	if ft.WasSet("direction") {
		t.Error("Expected direction to not be tracked; it was left at its default")
	}
	if ft.WasSet("recursive") {
		t.Error("Expected recursive to not be tracked; it was left at its default")
	}
}

func TestFlagTracker_FromNilFlagSet(t *testing.T) {
	ft := NewFlagTrackerFromFlags(nil)
	if ft.WasSet("anything") {
		t.Error("Expected empty tracker from nil flag set")
	}
}

func TestFlagTracker_MergeString(t *testing.T) {
	ft := NewFlagTracker()
	ft.Set("theme")

	if got := ft.MergeString("classic", "dark", "theme"); got != "dark" {
		t.Errorf("Expected override to win for a set flag, got %q", got)
	}
	if got := ft.MergeString("TB", "LR", "direction"); got != "TB" {
		t.Errorf("Expected base to win for an unset flag, got %q", got)
	}
}

func TestFlagTracker_MergeBool(t *testing.T) {
	ft := NewFlagTracker()
	ft.Set("recursive")

	if got := ft.MergeBool(true, false, "recursive"); got != false {
		t.Error("Expected override false to win for a set flag")
	}
	if got := ft.MergeBool(true, false, "no-open"); got != true {
		t.Error("Expected base true to win for an unset flag")
	}
}

func TestFlagTracker_MergeStringSlice(t *testing.T) {
	ft := NewFlagTracker()
	ft.Set("include")

	base := []string{"*.py"}
	override := []string{"*.pyi"}

	got := ft.MergeStringSlice(base, override, "include")
	if len(got) != 1 || got[0] != "*.pyi" {
		t.Errorf("Expected override slice to win, got %v", got)
	}

	// A set flag with an empty override still keeps the base
	ft.Set("exclude")
	got = ft.MergeStringSlice(base, nil, "exclude")
	if len(got) != 1 || got[0] != "*.py" {
		t.Errorf("Expected base slice for empty override, got %v", got)
	}

	got = ft.MergeStringSlice(base, override, "untracked")
	if len(got) != 1 || got[0] != "*.py" {
		t.Errorf("Expected base slice for unset flag, got %v", got)
	}
}
