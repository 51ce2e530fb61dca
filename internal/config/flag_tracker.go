package config

import (
	"sync"

	"github.com/spf13/pflag"
)

// FlagTracker records which CLI flags the user explicitly set, so merging
// can let flags win over config files only when they were actually given.
type FlagTracker struct {
	mu    sync.RWMutex
	flags map[string]bool
}

// NewFlagTracker creates a new flag tracker
func NewFlagTracker() *FlagTracker {
	return &FlagTracker{
		flags: make(map[string]bool),
	}
}

// NewFlagTrackerFromFlags creates a tracker pre-populated with every flag
// changed on the given flag set
func NewFlagTrackerFromFlags(flags *pflag.FlagSet) *FlagTracker {
	ft := NewFlagTracker()
	if flags != nil {
		flags.Visit(func(f *pflag.Flag) {
			ft.flags[f.Name] = true
		})
	}
	return ft
}

// Set marks a flag as explicitly set
func (ft *FlagTracker) Set(flagName string) {
	ft.mu.Lock()
	defer ft.mu.Unlock()
	ft.flags[flagName] = true
}

// WasSet checks if a flag was explicitly set
func (ft *FlagTracker) WasSet(flagName string) bool {
	ft.mu.RLock()
	defer ft.mu.RUnlock()
	return ft.flags[flagName]
}

// MergeString returns override when the flag was set, base otherwise
func (ft *FlagTracker) MergeString(base, override, flagName string) string {
	if ft.WasSet(flagName) {
		return override
	}
	return base
}

// MergeBool returns override when the flag was set, base otherwise
func (ft *FlagTracker) MergeBool(base, override bool, flagName string) bool {
	if ft.WasSet(flagName) {
		return override
	}
	return base
}

// MergeStringSlice returns override when the flag was set and non-empty,
// base otherwise
func (ft *FlagTracker) MergeStringSlice(base, override []string, flagName string) []string {
	if ft.WasSet(flagName) && len(override) > 0 {
		return override
	}
	return base
}
