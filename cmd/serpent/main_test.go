package main

import (
	"testing"

	"github.com/serpent-tools/serpent/internal/version"
)

func TestVersion(t *testing.T) {
	// Version package should provide version info
	if version.Short() == "" {
		t.Error("version should not be empty")
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	expected := map[string]bool{
		"generate": false,
		"themes":   false,
		"init":     false,
		"version":  false,
	}

	for _, cmd := range rootCmd.Commands() {
		if _, ok := expected[cmd.Name()]; ok {
			expected[cmd.Name()] = true
		}
	}

	for name, found := range expected {
		if !found {
			t.Errorf("Expected subcommand '%s' to be registered", name)
		}
	}
}
