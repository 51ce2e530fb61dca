package flowchart

import (
	"context"
	"strings"
	"testing"

	"github.com/serpent-tools/serpent/internal/parser"
)

// parseSource parses a Python snippet and returns its statement tree
func parseSource(t *testing.T, source string) *parser.Node {
	t.Helper()

	result, err := parser.New().Parse(context.Background(), []byte(source))
	if err != nil {
		t.Fatalf("Failed to parse source: %v", err)
	}
	return result.AST
}

// buildSource parses and builds in one step with default options
func buildSource(t *testing.T, source string) *Graph {
	t.Helper()
	return Build(parseSource(t, source), BuildOptions{})
}

// findNode returns the first node whose label contains the substring
func findNode(t *testing.T, g *Graph, label string) *Node {
	t.Helper()

	for _, n := range g.Nodes {
		if strings.Contains(n.Label, label) {
			return n
		}
	}
	t.Fatalf("No node with label containing %q in %v", label, nodeLabels(g))
	return nil
}

// hasEdge reports whether an edge from -> to with the exact label exists
func hasEdge(g *Graph, from, to int, label string) bool {
	for _, e := range g.Edges {
		if e.From == from && e.To == to && e.Label == label {
			return true
		}
	}
	return false
}

func nodeLabels(g *Graph) []string {
	labels := make([]string, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		labels = append(labels, n.Label)
	}
	return labels
}
