package flowchart

import (
	"strings"
	"testing"
)

func TestDOTBasicStructure(t *testing.T) {
	g := NewGraph("My Chart", TopToBottom)
	start := g.AddNode("Function: f", KindStart)
	step := g.AddNode("x = 1", KindStep)
	g.AddEdge(start, step, "")

	out := DOT(g, nil)

	for _, want := range []string{
		"digraph flowchart {",
		"rankdir=TB;",
		`label="My Chart";`,
		"labelloc=t;",
		`n0 [label="Function: f", shape=oval, style=filled, fillcolor="lightgreen"];`,
		`n1 [label="x = 1", shape=box, style=filled, fillcolor="lightyellow"];`,
		"n0 -> n1;",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Output missing %q:\n%s", want, out)
		}
	}
	if !strings.HasSuffix(out, "}\n") {
		t.Error("Output should end with a closing brace")
	}
}

func TestDOTEdgeLabels(t *testing.T) {
	g := NewGraph("", TopToBottom)
	cond := g.AddNode("If: x", KindDecision)
	body := g.AddNode("y()", KindStep)
	g.AddEdge(cond, body, "True")

	out := DOT(g, nil)

	if !strings.Contains(out, `n0 -> n1 [label="True"];`) {
		t.Errorf("Labeled edge not serialized:\n%s", out)
	}
	if strings.Contains(out, "label=;") {
		t.Error("Empty labels must not be serialized")
	}
}

func TestDOTOmitsTitleWhenEmpty(t *testing.T) {
	g := NewGraph("", LeftToRight)
	g.AddNode("done", KindStep)

	out := DOT(g, nil)

	if strings.Contains(out, "labelloc") {
		t.Error("Untitled graphs must not carry a label block")
	}
	if !strings.Contains(out, "rankdir=LR;") {
		t.Error("Direction should still be written")
	}
}

func TestDOTQuoting(t *testing.T) {
	g := NewGraph("", TopToBottom)
	g.AddNode(`print("a\b")`, KindStep)

	out := DOT(g, nil)

	if !strings.Contains(out, `label="print(\"a\\b\")"`) {
		t.Errorf("Quotes and backslashes must be escaped:\n%s", out)
	}
}

func TestDOTUsesProvidedStyles(t *testing.T) {
	g := NewGraph("", TopToBottom)
	g.AddNode("x = 1", KindStep)

	out := DOT(g, Theme("dark"))

	if !strings.Contains(out, `fillcolor="#444444"`) {
		t.Errorf("Theme color not applied:\n%s", out)
	}
}

func TestWriteDOT(t *testing.T) {
	g := NewGraph("t", TopToBottom)
	g.AddNode("a", KindStep)

	var b strings.Builder
	if err := WriteDOT(&b, g, nil); err != nil {
		t.Fatalf("WriteDOT failed: %v", err)
	}
	if b.String() != DOT(g, nil) {
		t.Error("WriteDOT and DOT must agree")
	}
}
