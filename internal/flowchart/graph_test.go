package flowchart

import "testing"

func TestGraphAddNode(t *testing.T) {
	g := NewGraph("Test", TopToBottom)

	a := g.AddNode("first", KindStart)
	b := g.AddNode("second", KindStep)

	if a != 0 || b != 1 {
		t.Errorf("Expected sequential ids 0 and 1, got %d and %d", a, b)
	}
	if g.Size() != 2 {
		t.Errorf("Expected 2 nodes, got %d", g.Size())
	}
	if g.NodeByID(a).Label != "first" {
		t.Errorf("Unexpected label %q", g.NodeByID(a).Label)
	}
	if g.NodeByID(99) != nil {
		t.Error("Unknown id should resolve to nil")
	}
}

func TestGraphEdgeQueries(t *testing.T) {
	g := NewGraph("", TopToBottom)
	cond := g.AddNode("cond", KindDecision)
	yes := g.AddNode("yes", KindStep)
	no := g.AddNode("no", KindStep)

	g.AddEdge(cond, yes, "True")
	g.AddEdge(cond, no, "False")
	g.AddEdge(yes, no, "")

	succ := g.Successors(cond)
	if len(succ) != 2 {
		t.Fatalf("Expected 2 successors, got %d", len(succ))
	}
	if succ[0].Label != "True" || succ[1].Label != "False" {
		t.Errorf("Successors must preserve emission order, got %q then %q",
			succ[0].Label, succ[1].Label)
	}

	pred := g.Predecessors(no)
	if len(pred) != 2 {
		t.Fatalf("Expected 2 predecessors, got %d", len(pred))
	}
	if len(g.Predecessors(cond)) != 0 {
		t.Error("Root node should have no predecessors")
	}
}

func TestNewGraphDefaultsDirection(t *testing.T) {
	g := NewGraph("untitled", "")
	if g.Direction != TopToBottom {
		t.Errorf("Empty direction should default to TB, got %q", g.Direction)
	}
}

func TestParseDirection(t *testing.T) {
	cases := map[string]Direction{
		"LR":         LeftToRight,
		"lr":         LeftToRight,
		"horizontal": LeftToRight,
		"TB":         TopToBottom,
		"":           TopToBottom,
		"sideways":   TopToBottom,
	}
	for input, want := range cases {
		if got := ParseDirection(input); got != want {
			t.Errorf("ParseDirection(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestNodeKindShapes(t *testing.T) {
	cases := map[NodeKind]string{
		KindStart:    "oval",
		KindDecision: "diamond",
		KindLoop:     "diamond",
		KindStep:     "box",
		KindTerminal: "box",
		KindBreak:    "box",
		KindContinue: "box",
		KindError:    "box",
	}
	for kind, want := range cases {
		if got := kind.Shape(); got != want {
			t.Errorf("%s.Shape() = %q, want %q", kind, got, want)
		}
	}
}

func TestNodeKindCategories(t *testing.T) {
	if KindBreak.Category() != "break" {
		t.Errorf("break nodes should style independently of their shape")
	}
	if KindContinue.Category() != "continue" {
		t.Errorf("continue nodes should style independently of their shape")
	}
	if KindError.Category() != "error" {
		t.Errorf("error nodes should style independently of their shape")
	}
	if KindDecision.Category() != "diamond" {
		t.Errorf("plain kinds should style by shape, got %q", KindDecision.Category())
	}
}

func TestNodeDOTName(t *testing.T) {
	n := &Node{ID: 7}
	if n.DOTName() != "n7" {
		t.Errorf("Expected n7, got %s", n.DOTName())
	}
}
