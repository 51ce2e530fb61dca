package flowchart

import "fmt"

// NodeKind classifies flowchart nodes. Kind determines the node's shape
// and, through the style map, its fill color.
type NodeKind int

const (
	// KindStep is a generic sequential statement
	KindStep NodeKind = iota
	// KindStart marks a function entry point
	KindStart
	// KindDecision is a branch condition (if, try)
	KindDecision
	// KindLoop is a loop condition (for, while)
	KindLoop
	// KindTerminal is a path-terminating statement (return, raise)
	KindTerminal
	// KindBreak is a break jump awaiting its post-loop edge
	KindBreak
	// KindContinue is a continue jump awaiting its back-edge
	KindContinue
	// KindError is the placeholder emitted for unusable input
	KindError
)

// String returns the kind name
func (k NodeKind) String() string {
	switch k {
	case KindStep:
		return "step"
	case KindStart:
		return "start"
	case KindDecision:
		return "decision"
	case KindLoop:
		return "loop"
	case KindTerminal:
		return "terminal"
	case KindBreak:
		return "break"
	case KindContinue:
		return "continue"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// Shape returns the Graphviz shape drawn for this kind
func (k NodeKind) Shape() string {
	switch k {
	case KindStart:
		return "oval"
	case KindDecision, KindLoop:
		return "diamond"
	default:
		return "box"
	}
}

// Category returns the style-map key used to resolve this kind's fill
// color. Break and continue have their own entries so themes can call
// them out; everything else is colored by shape.
func (k NodeKind) Category() string {
	switch k {
	case KindBreak:
		return "break"
	case KindContinue:
		return "continue"
	case KindError:
		return "error"
	default:
		return k.Shape()
	}
}

// Direction is the flowchart layout orientation
type Direction string

const (
	// TopToBottom lays the chart out vertically (rankdir TB)
	TopToBottom Direction = "TB"
	// LeftToRight lays the chart out horizontally (rankdir LR)
	LeftToRight Direction = "LR"
)

// ParseDirection maps user input to a Direction, defaulting to TopToBottom
func ParseDirection(s string) Direction {
	switch s {
	case "LR", "lr", "horizontal":
		return LeftToRight
	default:
		return TopToBottom
	}
}

// Node is a single flowchart node. Immutable once emitted.
type Node struct {
	// ID is unique within one graph, assigned in emission order
	ID int

	// Label is the text drawn inside the node
	Label string

	// Kind determines shape and fill color
	Kind NodeKind
}

// DOTName returns the node's identifier in DOT output
func (n *Node) DOTName() string {
	return fmt.Sprintf("n%d", n.ID)
}

// Edge is a directed arc between two nodes. Label is empty for plain
// sequencing edges and carries the condition ("True", "False", "Attempt",
// "Exc: ...") on conditioned edges.
type Edge struct {
	From  int
	To    int
	Label string
}

// Graph is the accumulated flowchart: append-only node and edge lists in
// emission order, plus chart metadata. It is never pruned; unreachable
// branches stay visible by design.
type Graph struct {
	Title     string
	Direction Direction

	Nodes []*Node
	Edges []*Edge

	nextID int
}

// NewGraph creates an empty graph with the given metadata
func NewGraph(title string, direction Direction) *Graph {
	if direction == "" {
		direction = TopToBottom
	}
	return &Graph{
		Title:     title,
		Direction: direction,
	}
}

// AddNode appends a node and returns its id. IDs are monotonically
// increasing, never reused.
func (g *Graph) AddNode(label string, kind NodeKind) int {
	id := g.nextID
	g.nextID++
	g.Nodes = append(g.Nodes, &Node{ID: id, Label: label, Kind: kind})
	return id
}

// AddEdge appends a directed edge. An empty label means an unconditional
// sequencing edge.
func (g *Graph) AddEdge(from, to int, label string) {
	g.Edges = append(g.Edges, &Edge{From: from, To: to, Label: label})
}

// NodeByID returns the node with the given id, or nil
func (g *Graph) NodeByID(id int) *Node {
	if id < 0 || id >= len(g.Nodes) {
		return nil
	}
	return g.Nodes[id]
}

// Successors returns the outgoing edges of a node in emission order
func (g *Graph) Successors(id int) []*Edge {
	var out []*Edge
	for _, e := range g.Edges {
		if e.From == id {
			out = append(out, e)
		}
	}
	return out
}

// Predecessors returns the incoming edges of a node in emission order
func (g *Graph) Predecessors(id int) []*Edge {
	var in []*Edge
	for _, e := range g.Edges {
		if e.To == id {
			in = append(in, e)
		}
	}
	return in
}

// Size returns the number of nodes
func (g *Graph) Size() int {
	return len(g.Nodes)
}

// String returns a short description of the graph
func (g *Graph) String() string {
	return fmt.Sprintf("Flowchart(%s): %d nodes, %d edges", g.Title, len(g.Nodes), len(g.Edges))
}
