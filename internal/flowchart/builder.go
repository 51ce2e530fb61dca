package flowchart

import (
	"github.com/serpent-tools/serpent/internal/parser"
)

// Labels for nodes and edges that do not come from source text
const (
	LabelTrue     = "True"
	LabelFalse    = "False"
	LabelAttempt  = "Attempt"
	LabelTry      = "Try"
	LabelBreak    = "break"
	LabelContinue = "continue"
	LabelOrphaned = " (orphaned)"

	// LabelEmptyTree is the placeholder drawn when the builder is handed
	// nothing to chart
	LabelEmptyTree = "Error: nothing to chart"
)

// exitPoint is one open position in the frontier: a node id plus an
// optional label that must appear on the next edge drawn out of it.
type exitPoint struct {
	node  int
	label string
}

// loopFrame tracks one enclosing loop while its body is traversed:
// the condition node id and the break/continue jumps waiting to be wired
// once the loop's extent is known.
type loopFrame struct {
	cond      int
	breaks    []int
	continues []int
}

// BuildOptions configure a single build call
type BuildOptions struct {
	Title     string
	Direction Direction
}

// builder walks a statement tree once, depth-first, emitting nodes and
// edges into the graph. The frontier is the only traversal state: the set
// of open flow positions the next emitted node connects from. All of it
// is scoped to one Build call, so concurrent builds never interfere.
type builder struct {
	graph    *Graph
	frontier []exitPoint
	loops    []loopFrame
}

// Build converts a parsed statement tree into a flowchart graph. It never
// fails: a nil tree produces a single error placeholder node, and unknown
// statement kinds degrade to opaque step boxes.
func Build(root *parser.Node, opts BuildOptions) *Graph {
	graph := NewGraph(opts.Title, opts.Direction)

	if root == nil {
		graph.AddNode(LabelEmptyTree, KindError)
		return graph
	}

	b := &builder{graph: graph}
	if root.Type == parser.NodeModule {
		b.visitBody(root.Body)
	} else {
		b.visit(root)
	}

	return graph
}

// ErrorGraph builds a one-node graph carrying a failure message, used when
// the source could not be parsed at all.
func ErrorGraph(message string, opts BuildOptions) *Graph {
	graph := NewGraph(opts.Title, opts.Direction)
	graph.AddNode(message, KindError)
	return graph
}

// emit creates a node, draws an edge into it from every open frontier
// point (a point's forced label wins over the plain sequencing edge), and
// collapses the frontier to the new node. Handlers that need parallel open
// paths restore them explicitly after emitting.
func (b *builder) emit(label string, kind NodeKind) int {
	id := b.graph.AddNode(label, kind)
	for _, p := range b.frontier {
		b.graph.AddEdge(p.node, id, p.label)
	}
	b.frontier = []exitPoint{{node: id}}
	return id
}

// visitBody traverses a statement list in source order
func (b *builder) visitBody(stmts []*parser.Node) {
	for _, stmt := range stmts {
		b.visit(stmt)
	}
}

// visit dispatches one statement to its handler
func (b *builder) visit(stmt *parser.Node) {
	if stmt == nil {
		return
	}

	switch stmt.Type {
	case parser.NodeFunctionDef, parser.NodeAsyncFunctionDef:
		b.emit("Function: "+stmt.Name, KindStart)
		b.visitBody(stmt.Body)

	case parser.NodeIf:
		b.visitIf(stmt)

	case parser.NodeFor, parser.NodeAsyncFor:
		b.visitLoop(stmt, "For: "+exprText(stmt.Target)+" in "+exprText(stmt.Iter))

	case parser.NodeWhile:
		b.visitLoop(stmt, "While: "+exprText(stmt.Test))

	case parser.NodeTry:
		b.visitTry(stmt)

	case parser.NodeReturn:
		b.visitTerminal(stmt, "Return: ", "Return: None")

	case parser.NodeRaise:
		b.visitTerminal(stmt, "Raise: ", "Raise")

	case parser.NodeBreak:
		b.visitJump(stmt, KindBreak)

	case parser.NodeContinue:
		b.visitJump(stmt, KindContinue)

	case parser.NodePass:
		// no node, frontier unchanged

	case parser.NodeExpr:
		// Docstrings never pollute the diagram
		if stmt.Value != nil && stmt.Value.IsStringLiteral() {
			return
		}
		b.emit(stmt.Text, KindStep)

	case parser.NodeAssign, parser.NodeAugAssign, parser.NodeAnnAssign:
		b.emit(stmt.Text, KindStep)

	default:
		// Anything the builder was not taught becomes an opaque box
		// labeled with its statement kind, keeping the walk total.
		b.emit(string(stmt.Type), KindStep)
	}
}

// visitIf draws the branch: one decision node, "True" into the body,
// "False" into the else body (or deferred until the next statement when
// there is none), then both branch ends stay open in parallel so the next
// statement becomes the merge point.
func (b *builder) visitIf(stmt *parser.Node) {
	cond := b.emit("If: "+exprText(stmt.Test), KindDecision)

	b.frontier = []exitPoint{{node: cond, label: LabelTrue}}
	b.visitBody(stmt.Body)
	trueEnds := b.frontier

	b.frontier = []exitPoint{{node: cond, label: LabelFalse}}
	b.visitBody(stmt.Orelse)
	falseEnds := b.frontier

	// A branch that ended in return/raise/break/continue left an empty
	// frontier and contributes nothing to the merge.
	merged := make([]exitPoint, 0, len(trueEnds)+len(falseEnds))
	merged = append(merged, trueEnds...)
	merged = append(merged, falseEnds...)
	b.frontier = merged
}

// visitLoop draws the loop condition, traverses the body under a fresh
// loop frame, then wires back-edges from every fallthrough body end and
// every continue, and reopens the frontier at the "False" exit plus every
// break.
func (b *builder) visitLoop(stmt *parser.Node, label string) {
	cond := b.emit(label, KindLoop)

	b.loops = append(b.loops, loopFrame{cond: cond})

	b.frontier = []exitPoint{{node: cond, label: LabelTrue}}
	b.visitBody(stmt.Body)

	// Paths that fell through the body loop back to the condition,
	// keeping any forced label they were carrying.
	for _, p := range b.frontier {
		b.graph.AddEdge(p.node, cond, p.label)
	}

	frame := b.loops[len(b.loops)-1]
	b.loops = b.loops[:len(b.loops)-1]

	// continue always targets this loop's own condition
	for _, c := range frame.continues {
		b.graph.AddEdge(c, cond, "")
	}

	exits := []exitPoint{{node: cond, label: LabelFalse}}
	for _, br := range frame.breaks {
		exits = append(exits, exitPoint{node: br})
	}
	b.frontier = exits
}

// visitJump handles break and continue. Inside a loop the node registers
// with the innermost frame and the path closes; outside any loop it is
// drawn as an orphan for visual completeness and registers nowhere.
func (b *builder) visitJump(stmt *parser.Node, kind NodeKind) {
	word := LabelBreak
	if kind == KindContinue {
		word = LabelContinue
	}

	if len(b.loops) == 0 {
		b.emit(word+LabelOrphaned, kind)
		return
	}

	id := b.emit(word, kind)
	frame := &b.loops[len(b.loops)-1]
	if kind == KindBreak {
		frame.breaks = append(frame.breaks, id)
	} else {
		frame.continues = append(frame.continues, id)
	}
	b.frontier = nil
}

// visitTerminal handles return and raise: one terminal node, then the
// path is closed for good.
func (b *builder) visitTerminal(stmt *parser.Node, prefix, bare string) {
	label := bare
	if stmt.Value != nil && stmt.Value.Text != "" {
		label = prefix + stmt.Value.Text
	}
	b.emit(label, KindTerminal)
	b.frontier = nil
}

// visitTry fans the flow out of a single Try decision node: the attempt
// path through the body, one labeled path per handler, the else body fed
// by the attempt's successful end, and everything converging into the
// finally body when present. Exceptions raised inside handlers or finally
// bodies are deliberately not modeled.
func (b *builder) visitTry(stmt *parser.Node) {
	try := b.emit(LabelTry, KindDecision)

	b.frontier = []exitPoint{{node: try, label: LabelAttempt}}
	b.visitBody(stmt.Body)
	successEnds := b.frontier

	var allEnds []exitPoint

	for _, handler := range stmt.Handlers {
		label := "Exception"
		if handler.Test != nil && handler.Test.Text != "" {
			label = "Exc: " + handler.Test.Text
		}
		b.frontier = []exitPoint{{node: try, label: label}}
		b.visitBody(handler.Body)
		allEnds = append(allEnds, b.frontier...)
	}

	if len(stmt.Orelse) > 0 {
		b.frontier = successEnds
		b.visitBody(stmt.Orelse)
		allEnds = append(allEnds, b.frontier...)
	} else {
		allEnds = append(allEnds, successEnds...)
	}

	b.frontier = allEnds
	if len(stmt.Finalbody) > 0 {
		b.visitBody(stmt.Finalbody)
	}
}

// exprText returns an expression's source text, or a placeholder so labels
// never end up half-empty on malformed input.
func exprText(expr *parser.Node) string {
	if expr == nil || expr.Text == "" {
		return "?"
	}
	return expr.Text
}
