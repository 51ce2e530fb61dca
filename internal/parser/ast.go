package parser

import "fmt"

// NodeType identifies the kind of statement or expression a Node represents.
// Names follow the Python AST convention so diagrams label unrecognized
// statements the way Python tooling does.
type NodeType string

const (
	NodeModule NodeType = "Module"

	// Statements the flowchart builder dispatches on
	NodeFunctionDef      NodeType = "FunctionDef"
	NodeAsyncFunctionDef NodeType = "AsyncFunctionDef"
	NodeClassDef         NodeType = "ClassDef"
	NodeIf               NodeType = "If"
	NodeFor              NodeType = "For"
	NodeAsyncFor         NodeType = "AsyncFor"
	NodeWhile            NodeType = "While"
	NodeTry              NodeType = "Try"
	NodeExceptHandler    NodeType = "ExceptHandler"
	NodeReturn           NodeType = "Return"
	NodeRaise            NodeType = "Raise"
	NodeBreak            NodeType = "Break"
	NodeContinue         NodeType = "Continue"
	NodePass             NodeType = "Pass"
	NodeAssign           NodeType = "Assign"
	NodeAugAssign        NodeType = "AugAssign"
	NodeAnnAssign        NodeType = "AnnAssign"
	NodeExpr             NodeType = "Expr"

	// Statements that degrade to a generic step box
	NodeImport     NodeType = "Import"
	NodeImportFrom NodeType = "ImportFrom"
	NodeGlobal     NodeType = "Global"
	NodeNonlocal   NodeType = "Nonlocal"
	NodeDelete     NodeType = "Delete"
	NodeAssert     NodeType = "Assert"
	NodeWith       NodeType = "With"
	NodeAsyncWith  NodeType = "AsyncWith"
	NodeMatch      NodeType = "Match"

	// Expression markers (only the ones the builder needs to recognize)
	NodeString     NodeType = "Str"
	NodeExpression NodeType = "Expression"
)

// Location is the position of a node in the source file
type Location struct {
	File      string
	StartLine int
	StartCol  int
	EndLine   int
	EndCol    int
}

// Node is a statement-granular AST node. Unlike a full expression tree,
// every node carries the normalized source text of the construct it stands
// for, which is what flowchart labels are made of.
type Node struct {
	Type NodeType

	// Text is the source text of the statement or expression with runs of
	// whitespace collapsed, so multi-line constructs label a single box.
	Text string

	// Name holds function/class names and exception aliases
	Name string

	// Test is the condition of if/while nodes and the matched exception
	// type of an ExceptHandler
	Test *Node

	// Target and Iter belong to for loops
	Target *Node
	Iter   *Node

	// Value is the returned/raised expression, or the expression of a
	// bare expression statement
	Value *Node

	Body      []*Node
	Orelse    []*Node
	Handlers  []*Node
	Finalbody []*Node

	Location Location
	Parent   *Node
}

// NewNode creates a new AST node
func NewNode(nodeType NodeType) *Node {
	return &Node{Type: nodeType}
}

// AddToBody appends a statement to the node's body
func (n *Node) AddToBody(stmt *Node) {
	if stmt != nil {
		stmt.Parent = n
		n.Body = append(n.Body, stmt)
	}
}

// IsStatement reports whether the node is a statement
func (n *Node) IsStatement() bool {
	switch n.Type {
	case NodeFunctionDef, NodeAsyncFunctionDef, NodeClassDef,
		NodeIf, NodeFor, NodeAsyncFor, NodeWhile, NodeTry,
		NodeReturn, NodeRaise, NodeBreak, NodeContinue, NodePass,
		NodeAssign, NodeAugAssign, NodeAnnAssign, NodeExpr,
		NodeImport, NodeImportFrom, NodeGlobal, NodeNonlocal,
		NodeDelete, NodeAssert, NodeWith, NodeAsyncWith, NodeMatch:
		return true
	default:
		return false
	}
}

// IsControlFlow reports whether the node changes control flow
func (n *Node) IsControlFlow() bool {
	switch n.Type {
	case NodeIf, NodeFor, NodeAsyncFor, NodeWhile, NodeTry,
		NodeBreak, NodeContinue, NodeReturn, NodeRaise:
		return true
	default:
		return false
	}
}

// IsStringLiteral reports whether the node is a plain string expression,
// which is how docstrings appear in statement position.
func (n *Node) IsStringLiteral() bool {
	return n.Type == NodeString
}

// String returns a short description of the node
func (n *Node) String() string {
	if n.Name != "" {
		return fmt.Sprintf("%s(%s)", n.Type, n.Name)
	}
	if n.Text != "" {
		return fmt.Sprintf("%s(%s)", n.Type, n.Text)
	}
	return string(n.Type)
}

// Walk traverses the statement tree depth-first in source order
func (n *Node) Walk(visitor func(*Node) bool) {
	if !visitor(n) {
		return
	}
	for _, section := range [][]*Node{n.Body, n.Handlers, n.Orelse, n.Finalbody} {
		for _, child := range section {
			if child != nil {
				child.Walk(visitor)
			}
		}
	}
}

// Find returns all nodes matching the predicate in traversal order
func (n *Node) Find(predicate func(*Node) bool) []*Node {
	var results []*Node
	n.Walk(func(node *Node) bool {
		if predicate(node) {
			results = append(results, node)
		}
		return true
	})
	return results
}

// FindByType returns all nodes of the given type in traversal order
func (n *Node) FindByType(nodeType NodeType) []*Node {
	return n.Find(func(node *Node) bool {
		return node.Type == nodeType
	})
}
