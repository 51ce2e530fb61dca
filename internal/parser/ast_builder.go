package parser

import (
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// ASTBuilder converts tree-sitter parse trees to the statement-level AST
// the flowchart builder consumes. Expression subtrees are not expanded;
// their normalized source text is captured instead, which plays the role
// Python's ast.unparse plays in label generation.
type ASTBuilder struct {
	source []byte
}

// NewASTBuilder creates a new AST builder
func NewASTBuilder(source []byte) *ASTBuilder {
	return &ASTBuilder{
		source: source,
	}
}

// Build converts a tree-sitter tree to the internal AST
func (b *ASTBuilder) Build(tree *sitter.Tree) (*Node, error) {
	if tree == nil {
		return nil, fmt.Errorf("tree is nil")
	}

	rootNode := tree.RootNode()
	if rootNode == nil {
		return nil, fmt.Errorf("root node is nil")
	}

	module := NewNode(NodeModule)
	module.Location = b.getLocation(rootNode)

	for _, stmt := range b.buildStatements(rootNode) {
		module.AddToBody(stmt)
	}

	return module, nil
}

// buildStatements builds all statements among a node's children, in source
// order, skipping comments and punctuation.
func (b *ASTBuilder) buildStatements(tsNode *sitter.Node) []*Node {
	var stmts []*Node

	childCount := int(tsNode.NamedChildCount())
	for i := 0; i < childCount; i++ {
		child := tsNode.NamedChild(i)
		if child == nil || child.Type() == "comment" {
			continue
		}
		if stmt := b.buildStatement(child); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}

	return stmts
}

// buildStatement builds a single statement node
func (b *ASTBuilder) buildStatement(tsNode *sitter.Node) *Node {
	switch tsNode.Type() {
	case "function_definition":
		return b.buildFunctionDef(tsNode)
	case "decorated_definition":
		if def := tsNode.ChildByFieldName("definition"); def != nil {
			return b.buildStatement(def)
		}
		return nil
	case "class_definition":
		return b.buildClassDef(tsNode)
	case "if_statement":
		return b.buildIfStatement(tsNode)
	case "for_statement":
		return b.buildForStatement(tsNode)
	case "while_statement":
		return b.buildWhileStatement(tsNode)
	case "try_statement":
		return b.buildTryStatement(tsNode)
	case "return_statement":
		return b.buildValueStatement(tsNode, NodeReturn)
	case "raise_statement":
		return b.buildValueStatement(tsNode, NodeRaise)
	case "expression_statement":
		return b.buildExpressionStatement(tsNode)
	case "pass_statement":
		return b.makeStatement(tsNode, NodePass)
	case "break_statement":
		return b.makeStatement(tsNode, NodeBreak)
	case "continue_statement":
		return b.makeStatement(tsNode, NodeContinue)
	case "import_statement":
		return b.makeStatement(tsNode, NodeImport)
	case "import_from_statement", "future_import_statement":
		return b.makeStatement(tsNode, NodeImportFrom)
	case "global_statement":
		return b.makeStatement(tsNode, NodeGlobal)
	case "nonlocal_statement":
		return b.makeStatement(tsNode, NodeNonlocal)
	case "delete_statement":
		return b.makeStatement(tsNode, NodeDelete)
	case "assert_statement":
		return b.makeStatement(tsNode, NodeAssert)
	case "with_statement":
		return b.buildWithStatement(tsNode)
	case "match_statement":
		return b.makeStatement(tsNode, NodeMatch)
	default:
		// Unknown statement kinds keep their grammar name so the builder
		// can still draw an opaque box for them.
		return b.makeStatement(tsNode, NodeType(tsNode.Type()))
	}
}

// makeStatement creates a leaf statement node carrying its source text
func (b *ASTBuilder) makeStatement(tsNode *sitter.Node, nodeType NodeType) *Node {
	node := NewNode(nodeType)
	node.Location = b.getLocation(tsNode)
	node.Text = b.getNodeText(tsNode)
	return node
}

// buildExpr wraps an expression node, keeping only its text and enough
// type information to recognize string literals.
func (b *ASTBuilder) buildExpr(tsNode *sitter.Node) *Node {
	if tsNode == nil {
		return nil
	}

	nodeType := NodeExpression
	switch tsNode.Type() {
	case "string", "concatenated_string":
		nodeType = NodeString
	}

	node := NewNode(nodeType)
	node.Location = b.getLocation(tsNode)
	node.Text = b.getNodeText(tsNode)
	return node
}

func (b *ASTBuilder) buildFunctionDef(tsNode *sitter.Node) *Node {
	node := NewNode(NodeFunctionDef)
	node.Location = b.getLocation(tsNode)

	if b.hasChildOfType(tsNode, "async") {
		node.Type = NodeAsyncFunctionDef
	}

	if nameNode := tsNode.ChildByFieldName("name"); nameNode != nil {
		node.Name = b.getNodeText(nameNode)
	}

	if bodyNode := tsNode.ChildByFieldName("body"); bodyNode != nil {
		for _, stmt := range b.buildStatements(bodyNode) {
			node.AddToBody(stmt)
		}
	}

	return node
}

func (b *ASTBuilder) buildClassDef(tsNode *sitter.Node) *Node {
	node := NewNode(NodeClassDef)
	node.Location = b.getLocation(tsNode)

	if nameNode := tsNode.ChildByFieldName("name"); nameNode != nil {
		node.Name = b.getNodeText(nameNode)
	}

	if bodyNode := tsNode.ChildByFieldName("body"); bodyNode != nil {
		for _, stmt := range b.buildStatements(bodyNode) {
			node.AddToBody(stmt)
		}
	}

	return node
}

func (b *ASTBuilder) buildIfStatement(tsNode *sitter.Node) *Node {
	node := NewNode(NodeIf)
	node.Location = b.getLocation(tsNode)

	if condition := tsNode.ChildByFieldName("condition"); condition != nil {
		node.Test = b.buildExpr(condition)
	}

	if consequence := tsNode.ChildByFieldName("consequence"); consequence != nil {
		for _, stmt := range b.buildStatements(consequence) {
			node.AddToBody(stmt)
		}
	}

	// Tree-sitter flattens elif/else chains into repeated "alternative"
	// children; fold them back into the nested Orelse form Python's own
	// AST uses, so the builder sees every elif as a fresh decision.
	var elifs []*Node
	var elseBody []*Node

	childCount := int(tsNode.ChildCount())
	for i := 0; i < childCount; i++ {
		child := tsNode.Child(i)
		if child == nil || tsNode.FieldNameForChild(i) != "alternative" {
			continue
		}
		switch child.Type() {
		case "elif_clause":
			elifs = append(elifs, b.buildElifClause(child))
		case "else_clause":
			elseBody = b.buildElseClause(child)
		}
	}

	orelse := elseBody
	for i := len(elifs) - 1; i >= 0; i-- {
		elifNode := elifs[i]
		for _, stmt := range orelse {
			stmt.Parent = elifNode
		}
		elifNode.Orelse = orelse
		orelse = []*Node{elifNode}
	}

	for _, stmt := range orelse {
		stmt.Parent = node
	}
	node.Orelse = orelse

	return node
}

func (b *ASTBuilder) buildElifClause(tsNode *sitter.Node) *Node {
	node := NewNode(NodeIf)
	node.Location = b.getLocation(tsNode)

	if condition := tsNode.ChildByFieldName("condition"); condition != nil {
		node.Test = b.buildExpr(condition)
	}
	if consequence := tsNode.ChildByFieldName("consequence"); consequence != nil {
		for _, stmt := range b.buildStatements(consequence) {
			node.AddToBody(stmt)
		}
	}

	return node
}

func (b *ASTBuilder) buildElseClause(tsNode *sitter.Node) []*Node {
	if bodyNode := tsNode.ChildByFieldName("body"); bodyNode != nil {
		return b.buildStatements(bodyNode)
	}
	return nil
}

func (b *ASTBuilder) buildForStatement(tsNode *sitter.Node) *Node {
	node := NewNode(NodeFor)
	node.Location = b.getLocation(tsNode)

	if b.hasChildOfType(tsNode, "async") {
		node.Type = NodeAsyncFor
	}

	if left := tsNode.ChildByFieldName("left"); left != nil {
		node.Target = b.buildExpr(left)
	}
	if right := tsNode.ChildByFieldName("right"); right != nil {
		node.Iter = b.buildExpr(right)
	}
	if bodyNode := tsNode.ChildByFieldName("body"); bodyNode != nil {
		for _, stmt := range b.buildStatements(bodyNode) {
			node.AddToBody(stmt)
		}
	}
	if alternative := tsNode.ChildByFieldName("alternative"); alternative != nil {
		node.Orelse = b.buildElseClause(alternative)
		for _, stmt := range node.Orelse {
			stmt.Parent = node
		}
	}

	return node
}

func (b *ASTBuilder) buildWhileStatement(tsNode *sitter.Node) *Node {
	node := NewNode(NodeWhile)
	node.Location = b.getLocation(tsNode)

	if condition := tsNode.ChildByFieldName("condition"); condition != nil {
		node.Test = b.buildExpr(condition)
	}
	if bodyNode := tsNode.ChildByFieldName("body"); bodyNode != nil {
		for _, stmt := range b.buildStatements(bodyNode) {
			node.AddToBody(stmt)
		}
	}
	if alternative := tsNode.ChildByFieldName("alternative"); alternative != nil {
		node.Orelse = b.buildElseClause(alternative)
		for _, stmt := range node.Orelse {
			stmt.Parent = node
		}
	}

	return node
}

func (b *ASTBuilder) buildTryStatement(tsNode *sitter.Node) *Node {
	node := NewNode(NodeTry)
	node.Location = b.getLocation(tsNode)

	if bodyNode := tsNode.ChildByFieldName("body"); bodyNode != nil {
		for _, stmt := range b.buildStatements(bodyNode) {
			node.AddToBody(stmt)
		}
	}

	childCount := int(tsNode.ChildCount())
	for i := 0; i < childCount; i++ {
		child := tsNode.Child(i)
		if child == nil {
			continue
		}
		switch child.Type() {
		case "except_clause", "except_group_clause":
			if handler := b.buildExceptHandler(child); handler != nil {
				handler.Parent = node
				node.Handlers = append(node.Handlers, handler)
			}
		case "else_clause":
			node.Orelse = b.buildElseClause(child)
			for _, stmt := range node.Orelse {
				stmt.Parent = node
			}
		case "finally_clause":
			// finally_clause has no "body" field; the block is a direct child
			for j := 0; j < int(child.ChildCount()); j++ {
				if inner := child.Child(j); inner != nil && inner.Type() == "block" {
					node.Finalbody = b.buildStatements(inner)
					for _, stmt := range node.Finalbody {
						stmt.Parent = node
					}
					break
				}
			}
		}
	}

	return node
}

func (b *ASTBuilder) buildExceptHandler(tsNode *sitter.Node) *Node {
	node := NewNode(NodeExceptHandler)
	node.Location = b.getLocation(tsNode)

	childCount := int(tsNode.ChildCount())
	for i := 0; i < childCount; i++ {
		child := tsNode.Child(i)
		if child == nil {
			continue
		}
		switch child.Type() {
		case "as_pattern":
			// "except ValueError as e" - type plus alias
			if exType := child.Child(0); exType != nil {
				node.Test = b.buildExpr(exType)
			}
			if alias := child.ChildByFieldName("alias"); alias != nil {
				node.Name = b.getNodeText(alias)
			}
		case "block":
			for _, stmt := range b.buildStatements(child) {
				node.AddToBody(stmt)
			}
		case "except", "except*", ":", "comment":
			// punctuation
		default:
			// Bare exception type without alias
			node.Test = b.buildExpr(child)
		}
	}

	return node
}

func (b *ASTBuilder) buildWithStatement(tsNode *sitter.Node) *Node {
	node := NewNode(NodeWith)
	node.Location = b.getLocation(tsNode)
	node.Text = b.getNodeText(tsNode)

	if b.hasChildOfType(tsNode, "async") {
		node.Type = NodeAsyncWith
	}

	if bodyNode := tsNode.ChildByFieldName("body"); bodyNode != nil {
		for _, stmt := range b.buildStatements(bodyNode) {
			node.AddToBody(stmt)
		}
	}

	return node
}

// buildValueStatement builds return/raise nodes, capturing the expression
// that follows the keyword when present.
func (b *ASTBuilder) buildValueStatement(tsNode *sitter.Node, nodeType NodeType) *Node {
	node := b.makeStatement(tsNode, nodeType)

	namedCount := int(tsNode.NamedChildCount())
	for i := 0; i < namedCount; i++ {
		child := tsNode.NamedChild(i)
		if child != nil && child.Type() != "comment" {
			node.Value = b.buildExpr(child)
			break
		}
	}

	return node
}

func (b *ASTBuilder) buildExpressionStatement(tsNode *sitter.Node) *Node {
	inner := tsNode.NamedChild(0)
	if inner == nil {
		return nil
	}

	switch inner.Type() {
	case "assignment":
		// "x: int = 1" parses as an assignment with a type field
		if inner.ChildByFieldName("type") != nil {
			return b.makeStatement(tsNode, NodeAnnAssign)
		}
		return b.makeStatement(tsNode, NodeAssign)
	case "augmented_assignment":
		return b.makeStatement(tsNode, NodeAugAssign)
	}

	node := b.makeStatement(tsNode, NodeExpr)
	node.Value = b.buildExpr(inner)
	return node
}

// getNodeText returns the node's source text with internal whitespace runs
// collapsed so multi-line constructs render as single-line labels.
func (b *ASTBuilder) getNodeText(tsNode *sitter.Node) string {
	return strings.Join(strings.Fields(tsNode.Content(b.source)), " ")
}

func (b *ASTBuilder) getLocation(tsNode *sitter.Node) Location {
	start := tsNode.StartPoint()
	end := tsNode.EndPoint()
	return Location{
		StartLine: int(start.Row) + 1,
		StartCol:  int(start.Column),
		EndLine:   int(end.Row) + 1,
		EndCol:    int(end.Column),
	}
}

func (b *ASTBuilder) hasChildOfType(tsNode *sitter.Node, childType string) bool {
	childCount := int(tsNode.ChildCount())
	for i := 0; i < childCount; i++ {
		if child := tsNode.Child(i); child != nil && child.Type() == childType {
			return true
		}
	}
	return false
}
