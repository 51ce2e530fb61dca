package parser

import (
	"context"
	"fmt"
	"io"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// Parser provides Python code parsing capabilities using tree-sitter
type Parser struct {
	parser *sitter.Parser
}

// New creates a new Parser instance with Python grammar
func New() *Parser {
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())
	return &Parser{
		parser: parser,
	}
}

// ParseResult represents the result of parsing Python code
type ParseResult struct {
	Tree       *sitter.Tree
	AST        *Node
	SourceCode []byte
}

// Parse parses Python source code and returns the statement tree.
// Sources with syntax errors are rejected so the flowchart builder never
// sees a corrupt tree.
func (p *Parser) Parse(ctx context.Context, source []byte) (*ParseResult, error) {
	tree, err := p.parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse source: %w", err)
	}

	rootNode := tree.RootNode()
	if rootNode == nil || rootNode.HasError() {
		return nil, fmt.Errorf("syntax errors found in source code")
	}

	ast, err := NewASTBuilder(source).Build(tree)
	if err != nil {
		return nil, fmt.Errorf("failed to build AST: %w", err)
	}

	return &ParseResult{
		Tree:       tree,
		AST:        ast,
		SourceCode: source,
	}, nil
}

// ParseFile parses Python source from a reader
func (p *Parser) ParseFile(ctx context.Context, reader io.Reader) (*ParseResult, error) {
	source, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read source: %w", err)
	}

	return p.Parse(ctx, source)
}
