package parser

import "testing"

func firstStatement(t *testing.T, source string) *Node {
	t.Helper()

	ast := parseSource(t, source)
	if len(ast.Body) == 0 {
		t.Fatal("Source produced no statements")
	}
	return ast.Body[0]
}

func TestStatementTypeMapping(t *testing.T) {
	cases := []struct {
		source string
		want   NodeType
	}{
		{"x = 1", NodeAssign},
		{"x += 1", NodeAugAssign},
		{"x: int = 1", NodeAnnAssign},
		{"f()", NodeExpr},
		{"pass", NodePass},
		{"break", NodeBreak},
		{"continue", NodeContinue},
		{"import os", NodeImport},
		{"from os import path", NodeImportFrom},
		{"global x", NodeGlobal},
		{"del x", NodeDelete},
		{"assert x", NodeAssert},
		{"return x", NodeReturn},
		{"raise ValueError()", NodeRaise},
	}
	for _, tc := range cases {
		stmt := firstStatement(t, tc.source+"\n")
		if stmt.Type != tc.want {
			t.Errorf("%q parsed as %s, want %s", tc.source, stmt.Type, tc.want)
		}
	}
}

func TestFunctionDef(t *testing.T) {
	stmt := firstStatement(t, "def greet(name):\n    return name\n")

	if stmt.Type != NodeFunctionDef {
		t.Fatalf("Expected FunctionDef, got %s", stmt.Type)
	}
	if stmt.Name != "greet" {
		t.Errorf("Expected name greet, got %q", stmt.Name)
	}
	if len(stmt.Body) != 1 || stmt.Body[0].Type != NodeReturn {
		t.Errorf("Function body not captured: %v", stmt.Body)
	}
}

func TestAsyncFunctionDef(t *testing.T) {
	stmt := firstStatement(t, "async def fetch(url):\n    pass\n")
	if stmt.Type != NodeAsyncFunctionDef {
		t.Errorf("Expected AsyncFunctionDef, got %s", stmt.Type)
	}
}

func TestDecoratedFunctionUnwrapped(t *testing.T) {
	stmt := firstStatement(t, "@cached\ndef load():\n    pass\n")

	if stmt.Type != NodeFunctionDef {
		t.Fatalf("Decorated definitions should unwrap, got %s", stmt.Type)
	}
	if stmt.Name != "load" {
		t.Errorf("Expected name load, got %q", stmt.Name)
	}
}

func TestIfStatement(t *testing.T) {
	stmt := firstStatement(t, "if x > 0:\n    a = 1\nelse:\n    a = 2\n")

	if stmt.Type != NodeIf {
		t.Fatalf("Expected If, got %s", stmt.Type)
	}
	if stmt.Test == nil || stmt.Test.Text != "x > 0" {
		t.Errorf("Condition not captured: %v", stmt.Test)
	}
	if len(stmt.Body) != 1 {
		t.Errorf("Expected 1 body statement, got %d", len(stmt.Body))
	}
	if len(stmt.Orelse) != 1 || stmt.Orelse[0].Type != NodeAssign {
		t.Errorf("Else body not captured: %v", stmt.Orelse)
	}
}

func TestElifChainNested(t *testing.T) {
	source := `
if a:
    x = 1
elif b:
    x = 2
elif c:
    x = 3
else:
    x = 4
`
	stmt := firstStatement(t, source)

	// Each elif nests as a single If in the previous Orelse, the way
	// Python's own AST represents the chain
	first := stmt
	if first.Test.Text != "a" {
		t.Errorf("First condition = %q", first.Test.Text)
	}
	if len(first.Orelse) != 1 || first.Orelse[0].Type != NodeIf {
		t.Fatalf("First elif not nested: %v", first.Orelse)
	}

	second := first.Orelse[0]
	if second.Test.Text != "b" {
		t.Errorf("Second condition = %q", second.Test.Text)
	}
	if len(second.Orelse) != 1 || second.Orelse[0].Type != NodeIf {
		t.Fatalf("Second elif not nested: %v", second.Orelse)
	}

	third := second.Orelse[0]
	if third.Test.Text != "c" {
		t.Errorf("Third condition = %q", third.Test.Text)
	}
	if len(third.Orelse) != 1 || third.Orelse[0].Type != NodeAssign {
		t.Errorf("Final else should hang off the last elif: %v", third.Orelse)
	}
}

func TestForStatement(t *testing.T) {
	stmt := firstStatement(t, "for item in items:\n    use(item)\nelse:\n    done()\n")

	if stmt.Type != NodeFor {
		t.Fatalf("Expected For, got %s", stmt.Type)
	}
	if stmt.Target == nil || stmt.Target.Text != "item" {
		t.Errorf("Target not captured: %v", stmt.Target)
	}
	if stmt.Iter == nil || stmt.Iter.Text != "items" {
		t.Errorf("Iterable not captured: %v", stmt.Iter)
	}
	if len(stmt.Orelse) != 1 {
		t.Errorf("Loop else not captured: %v", stmt.Orelse)
	}
}

func TestAsyncForStatement(t *testing.T) {
	stmt := firstStatement(t, "async def f():\n    async for x in src:\n        pass\n")
	if stmt.Body[0].Type != NodeAsyncFor {
		t.Errorf("Expected AsyncFor, got %s", stmt.Body[0].Type)
	}
}

func TestWhileStatement(t *testing.T) {
	stmt := firstStatement(t, "while not done:\n    tick()\n")

	if stmt.Type != NodeWhile {
		t.Fatalf("Expected While, got %s", stmt.Type)
	}
	if stmt.Test == nil || stmt.Test.Text != "not done" {
		t.Errorf("Condition not captured: %v", stmt.Test)
	}
}

func TestTryStatement(t *testing.T) {
	source := `
try:
    risky()
except ValueError:
    a()
except OSError as err:
    b(err)
else:
    c()
finally:
    d()
`
	stmt := firstStatement(t, source)

	if stmt.Type != NodeTry {
		t.Fatalf("Expected Try, got %s", stmt.Type)
	}
	if len(stmt.Body) != 1 {
		t.Errorf("Try body not captured: %v", stmt.Body)
	}
	if len(stmt.Handlers) != 2 {
		t.Fatalf("Expected 2 handlers, got %d", len(stmt.Handlers))
	}

	bare := stmt.Handlers[0]
	if bare.Test == nil || bare.Test.Text != "ValueError" {
		t.Errorf("Handler type not captured: %v", bare.Test)
	}
	if bare.Name != "" {
		t.Errorf("Handler without alias should have no name, got %q", bare.Name)
	}

	aliased := stmt.Handlers[1]
	if aliased.Test == nil || aliased.Test.Text != "OSError" {
		t.Errorf("Aliased handler type not captured: %v", aliased.Test)
	}
	if aliased.Name != "err" {
		t.Errorf("Alias not captured, got %q", aliased.Name)
	}
	if len(aliased.Body) != 1 {
		t.Errorf("Handler body not captured: %v", aliased.Body)
	}

	if len(stmt.Orelse) != 1 {
		t.Errorf("Try else not captured: %v", stmt.Orelse)
	}
	if len(stmt.Finalbody) != 1 {
		t.Errorf("Finally body not captured: %v", stmt.Finalbody)
	}
}

func TestBareExcept(t *testing.T) {
	stmt := firstStatement(t, "try:\n    risky()\nexcept:\n    recover()\n")

	if len(stmt.Handlers) != 1 {
		t.Fatalf("Expected 1 handler, got %d", len(stmt.Handlers))
	}
	if stmt.Handlers[0].Test != nil {
		t.Errorf("Bare except should have no type, got %v", stmt.Handlers[0].Test)
	}
}

func TestReturnValueCaptured(t *testing.T) {
	stmt := firstStatement(t, "def f():\n    return a + b\n").Body[0]

	if stmt.Value == nil || stmt.Value.Text != "a + b" {
		t.Errorf("Return value not captured: %v", stmt.Value)
	}

	bare := firstStatement(t, "def f():\n    return\n").Body[0]
	if bare.Value != nil {
		t.Errorf("Bare return should have no value, got %v", bare.Value)
	}
}

func TestDocstringRecognition(t *testing.T) {
	fn := firstStatement(t, "def f():\n    \"\"\"Docs.\"\"\"\n    x = 1\n")

	doc := fn.Body[0]
	if doc.Type != NodeExpr {
		t.Fatalf("Docstring should parse as an expression statement, got %s", doc.Type)
	}
	if doc.Value == nil || !doc.Value.IsStringLiteral() {
		t.Error("Docstring value should be recognized as a string literal")
	}

	call := fn.Body[1]
	if call.Type != NodeAssign {
		t.Errorf("Expected Assign after docstring, got %s", call.Type)
	}
}

func TestCallIsNotStringLiteral(t *testing.T) {
	stmt := firstStatement(t, "print(\"hello\")\n")

	if stmt.Value == nil || stmt.Value.IsStringLiteral() {
		t.Error("A call expression must not be mistaken for a docstring")
	}
}

func TestMultilineTextCollapsed(t *testing.T) {
	stmt := firstStatement(t, "result = compute(\n    a,\n    b,\n)\n")

	if stmt.Text != "result = compute( a, b, )" {
		t.Errorf("Whitespace not collapsed: %q", stmt.Text)
	}
}

func TestWithStatement(t *testing.T) {
	stmt := firstStatement(t, "with open(p) as fh:\n    data = fh.read()\n")

	if stmt.Type != NodeWith {
		t.Fatalf("Expected With, got %s", stmt.Type)
	}
	if len(stmt.Body) != 1 {
		t.Errorf("With body not captured: %v", stmt.Body)
	}
}

func TestLocationTracking(t *testing.T) {
	ast := parseSource(t, "x = 1\ny = 2\n")

	second := ast.Body[1]
	if second.Location.StartLine != 2 {
		t.Errorf("Expected line 2, got %d", second.Location.StartLine)
	}
}

func TestWalkOrder(t *testing.T) {
	ast := parseSource(t, "def f():\n    if x:\n        a = 1\n    b = 2\n")

	var types []NodeType
	ast.Walk(func(n *Node) bool {
		types = append(types, n.Type)
		return true
	})

	want := []NodeType{NodeModule, NodeFunctionDef, NodeIf, NodeAssign, NodeAssign}
	if len(types) != len(want) {
		t.Fatalf("Walk visited %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Fatalf("Walk visited %v, want %v", types, want)
		}
	}
}

func TestFindByType(t *testing.T) {
	ast := parseSource(t, "def f():\n    return 1\ndef g():\n    return 2\n")

	returns := ast.FindByType(NodeReturn)
	if len(returns) != 2 {
		t.Errorf("Expected 2 returns, got %d", len(returns))
	}
}
