package flowchart

import (
	"fmt"
	"io"
	"strings"
)

// WriteDOT serializes the graph in Graphviz DOT form: one node statement
// per flowchart node and one edge statement per connection, both in
// emission order, so identical input always yields byte-identical output.
func WriteDOT(w io.Writer, g *Graph, styles StyleMap) error {
	if styles == nil {
		styles = defaultStyles
	}

	var b strings.Builder
	b.WriteString("digraph flowchart {\n")
	fmt.Fprintf(&b, "  rankdir=%s;\n", g.Direction)
	if g.Title != "" {
		fmt.Fprintf(&b, "  label=%s;\n", quoteDOT(g.Title))
		b.WriteString("  labelloc=t;\n")
		b.WriteString("  fontsize=20;\n")
	}

	for _, n := range g.Nodes {
		fmt.Fprintf(&b, "  %s [label=%s, shape=%s, style=filled, fillcolor=%s];\n",
			n.DOTName(), quoteDOT(n.Label), n.Kind.Shape(), quoteDOT(styles.ColorFor(n.Kind)))
	}

	for _, e := range g.Edges {
		if e.Label != "" {
			fmt.Fprintf(&b, "  n%d -> n%d [label=%s];\n", e.From, e.To, quoteDOT(e.Label))
		} else {
			fmt.Fprintf(&b, "  n%d -> n%d;\n", e.From, e.To)
		}
	}

	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// DOT renders the graph to a DOT string
func DOT(g *Graph, styles StyleMap) string {
	var b strings.Builder
	// strings.Builder never returns a write error
	_ = WriteDOT(&b, g, styles)
	return b.String()
}

// quoteDOT wraps s in a double-quoted DOT string, escaping quotes,
// backslashes and newlines.
func quoteDOT(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
