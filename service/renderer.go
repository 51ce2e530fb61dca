package service

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/serpent-tools/serpent/domain"
)

// GraphvizRenderer implements the Renderer interface by shelling out to
// the dot executable
type GraphvizRenderer struct {
	dotPath string
}

// NewGraphvizRenderer creates a renderer, locating dot on PATH
func NewGraphvizRenderer() *GraphvizRenderer {
	path, err := exec.LookPath("dot")
	if err != nil {
		return &GraphvizRenderer{}
	}
	return &GraphvizRenderer{dotPath: path}
}

// Available reports whether a Graphviz installation was found
func (r *GraphvizRenderer) Available() bool {
	return r.dotPath != ""
}

// Render converts DOT source to the requested image format
func (r *GraphvizRenderer) Render(ctx context.Context, dot string, format domain.RenderFormat) ([]byte, error) {
	if !r.Available() {
		return nil, domain.NewRenderError("graphviz 'dot' executable not found on PATH", nil)
	}

	switch format {
	case domain.RenderSVG, domain.RenderPNG:
	default:
		return nil, domain.NewUnsupportedFormatError(string(format))
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, r.dotPath, "-T"+string(format))
	cmd.Stdin = strings.NewReader(dot)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = "dot failed"
		}
		return nil, domain.NewRenderError(msg, err)
	}

	return stdout.Bytes(), nil
}
