package flowchart

import "sort"

// StyleMap maps style categories (box, diamond, oval, circle,
// parallelogram, break, continue, error) to Graphviz fill colors. The
// builder never mutates it; callers own the mapping.
type StyleMap map[string]string

// defaultStyles is the classic pastel palette
var defaultStyles = StyleMap{
	"box":           "lightyellow",
	"diamond":       "lightblue",
	"oval":          "lightgreen",
	"circle":        "thistle",
	"parallelogram": "lightcyan",
	"break":         "mistyrose",
	"continue":      "lightgray",
	"error":         "lightpink",
}

// themes are the built-in palettes, keyed by theme name
var themes = map[string]StyleMap{
	"classic": defaultStyles,
	"white": {
		"box":           "white",
		"diamond":       "white",
		"oval":          "white",
		"circle":        "white",
		"parallelogram": "white",
		"break":         "white",
		"continue":      "white",
		"error":         "white",
	},
	"dark": {
		"box":           "#444444",
		"diamond":       "#555555",
		"oval":          "#222222",
		"circle":        "#666666",
		"parallelogram": "#333333",
		"break":         "#883333",
		"continue":      "#333388",
		"error":         "#881111",
	},
	"blueberry": {
		"box":           "#e3f2fd",
		"diamond":       "#bbdefb",
		"oval":          "#90caf9",
		"circle":        "#64b5f6",
		"parallelogram": "#42a5f5",
		"break":         "#ffcdd2",
		"continue":      "#e1bee7",
		"error":         "#ef9a9a",
	},
}

// DefaultStyles returns a copy of the classic palette
func DefaultStyles() StyleMap {
	return defaultStyles.Clone()
}

// Theme returns a copy of the named built-in palette. Unknown names fall
// back to the classic palette.
func Theme(name string) StyleMap {
	if m, ok := themes[name]; ok {
		return m.Clone()
	}
	return DefaultStyles()
}

// ThemeNames returns the built-in theme names, sorted
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns an independent copy of the style map
func (s StyleMap) Clone() StyleMap {
	out := make(StyleMap, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Merge returns a copy of s with the overrides applied on top
func (s StyleMap) Merge(overrides map[string]string) StyleMap {
	out := s.Clone()
	for k, v := range overrides {
		out[k] = v
	}
	return out
}

// ColorFor resolves the fill color for a node kind. Categories missing
// from the map fall back to the classic defaults, then to white.
func (s StyleMap) ColorFor(kind NodeKind) string {
	category := kind.Category()
	if color, ok := s[category]; ok && color != "" {
		return color
	}
	if color, ok := defaultStyles[category]; ok {
		return color
	}
	return "white"
}
