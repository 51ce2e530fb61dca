package config

// DefaultConfigTOML is the annotated configuration written by
// "serpent init". Every setting is commented out and set to its default,
// so the file documents itself.
const DefaultConfigTOML = `# serpent configuration file
#
# All settings are optional. Uncomment and edit the ones you want to
# change. The same settings can live in pyproject.toml under
# [tool.serpent] instead.

[flowchart]
# Chart title; leave empty to use each source file's name
# title = ""

# Layout orientation: "TB" (top to bottom) or "LR" (left to right)
# direction = "TB"

# Built-in color palette: classic, white, dark, blueberry
# theme = "classic"

# Per-category color overrides, applied on top of the theme.
# Categories: box, diamond, oval, break, continue, error
[flowchart.styles]
# diamond = "lightblue"
# break = "mistyrose"

[output]
# Output format: dot, json, yaml, html
# format = "dot"

# Rasterize through Graphviz: svg or png (requires the dot executable)
# render = ""

# File to write output to; empty means stdout
# path = ""

[analysis]
# File patterns to include (globstar patterns supported)
# include_patterns = ["*.py"]

# File patterns to exclude
# exclude_patterns = []

# Walk directories recursively
# recursive = true
`
