// Package theme stores default and themed attributes per element type and
// loads them from TOML, YAML or JSON files.
//
// A theme file has two top-level tables:
//
//	[defaults.div]
//	class = "box"
//
//	[themes.dark.div]
//	class = "bg-dark"
//
// Registry implements element.DefaultsProvider and element.ThemeProvider.
package theme
