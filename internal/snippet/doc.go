// Package snippet provides the registry of built-in Expo UI screen templates.
//
// Payloads live under templates/ and are embedded into the binary together
// with manifest.yaml, which fixes the display order and a one-line
// description per template:
//
//	reg := snippet.Default()
//	tmpl, err := reg.Lookup("SETTINGS") // case-insensitive
//	name := snippet.FileName(tmpl.Name) // "ExpoUISettingsScreen.jsx"
//
// Payloads are opaque text. The registry never parses or rewrites them.
package snippet
