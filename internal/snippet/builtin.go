package snippet

import "embed"

//go:embed templates/manifest.yaml templates/*.jsx
var builtinFS embed.FS
