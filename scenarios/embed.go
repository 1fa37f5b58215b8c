// Package scenarios bundles the default training scenarios. Each top-level
// directory is one scenario; see the templates package for the layout.
package scenarios

import "embed"

// FS holds the bundled scenario tree.
//
//go:embed all:onboarding all:supervision
var FS embed.FS
