package readline

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var embeddedVersion string

// Version returns the library version in SemVer form, without a leading v.
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}
