// Package codeblock is a code-input block: a two-space indentation engine,
// a JSON block codec for host editors and a Bubble Tea textarea to edit it in
// a terminal.
package codeblock

import (
	_ "embed"
	"regexp"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Version returns the module version (SemVer, no leading `v`).
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// Tag returns Version in git tag form.
func Tag() string {
	return "v" + Version()
}

// IsSemver reports whether v matches SemVer 2.0.0.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}
