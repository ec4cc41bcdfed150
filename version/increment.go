package version

import "strings"

// Increment is the granularity of a version bump.
type Increment int

const (
	Patch Increment = iota
	Minor
	Major
)

func (i Increment) String() string {
	switch i {
	case Major:
		return "major"
	case Minor:
		return "minor"
	default:
		return "patch"
	}
}

// ResolveIncrement scans free text, typically a commit message, for bump
// markers. Markers are literal and case-sensitive, and the largest bump
// wins when several are present. No marker means a patch bump.
func ResolveIncrement(text string) Increment {
	switch {
	case strings.Contains(text, "(MAJOR)"):
		return Major
	case strings.Contains(text, "(MINOR)"):
		return Minor
	case strings.Contains(text, "(PATCH)"):
		return Patch
	default:
		return Patch
	}
}
