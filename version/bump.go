package version

import semver "github.com/Masterminds/semver/v3"

// Bump returns a new Version incremented by the given level. Lower
// components reset to zero and prerelease identifiers and build metadata
// never survive a bump. The result's Raw is the canonical string of the
// new version, not the original label.
func Bump(v Version, inc Increment) Version {
	var next *semver.Version
	switch inc {
	case Major:
		next = semver.New(v.Sem.Major()+1, 0, 0, "", "")
	case Minor:
		next = semver.New(v.Sem.Major(), v.Sem.Minor()+1, 0, "", "")
	default:
		next = semver.New(v.Sem.Major(), v.Sem.Minor(), v.Sem.Patch()+1, "", "")
	}

	return Version{Raw: next.String(), Sem: next, coercible: true}
}
