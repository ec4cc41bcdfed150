package version

import (
	"log/slog"
	"regexp"

	semver "github.com/Masterminds/semver/v3"
)

// semVerCore matches a major.minor.patch core anywhere in a label,
// together with any prerelease identifiers and build metadata that
// immediately follow it.
var semVerCore = regexp.MustCompile(`\d+\.\d+\.\d+(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?`)

// Version pairs the raw tag or release name with the semantic version
// coerced from it. Values are built once at ingestion and never mutated;
// Bump returns a fresh Version instead.
type Version struct {
	Raw       string
	Sem       *semver.Version
	coercible bool
}

// Zero returns the baseline 0.0.0 version used when a repository has no
// matching versions yet.
func Zero() Version {
	return Version{Raw: "0.0.0", Sem: semver.New(0, 0, 0, "", "")}
}

// Coerce turns an arbitrary label into a Version. The first
// major.minor.patch substring wins, whatever precedes it ("v", "release-",
// image names) is ignored. Labels without a numeric core coerce to 0.0.0
// so a single odd tag never breaks a run.
func Coerce(raw string, logger *slog.Logger) Version {
	m := semVerCore.FindString(raw)
	if m == "" {
		if logger != nil {
			logger.Debug("No semantic version in label", slog.String("raw", raw))
		}
		return Version{Raw: raw, Sem: semver.New(0, 0, 0, "", "")}
	}

	sem, err := semver.NewVersion(m)
	if err != nil {
		if logger != nil {
			logger.Debug("Label did not parse as semver", slog.String("raw", raw), slog.String("match", m))
		}
		return Version{Raw: raw, Sem: semver.New(0, 0, 0, "", "")}
	}

	if logger != nil {
		logger.Debug("Coerced label", slog.String("raw", raw), slog.String("semver", sem.String()))
	}
	return Version{Raw: raw, Sem: sem, coercible: true}
}

// Coercible reports whether the raw label carried an extractable version.
func (v Version) Coercible() bool {
	return v.coercible
}

// Stable reports whether the version has neither prerelease identifiers
// nor build metadata.
func (v Version) Stable() bool {
	return v.Sem.Prerelease() == "" && v.Sem.Metadata() == ""
}

// Compare follows semantic version precedence: build metadata is ignored
// and prerelease identifiers rank below the bare version.
func (v Version) Compare(other Version) int {
	return v.Sem.Compare(other.Sem)
}

// String returns the canonical major.minor.patch[-prerelease][+build]
// form, not the raw label.
func (v Version) String() string {
	return v.Sem.String()
}
