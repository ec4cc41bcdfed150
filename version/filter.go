package version

import "strings"

// Filter returns the versions that are candidates for ranking: the label
// carried a real version, the label starts with the literal prefix, and
// prereleases and build-metadata versions are kept only when asked for.
// The prefix check runs on the raw label, so "v" in "v1.2.3" counts even
// though coercion ignores it. Input order is preserved.
func Filter(in []Version, prefix string, includePrereleases bool) []Version {
	out := make([]Version, 0, len(in))
	for _, v := range in {
		if !v.Coercible() {
			continue
		}
		if !includePrereleases && !v.Stable() {
			continue
		}
		if !strings.HasPrefix(v.Raw, prefix) {
			continue
		}
		out = append(out, v)
	}
	return out
}
