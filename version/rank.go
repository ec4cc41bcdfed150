package version

import "sort"

// Rank returns a new slice sorted by semantic version precedence, highest
// first. Versions with equal precedence keep their input order.
func Rank(in []Version) []Version {
	out := make([]Version, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Compare(out[j]) > 0
	})
	return out
}

// Latest returns the highest-ranked version, or the zero baseline when
// there are no candidates.
func Latest(in []Version) Version {
	ranked := Rank(in)
	if len(ranked) == 0 {
		return Zero()
	}
	return ranked[0]
}
