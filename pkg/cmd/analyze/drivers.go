package analyze

import "slices"

// resolveDrivers picks the two drivers to compare from the sorted available codes.
// Defaults are the first and the second code, the second falls back to the first
// if only one driver exists. Requested codes not in available are replaced by
// their default.
func resolveDrivers(available []string, driver1, driver2 string) (a, b string) {
	if len(available) == 0 {
		return driver1, driver2
	}
	defaultA := available[0]
	defaultB := defaultA
	if len(available) > 1 {
		defaultB = available[1]
	}
	pick := func(requested, fallback string) string {
		if requested != "" && slices.Contains(available, requested) {
			return requested
		}
		return fallback
	}
	return pick(driver1, defaultA), pick(driver2, defaultB)
}
