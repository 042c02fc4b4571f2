package sim

// CrossingOccupied reports whether any vehicle overlaps the zebra crossing
// [zebraStart, zebraEnd]. It has no side effects.
func CrossingOccupied(vehicles []Vehicle, zebraStart, zebraEnd float64) bool {
	for _, v := range vehicles {
		if v.overlapsSpan(zebraStart, zebraEnd) {
			return true
		}
	}
	return false
}
