package sliderpath

// calculateLength builds the cumulative arc-length table for the polyline
// and corrects it against the expected length declared by the beatmap,
// which is authoritative even when it disagrees with the geometry.
// The polyline may shrink during truncation, so both are returned.
func calculateLength(points []PathControlPoint, path []Pos2, expectedLen float32) ([]Pos2, []float32) {
	if len(path) == 0 {
		return path, nil
	}

	calculatedLen := float32(0)
	lengths := make([]float32, 1, len(path))
	for i := 0; i+1 < len(path); i++ {
		calculatedLen += path[i+1].Sub(path[i]).Len()
		lengths = append(lengths, calculatedLen)
	}

	if abs32(expectedLen-calculatedLen) <= float32Epsilon {
		return path, lengths
	}

	// In osu!stable, if the last two control points of a slider are equal,
	// extension is not performed. The table deliberately gains one entry
	// more than the polyline; queries index-clamp past the final vertex.
	if n := len(points); n >= 2 && points[n-2].Pos == points[n-1].Pos && expectedLen > calculatedLen {
		lengths = append(lengths, calculatedLen)
		return path, lengths
	}

	// The last length is always incorrect.
	lengths = lengths[:len(lengths)-1]
	endIdx := len(path) - 1

	if calculatedLen > expectedLen {
		// The path will be shortened, so trim any wholly-excess lengths
		// and their vertices first.
		for len(lengths) > 0 && lengths[len(lengths)-1] > expectedLen {
			lengths = lengths[:len(lengths)-1]
			path = path[:endIdx]
			endIdx--
		}
	}

	if endIdx == 0 {
		// The expected distance is negative or zero.
		return path, append(lengths, 0)
	}

	// Shorten or lengthen the final segment so the tail lands exactly at
	// the expected length.
	dir := path[endIdx].Sub(path[endIdx-1]).Normalize()
	path[endIdx] = path[endIdx-1].Add(dir.Mul(expectedLen - lengths[len(lengths)-1]))

	return path, append(lengths, expectedLen)
}
