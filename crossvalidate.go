package camcal

import "math"

// Mismatch is a camera whose profile matrix disagrees with the table.
type Mismatch struct {
	Camera    string
	Profile   Matrix
	Table     Matrix
	Diff      float64
	Differing int
}

// CrossValidate compares every profile camera that also has a table entry.
// Matrices differing in fewer than minDiffering positions are treated as noise.
func CrossValidate(table, profiles *MatrixTable, minDiffering int) []Mismatch {
	var result []Mismatch

	for _, camera := range profiles.order {
		tm, ok := table.Get(camera)
		if !ok {
			continue
		}

		pm := profiles.matrices[camera]
		if pm.Equal(tm) {
			continue
		}

		diff, differing := compareMatrices(tm, pm)
		if differing < minDiffering {
			continue
		}

		result = append(result, Mismatch{
			Camera:    camera,
			Profile:   pm,
			Table:     tm,
			Diff:      diff,
			Differing: differing,
		})
	}

	return result
}

// compareMatrices returns the sum of absolute differences and the number of differing
// positions. Positions missing from the shorter matrix count as 0.
func compareMatrices(a, b Matrix) (float64, int) {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}

	var diff float64
	var differing int
	for i := 0; i < n; i++ {
		var x, y float64
		if i < len(a) {
			x = a[i]
		}
		if i < len(b) {
			y = b[i]
		}

		if x != y {
			differing++
			diff += math.Abs(x - y)
		}
	}

	return diff, differing
}
