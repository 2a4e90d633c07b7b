package camcal

// DuplicateGroup is a matrix shared by several cameras.
type DuplicateGroup struct {
	Matrix  Matrix
	Cameras []string
}

type matrixBucket struct {
	groups []*DuplicateGroup
}

// FindDuplicates groups cameras that share exactly the same matrix.
// Ignored cameras never appear in a group; only groups of two or more cameras are returned,
// in the order their matrix was first seen.
func FindDuplicates(mt *MatrixTable, ignored func(camera string) bool) []DuplicateGroup {
	buckets := make(map[uint64]*matrixBucket)
	var ordered []*DuplicateGroup

	for _, camera := range mt.order {
		if ignored != nil && ignored(camera) {
			continue
		}

		m := mt.matrices[camera]
		h := m.hash()

		b, ok := buckets[h]
		if !ok {
			b = &matrixBucket{}
			buckets[h] = b
		}

		var group *DuplicateGroup
		for _, g := range b.groups {
			if g.Matrix.Equal(m) {
				group = g
				break
			}
		}

		if group == nil {
			group = &DuplicateGroup{Matrix: m}
			b.groups = append(b.groups, group)
			ordered = append(ordered, group)
		}

		group.Cameras = append(group.Cameras, camera)
	}

	var result []DuplicateGroup
	for _, g := range ordered {
		if len(g.Cameras) > 1 {
			result = append(result, *g)
		}
	}

	return result
}
