package camcal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_CrossValidate(t *testing.T) {
	base := Matrix{0.6347, -0.0479, -0.0972, -0.8297, 1.5954, 0.248, -0.1968, 0.2131, 0.7649}

	shifted := make(Matrix, len(base))
	for i, v := range base {
		shifted[i] = v + 0.01
	}

	partly := append(Matrix(nil), base...)
	partly[0], partly[4] = 0.7, 1.6

	t.Run("identical matrices are not reported", func(t *testing.T) {
		table, profiles := NewMatrixTable(), NewMatrixTable()
		table.Set("Canon EOS 5D", base)
		profiles.Set("Canon EOS 5D", append(Matrix(nil), base...))

		assert.Empty(t, CrossValidate(table, profiles, 9))
	})

	t.Run("matrices differing everywhere are reported", func(t *testing.T) {
		table, profiles := NewMatrixTable(), NewMatrixTable()
		table.Set("Canon EOS 5D", base)
		profiles.Set("Canon EOS 5D", shifted)

		mm := CrossValidate(table, profiles, 9)
		require.Len(t, mm, 1)
		assert.Equal(t, "Canon EOS 5D", mm[0].Camera)
		assert.Equal(t, shifted, mm[0].Profile)
		assert.Equal(t, base, mm[0].Table)
		assert.Equal(t, 9, mm[0].Differing)
		assert.InDelta(t, 0.09, mm[0].Diff, 1e-9)
	})

	t.Run("matrices differing in few positions are noise", func(t *testing.T) {
		table, profiles := NewMatrixTable(), NewMatrixTable()
		table.Set("Canon EOS 5D", base)
		profiles.Set("Canon EOS 5D", partly)

		assert.Empty(t, CrossValidate(table, profiles, 9))
		assert.Len(t, CrossValidate(table, profiles, 2), 1)
	})

	t.Run("cameras missing from the table are skipped", func(t *testing.T) {
		table, profiles := NewMatrixTable(), NewMatrixTable()
		table.Set("Canon EOS 5D", base)
		profiles.Set("Canon EOS 6D", shifted)

		assert.Empty(t, CrossValidate(table, profiles, 9))
	})

	t.Run("a shorter profile counts missing positions as zero", func(t *testing.T) {
		diff, differing := compareMatrices(Matrix{1, 2, 3}, Matrix{1, 2})
		assert.Equal(t, 3.0, diff)
		assert.Equal(t, 1, differing)
	})
}
