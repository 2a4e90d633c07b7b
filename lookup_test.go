package camcal

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/denismitr/camcal/options"
)

func tuningsOf(presets []Preset) []int {
	var out []int
	for _, p := range presets {
		out = append(out, p.Tuning)
	}
	return out
}

func Test_PresetIndex_Matching(t *testing.T) {
	idx, err := NewPresetIndex([]byte(validDocument))
	require.NoError(t, err)

	t.Run("maker is matched as a substring", func(t *testing.T) {
		presets, err := idx.Matching("Canon Inc.", "EOS 5D", nil)
		require.NoError(t, err)
		require.Len(t, presets, 4)

		assert.Equal(t, []int{-1, 0, 0, 1}, tuningsOf(presets))
		assert.Equal(t, "Daylight", presets[1].Name)
		assert.Equal(t, "5000K", presets[2].Name)
		assert.Equal(t, "Canon Inc.", presets[0].Maker)
		assert.Equal(t, [4]float64{2.0, 1, 1.6, 0}, presets[0].Channels)
	})

	t.Run("descending order", func(t *testing.T) {
		presets, err := idx.Matching("Canon", "EOS 5D", options.Lookup().SetOrder(options.Descend))
		require.NoError(t, err)
		assert.Equal(t, []int{1, 0, 0, -1}, tuningsOf(presets))
	})

	t.Run("tuning range", func(t *testing.T) {
		presets, err := idx.Matching("Canon", "EOS 5D", options.Lookup().TuningRange(0, 1))
		require.NoError(t, err)
		assert.Equal(t, []int{0, 0, 1}, tuningsOf(presets))
	})

	t.Run("model must match exactly", func(t *testing.T) {
		_, err := idx.Matching("Canon", "EOS 5D Mark II", nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrPresetNotFound))
	})

	t.Run("unknown maker", func(t *testing.T) {
		_, err := idx.Matching("Nikon", "EOS 5D", nil)
		assert.True(t, errors.Is(err, ErrPresetNotFound))
	})

	t.Run("range excluding everything", func(t *testing.T) {
		_, err := idx.Matching("Canon", "EOS 5D", options.Lookup().TuningRange(5, 9))
		assert.True(t, errors.Is(err, ErrPresetNotFound))
	})

	t.Run("invalid document", func(t *testing.T) {
		_, err := NewPresetIndex([]byte(`{"wb_presets": [`))
		assert.True(t, errors.Is(err, ErrDocumentInvalid))
	})
}

func Test_Interpolate(t *testing.T) {
	p1 := Preset{Name: "Daylight", Tuning: 0, Channels: [4]float64{2, 1, 1, 0}}
	p2 := Preset{Name: "Daylight", Tuning: 2, Channels: [4]float64{4, 1, 2, 0}}

	t.Run("harmonic blend", func(t *testing.T) {
		p, err := Interpolate(p1, p2, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, p.Tuning)
		assert.InDelta(t, 8.0/3.0, p.Channels[0], 1e-12)
		assert.InDelta(t, 1.0, p.Channels[1], 1e-12)
		assert.InDelta(t, 4.0/3.0, p.Channels[2], 1e-12)
		assert.Equal(t, 0.0, p.Channels[3])
	})

	t.Run("weight is clamped", func(t *testing.T) {
		above, err := Interpolate(p1, p2, 5)
		require.NoError(t, err)
		assert.InDelta(t, 4.0, above.Channels[0], 1e-12)
		assert.InDelta(t, 2.0, above.Channels[2], 1e-12)

		below, err := Interpolate(p1, p2, -3)
		require.NoError(t, err)
		assert.InDelta(t, 2.0, below.Channels[0], 1e-12)
		assert.InDelta(t, 1.0, below.Channels[2], 1e-12)
	})

	t.Run("equal tunings", func(t *testing.T) {
		_, err := Interpolate(p1, p1, 1)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInterpolationRange))
	})
}

func Test_InterpolateNamed(t *testing.T) {
	presets := []Preset{
		{Name: "Shade", Tuning: -2, Channels: [4]float64{2, 1, 1, 0}},
		{Name: "Shade", Tuning: 2, Channels: [4]float64{4, 1, 2, 0}},
		{Name: "Flash", Tuning: 0, Channels: [4]float64{3, 1, 3, 0}},
	}

	t.Run("exact tuning", func(t *testing.T) {
		p, err := InterpolateNamed(presets, "Flash", 0)
		require.NoError(t, err)
		assert.Equal(t, presets[2], p)
	})

	t.Run("between two tunings", func(t *testing.T) {
		p, err := InterpolateNamed(presets, "Shade", 0)
		require.NoError(t, err)
		assert.Equal(t, 0, p.Tuning)
		assert.InDelta(t, 8.0/3.0, p.Channels[0], 1e-12)
	})

	t.Run("outside the known tunings", func(t *testing.T) {
		p, err := InterpolateNamed(presets, "Shade", 7)
		require.NoError(t, err)
		assert.Equal(t, presets[1], p)

		p, err = InterpolateNamed(presets, "Flash", -4)
		require.NoError(t, err)
		assert.Equal(t, presets[2], p)
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := InterpolateNamed(presets, "Tungsten", 0)
		assert.True(t, errors.Is(err, ErrPresetNotFound))
	})
}
