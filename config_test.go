package camcal

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/denismitr/camcal/options"
)

func Test_LoadConfig(t *testing.T) {
	t.Run("empty path yields defaults", func(t *testing.T) {
		cfg, err := LoadConfig("")
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
		assert.Equal(t, "src/common/wb_presets.c", cfg.PresetsSource)
		assert.Equal(t, options.DefaultDivisor, cfg.Check.Divisor)
		assert.False(t, cfg.Convert.Upcase)
	})

	t.Run("yaml overrides", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "camcal.yaml", `
presets_source: testdata/wb_presets.c
profiles_dir: /tmp/dcp
convert:
  upcase: true
check:
  divisor: 10000
  expected_illuminant: 21
  min_differing_positions: 3
  profile_suffix: .dcp.xml
  ignored_duplicates:
    - Nikon D70
`)

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "testdata/wb_presets.c", cfg.PresetsSource)
		assert.Equal(t, "src/external/adobe_coeff.c", cfg.CoeffsSource)
		assert.Equal(t, "/tmp/dcp", cfg.ProfilesDir)
		assert.True(t, cfg.Convert.Upcase)
		assert.Equal(t, 3, cfg.Check.MinDifferingPositions)
		assert.Equal(t, []string{"Nikon D70"}, cfg.Check.IgnoredDuplicates)
	})

	t.Run("negative divisor", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "camcal.yaml", "check:\n  divisor: -1\n")

		_, err := LoadConfig(path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrConfigInvalid))
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "camcal.yaml", "check: [\n")

		_, err := LoadConfig(path)
		assert.True(t, errors.Is(err, ErrConfigInvalid))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig("/does/not/exist.yaml")
		assert.True(t, errors.Is(err, ErrConfigInvalid))
	})
}
