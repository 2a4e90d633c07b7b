package camcal

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/denismitr/camcal/options"
)

var ErrConfigInvalid = errors.New("config invalid")

const (
	defaultPresetsSource = "src/common/wb_presets.c"
	defaultCoeffsSource  = "src/external/adobe_coeff.c"
	defaultProfilesDir   = "../_CAMERA_SUPPORT/xml"
)

type Config struct {
	PresetsSource string                  `yaml:"presets_source"`
	PresetsOutput string                  `yaml:"presets_output"`
	CoeffsSource  string                  `yaml:"coeffs_source"`
	ProfilesDir   string                  `yaml:"profiles_dir"`
	Convert       *options.ConvertOptions `yaml:"convert"`
	Check         *options.CheckOptions   `yaml:"check"`
}

func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// LoadConfig reads a YAML config file. An empty path yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(ErrConfigInvalid, "could not read %s: %v", path, err)
		}

		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, errors.Wrapf(ErrConfigInvalid, "could not parse %s: %v", path, err)
		}
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if cfg.PresetsSource == "" {
		cfg.PresetsSource = defaultPresetsSource
	}

	if cfg.CoeffsSource == "" {
		cfg.CoeffsSource = defaultCoeffsSource
	}

	if cfg.ProfilesDir == "" {
		cfg.ProfilesDir = defaultProfilesDir
	}

	if cfg.Convert == nil {
		cfg.Convert = options.Convert()
	}

	if cfg.Check == nil {
		cfg.Check = options.Check()
	}
}

func (cfg *Config) validate() error {
	if cfg.Check.Divisor < 0 {
		return errors.Wrapf(ErrConfigInvalid, "divisor must be positive, got %v", cfg.Check.Divisor)
	}

	if cfg.Check.MinDifferingPositions < 0 {
		return errors.Wrapf(
			ErrConfigInvalid,
			"min_differing_positions must not be negative, got %d",
			cfg.Check.MinDifferingPositions)
	}

	return nil
}
