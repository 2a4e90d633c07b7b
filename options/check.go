package options

import (
	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
)

const (
	DefaultDivisor               = 10000.0
	DefaultExpectedIlluminant    = 21
	DefaultMinDifferingPositions = 9
	DefaultProfileSuffix         = ".dcp.xml"
)

// DefaultIgnoredDuplicates have both DCP and table entries; the DCP one is used.
var DefaultIgnoredDuplicates = []string{"Sony NEX-3", "Sony NEX-5"}

type CheckOptions struct {
	Divisor               float64  `yaml:"divisor"`
	ExpectedIlluminant    int      `yaml:"expected_illuminant"`
	MinDifferingPositions int      `yaml:"min_differing_positions"`
	ProfileSuffix         string   `yaml:"profile_suffix"`
	IgnoredDuplicates     []string `yaml:"ignored_duplicates"`
}

func (co *CheckOptions) SetDivisor(d float64) *CheckOptions {
	co.Divisor = d
	return co
}

func (co *CheckOptions) ExpectIlluminant(id int) *CheckOptions {
	co.ExpectedIlluminant = id
	return co
}

func (co *CheckOptions) SetMinDifferingPositions(n int) *CheckOptions {
	co.MinDifferingPositions = n
	return co
}

func (co *CheckOptions) Ignore(cameras ...string) *CheckOptions {
	co.IgnoredDuplicates = append(co.IgnoredDuplicates, cameras...)
	return co
}

func (co *CheckOptions) IsIgnored(camera string) bool {
	for _, c := range co.IgnoredDuplicates {
		if c == camera {
			return true
		}
	}

	return false
}

// Clone returns a deep copy with zero values replaced by defaults.
func (co *CheckOptions) Clone() (*CheckOptions, error) {
	if co == nil {
		return Check(), nil
	}

	var cp CheckOptions
	if err := copier.Copy(&cp, co); err != nil {
		return nil, errors.Wrap(err, "could not copy check options")
	}

	// copier shares the slice
	if co.IgnoredDuplicates != nil {
		cp.IgnoredDuplicates = append(make([]string, 0, len(co.IgnoredDuplicates)), co.IgnoredDuplicates...)
	}

	if cp.Divisor == 0 {
		cp.Divisor = DefaultDivisor
	}

	if cp.ExpectedIlluminant == 0 {
		cp.ExpectedIlluminant = DefaultExpectedIlluminant
	}

	if cp.MinDifferingPositions == 0 {
		cp.MinDifferingPositions = DefaultMinDifferingPositions
	}

	if cp.ProfileSuffix == "" {
		cp.ProfileSuffix = DefaultProfileSuffix
	}

	if cp.IgnoredDuplicates == nil {
		cp.IgnoredDuplicates = append([]string(nil), DefaultIgnoredDuplicates...)
	}

	return &cp, nil
}

func Check() *CheckOptions {
	return &CheckOptions{
		Divisor:               DefaultDivisor,
		ExpectedIlluminant:    DefaultExpectedIlluminant,
		MinDifferingPositions: DefaultMinDifferingPositions,
		ProfileSuffix:         DefaultProfileSuffix,
		IgnoredDuplicates:     append([]string(nil), DefaultIgnoredDuplicates...),
	}
}
