package camcal

import (
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/denismitr/camcal/options"
)

// Checker cross-checks a colour matrix table against a directory of DCP profiles.
type Checker struct {
	opts   *options.CheckOptions
	report *Report
}

func NewChecker(opts *options.CheckOptions) (*Checker, error) {
	opts, err := opts.Clone()
	if err != nil {
		return nil, err
	}

	return &Checker{opts: opts, report: &Report{}}, nil
}

// Run reads the table, scans the profiles and fills the report.
func (c *Checker) Run(tablePath, profilesDir string) (*Report, error) {
	f, err := os.Open(tablePath)
	if err != nil {
		return nil, errors.Wrapf(ErrSourceFileReadFailed, "could not open %s: %v", tablePath, err)
	}
	defer f.Close()

	table, err := c.LoadTable(f)
	if err != nil {
		return nil, err
	}

	profiles, err := c.ScanProfiles(profilesDir)
	if err != nil {
		return nil, err
	}

	c.report.Mismatches = CrossValidate(table, profiles, c.opts.MinDifferingPositions)

	return c.report, nil
}

// LoadTable parses the matrix table and reports cameras sharing a matrix.
func (c *Checker) LoadTable(r io.Reader) (*MatrixTable, error) {
	p := &matrixParser{divisor: c.opts.Divisor}
	table := NewMatrixTable()

	err := scanLines(r, func(lineNo int, line string) error {
		camera, ok := p.camera(line)
		if !ok {
			return nil
		}

		// a repeated row is reported and skipped before its matrix is looked at
		if table.Has(camera) && !c.opts.IsIgnored(camera) {
			c.report.DuplicateEntries = append(c.report.DuplicateEntries, DuplicateEntry{Line: lineNo, Camera: camera})
			return nil
		}

		m, err := p.matrix(lineNo, camera, line)
		if err != nil {
			return err
		}

		table.Set(camera, m)
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.report.TableCameras = table.Len()
	c.report.TableDuplicates = FindDuplicates(table, c.opts.IsIgnored)

	return table, nil
}

// ScanProfiles reads every profile in dir and reports cameras sharing a matrix.
func (c *Checker) ScanProfiles(dir string) (*MatrixTable, error) {
	s := &profileScanner{
		suffix:             c.opts.ProfileSuffix,
		expectedIlluminant: c.opts.ExpectedIlluminant,
		report:             c.report,
	}

	profiles, err := s.scanDir(dir)
	if err != nil {
		return nil, err
	}

	c.report.ProfileCameras = profiles.Len()
	c.report.ProfileDuplicates = FindDuplicates(profiles, c.opts.IsIgnored)

	return profiles, nil
}

// CheckCoefficients runs a one-off check with the given options.
func CheckCoefficients(tablePath, profilesDir string, opts *options.CheckOptions) (*Report, error) {
	c, err := NewChecker(opts)
	if err != nil {
		return nil, err
	}

	return c.Run(tablePath, profilesDir)
}
