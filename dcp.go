package camcal

import (
	"encoding/xml"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var ErrProfileDirUnreadable = errors.New("profile directory unreadable")

// ProfileRecord is the calibration extracted from one dcpData element.
type ProfileRecord struct {
	File        string
	Camera      string
	Illuminant2 int
	Matrix      Matrix
}

type dcpData struct {
	UniqueCameraModelRestriction string     `xml:"UniqueCameraModelRestriction"`
	CalibrationIlluminant2       string     `xml:"CalibrationIlluminant2"`
	ColorMatrix2                 *dcpMatrix `xml:"ColorMatrix2"`
}

type dcpMatrix struct {
	Rows     int          `xml:"Rows,attr"`
	Cols     int          `xml:"Cols,attr"`
	Elements []dcpElement `xml:"Element"`
}

type dcpElement struct {
	Row   int    `xml:"Row,attr"`
	Col   int    `xml:"Col,attr"`
	Value string `xml:",chardata"`
}

type profileScanner struct {
	suffix             string
	expectedIlluminant int
	report             *Report
}

// scanDir parses every profile in dir, sorted by file name.
func (s *profileScanner) scanDir(dir string) (*MatrixTable, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(ErrProfileDirUnreadable, "%s: %v", dir, err)
	}

	mt := NewMatrixTable()
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), s.suffix) {
			continue
		}

		path := filepath.Join(dir, e.Name())
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrapf(ErrSourceFileReadFailed, "could not open %s: %v", path, err)
		}

		records, err := s.scan(e.Name(), f)
		f.Close()
		if err != nil {
			s.report.SkippedProfiles = append(s.report.SkippedProfiles, err.Error())
		}

		for _, r := range records {
			mt.Set(r.Camera, r.Matrix)
		}
		s.report.ProfilesScanned++
	}

	return mt, nil
}

// scan returns the records of one file. An unexpected illuminant stops the file
// but keeps the records read before it.
func (s *profileScanner) scan(name string, r io.Reader) ([]ProfileRecord, error) {
	var records []ProfileRecord

	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, errors.Errorf("profile %s is not valid XML: %v", name, err)
		}

		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "dcpData" {
			continue
		}

		var d dcpData
		if err := dec.DecodeElement(&d, &se); err != nil {
			return nil, errors.Errorf("profile %s is not valid XML: %v", name, err)
		}

		camera := d.UniqueCameraModelRestriction
		raw := strings.TrimSpace(d.CalibrationIlluminant2)
		illuminant, err := strconv.Atoi(raw)
		if err != nil || illuminant != s.expectedIlluminant {
			s.report.IlluminantWarnings = append(s.report.IlluminantWarnings, IlluminantWarning{
				File:       name,
				Camera:     camera,
				Illuminant: illuminant,
				Raw:        raw,
				Expected:   s.expectedIlluminant,
			})
			return records, nil
		}

		m, err := d.ColorMatrix2.assemble()
		if err != nil {
			return nil, errors.Errorf("profile %s, camera %q: %v", name, camera, err)
		}

		records = append(records, ProfileRecord{File: name, Camera: camera, Illuminant2: illuminant, Matrix: m})
	}
}

// assemble places every element at cols*row+col, whatever order they come in.
func (dm *dcpMatrix) assemble() (Matrix, error) {
	if dm == nil {
		return nil, errors.New("ColorMatrix2 is missing")
	}

	if dm.Rows <= 0 || dm.Cols <= 0 {
		return nil, errors.Errorf("ColorMatrix2 has invalid size %dx%d", dm.Rows, dm.Cols)
	}

	m := make(Matrix, dm.Rows*dm.Cols)
	for _, e := range dm.Elements {
		if e.Row < 0 || e.Row >= dm.Rows || e.Col < 0 || e.Col >= dm.Cols {
			return nil, errors.Errorf("element (%d, %d) is outside %dx%d", e.Row, e.Col, dm.Rows, dm.Cols)
		}

		v, err := strconv.ParseFloat(strings.TrimSpace(e.Value), 64)
		if err != nil {
			return nil, errors.Errorf("element (%d, %d) value %q is not a number", e.Row, e.Col, e.Value)
		}

		m[dm.Cols*e.Row+e.Col] = v
	}

	return m, nil
}
