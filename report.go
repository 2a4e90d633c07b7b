package camcal

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
)

// DuplicateEntry is a camera listed more than once in the matrix table.
type DuplicateEntry struct {
	Line   int
	Camera string
}

// IlluminantWarning is a profile whose CalibrationIlluminant2 is not the expected one.
// Raw is the element text as found, Illuminant is 0 when Raw is not an integer.
type IlluminantWarning struct {
	File       string
	Camera     string
	Illuminant int
	Raw        string
	Expected   int
}

// Report holds everything a check run found, in the order it was found.
type Report struct {
	TableCameras       int
	ProfilesScanned    int
	ProfileCameras     int
	DuplicateEntries   []DuplicateEntry
	TableDuplicates    []DuplicateGroup
	IlluminantWarnings []IlluminantWarning
	SkippedProfiles    []string
	ProfileDuplicates  []DuplicateGroup
	Mismatches         []Mismatch
}

func (r *Report) HasFindings() bool {
	return len(r.DuplicateEntries) > 0 ||
		len(r.TableDuplicates) > 0 ||
		len(r.IlluminantWarnings) > 0 ||
		len(r.SkippedProfiles) > 0 ||
		len(r.ProfileDuplicates) > 0 ||
		len(r.Mismatches) > 0
}

// WriteTo renders the report as human readable diagnostics.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer

	for _, d := range r.DuplicateEntries {
		fmt.Fprintf(&buf, "Camera %s has multiple entries! (line #%d)\n", d.Camera, d.Line)
	}

	for _, g := range r.TableDuplicates {
		fmt.Fprintf(&buf, "Matrix %s is listed for several cameras: %s\n", g.Matrix, quoteAll(g.Cameras))
	}

	for _, iw := range r.IlluminantWarnings {
		fmt.Fprintf(
			&buf,
			"In Adobe DCP, camera %q has CalibrationIlluminant2 which is not %d: %s\n",
			iw.Camera, iw.Expected, iw.Raw)
	}

	for _, s := range r.SkippedProfiles {
		fmt.Fprintf(&buf, "Skipping %s\n", s)
	}

	for _, g := range r.ProfileDuplicates {
		fmt.Fprintf(&buf, "DCP Matrix %s is listed for several cameras: %s\n", g.Matrix, quoteAll(g.Cameras))
	}

	for _, m := range r.Mismatches {
		fmt.Fprintf(
			&buf,
			"DCP matrix for camera %s does not match adobe_coeff: DCP: %s; adobe_coeff: %s; diff: %s\n",
			m.Camera, m.Profile, m.Table, strconv.FormatFloat(m.Diff, 'g', -1, 64))
	}

	fmt.Fprintf(&buf, "Count of non-match matrixes: %d\n", len(r.Mismatches))

	return buf.WriteTo(w)
}

func quoteAll(ss []string) string {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, s := range ss {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(strconv.Quote(s))
	}
	buf.WriteByte(']')
	return buf.String()
}
