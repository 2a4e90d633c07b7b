package camcal

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrRecordInvalid    = errors.New("record invalid")
	ErrTuningOutOfRange = errors.New("|tuning| > 9")
	ErrUnexpectedG2     = errors.New("g2 != 0.0")
	ErrEmptyCameraName  = errors.New("camera maker and model are empty")
)

const (
	presetLinePrefix = "  {"
	presetFieldCount = 8
	maxTuning        = 9
)

// PresetRow is one data line of the preset table.
type PresetRow struct {
	Maker        string
	Model        string
	Preset       string
	Tuning       int
	Coefficients [4]float64
}

type presetParser struct {
	upcase bool
}

// parseLine returns false for lines that are not table rows.
func (p *presetParser) parseLine(lineNo int, line string) (PresetRow, bool, error) {
	if !strings.HasPrefix(line, presetLinePrefix) {
		return PresetRow{}, false, nil
	}

	parts := strings.Split(line, `"`)
	if len(parts) < 4 {
		return PresetRow{}, false, errors.Wrapf(
			ErrRecordInvalid,
			"line #%d - %s does not contain quoted maker and model",
			lineNo, line)
	}

	maker, model := parts[1], parts[3]
	if p.upcase {
		maker, model = strings.ToUpper(maker), strings.ToUpper(model)
	}

	if strings.TrimSpace(maker+model) == "" {
		return PresetRow{}, false, errors.Wrapf(ErrEmptyCameraName, "line #%d - %s", lineNo, line)
	}

	fields := splitPresetFields(line)
	if len(fields) < presetFieldCount {
		return PresetRow{}, false, errors.Wrapf(
			ErrRecordInvalid,
			"line #%d - %q has %d fields, expected %d",
			lineNo, fields, len(fields), presetFieldCount)
	}

	fields = fields[:presetFieldCount]
	fields[0], fields[1] = maker, model

	tuning, err := strconv.Atoi(fields[3])
	if err != nil {
		return PresetRow{}, false, errors.Wrapf(
			ErrRecordInvalid,
			"line #%d - tuning %s is not an integer",
			lineNo, fields[3])
	}

	if tuning > maxTuning || tuning < -maxTuning {
		return PresetRow{}, false, errors.Wrapf(ErrTuningOutOfRange, "line #%d - %q", lineNo, fields)
	}

	row := PresetRow{Maker: maker, Model: model, Preset: fields[2], Tuning: tuning}
	for i := range row.Coefficients {
		v, err := strconv.ParseFloat(fields[4+i], 64)
		if err != nil {
			return PresetRow{}, false, errors.Wrapf(
				ErrRecordInvalid,
				"line #%d - coefficient %s is not a number",
				lineNo, fields[4+i])
		}
		row.Coefficients[i] = v
	}

	if row.Coefficients[3] != 0 {
		return PresetRow{}, false, errors.Wrapf(ErrUnexpectedG2, "line #%d - %q", lineNo, fields)
	}
	row.Coefficients[3] = 0 // -0 in the source

	return row, true, nil
}

// splitPresetFields drops braces and quotes and splits the row on commas.
func splitPresetFields(line string) []string {
	stripped := strings.Map(func(r rune) rune {
		if r == '{' || r == '}' || r == '"' {
			return -1
		}
		return r
	}, line)

	stripped = strings.TrimSuffix(strings.TrimRight(stripped, "\r\n"), ",")

	fields := strings.Split(stripped, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	for len(fields) > 0 && fields[len(fields)-1] == "" {
		fields = fields[:len(fields)-1]
	}

	return fields
}
