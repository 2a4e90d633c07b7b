package camcal

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"github.com/denismitr/camcal/options"
)

var (
	ErrPresetNotFound     = errors.New("no presets found")
	ErrInterpolationRange = errors.New("presets must have different tunings")
)

// Preset is one tuning of a named preset for a concrete camera.
type Preset struct {
	Maker    string
	Model    string
	Name     string
	Tuning   int
	Channels [4]float64
}

// PresetIndex answers camera lookups against a preset JSON document.
type PresetIndex struct {
	root gjson.Result
}

func NewPresetIndex(b []byte) (*PresetIndex, error) {
	if !gjson.ValidBytes(b) {
		return nil, errors.Wrap(ErrDocumentInvalid, "not a valid JSON document")
	}

	return &PresetIndex{root: gjson.ParseBytes(b)}, nil
}

// Matching returns the presets of the first maker whose name is contained in
// cameraMaker and whose model equals cameraModel.
func (pi *PresetIndex) Matching(cameraMaker, cameraModel string, lo *options.LookupOptions) ([]Preset, error) {
	if lo == nil {
		lo = options.Lookup()
	}

	for _, mk := range pi.root.Get("wb_presets").Array() {
		maker := mk.Get("maker").String()
		if maker == "" || !strings.Contains(cameraMaker, maker) {
			continue
		}

		for _, md := range mk.Get("models").Array() {
			if md.Get("model").String() != cameraModel {
				continue
			}

			result := collectPresets(cameraMaker, cameraModel, md, lo)
			if len(result) == 0 {
				break
			}

			return result, nil
		}
	}

	return nil, errors.Wrapf(ErrPresetNotFound, "maker %q, model %q", cameraMaker, cameraModel)
}

func collectPresets(maker, model string, md gjson.Result, lo *options.LookupOptions) []Preset {
	var result []Preset

	for _, ps := range md.Get("presets").Array() {
		name := ps.Get("name").String()
		if t := ps.Get("temperature"); t.Exists() {
			name = fmt.Sprintf("%dK", t.Int())
		}

		for _, tn := range ps.Get("tunings").Array() {
			tuning := int(tn.Get("tuning").Int())
			if !lo.Includes(tuning) {
				continue
			}

			p := Preset{Maker: maker, Model: model, Name: name, Tuning: tuning}
			for c, v := range tn.Get("coeffients").Array() {
				if c < len(p.Channels) {
					p.Channels[c] = v.Float()
				}
			}

			result = append(result, p)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		if lo.O == options.Descend {
			return result[i].Tuning > result[j].Tuning
		}
		return result[i].Tuning < result[j].Tuning
	})

	return result
}

// Interpolate blends the channels of p1 and p2 for the given tuning.
// The weight is clamped to [0, 1]; the fourth channel is left at zero.
func Interpolate(p1, p2 Preset, tuning int) (Preset, error) {
	if p1.Tuning == p2.Tuning {
		return Preset{}, errors.Wrapf(ErrInterpolationRange, "both presets have tuning %d", p1.Tuning)
	}

	t := float64(tuning-p1.Tuning) / float64(p2.Tuning-p1.Tuning)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	out := Preset{Maker: p1.Maker, Model: p1.Model, Name: p1.Name, Tuning: tuning}
	for k := 0; k < 3; k++ {
		out.Channels[k] = 1.0 / ((1.0-t)/p1.Channels[k] + t/p2.Channels[k])
	}

	return out, nil
}

// InterpolateNamed interpolates within the tunings of the preset called name.
// The two nearest tunings around tuning are used; an exact match is returned as is.
func InterpolateNamed(presets []Preset, name string, tuning int) (Preset, error) {
	var lower, upper *Preset
	for i := range presets {
		p := &presets[i]
		if p.Name != name {
			continue
		}

		if p.Tuning == tuning {
			return *p, nil
		}

		if p.Tuning < tuning && (lower == nil || p.Tuning > lower.Tuning) {
			lower = p
		}

		if p.Tuning > tuning && (upper == nil || p.Tuning < upper.Tuning) {
			upper = p
		}
	}

	switch {
	case lower != nil && upper != nil:
		return Interpolate(*lower, *upper, tuning)
	case lower != nil:
		return *lower, nil
	case upper != nil:
		return *upper, nil
	}

	return Preset{}, errors.Wrapf(ErrPresetNotFound, "preset %q", name)
}
