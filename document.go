package camcal

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/tidwall/pretty"
)

var ErrDocumentMarshalFailed = errors.New("preset document could not be marshalled")

type Coefficient struct {
	Tuning       int        `json:"tuning"`
	Coefficients [4]float64 `json:"coeffients"`
}

type PresetRecord struct {
	Name    string
	Tunings []Coefficient
}

// IsTemperature reports whether the preset name is a colour temperature like "5000K".
func (pr PresetRecord) IsTemperature() bool {
	name := strings.TrimSpace(pr.Name)
	return name != "" && strings.EqualFold(name[len(name)-1:], "k")
}

// Temperature is the leading integer of the preset name, 0 when there is none.
func (pr PresetRecord) Temperature() int {
	return leadingInt(strings.TrimSpace(pr.Name))
}

func (pr PresetRecord) MarshalJSON() ([]byte, error) {
	if pr.IsTemperature() {
		return encodeJSON(struct {
			Temperature int           `json:"temperature"`
			Tunings     []Coefficient `json:"tunings"`
		}{pr.Temperature(), pr.Tunings})
	}

	return encodeJSON(struct {
		Name    string        `json:"name"`
		Tunings []Coefficient `json:"tunings"`
	}{pr.Name, pr.Tunings})
}

type ModelRecord struct {
	Comment string         `json:"comment,omitempty"`
	Model   string         `json:"model"`
	Presets []PresetRecord `json:"presets"`
}

type MakerRecord struct {
	Maker  string        `json:"maker"`
	Models []ModelRecord `json:"models"`
}

type PresetDocument struct {
	Version   int           `json:"version"`
	WBPresets []MakerRecord `json:"wb_presets"`
}

// BuildDocument converts the accumulated tree into the ordered document.
func BuildDocument(t *PresetTree, version int) *PresetDocument {
	doc := &PresetDocument{Version: version, WBPresets: []MakerRecord{}}

	t.eachMaker(func(mk *makerNode) {
		maker := MakerRecord{Maker: mk.name}

		mk.eachModel(func(md *modelNode) {
			model := ModelRecord{Model: md.name}

			for _, ps := range md.presets {
				preset := PresetRecord{Name: ps.name}
				ps.eachTuning(func(tn *tuningNode) {
					preset.Tunings = append(preset.Tunings, Coefficient{Tuning: tn.tuning, Coefficients: tn.coeffs})
				})
				model.Presets = append(model.Presets, preset)
			}

			maker.Models = append(maker.Models, model)
		})

		doc.WBPresets = append(doc.WBPresets, maker)
	})

	return doc
}

// Pretty renders the document as indented JSON.
func (d *PresetDocument) Pretty() ([]byte, error) {
	b, err := encodeJSON(d)
	if err != nil {
		return nil, errors.Wrap(ErrDocumentMarshalFailed, err.Error())
	}

	return pretty.PrettyOptions(b, &pretty.Options{Width: 80, Indent: "  "}), nil
}

// encodeJSON is json.Marshal without HTML escaping, so names like "A&B" stay readable.
func encodeJSON(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func leadingInt(s string) int {
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}

	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}

	if end == digits {
		return 0
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}

	return n
}
