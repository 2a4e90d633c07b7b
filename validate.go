package camcal

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

var ErrDocumentInvalid = errors.New("preset document invalid")

// ValidateDocument checks a preset JSON document for structural and data-entry errors.
func ValidateDocument(b []byte) error {
	if !gjson.ValidBytes(b) {
		return errors.Wrap(ErrDocumentInvalid, "not a valid JSON document")
	}

	root := gjson.ParseBytes(b)
	if !root.IsObject() {
		return errors.Wrap(ErrDocumentInvalid, "root is not an object")
	}

	version := root.Get("version")
	if !isJSONInt(version) {
		return errors.Wrap(ErrDocumentInvalid, "version is missing or not an integer")
	}

	if version.Int() != 0 {
		return errors.Wrapf(ErrDocumentInvalid, "version %d is unknown", version.Int())
	}

	makers, err := nonEmptyArray(root, "wb_presets", "document")
	if err != nil {
		return err
	}

	known := make(map[string]bool)
	for _, mk := range makers {
		if err := validateMaker(mk, known); err != nil {
			return err
		}
	}

	return nil
}

func validateMaker(mk gjson.Result, known map[string]bool) error {
	if !mk.IsObject() {
		return errors.Wrap(ErrDocumentInvalid, "maker entry is not an object")
	}

	name := mk.Get("maker")
	if name.Type != gjson.String {
		return errors.Wrap(ErrDocumentInvalid, "maker entry has no maker name")
	}

	pos := fmt.Sprintf("Maker %q", name.String())
	if known[name.String()] {
		return errors.Wrapf(ErrDocumentInvalid, "%s is duplicated", pos)
	}
	known[name.String()] = true

	models, err := nonEmptyArray(mk, "models", pos)
	if err != nil {
		return err
	}

	knownModels := make(map[string]bool)
	for _, md := range models {
		if err := validateModel(pos, md, knownModels); err != nil {
			return err
		}
	}

	return nil
}

func validateModel(pos string, md gjson.Result, known map[string]bool) error {
	if !md.IsObject() {
		return errors.Wrapf(ErrDocumentInvalid, "%s has a model entry which is not an object", pos)
	}

	name := md.Get("model")
	if name.Type != gjson.String {
		return errors.Wrapf(ErrDocumentInvalid, "%s has a model entry without model name", pos)
	}

	pos += fmt.Sprintf(", model %q", name.String())
	if known[name.String()] {
		return errors.Wrapf(ErrDocumentInvalid, "%s is duplicated", pos)
	}
	known[name.String()] = true

	presets, err := nonEmptyArray(md, "presets", pos)
	if err != nil {
		return err
	}

	knownPresets := make(map[string]bool)
	for _, ps := range presets {
		if err := validatePreset(pos, ps, knownPresets); err != nil {
			return err
		}
	}

	return nil
}

func validatePreset(pos string, ps gjson.Result, known map[string]bool) error {
	if !ps.IsObject() {
		return errors.Wrapf(ErrDocumentInvalid, "%s has a preset which is not an object", pos)
	}

	name, temperature := ps.Get("name"), ps.Get("temperature")
	hasName := name.Type == gjson.String
	hasTemperature := isJSONInt(temperature)
	if hasName == hasTemperature {
		return errors.Wrapf(ErrDocumentInvalid, "%s has a preset without exactly one of name or temperature", pos)
	}

	presetName := name.String()
	if hasTemperature {
		presetName = fmt.Sprintf("%dK", temperature.Int())
	}

	pos += fmt.Sprintf(", preset %q", presetName)
	if known[presetName] {
		return errors.Wrapf(ErrDocumentInvalid, "%s is duplicated", pos)
	}
	known[presetName] = true

	tunings, err := nonEmptyArray(ps, "tunings", pos)
	if err != nil {
		return err
	}

	var seen []int64
	for _, tn := range tunings {
		if seen, err = validateTuning(pos, tn, seen); err != nil {
			return err
		}
	}

	if len(seen) == 1 && seen[0] != 0 {
		return errors.Wrapf(ErrDocumentInvalid, "%s has only one tuning, which is non-zero", pos)
	}

	return nil
}

func validateTuning(pos string, tn gjson.Result, seen []int64) ([]int64, error) {
	if !tn.IsObject() {
		return nil, errors.Wrapf(ErrDocumentInvalid, "%s has a tuning which is not an object", pos)
	}

	tuning := tn.Get("tuning")
	if !isJSONInt(tuning) {
		return nil, errors.Wrapf(ErrDocumentInvalid, "%s has a tuning without integer value", pos)
	}

	cur := tuning.Int()
	pos += fmt.Sprintf(", tuning \"%d\"", cur)

	coeffs := tn.Get("coeffients")
	if !coeffs.IsArray() || len(coeffs.Array()) != 4 {
		return nil, errors.Wrapf(ErrDocumentInvalid, "%s must have 4 coeffients", pos)
	}

	for i, c := range coeffs.Array() {
		if c.Type != gjson.Number {
			return nil, errors.Wrapf(ErrDocumentInvalid, "%s coefficient %d is not a number", pos, i)
		}

		if i < 3 && c.Float() <= 0 {
			return nil, errors.Wrapf(ErrDocumentInvalid, "%s coefficient %d must be positive", pos, i)
		}

		if i == 3 && c.Float() != 0 {
			return nil, errors.Wrapf(ErrDocumentInvalid, "%s has g2 != 0.0", pos)
		}
	}

	for _, s := range seen {
		if s == cur {
			return nil, errors.Wrapf(ErrDocumentInvalid, "%s is duplicated", pos)
		}
	}

	if len(seen) > 0 && cur < seen[len(seen)-1] {
		return nil, errors.Wrapf(ErrDocumentInvalid, "%s is not monotonically increasing", pos)
	}

	return append(seen, cur), nil
}

func nonEmptyArray(obj gjson.Result, key, pos string) ([]gjson.Result, error) {
	v := obj.Get(key)
	if !v.IsArray() {
		return nil, errors.Wrapf(ErrDocumentInvalid, "%s has no %s list", pos, key)
	}

	items := v.Array()
	if len(items) == 0 {
		return nil, errors.Wrapf(ErrDocumentInvalid, "%s has an empty %s list", pos, key)
	}

	return items, nil
}

func isJSONInt(r gjson.Result) bool {
	return r.Type == gjson.Number && !strings.ContainsAny(r.Raw, ".eE")
}
