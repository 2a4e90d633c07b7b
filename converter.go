package camcal

import (
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/denismitr/camcal/options"
)

// ConvertPresets parses the preset table at path into a sorted document.
// Any malformed or duplicated row aborts the conversion.
func ConvertPresets(path string, opts *options.ConvertOptions) (*PresetDocument, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(ErrSourceFileReadFailed, "could not open %s: %v", path, err)
	}
	defer f.Close()

	return ConvertPresetsFrom(f, opts)
}

func ConvertPresetsFrom(r io.Reader, opts *options.ConvertOptions) (*PresetDocument, error) {
	opts, err := opts.Clone()
	if err != nil {
		return nil, err
	}

	p := &presetParser{upcase: opts.Upcase}
	tree := NewPresetTree()

	err = scanLines(r, func(lineNo int, line string) error {
		row, ok, err := p.parseLine(lineNo, line)
		if err != nil || !ok {
			return err
		}

		if err := tree.Insert(row); err != nil {
			return errors.Wrapf(err, "line #%d", lineNo)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return BuildDocument(tree, opts.Version), nil
}
