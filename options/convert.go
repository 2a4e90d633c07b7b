package options

import (
	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
)

const DefaultDocumentVersion = 0

type ConvertOptions struct {
	Upcase  bool `yaml:"upcase"`
	Version int  `yaml:"version"`
}

func (co *ConvertOptions) SetUpcase(upcase bool) *ConvertOptions {
	co.Upcase = upcase
	return co
}

func (co *ConvertOptions) SetVersion(v int) *ConvertOptions {
	co.Version = v
	return co
}

func (co *ConvertOptions) Clone() (*ConvertOptions, error) {
	var cp ConvertOptions
	if co == nil {
		return Convert(), nil
	}

	if err := copier.Copy(&cp, co); err != nil {
		return nil, errors.Wrap(err, "could not copy convert options")
	}

	return &cp, nil
}

func Convert() *ConvertOptions {
	return &ConvertOptions{Version: DefaultDocumentVersion}
}
