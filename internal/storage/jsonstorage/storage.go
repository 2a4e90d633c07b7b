package jsonstorage

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

var ErrNotJSON = errors.New("contents are not valid JSON")

func OpenOrCreate(path string) (*os.File, error) {
	var file *os.File
	if _, err := os.Stat(path); os.IsNotExist(err) {
		f, err := os.Create(path)
		if err != nil {
			return nil, err
		}
		file = f
	} else {
		f, err := os.OpenFile(path, os.O_RDWR, 0666)
		if err != nil {
			return nil, err
		}
		file = f
	}

	return file, nil
}

// JSONStorage keeps one JSON document in a file, replacing it on every write.
type JSONStorage struct {
	f *os.File
}

func NewJSONStorage(f *os.File) *JSONStorage {
	return &JSONStorage{f: f}
}

// Size is the length of the stored document in bytes.
func (s *JSONStorage) Size() (int64, error) {
	info, err := s.f.Stat()
	if err != nil {
		return 0, errors.Wrapf(err, "could not stat %s", s.f.Name())
	}

	return info.Size(), nil
}

// Write replaces the file contents with b, which must be a valid JSON document.
func (s *JSONStorage) Write(b []byte) error {
	if !gjson.ValidBytes(b) {
		return errors.Wrapf(ErrNotJSON, "refusing to write to %s", s.f.Name())
	}

	if err := s.f.Truncate(0); err != nil {
		return errors.Wrapf(err, "could not truncate file %s", s.f.Name())
	}

	if _, err := s.f.Seek(0, 0); err != nil {
		return errors.Wrapf(err, "could not seek the beginning of the file %s", s.f.Name())
	}

	if _, err := s.f.Write(b); err != nil {
		return errors.Wrapf(err, "could not write to file %s", s.f.Name())
	}

	if err := s.f.Sync(); err != nil {
		return errors.Wrapf(err, "could not sync file %s", s.f.Name())
	}

	return nil
}

// Read returns the whole document.
func (s *JSONStorage) Read() ([]byte, error) {
	if _, err := s.f.Seek(0, 0); err != nil {
		return nil, err
	}

	b, err := io.ReadAll(s.f)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read file %s", s.f.Name())
	}

	if !gjson.ValidBytes(b) {
		return nil, errors.Wrapf(ErrNotJSON, "file %s", s.f.Name())
	}

	return b, nil
}

// WriteFile replaces the document at path and returns its size on disk.
func WriteFile(path string, b []byte) (int64, error) {
	f, err := OpenOrCreate(path)
	if err != nil {
		return 0, errors.Wrapf(err, "could not open %s", path)
	}
	defer f.Close()

	s := NewJSONStorage(f)
	if err := s.Write(b); err != nil {
		return 0, err
	}

	return s.Size()
}

func ReadFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open %s", path)
	}
	defer f.Close()

	return NewJSONStorage(f).Read()
}
