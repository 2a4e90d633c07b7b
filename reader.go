package camcal

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

var ErrSourceFileReadFailed = errors.New("source file read failed")

type lineHandler func(lineNo int, line string) error

// scanLines offers every line of r to fn, stopping at the first error.
func scanLines(r io.Reader, fn lineHandler) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		if err := fn(lineNo, sc.Text()); err != nil {
			return err
		}
	}

	if err := sc.Err(); err != nil {
		return errors.Wrapf(ErrSourceFileReadFailed, "could not read line #%d: %v", lineNo+1, err)
	}

	return nil
}
