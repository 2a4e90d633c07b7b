package camcal

import (
	"encoding/binary"
	"math"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
)

var ErrMatrixInvalid = errors.New("matrix invalid")

const matrixLinePrefix = `    { "`

// Matrix is a row-major colour matrix.
type Matrix []float64

func (m Matrix) Equal(other Matrix) bool {
	if len(m) != len(other) {
		return false
	}

	for i := range m {
		if m[i] != other[i] {
			return false
		}
	}

	return true
}

func (m Matrix) hash() uint64 {
	bs := make([]byte, 8*len(m))
	for i, v := range m {
		if v == 0 {
			v = 0 // -0 and 0 compare equal
		}
		binary.LittleEndian.PutUint64(bs[i*8:], math.Float64bits(v))
	}
	return xxhash.Sum64(bs)
}

func (m Matrix) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range m {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	sb.WriteByte(']')
	return sb.String()
}

// MatrixTable maps camera models to matrices and remembers insertion order.
type MatrixTable struct {
	order    []string
	matrices map[string]Matrix
}

func NewMatrixTable() *MatrixTable {
	return &MatrixTable{matrices: make(map[string]Matrix)}
}

func (mt *MatrixTable) Set(camera string, m Matrix) {
	if _, ok := mt.matrices[camera]; !ok {
		mt.order = append(mt.order, camera)
	}
	mt.matrices[camera] = m
}

func (mt *MatrixTable) Get(camera string) (Matrix, bool) {
	m, ok := mt.matrices[camera]
	return m, ok
}

func (mt *MatrixTable) Has(camera string) bool {
	_, ok := mt.matrices[camera]
	return ok
}

func (mt *MatrixTable) Len() int {
	return len(mt.order)
}

// Cameras returns camera models in insertion order.
func (mt *MatrixTable) Cameras() []string {
	return append([]string(nil), mt.order...)
}

type matrixParser struct {
	divisor float64
}

// camera returns the camera model of a table row, false for any other line.
func (p *matrixParser) camera(line string) (string, bool) {
	if !strings.HasPrefix(line, matrixLinePrefix) {
		return "", false
	}

	return strings.SplitN(line[len(matrixLinePrefix):], `"`, 2)[0], true
}

// matrix parses the braced values of a row and scales them by the divisor.
func (p *matrixParser) matrix(lineNo int, camera, line string) (Matrix, error) {
	braces := strings.Split(line, "{")
	if len(braces) < 3 {
		return nil, errors.Wrapf(
			ErrMatrixInvalid,
			"line #%d - camera %s has no matrix: %s",
			lineNo, camera, line)
	}

	body := strings.SplitN(braces[2], "}", 2)[0]
	fields := strings.Split(strings.TrimSpace(body), ",")
	for len(fields) > 0 && strings.TrimSpace(fields[len(fields)-1]) == "" {
		fields = fields[:len(fields)-1]
	}

	m := make(Matrix, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, errors.Wrapf(
				ErrMatrixInvalid,
				"line #%d - camera %s, %q is not a number",
				lineNo, camera, f)
		}
		m = append(m, v/p.divisor)
	}

	if len(m) != 9 && len(m) != 12 {
		return nil, errors.Wrapf(
			ErrMatrixInvalid,
			"line #%d - camera %s, strange matrix? %s",
			lineNo, camera, m)
	}

	return m, nil
}
