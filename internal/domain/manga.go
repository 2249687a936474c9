package domain

import (
	"cmp"
	"math"
	"strconv"
)

// Number is an optional chapter or volume label. Labels come over the
// wire as free-form strings; anything that doesn't parse as a finite
// number counts as absent.
type Number struct {
	value float32
	ok    bool
}

func NewNumber(value float32) Number {
	return Number{value: value, ok: true}
}

func ParseNumber(raw string) Number {
	value, err := strconv.ParseFloat(raw, 32)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return Number{}
	}

	return Number{value: float32(value), ok: true}
}

func (n Number) Value() (float32, bool) {
	return n.value, n.ok
}

// Compare orders absent labels before present ones and present labels
// numerically. Two absent labels are equal.
func (n Number) Compare(other Number) int {
	switch {
	case !n.ok && !other.ok:
		return 0
	case !n.ok:
		return -1
	case !other.ok:
		return 1
	default:
		return cmp.Compare(n.value, other.value)
	}
}

func (n Number) String() string {
	if !n.ok {
		return "none"
	}

	return strconv.FormatFloat(float64(n.value), 'f', -1, 32)
}

// Chapter is a single downloadable chapter from one aggregate response.
// Count and Others describe alternate uploads of the same chapter.
type Chapter struct {
	ID     string
	Number Number
	Count  int
	Others []string
}

// Volume groups the chapters sharing one volume label.
type Volume struct {
	Number   Number
	Count    int
	Chapters map[string]Chapter
}
