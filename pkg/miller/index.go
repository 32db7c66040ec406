// Package miller holds reflection indices and their reduction to the
// asymmetric unit of a space group.
package miller

import (
	"fmt"
	"strconv"
	"strings"

	errs "github.com/lexlapax/xmerge/pkg/errors"
)

// Index is a Miller index (h, k, l).
type Index [3]int

// Neg returns the Friedel mate -h.
func (h Index) Neg() Index {
	return Index{-h[0], -h[1], -h[2]}
}

// IsZero reports whether h is (0, 0, 0).
func (h Index) IsZero() bool {
	return h == Index{}
}

// Less orders indices lexicographically on (h, k, l).
func (h Index) Less(o Index) bool {
	for i := 0; i < 3; i++ {
		if h[i] != o[i] {
			return h[i] < o[i]
		}
	}
	return false
}

func (h Index) String() string {
	return fmt.Sprintf("(%d,%d,%d)", h[0], h[1], h[2])
}

// ParseIndex reads "h,k,l", "h k l" or "(h,k,l)".
func ParseIndex(s string) (Index, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "(")
	s = strings.TrimSuffix(s, ")")
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
	if len(fields) != 3 {
		return Index{}, fmt.Errorf("%w: miller index needs 3 components: %q", errs.ErrInvalidInput, s)
	}
	var h Index
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return Index{}, fmt.Errorf("%w: miller index component %q: %v", errs.ErrInvalidInput, f, err)
		}
		h[i] = v
	}
	return h, nil
}
