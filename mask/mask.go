// Package mask parses and formats the quality mask. The mask is opaque
// configuration: a 1 at position j means a scale note j steps above the
// candidate base counts toward that candidate's score.
package mask

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jsphweid/ragakey/model"
	"github.com/jsphweid/ragakey/util"
)

var ErrInvalidMask = errors.New("invalid quality mask")

var defaultMask = model.QualityMask{1, 0, 1, 0, 1, 0, 1, 1, 0, 1, 0, 1}

func Default() model.QualityMask {
	return defaultMask
}

// Parse reads 12 binary digits. Spaces, commas and surrounding brackets are
// allowed as separators, so "101010110101", "1 0 1 ..." and "[1,0,1,...]"
// all work.
func Parse(s string) (model.QualityMask, error) {
	var m model.QualityMask
	digits := strings.Map(func(r rune) rune {
		switch r {
		case ' ', ',', '\t', '[', ']':
			return -1
		}
		return r
	}, s)

	if len(digits) != model.NumPitchClasses {
		return m, fmt.Errorf("%w: want %d digits, got %d in %q", ErrInvalidMask, model.NumPitchClasses, len(digits), s)
	}
	for i, r := range digits {
		switch r {
		case '0':
		case '1':
			m[i] = 1
		default:
			return m, fmt.Errorf("%w: %q is not 0 or 1", ErrInvalidMask, r)
		}
	}
	return m, nil
}

// Format renders m in the compact form Parse accepts.
func Format(m model.QualityMask) string {
	var b strings.Builder
	for _, v := range m {
		if v != 0 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// Total is the largest score any candidate can reach under m.
func Total(m model.QualityMask) int {
	return int(util.Sum(m[:]))
}
