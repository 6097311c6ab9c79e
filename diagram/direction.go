package diagram

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/bidi"
)

// Direction decides how a middle child's range label is written.
type Direction int

const (
	LTR  Direction = iota // "low - high"
	RTL                   // "high - low", reads correctly inside right-to-left text
	Auto                  // RTL when the bounding keys start with a right-to-left letter
)

var ErrInvalidDirection = errors.New("invalid direction")

func (d Direction) String() string {
	switch d {
	case LTR:
		return "ltr"
	case RTL:
		return "rtl"
	case Auto:
		return "auto"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// ParseDirection accepts "ltr", "rtl" and "auto" in any case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ltr":
		return LTR, nil
	case "rtl":
		return RTL, nil
	case "auto", "":
		return Auto, nil
	}
	return LTR, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

/*
IsRTL reports whether the first strongly directional rune of s belongs to a
right-to-left script (Hebrew, Arabic, Persian...). Digits and punctuation are skipped.
*/
func IsRTL(s string) bool {
	for _, r := range s {
		p, _ := bidi.LookupRune(r)
		switch p.Class() {
		case bidi.R, bidi.AL:
			return true
		case bidi.L:
			return false
		}
	}
	return false
}

func (d Direction) resolve(low, high string) Direction {
	if d != Auto {
		return d
	}
	if IsRTL(low) || IsRTL(high) {
		return RTL
	}
	return LTR
}
