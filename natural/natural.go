/*
Package natural orders strings the way a person reading Persian would expect.

Strings that are whole base-10 integers compare by value ("2" < "10"). Everything else
compares rune by rune, with Persian letters ranked by their dictionary position
instead of their code point (so "پ" sits between "ب" and "ت").
*/
package natural

import (
	"strconv"
)

// untabulated runes are pushed past every Persian letter but keep their Unicode order.
const untabulatedOffset = 1000

var persianWeights = map[rune]uint32{
	'آ': 1, 'ا': 2, 'ب': 3, 'پ': 4, 'ت': 5, 'ث': 6, 'ج': 7, 'چ': 8,
	'ح': 9, 'خ': 10, 'د': 11, 'ذ': 12, 'ر': 13, 'ز': 14, 'ژ': 15, 'س': 16,
	'ش': 17, 'ص': 18, 'ض': 19, 'ط': 20, 'ظ': 21, 'ع': 22, 'غ': 23, 'ف': 24,
	'ق': 25, 'ک': 26, 'گ': 27, 'ل': 28, 'م': 29, 'ن': 30, 'و': 31, 'ه': 32,
	'ی': 33,
}

// Weight returns the sort rank of a single rune.
func Weight(r rune) uint32 {
	if w, ok := persianWeights[r]; ok {
		return w
	}
	return uint32(r) + untabulatedOffset
}

/*
Compare returns -1, 0 or +1 depending on whether a sorts before, equal to or after b.
The numeric branch is taken only when both operands parse as int64. Otherwise the
first differing rune weight decides, and a proper prefix sorts first.
*/
func Compare(a, b string) int {
	if x, err := strconv.ParseInt(a, 10, 64); err == nil {
		if y, err := strconv.ParseInt(b, 10, 64); err == nil {
			switch {
			case x < y:
				return -1
			case x > y:
				return 1
			}
			return 0
		}
	}
	return compareText(a, b)
}

func compareText(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	n := min(len(ra), len(rb))
	for i := 0; i < n; i++ {
		wa, wb := Weight(ra[i]), Weight(rb[i])
		switch {
		case wa < wb:
			return -1
		case wa > wb:
			return 1
		}
	}
	switch {
	case len(ra) < len(rb):
		return -1
	case len(ra) > len(rb):
		return 1
	}
	return 0
}

// Less reports whether a sorts strictly before b.
func Less(a, b string) bool {
	return Compare(a, b) < 0
}

// IsInteger reports whether s takes the numeric branch of Compare.
func IsInteger(s string) bool {
	_, err := strconv.ParseInt(s, 10, 64)
	return err == nil
}
