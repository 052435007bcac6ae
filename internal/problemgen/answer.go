package problemgen

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Overflow is returned for digit strings too large for an int. No item
// expects it, so such answers are scored wrong.
const Overflow = math.MaxInt

// ParseAnswer parses a learner's raw input as a non-negative integer.
//
// Normalization rules:
// - Whitespace is trimmed
// - Full-width digits (０-９) from Japanese IMEs are accepted
// - Leading zeros are ignored (e.g., "007" matches "7")
// - Any length is accepted; values past the int range parse as Overflow
// - Signs, decimals, separators and empty input are malformed
//
// ok is false for malformed input, which callers treat as no submission.
func ParseAnswer(raw string) (n int, ok bool) {
	s := strings.TrimSpace(normalizeDigits(raw))
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if errors.Is(err, strconv.ErrRange) {
		return Overflow, true
	}
	if err != nil {
		return 0, false
	}
	return n, true
}

// CheckAnswer compares raw input against the item's expected value.
// ok is false when the input is malformed; correct is meaningful only
// when ok is true.
func CheckAnswer(raw string, item Item) (correct, ok bool) {
	n, ok := ParseAnswer(raw)
	if !ok {
		return false, false
	}
	return n == item.Expected(), true
}

// normalizeDigits maps full-width digits and spaces to ASCII.
func normalizeDigits(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= '０' && r <= '９':
			return '0' + (r - '０')
		case r == '　':
			return ' '
		}
		return r
	}, s)
}
