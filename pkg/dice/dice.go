// Package dice parses and rolls NdM+K dice notation.
package dice

import (
	"errors"
	"regexp"
	"strconv"
)

// ErrInvalidNotation is returned for input with no usable NdM+K group.
var ErrInvalidNotation = errors.New("dice: invalid notation")

// MaxCount bounds a single roll so a stray notation cannot allocate
// arbitrarily large results.
const MaxCount = 100

// notation matches the first NdM+K group anywhere in the input; the count
// and modifier are optional.
var notation = regexp.MustCompile(`(?i)(\d*)d(\d+)([+-]\d+)?`)

// Roll is a parsed notation: Count dice of Sides faces plus Modifier.
type Roll struct {
	Count    int
	Sides    int
	Modifier int
}

// Parse extracts the first NdM+K group from input. A missing or zero count
// falls back to 1. Zero-sided dice and counts above MaxCount are invalid.
func Parse(input string) (Roll, error) {
	m := notation.FindStringSubmatch(input)
	if m == nil {
		return Roll{}, ErrInvalidNotation
	}

	count := 1
	if m[1] != "" {
		if parsed, err := strconv.Atoi(m[1]); err == nil && parsed > 0 {
			count = parsed
		}
	}
	if count > MaxCount {
		return Roll{}, ErrInvalidNotation
	}

	sides, err := strconv.Atoi(m[2])
	if err != nil || sides < 1 {
		return Roll{}, ErrInvalidNotation
	}

	modifier := 0
	if m[3] != "" {
		modifier, _ = strconv.Atoi(m[3])
	}

	return Roll{Count: count, Sides: sides, Modifier: modifier}, nil
}

// Throw rolls each die with intn, which must return a uniform value in
// [0, n). It returns the individual rolls and the modified total.
func (r Roll) Throw(intn func(n int) int) (rolls []int, total int) {
	rolls = make([]int, r.Count)
	for i := range rolls {
		rolls[i] = intn(r.Sides) + 1
		total += rolls[i]
	}
	return rolls, total + r.Modifier
}
