package dice_test

import (
	"errors"
	"testing"

	"github.com/dmoura/edubot/pkg/dice"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want dice.Roll
	}{
		{"1d20", dice.Roll{Count: 1, Sides: 20}},
		{"d6", dice.Roll{Count: 1, Sides: 6}},
		{"0d6", dice.Roll{Count: 1, Sides: 6}},
		{"2d6+3", dice.Roll{Count: 2, Sides: 6, Modifier: 3}},
		{"3d8-2", dice.Roll{Count: 3, Sides: 8, Modifier: -2}},
		{"4D10", dice.Roll{Count: 4, Sides: 10}},
		{"roll 2d6+1 please", dice.Roll{Count: 2, Sides: 6, Modifier: 1}},
	}

	for _, tc := range cases {
		got, err := dice.Parse(tc.in)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("Parse(%q) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	for _, in := range []string{"", "abc", "20", "d", "2d0", "500d6"} {
		if _, err := dice.Parse(in); !errors.Is(err, dice.ErrInvalidNotation) {
			t.Fatalf("Parse(%q) error = %v, want ErrInvalidNotation", in, err)
		}
	}
}

func TestThrow(t *testing.T) {
	roll := dice.Roll{Count: 3, Sides: 6, Modifier: 2}

	next := 0
	intn := func(n int) int {
		if n != 6 {
			t.Fatalf("intn called with n = %d, want 6", n)
		}
		next++
		return next
	}

	rolls, total := roll.Throw(intn)
	if len(rolls) != 3 {
		t.Fatalf("got %d rolls, want 3", len(rolls))
	}
	for i, want := range []int{2, 3, 4} {
		if rolls[i] != want {
			t.Fatalf("rolls[%d] = %d, want %d", i, rolls[i], want)
		}
	}
	if total != 11 {
		t.Fatalf("total = %d, want 11", total)
	}
}

func TestThrowBounds(t *testing.T) {
	roll := dice.Roll{Count: 1, Sides: 20}

	low, lowTotal := roll.Throw(func(int) int { return 0 })
	if low[0] != 1 || lowTotal != 1 {
		t.Fatalf("minimum roll = %v total %d, want 1 and 1", low, lowTotal)
	}

	high, highTotal := roll.Throw(func(n int) int { return n - 1 })
	if high[0] != 20 || highTotal != 20 {
		t.Fatalf("maximum roll = %v total %d, want 20 and 20", high, highTotal)
	}
}
