package joltage

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	aoc "github.com/ertugungor/advent-of-code-25"
)

var sampleBanks = []string{
	"987654321111111",
	"811111111111119",
	"234234234234278",
	"818181911112111",
}

func TestMaxJoltage(t *testing.T) {
	tests := []struct {
		bank  string
		slots int
		want  int64
	}{
		{"987654321111111", 2, 98},
		{"811111111111119", 2, 89},
		{"234234234234278", 2, 78},
		{"818181911112111", 2, 92},
		{"987654321111111", 12, 987654321111},
		{"811111111111119", 12, 811111111119},
		{"234234234234278", 12, 434234234278},
		{"818181911112111", 12, 888911112111},
		{"19", 1, 9},
		{"19", 2, 19},
		{"91", 2, 91},
		{"9", 3, 9},
		{"95", 3, 95},
		{"", 2, 0},
		{"12345", 0, 0},
		{"000", 2, 0},
	}
	for _, tt := range tests {
		got, err := MaxJoltage(tt.bank, tt.slots)
		if err != nil {
			t.Errorf("MaxJoltage(%q, %d): %v", tt.bank, tt.slots, err)
			continue
		}
		if got != tt.want {
			t.Errorf("MaxJoltage(%q, %d) = %v, want %v", tt.bank, tt.slots, got, tt.want)
		}
	}
}

func TestMaxJoltageBadDigit(t *testing.T) {
	for _, bank := range []string{"12a4", "1 2", "-5"} {
		if _, err := MaxJoltage(bank, 2); err == nil {
			t.Errorf("MaxJoltage(%q) succeeded; want error", bank)
		}
	}
	if _, err := Solve([]string{"11", "x"}, 2); err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("Solve error = %v; want one naming line 2", err)
	}
}

func TestMaxJoltageManySlots(t *testing.T) {
	tests := []struct {
		bank  string
		slots int
		want  int64
	}{
		{"123", 1 << 40, 123},
		{"90817", 1 << 20, 90817},
		{strings.Repeat("9", 25), 12, 999_999_999_999},
		{strings.Repeat("1", 24) + "9", 18, 111_111_111_111_111_119},
	}
	for _, tt := range tests {
		got, err := MaxJoltage(tt.bank, tt.slots)
		if err != nil {
			t.Errorf("MaxJoltage(%q, %d): %v", tt.bank, tt.slots, err)
			continue
		}
		if got != tt.want {
			t.Errorf("MaxJoltage(%q, %d) = %v, want %v", tt.bank, tt.slots, got, tt.want)
		}
	}
}

func TestMaxJoltageOverflow(t *testing.T) {
	for _, slots := range []int{19, 25, 1 << 40} {
		if _, err := MaxJoltage(strings.Repeat("9", 25), slots); !errors.Is(err, ErrOverflow) {
			t.Errorf("MaxJoltage(25 nines, %d) err = %v, want ErrOverflow", slots, err)
		}
	}
}

func randomBank(r *rand.Rand) string {
	b := make([]byte, 1+r.Intn(20))
	for i := range b {
		b[i] = byte('0' + r.Intn(10))
	}
	return string(b)
}

func TestSingleSlotIsMaxDigit(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		bank := randomBank(r)
		want := int64(0)
		for _, d := range aoc.MustGet(aoc.ParseDigits(bank)) {
			want = max(want, int64(d))
		}
		got, err := MaxJoltage(bank, 1)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("MaxJoltage(%q, 1) = %d, want %d", bank, got, want)
		}
	}
}

func TestMonotonicInSlots(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	for i := 0; i < 100; i++ {
		bank := randomBank(r)
		prev := int64(-1)
		for slots := 0; slots <= 14; slots++ {
			got, err := MaxJoltage(bank, slots)
			if err != nil {
				t.Fatal(err)
			}
			if got < prev {
				t.Fatalf("MaxJoltage(%q, %d) = %d < MaxJoltage(%q, %d) = %d", bank, slots, got, bank, slots-1, prev)
			}
			prev = got
		}
	}
}

// bruteJoltage tries every subsequence of length slots (or the whole bank
// if shorter) and returns the largest number it spells.
func bruteJoltage(bank string, slots int) int64 {
	n := min(slots, len(bank))
	var best int64
	var rec func(idx int, picked []byte)
	rec = func(idx int, picked []byte) {
		if len(picked) == n {
			var v int64
			for _, c := range picked {
				v = v*10 + int64(c-'0')
			}
			best = max(best, v)
			return
		}
		for i := idx; i < len(bank); i++ {
			rec(i+1, append(picked, bank[i]))
		}
	}
	rec(0, nil)
	return best
}

func TestMatchesBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for i := 0; i < 200; i++ {
		bank := randomBank(r)
		slots := 1 + r.Intn(5)
		got, err := MaxJoltage(bank, slots)
		if err != nil {
			t.Fatal(err)
		}
		if want := bruteJoltage(bank, slots); got != want {
			t.Errorf("MaxJoltage(%q, %d) = %d, want %d", bank, slots, got, want)
		}
	}
}

func TestSolve(t *testing.T) {
	// Banks of different lengths in one pass must not share memo state.
	banks := []string{"811111111111119", "91", "234234234234278", "5"}
	var want int64
	for _, b := range banks {
		v, err := MaxJoltage(b, 2)
		if err != nil {
			t.Fatal(err)
		}
		want += v
	}
	for i := 0; i < 2; i++ {
		got, err := Solve(banks, 2)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("Solve run %d = %d, want %d", i, got, want)
		}
	}

	if got, err := Part1(sampleBanks); err != nil || got != 357 {
		t.Errorf("Part1(sample) = %v, %v; want 357", got, err)
	}
	if got, err := Part2(sampleBanks); err != nil || got != 3121910778619 {
		t.Errorf("Part2(sample) = %v, %v; want 3121910778619", got, err)
	}
}

func TestLongInput(t *testing.T) {
	lines, err := aoc.ReadLines(aoc.InputPath("../..", 3))
	if err != nil {
		t.Skipf("no input: %v", err)
	}
	if got, err := Part1(lines); err != nil || got != 17435 {
		t.Errorf("Part1 = %v, %v; want 17435", got, err)
	}
	if got, err := Part2(lines); err != nil || got != 172886048065379 {
		t.Errorf("Part2 = %v, %v; want 172886048065379", got, err)
	}
}
