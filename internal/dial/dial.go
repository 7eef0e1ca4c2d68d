// Package dial solves day 1: a safe dial with 100 positions turned left
// and right by a list of moves.
package dial

import (
	"errors"
	"fmt"
	"strconv"

	aoc "github.com/ertugungor/advent-of-code-25"
)

// Size is the number of positions on the dial.
const Size = 100

// Start is the position the dial points at before the first move.
const Start = 50

// ErrBadDirection is returned for a move that does not start with L or R.
var ErrBadDirection = errors.New("bad direction")

// Direction is the way a move turns the dial.
type Direction byte

const (
	Left  Direction = 'L'
	Right Direction = 'R'
)

// Move is one rotation of the dial.
type Move struct {
	Dir Direction
	N   int
}

func (m Move) String() string {
	return fmt.Sprintf("%c%d", m.Dir, m.N)
}

// ParseMove parses a move such as "L68" or "R5".
func ParseMove(s string) (Move, error) {
	if s == "" {
		return Move{}, fmt.Errorf("empty move: %w", ErrBadDirection)
	}
	d := Direction(s[0])
	if d != Left && d != Right {
		return Move{}, fmt.Errorf("move %q: %w", s, ErrBadDirection)
	}
	n, err := strconv.ParseUint(s[1:], 10, 31)
	if err != nil {
		return Move{}, fmt.Errorf("move %q: %w", s, err)
	}
	return Move{Dir: d, N: int(n)}, nil
}

// ParseMoves parses one move per line.
func ParseMoves(lines []string) ([]Move, error) {
	moves := make([]Move, 0, len(lines))
	for i, line := range lines {
		m, err := ParseMove(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// Dial tracks the position of the dial.
type Dial struct {
	pos int
}

// New returns a dial pointing at Start.
func New() *Dial {
	return &Dial{pos: Start}
}

// Pos returns the current position, always in [0, Size).
func (d *Dial) Pos() int {
	return d.pos
}

// Turn applies m and returns how many times the dial pointed at 0 during
// the move, the final position included.
func (d *Dial) Turn(m Move) (zeros int) {
	start := d.pos
	switch m.Dir {
	case Left:
		zeros = aoc.FloorDiv(start-1, Size) - aoc.FloorDiv(start-1-m.N, Size)
		d.pos = aoc.Mod(start-m.N, Size)
	case Right:
		zeros = aoc.FloorDiv(start+m.N, Size) - aoc.FloorDiv(start, Size)
		d.pos = aoc.Mod(start+m.N, Size)
	default:
		panic(fmt.Sprintf("bad direction %q", m.Dir))
	}
	return zeros
}

// Part1 counts the moves that leave the dial at 0.
func Part1(moves []Move) int {
	d := New()
	count := 0
	for _, m := range moves {
		d.Turn(m)
		if d.Pos() == 0 {
			count++
		}
	}
	return count
}

// Part2 counts every time the dial points at 0, including while passing
// through it in the middle of a move.
func Part2(moves []Move) int {
	d := New()
	count := 0
	for _, m := range moves {
		count += d.Turn(m)
	}
	return count
}
