package problemgen

import (
	"fmt"
	"math/rand/v2"
)

// PuzzlesPerRound is the number of hole-fill puzzles in one shape round.
const PuzzlesPerRound = 8

// Secondary factors for hole-fill puzzles are drawn from this range.
const (
	MinMultiplier = 2
	MaxMultiplier = 9
)

// PuzzleKind selects which cell of a multiplication is masked.
type PuzzleKind int

const (
	PuzzleLastDigit     PuzzleKind = iota // units digit of the product
	PuzzleMissingFactor                   // □ × b = product
	PuzzleMiniTable                       // center cell of a 3×3 table
)

var puzzleKinds = [...]PuzzleKind{PuzzleLastDigit, PuzzleMissingFactor, PuzzleMiniTable}

func (k PuzzleKind) String() string {
	switch k {
	case PuzzleLastDigit:
		return "last-digit"
	case PuzzleMissingFactor:
		return "missing-factor"
	case PuzzleMiniTable:
		return "mini-table"
	default:
		return fmt.Sprintf("PuzzleKind(%d)", int(k))
	}
}

// MiniTable is a 3×3 excerpt of the times table anchored at a dan.
// Columns are dan, dan+1, dan+2; rows are 2, 3, 4. The center cell
// (row 3, column dan+1) is always the one masked, so the hole's position
// is predictable for the learner.
type MiniTable struct {
	Rows [3]int
	Cols [3]int
}

// MaskedRow and MaskedCol index the masked cell within the grid.
const (
	MaskedRow = 1
	MaskedCol = 1
)

// NewMiniTable builds the table anchored at dan.
func NewMiniTable(dan int) MiniTable {
	return MiniTable{
		Rows: [3]int{2, 3, 4},
		Cols: [3]int{dan, dan + 1, dan + 2},
	}
}

// Value returns the product at grid position (r, c).
func (t MiniTable) Value(r, c int) int {
	return t.Rows[r] * t.Cols[c]
}

// Masked reports whether (r, c) is the hole.
func (t MiniTable) Masked(r, c int) bool {
	return r == MaskedRow && c == MaskedCol
}

// MaskedValue is the expected answer for the hole.
func (t MiniTable) MaskedValue() int {
	return t.Value(MaskedRow, MaskedCol)
}

// Puzzle is one hole-fill item for the shape drills.
type Puzzle struct {
	Kind PuzzleKind

	// Dan is the primary factor chosen by the learner.
	Dan int

	// Multiplier is the secondary factor, drawn from [2, 9].
	Multiplier int

	// Table is set only for PuzzleMiniTable.
	Table *MiniTable
}

var _ Item = Puzzle{}

// NewPuzzle draws a puzzle kind uniformly and a multiplier from [2, 9].
// A nil rng uses the runtime-seeded global source.
func NewPuzzle(rng *rand.Rand, dan int) Puzzle {
	kind := puzzleKinds[randInt(rng, 0, len(puzzleKinds)-1)]
	return NewPuzzleOfKind(kind, dan, randInt(rng, MinMultiplier, MaxMultiplier))
}

// NewPuzzleOfKind builds a puzzle of a fixed kind.
func NewPuzzleOfKind(kind PuzzleKind, dan, multiplier int) Puzzle {
	p := Puzzle{Kind: kind, Dan: dan, Multiplier: multiplier}
	if kind == PuzzleMiniTable {
		t := NewMiniTable(dan)
		p.Table = &t
	}
	return p
}

// GeneratePuzzles returns n independently drawn puzzles for dan.
func GeneratePuzzles(rng *rand.Rand, dan, n int) []Puzzle {
	out := make([]Puzzle, 0, n)
	for range n {
		out = append(out, NewPuzzle(rng, dan))
	}
	return out
}

// Product returns Dan*Multiplier.
func (p Puzzle) Product() int {
	return p.Dan * p.Multiplier
}

func (p Puzzle) Expected() int {
	switch p.Kind {
	case PuzzleLastDigit:
		return p.Product() % 10
	case PuzzleMissingFactor:
		return p.Dan
	default:
		return p.table().MaskedValue()
	}
}

func (p Puzzle) Prompt() string {
	switch p.Kind {
	case PuzzleLastDigit:
		tens := p.Product() / 10
		if tens == 0 {
			return fmt.Sprintf("%d × %d = □", p.Dan, p.Multiplier)
		}
		return fmt.Sprintf("%d × %d = %d□", p.Dan, p.Multiplier, tens)
	case PuzzleMissingFactor:
		return fmt.Sprintf("□ × %d = %d", p.Multiplier, p.Product())
	default:
		return "□に入る すうじは？（まんなか）"
	}
}

func (p Puzzle) Hints() []string {
	if p.Kind == PuzzleMiniTable {
		t := p.table()
		return multiplicationHints(t.Cols[MaskedCol], t.Rows[MaskedRow])
	}
	return multiplicationHints(p.Dan, p.Multiplier)
}

func (p Puzzle) Key() string {
	return fmt.Sprintf("%s:%dx%d", p.Kind, p.Dan, p.Multiplier)
}

func (p Puzzle) table() MiniTable {
	if p.Table != nil {
		return *p.Table
	}
	return NewMiniTable(p.Dan)
}
