package problemgen

import "testing"

func TestMiniTable_ExactlyOneMaskedCell(t *testing.T) {
	for dan := 1; dan <= 9; dan++ {
		tbl := NewMiniTable(dan)
		masked := 0
		for r := 0; r < 3; r++ {
			for c := 0; c < 3; c++ {
				if tbl.Value(r, c) != tbl.Rows[r]*tbl.Cols[c] {
					t.Errorf("dan %d: cell (%d,%d) = %d, want row×col", dan, r, c, tbl.Value(r, c))
				}
				if tbl.Masked(r, c) {
					masked++
					if tbl.MaskedValue() != tbl.Rows[r]*tbl.Cols[c] {
						t.Errorf("dan %d: masked value %d != %d×%d", dan, tbl.MaskedValue(), tbl.Rows[r], tbl.Cols[c])
					}
				}
			}
		}
		if masked != 1 {
			t.Errorf("dan %d: %d masked cells, want 1", dan, masked)
		}
		if tbl.Cols[MaskedCol] != dan+1 || tbl.Rows[MaskedRow] != 3 {
			t.Errorf("dan %d: hole at col %d row %d, want center (dan+1, 3)", dan, tbl.Cols[MaskedCol], tbl.Rows[MaskedRow])
		}
	}
}

func TestNewPuzzle_Ranges(t *testing.T) {
	rng := seeded(11)
	kinds := map[PuzzleKind]int{}

	for i := 0; i < 600; i++ {
		p := NewPuzzle(rng, 6)
		kinds[p.Kind]++
		if p.Dan != 6 {
			t.Fatalf("dan = %d, want 6", p.Dan)
		}
		if p.Multiplier < MinMultiplier || p.Multiplier > MaxMultiplier {
			t.Fatalf("multiplier %d outside [2,9]", p.Multiplier)
		}
		if (p.Kind == PuzzleMiniTable) != (p.Table != nil) {
			t.Fatalf("%s: table presence mismatch", p.Kind)
		}
	}

	for _, k := range puzzleKinds {
		if kinds[k] < 100 {
			t.Errorf("kind %s drawn %d/600 times, expected roughly uniform", k, kinds[k])
		}
	}
}

func TestPuzzle_Expected(t *testing.T) {
	tests := []struct {
		kind PuzzleKind
		dan  int
		mult int
		want int
	}{
		{PuzzleLastDigit, 6, 7, 2},
		{PuzzleLastDigit, 2, 3, 6},
		{PuzzleLastDigit, 5, 2, 0},
		{PuzzleMissingFactor, 8, 9, 8},
		{PuzzleMiniTable, 9, 2, 30},
	}
	for _, tc := range tests {
		p := NewPuzzleOfKind(tc.kind, tc.dan, tc.mult)
		if got := p.Expected(); got != tc.want {
			t.Errorf("%s Expected() = %d, want %d", p.Key(), got, tc.want)
		}
	}
}

func TestPuzzle_Prompt(t *testing.T) {
	tests := []struct {
		p    Puzzle
		want string
	}{
		{NewPuzzleOfKind(PuzzleLastDigit, 6, 7), "6 × 7 = 4□"},
		{NewPuzzleOfKind(PuzzleLastDigit, 2, 3), "2 × 3 = □"},
		{NewPuzzleOfKind(PuzzleMissingFactor, 6, 7), "□ × 7 = 42"},
	}
	for _, tc := range tests {
		if got := tc.p.Prompt(); got != tc.want {
			t.Errorf("Prompt() = %q, want %q", got, tc.want)
		}
	}
}

func TestGeneratePuzzles_Count(t *testing.T) {
	ps := GeneratePuzzles(seeded(5), 4, PuzzlesPerRound)
	if len(ps) != PuzzlesPerRound {
		t.Fatalf("len = %d, want %d", len(ps), PuzzlesPerRound)
	}
}
