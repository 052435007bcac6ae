package problemgen

import "testing"

func TestParseAnswer(t *testing.T) {
	tests := []struct {
		input  string
		want   int
		wantOK bool
	}{
		{"12", 12, true},
		{" 12 ", 12, true},
		{"012", 12, true},
		{"0", 0, true},
		{"１２", 12, true},
		{"　４２　", 42, true},
		{"", 0, false},
		{"   ", 0, false},
		{"abc", 0, false},
		{"-3", 0, false},
		{"+3", 0, false},
		{"3.0", 0, false},
		{"1 2", 0, false},
		{"1,000", 0, false},
		{"0000012", 12, true},
		{"1234567", 1234567, true},
		{"99999999999999999999", Overflow, true},
	}

	for _, tc := range tests {
		got, ok := ParseAnswer(tc.input)
		if ok != tc.wantOK || got != tc.want {
			t.Errorf("ParseAnswer(%q) = (%d, %v), want (%d, %v)", tc.input, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestCheckAnswer_Question(t *testing.T) {
	q := Question{A: 3, B: 4}

	tests := []struct {
		input       string
		wantCorrect bool
		wantOK      bool
	}{
		{"12", true, true},
		{" 12", true, true},
		{"13", false, true},
		{"0000012", true, true},
		{"1234567", false, true},
		{"99999999999999999999", false, true},
		{"abc", false, false},
		{"", false, false},
	}

	for _, tc := range tests {
		correct, ok := CheckAnswer(tc.input, q)
		if correct != tc.wantCorrect || ok != tc.wantOK {
			t.Errorf("CheckAnswer(%q, 3x4) = (%v, %v), want (%v, %v)", tc.input, correct, ok, tc.wantCorrect, tc.wantOK)
		}
	}
}

func TestCheckAnswer_Puzzles(t *testing.T) {
	tests := []struct {
		name   string
		puzzle Puzzle
		input  string
		want   bool
	}{
		{"last digit of 42", NewPuzzleOfKind(PuzzleLastDigit, 6, 7), "2", true},
		{"full product is not the last digit", NewPuzzleOfKind(PuzzleLastDigit, 6, 7), "42", false},
		{"missing factor", NewPuzzleOfKind(PuzzleMissingFactor, 6, 7), "6", true},
		{"multiplier is not the missing factor", NewPuzzleOfKind(PuzzleMissingFactor, 6, 7), "7", false},
		{"mini table center 7x3", NewPuzzleOfKind(PuzzleMiniTable, 6, 7), "21", true},
		{"mini table ignores multiplier", NewPuzzleOfKind(PuzzleMiniTable, 6, 7), "42", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			correct, ok := CheckAnswer(tc.input, tc.puzzle)
			if !ok {
				t.Fatalf("CheckAnswer(%q) reported malformed input", tc.input)
			}
			if correct != tc.want {
				t.Errorf("CheckAnswer(%q, %s) = %v, want %v", tc.input, tc.puzzle.Key(), correct, tc.want)
			}
		})
	}
}
