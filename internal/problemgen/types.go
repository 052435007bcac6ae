package problemgen

import (
	"fmt"
	"strings"
)

// MaxHintLevel is the highest hint level; level 0 shows no scaffolding.
const MaxHintLevel = 3

// Item is a single drill prompt with one integer answer.
// Question and Puzzle both implement it so one session type drives
// the concept trainer and the shape drills.
type Item interface {
	// Prompt is the short text shown to the learner, e.g. "3 × 4 = ?".
	Prompt() string

	// Expected is the value a correct submission must equal.
	Expected() int

	// Hints returns the scaffolding steps, one per hint level.
	// Hints()[i] is revealed at hint level i+1.
	Hints() []string

	// Key identifies the item in the journal, e.g. "3x4".
	Key() string
}

// Question is one concept-trainer item: A items in each of B containers.
// The product is always derived from the factors.
type Question struct {
	A int
	B int
}

var _ Item = Question{}

// Product returns A*B.
func (q Question) Product() int {
	return q.A * q.B
}

func (q Question) Prompt() string {
	return fmt.Sprintf("%d × %d = ?", q.A, q.B)
}

func (q Question) Expected() int {
	return q.Product()
}

func (q Question) Hints() []string {
	return multiplicationHints(q.A, q.B)
}

func (q Question) Key() string {
	return fmt.Sprintf("%dx%d", q.A, q.B)
}

// multiplicationHints builds the three scaffolding steps for a × b:
// the grouping, the repeated addition, and the full equation.
func multiplicationHints(a, b int) []string {
	terms := make([]string, b)
	for i := range terms {
		terms[i] = fmt.Sprintf("%d", a)
	}
	return []string{
		fmt.Sprintf("%dこ ずつの まとまりが %dつ", a, b),
		strings.Join(terms, " + "),
		fmt.Sprintf("%d × %d = %d", a, b, a*b),
	}
}
