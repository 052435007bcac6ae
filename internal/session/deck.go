package session

import (
	"fmt"
	"math/rand/v2"

	"github.com/abhisek/kakezan/internal/catalog"
	"github.com/abhisek/kakezan/internal/problemgen"
)

// Deck deals the ordered items for one run. Each Deal call produces a fresh,
// independent set.
type Deck interface {
	Mode() Mode
	Label() string
	Deal() []problemgen.Item
}

// ProfileDeck deals concept-trainer questions for a difficulty profile.
type ProfileDeck struct {
	Profile catalog.Profile

	// Rand is optional; nil uses the global source.
	Rand *rand.Rand
}

func (d ProfileDeck) Mode() Mode    { return ModeConcept }
func (d ProfileDeck) Label() string { return d.Profile.Label }

func (d ProfileDeck) Deal() []problemgen.Item {
	qs := problemgen.Generate(d.Rand, d.Profile)
	items := make([]problemgen.Item, len(qs))
	for i, q := range qs {
		items[i] = q
	}
	return items
}

// PuzzleDeck deals hole-fill puzzles anchored at one dan.
type PuzzleDeck struct {
	Dan int

	// Count defaults to problemgen.PuzzlesPerRound when zero.
	Count int

	Rand *rand.Rand
}

func (d PuzzleDeck) Mode() Mode { return ModeShape }

func (d PuzzleDeck) Label() string {
	return fmt.Sprintf("%dのだん", d.Dan)
}

func (d PuzzleDeck) Deal() []problemgen.Item {
	n := d.Count
	if n <= 0 {
		n = problemgen.PuzzlesPerRound
	}
	ps := problemgen.GeneratePuzzles(d.Rand, d.Dan, n)
	items := make([]problemgen.Item, len(ps))
	for i, p := range ps {
		items[i] = p
	}
	return items
}
