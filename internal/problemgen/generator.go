package problemgen

import (
	"math/rand/v2"

	"github.com/abhisek/kakezan/internal/catalog"
)

// MaxAttempts bounds the reject-and-retry sampling in Generate.
const MaxAttempts = 2000

// Generate draws up to p.Count distinct (a, b) pairs uniformly from the
// profile's inclusive ranges. The returned order is the presentation order.
//
// Sampling stops after MaxAttempts draws. When the ranges hold fewer
// distinct pairs than p.Count (a 3×3 range supplies at most 9), or the
// ceiling is reached first, the partial set is returned and the session
// simply runs shorter. This is intended degraded behavior, not an error.
// Inverted ranges yield an empty set.
//
// A nil rng uses the runtime-seeded global source.
func Generate(rng *rand.Rand, p catalog.Profile) []Question {
	if p.Count <= 0 || p.AMin > p.AMax || p.BMin > p.BMax {
		return nil
	}

	seen := make(map[Question]struct{}, p.Count)
	out := make([]Question, 0, p.Count)

	for attempts := 0; len(out) < p.Count && attempts < MaxAttempts; attempts++ {
		q := Question{
			A: randInt(rng, p.AMin, p.AMax),
			B: randInt(rng, p.BMin, p.BMax),
		}
		if _, dup := seen[q]; dup {
			continue
		}
		seen[q] = struct{}{}
		out = append(out, q)
	}

	return out
}

// randInt returns a uniform integer in [min, max]. Requires min <= max.
func randInt(rng *rand.Rand, min, max int) int {
	n := max - min + 1
	if rng == nil {
		return min + rand.IntN(n)
	}
	return min + rng.IntN(n)
}
