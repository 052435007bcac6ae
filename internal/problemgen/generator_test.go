package problemgen

import (
	"math/rand/v2"
	"testing"

	"github.com/abhisek/kakezan/internal/catalog"
)

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func assertValidSet(t *testing.T, p catalog.Profile, qs []Question) {
	t.Helper()
	if len(qs) > p.Count {
		t.Fatalf("len = %d exceeds count %d", len(qs), p.Count)
	}
	seen := make(map[Question]bool)
	for _, q := range qs {
		if seen[q] {
			t.Errorf("duplicate pair %s", q.Key())
		}
		seen[q] = true
		if q.A < p.AMin || q.A > p.AMax || q.B < p.BMin || q.B > p.BMax {
			t.Errorf("pair %s outside ranges a=[%d,%d] b=[%d,%d]", q.Key(), p.AMin, p.AMax, p.BMin, p.BMax)
		}
	}
}

func TestGenerate_CatalogProfiles(t *testing.T) {
	for _, p := range catalog.Profiles() {
		for seed := uint64(0); seed < 50; seed++ {
			qs := Generate(seeded(seed), p)
			assertValidSet(t, p, qs)
			if p.DistinctPairs() >= p.Count && len(qs) != p.Count {
				t.Fatalf("profile %s seed %d: len = %d, want %d", p.ID, seed, len(qs), p.Count)
			}
		}
	}
}

func TestGenerate_ExactSupply(t *testing.T) {
	p := catalog.Profile{AMin: 2, AMax: 2, BMin: 2, BMax: 4, Count: 3}

	for seed := uint64(0); seed < 20; seed++ {
		qs := Generate(seeded(seed), p)
		if len(qs) != 3 {
			t.Fatalf("seed %d: len = %d, want 3", seed, len(qs))
		}
		got := map[Question]int{}
		for _, q := range qs {
			got[q]++
		}
		for _, want := range []Question{{2, 2}, {2, 3}, {2, 4}} {
			if got[want] != 1 {
				t.Errorf("seed %d: pair %s appears %d times, want 1", seed, want.Key(), got[want])
			}
		}
	}
}

func TestGenerate_UnderSupplyReturnsPartialSet(t *testing.T) {
	p := catalog.Profile{AMin: 2, AMax: 4, BMin: 2, BMax: 4, Count: 20}

	qs := Generate(seeded(7), p)
	assertValidSet(t, p, qs)
	if len(qs) != 9 {
		t.Errorf("len = %d, want all 9 distinct pairs", len(qs))
	}
}

func TestGenerate_SinglePair(t *testing.T) {
	p := catalog.Profile{AMin: 5, AMax: 5, BMin: 5, BMax: 5, Count: 8}

	qs := Generate(seeded(1), p)
	if len(qs) != 1 || qs[0] != (Question{5, 5}) {
		t.Errorf("got %v, want [5x5]", qs)
	}
}

func TestGenerate_DegenerateInputs(t *testing.T) {
	tests := []struct {
		name string
		p    catalog.Profile
	}{
		{"zero count", catalog.Profile{AMin: 1, AMax: 9, BMin: 1, BMax: 9, Count: 0}},
		{"inverted a", catalog.Profile{AMin: 5, AMax: 4, BMin: 1, BMax: 9, Count: 3}},
		{"inverted b", catalog.Profile{AMin: 1, AMax: 9, BMin: 9, BMax: 1, Count: 3}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if qs := Generate(seeded(3), tc.p); len(qs) != 0 {
				t.Errorf("got %d questions, want none", len(qs))
			}
		})
	}
}

func TestGenerate_NilRandUsesGlobalSource(t *testing.T) {
	p := catalog.ProfileOrDefault(catalog.StepB)
	qs := Generate(nil, p)
	assertValidSet(t, p, qs)
	if len(qs) != p.Count {
		t.Errorf("len = %d, want %d", len(qs), p.Count)
	}
}

func TestGenerate_FreshSetsDiffer(t *testing.T) {
	p := catalog.ProfileOrDefault(catalog.StepD)
	a := Generate(seeded(1), p)
	b := Generate(seeded(2), p)

	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical sessions")
	}
}

func TestQuestion_Hints(t *testing.T) {
	hints := Question{A: 3, B: 4}.Hints()
	if len(hints) != MaxHintLevel {
		t.Fatalf("len = %d, want %d", len(hints), MaxHintLevel)
	}
	if hints[1] != "3 + 3 + 3 + 3" {
		t.Errorf("expansion = %q", hints[1])
	}
	if hints[2] != "3 × 4 = 12" {
		t.Errorf("equation = %q", hints[2])
	}
}
