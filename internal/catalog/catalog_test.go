package catalog

import "testing"

func TestPhraseCatalog_Complete(t *testing.T) {
	for dan := MinDan; dan <= MaxDan; dan++ {
		for m := MinDan; m <= MaxDan; m++ {
			p, ok := LookupPhrase(dan, m)
			if !ok {
				t.Fatalf("LookupPhrase(%d, %d) missing", dan, m)
			}
			if p.Dan != dan || p.Multiplier != m {
				t.Errorf("LookupPhrase(%d, %d) keyed as (%d, %d)", dan, m, p.Dan, p.Multiplier)
			}
			if p.Result != dan*m {
				t.Errorf("LookupPhrase(%d, %d).Result = %d, want %d", dan, m, p.Result, dan*m)
			}
			if p.Reading == "" {
				t.Errorf("LookupPhrase(%d, %d) has empty reading", dan, m)
			}
		}
	}
}

func TestLookupPhrase_OutOfRange(t *testing.T) {
	cases := [][2]int{{0, 1}, {10, 1}, {1, 0}, {1, 10}, {-3, 4}}
	for _, c := range cases {
		if _, ok := LookupPhrase(c[0], c[1]); ok {
			t.Errorf("LookupPhrase(%d, %d) should be missing", c[0], c[1])
		}
	}
}

func TestPhrasesForDan_SortedByMultiplier(t *testing.T) {
	list := PhrasesForDan(6)
	if len(list) != 9 {
		t.Fatalf("len = %d, want 9", len(list))
	}
	for i, p := range list {
		if p.Dan != 6 {
			t.Errorf("entry %d dan = %d, want 6", i, p.Dan)
		}
		if p.Multiplier != i+1 {
			t.Errorf("entry %d multiplier = %d, want %d", i, p.Multiplier, i+1)
		}
	}

	// Mutating the returned slice must not touch the catalog.
	list[0].Reading = "changed"
	if p, _ := LookupPhrase(6, 1); p.Reading == "changed" {
		t.Error("PhrasesForDan leaked catalog storage")
	}

	if PhrasesForDan(0) != nil {
		t.Error("PhrasesForDan(0) should be nil")
	}
}

func TestIntroText(t *testing.T) {
	if got := IntroText(6); got != "ろくのだん、いくよ" {
		t.Errorf("IntroText(6) = %q", got)
	}
	if got := DanName(12); got != "12" {
		t.Errorf("DanName(12) = %q, want digits", got)
	}
}

func TestProfiles(t *testing.T) {
	ps := Profiles()
	if len(ps) != 4 {
		t.Fatalf("len = %d, want 4", len(ps))
	}
	for _, p := range ps {
		if p.AMin > p.AMax || p.BMin > p.BMax {
			t.Errorf("profile %s has inverted range", p.ID)
		}
		if p.DistinctPairs() < p.Count {
			t.Errorf("profile %s cannot supply %d distinct pairs", p.ID, p.Count)
		}
		got, ok := LookupProfile(p.ID)
		if !ok || got.ID != p.ID {
			t.Errorf("LookupProfile(%s) failed", p.ID)
		}
	}

	if _, ok := LookupProfile("Z"); ok {
		t.Error("unknown profile should not be found")
	}
	if got := ProfileOrDefault("Z"); got.ID != StepA {
		t.Errorf("ProfileOrDefault(Z) = %s, want A", got.ID)
	}
}
