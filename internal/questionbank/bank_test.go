package questionbank

import "testing"

func TestSeedInvariants(t *testing.T) {
	for _, skill := range Skills() {
		for _, tier := range Tiers() {
			for _, q := range Get(skill, tier) {
				if q.Skill != skill {
					t.Errorf("question %q indexed under %q but belongs to %q", q.Text, skill, q.Skill)
				}
				if q.Difficulty != tier {
					t.Errorf("question %q indexed at %s but authored at %s", q.Text, tier, q.Difficulty)
				}
				if len(q.Options) < 2 {
					t.Errorf("question %q has %d options", q.Text, len(q.Options))
				}
				if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
					t.Errorf("question %q: correct index %d out of range", q.Text, q.CorrectIndex)
				}
			}
		}
	}
}

func TestGetUnknownSkill(t *testing.T) {
	if qs := Get("Underwater Basket Weaving", Beginner); len(qs) != 0 {
		t.Errorf("expected empty pool for unknown skill, got %d", len(qs))
	}
	if HasSkill("Underwater Basket Weaving") {
		t.Error("HasSkill should be false for unknown skill")
	}
}

func TestGetReturnsCopy(t *testing.T) {
	a := Get("Python", Beginner)
	if len(a) == 0 {
		t.Fatal("expected beginner Python questions in the seed")
	}
	a[0].Text = "mutated"
	b := Get("Python", Beginner)
	if b[0].Text == "mutated" {
		t.Error("Get must not expose the underlying seed slice")
	}
}

func TestTierOrdering(t *testing.T) {
	tiers := Tiers()
	if len(tiers) != 4 {
		t.Fatalf("expected 4 tiers, got %d", len(tiers))
	}
	for i, d := range tiers {
		if TierIndex(d) != i {
			t.Errorf("TierIndex(%s) = %d, want %d", d, TierIndex(d), i)
		}
	}
}

func TestStepUpSaturates(t *testing.T) {
	cases := []struct {
		in, want Difficulty
	}{
		{Beginner, Intermediate},
		{Intermediate, Advanced},
		{Advanced, Expert},
		{Expert, Expert},
	}
	for _, c := range cases {
		if got := StepUp(c.in); got != c.want {
			t.Errorf("StepUp(%s) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestValidateQuestion(t *testing.T) {
	bad := []Question{
		{Skill: "", Difficulty: Beginner, Text: "x", Options: []string{"a", "b"}},
		{Skill: "S", Difficulty: Beginner, Text: "", Options: []string{"a", "b"}},
		{Skill: "S", Difficulty: "legendary", Text: "x", Options: []string{"a", "b"}},
		{Skill: "S", Difficulty: Beginner, Text: "x", Options: []string{"a"}},
		{Skill: "S", Difficulty: Beginner, Text: "x", Options: []string{"a", "b"}, CorrectIndex: 2},
		{Skill: "S", Difficulty: Beginner, Text: "x", Options: []string{"a", "b"}, CorrectIndex: -1},
	}
	for i, q := range bad {
		if err := validateQuestion(q); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}

	good := Question{Skill: "S", Difficulty: Expert, Text: "x", Options: []string{"a", "b"}, CorrectIndex: 1}
	if err := validateQuestion(good); err != nil {
		t.Errorf("unexpected error for valid question: %v", err)
	}
}
