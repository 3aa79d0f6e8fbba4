package gap

import (
	"reflect"
	"testing"
)

func TestComputeGapsEndToEnd(t *testing.T) {
	// Role requires SQL:8, user has nothing.
	records := ComputeGaps(map[string]float64{}, map[string]float64{"SQL": 8})
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	r := records[0]
	if r.Current != 0 || r.Required != 8 || r.Gap != 8 {
		t.Errorf("record = %+v, want current 0, required 8, gap 8", r)
	}
	if r.PriorityScore != 6.4 {
		t.Errorf("priority = %v, want 6.4", r.PriorityScore)
	}
	if got := Readiness(map[string]float64{}, map[string]float64{"SQL": 8}); got != 0 {
		t.Errorf("readiness = %v, want 0", got)
	}
}

func TestComputeGapsSortedByPriority(t *testing.T) {
	levels := map[string]float64{"Python": 7, "SQL": 2, "Git": 5}
	reqs := map[string]float64{"Python": 8, "SQL": 8, "Git": 6}

	records := ComputeGaps(levels, reqs)
	for i := 1; i < len(records); i++ {
		if records[i-1].PriorityScore < records[i].PriorityScore {
			t.Errorf("records not sorted: %v before %v",
				records[i-1].PriorityScore, records[i].PriorityScore)
		}
	}
	if records[0].Skill != "SQL" {
		t.Errorf("highest priority skill = %s, want SQL", records[0].Skill)
	}
}

func TestZeroRequirementNeverGaps(t *testing.T) {
	records := ComputeGaps(map[string]float64{"Agile": 0}, map[string]float64{"Agile": 0})
	r := records[0]
	if r.Gap != 0 || r.PriorityScore != 0 {
		t.Errorf("required=0 must give gap=0 priority=0, got %+v", r)
	}
}

func TestPriorityZeroIffGapZero(t *testing.T) {
	levels := map[string]float64{"A": 10, "B": 3}
	reqs := map[string]float64{"A": 5, "B": 7}
	for _, r := range ComputeGaps(levels, reqs) {
		if (r.Gap == 0) != (r.PriorityScore == 0) {
			t.Errorf("%s: gap %v but priority %v", r.Skill, r.Gap, r.PriorityScore)
		}
	}
}

func TestReadinessBounds(t *testing.T) {
	reqs := map[string]float64{"Python": 8, "SQL": 6}

	if got := Readiness(map[string]float64{"Python": 10, "SQL": 10}, reqs); got != 100 {
		t.Errorf("fully qualified readiness = %v, want 100", got)
	}
	// Surplus on one skill must not compensate a gap on another.
	if got := Readiness(map[string]float64{"Python": 10, "SQL": 3}, reqs); got >= 100 {
		t.Errorf("readiness = %v, want < 100 with an open gap", got)
	}
	if got := Readiness(map[string]float64{}, map[string]float64{}); got != 0 {
		t.Errorf("readiness with no requirements = %v, want 0", got)
	}
	for _, levels := range []map[string]float64{nil, {"Python": 4.5}, {"Python": 20}} {
		got := Readiness(levels, reqs)
		if got < 0 || got > 100 {
			t.Errorf("readiness %v out of [0,100] for levels %v", got, levels)
		}
	}
}

func TestReadinessHundredOnlyWhenAllMet(t *testing.T) {
	reqs := map[string]float64{"A": 4, "B": 4}
	if got := Readiness(map[string]float64{"A": 4, "B": 3.9}, reqs); got == 100 {
		t.Error("readiness must not be 100 while any skill is below requirement")
	}
}

func TestStrengths(t *testing.T) {
	levels := map[string]float64{"Python": 9, "SQL": 5}
	reqs := map[string]float64{"Python": 8, "SQL": 7}

	strengths := Strengths(levels, reqs)
	if len(strengths) != 1 {
		t.Fatalf("expected 1 strength, got %d", len(strengths))
	}
	s := strengths[0]
	if s.Skill != "Python" || s.Surplus != 1 {
		t.Errorf("strength = %+v, want Python surplus 1", s)
	}
}

func TestComputeGapsIdempotent(t *testing.T) {
	levels := map[string]float64{"Python": 3.5, "SQL": 6}
	reqs := map[string]float64{"Python": 8, "SQL": 7, "Git": 5}

	first := ComputeGaps(levels, reqs)
	second := ComputeGaps(levels, reqs)
	if !reflect.DeepEqual(first, second) {
		t.Error("ComputeGaps is not deterministic for identical inputs")
	}
}

func TestMissingLevelsDefaultToZero(t *testing.T) {
	records := ComputeGaps(nil, map[string]float64{"Docker": 6})
	if records[0].Current != 0 || records[0].Gap != 6 {
		t.Errorf("missing level should default to 0, got %+v", records[0])
	}
}
