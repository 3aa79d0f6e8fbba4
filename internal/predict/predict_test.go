package predict

import (
	"reflect"
	"testing"

	"github.com/abhisek/skillforge/internal/gap"
)

func TestWeeksToTarget(t *testing.T) {
	cases := []struct {
		name                    string
		current, target, hours  float64
		want                    float64
	}{
		{"typical gap", 3, 8, 10, 6.5},    // 5*3 / (1+1+0.3) = 6.52...
		{"already met", 8, 8, 10, 1},      // floor at 1 week
		{"overqualified", 9, 7, 10, 1},    // negative gap clamps to 0
		{"more hours is faster", 3, 8, 30, 3.5}, // 15 / 4.3 = 3.49
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := WeeksToTarget(c.current, c.target, c.hours); got != c.want {
				t.Errorf("WeeksToTarget(%v, %v, %v) = %v, want %v",
					c.current, c.target, c.hours, got, c.want)
			}
		})
	}
}

func TestWeeksMonotonicInHours(t *testing.T) {
	prev := WeeksToTarget(2, 9, 5)
	for hours := 10.0; hours <= 40; hours += 5 {
		w := WeeksToTarget(2, 9, hours)
		if w > prev {
			t.Fatalf("weeks should not grow with more hours: %v vs %v at %v h", w, prev, hours)
		}
		prev = w
	}
}

func TestLevelAtWeeks(t *testing.T) {
	if got := LevelAtWeeks(4, 4, 10); got != 6.2 {
		t.Errorf("LevelAtWeeks(4, 4, 10) = %v, want 6.2", got)
	}
	if got := LevelAtWeeks(9, 20, 40); got != 10 {
		t.Errorf("LevelAtWeeks should cap at 10, got %v", got)
	}
}

func TestRecommendResource(t *testing.T) {
	if got := RecommendResource(2, 6, 12); got != ResourceCourse {
		t.Errorf("beginner should get a course, got %v", got)
	}
	if got := RecommendResource(4, 6, 12); got != ResourceProject {
		t.Errorf("big gap should get a project, got %v", got)
	}
	if got := RecommendResource(5, 3, 4); got != ResourceTutorial {
		t.Errorf("default should be a tutorial, got %v", got)
	}
}

func recordsFor(skills ...string) []gap.Record {
	rs := make([]gap.Record, len(skills))
	for i, s := range skills {
		rs[i] = gap.Record{Skill: s, Gap: 1}
	}
	return rs
}

func TestSkillOrderDependencies(t *testing.T) {
	got := SkillOrder(recordsFor("Deep Learning", "Machine Learning", "Python", "Statistics"))
	want := []string{"Python", "Statistics", "Machine Learning", "Deep Learning"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SkillOrder = %v, want %v", got, want)
	}
}

func TestSkillOrderIgnoresAbsentPrereqs(t *testing.T) {
	// Machine Learning depends on Python, but Python is not a gap here,
	// so it does not constrain the order.
	got := SkillOrder(recordsFor("Machine Learning", "Docker"))
	want := []string{"Docker", "Machine Learning"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SkillOrder = %v, want %v", got, want)
	}
}

func TestSkillOrderChain(t *testing.T) {
	got := SkillOrder(recordsFor("Data Visualization", "SQL", "Python"))
	want := []string{"Python", "SQL", "Data Visualization"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SkillOrder = %v, want %v", got, want)
	}
}

func TestSkillOrderKeepsEverySkill(t *testing.T) {
	in := recordsFor("Deep Learning", "React", "SQL", "Python", "Git")
	got := SkillOrder(in)
	if len(got) != len(in) {
		t.Fatalf("SkillOrder dropped skills: %v", got)
	}
}
