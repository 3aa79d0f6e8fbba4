package catalog

import (
	"testing"

	"github.com/abhisek/skillforge/internal/questionbank"
)

func TestGetKnownRole(t *testing.T) {
	r, err := Get("Data Scientist")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if r.Requirements["Python"] != 8 {
		t.Errorf("Data Scientist Python requirement = %v, want 8", r.Requirements["Python"])
	}
}

func TestGetUnknownRole(t *testing.T) {
	if _, err := Get("Prompt Whisperer"); err == nil {
		t.Error("expected error for unknown role")
	}
}

func TestGetReturnsCopy(t *testing.T) {
	a, _ := Get("Data Analyst")
	a.Requirements["SQL"] = 1
	b, _ := Get("Data Analyst")
	if b.Requirements["SQL"] != 8 {
		t.Error("Get must not expose shared requirement maps")
	}
}

func TestRequiredSkillsSorted(t *testing.T) {
	r, _ := Get("Backend Developer")
	skills := r.RequiredSkills()
	if len(skills) != len(r.Requirements) {
		t.Fatalf("RequiredSkills returned %d names for %d requirements", len(skills), len(r.Requirements))
	}
	for i := 1; i < len(skills); i++ {
		if skills[i-1] >= skills[i] {
			t.Errorf("skills not sorted: %q before %q", skills[i-1], skills[i])
		}
	}
}

// Every skill a role can require should have quiz coverage, so a full
// role quiz never comes back empty.
func TestRoleSkillsHaveQuestionCoverage(t *testing.T) {
	for _, role := range Roles() {
		for _, skill := range role.RequiredSkills() {
			if !questionbank.HasSkill(skill) {
				t.Errorf("role %q requires %q but the question bank has no questions for it", role.Name, skill)
			}
		}
	}
}

func TestAliasesLowercase(t *testing.T) {
	for skill, aliases := range Aliases() {
		if len(aliases) == 0 {
			t.Errorf("skill %q has no aliases", skill)
		}
		for _, a := range aliases {
			for _, ch := range a {
				if ch >= 'A' && ch <= 'Z' {
					t.Errorf("alias %q for %q must be lowercase", a, skill)
				}
			}
		}
	}
}
