package resume

import "testing"

func TestExtractEmpty(t *testing.T) {
	if got := Extract(""); len(got) != 0 {
		t.Fatalf("empty text should yield no skills, got %v", got)
	}
}

func TestExtractSingleMention(t *testing.T) {
	got := Extract("Built data pipelines in Python.")
	if got["Python"] != 4 {
		t.Fatalf("Python = %v, want base level 4", got["Python"])
	}
}

func TestExtractMultipleAliases(t *testing.T) {
	// python + pandas + numpy = 3 distinct aliases -> 4 + 2 = 6.
	got := Extract("Used python with pandas and numpy daily.")
	if got["Python"] != 6 {
		t.Fatalf("Python = %v, want 6", got["Python"])
	}
}

func TestExtractAliasCap(t *testing.T) {
	got := Extract("python django flask fastapi pandas numpy scipy streamlit")
	if got["Python"] != 8 {
		t.Fatalf("Python = %v, want cap 8 without boost", got["Python"])
	}
}

func TestExtractBoostWord(t *testing.T) {
	got := Extract("Senior engineer, shipped Python services.")
	if got["Python"] != 5 {
		t.Fatalf("Python = %v, want 4+1 boost", got["Python"])
	}
}

func TestExtractBoostCap(t *testing.T) {
	got := Extract("Expert in python django flask fastapi pandas numpy scipy streamlit")
	if got["Python"] != 9 {
		t.Fatalf("Python = %v, want cap 9 with boost", got["Python"])
	}
}

func TestExtractBoostIsWholeWord(t *testing.T) {
	// "leading" must not count as the boost word "lead".
	got := Extract("Leading-edge tooling around Python.")
	if got["Python"] != 4 {
		t.Fatalf("Python = %v, want 4 (no boost from substring)", got["Python"])
	}
}

func TestExtractCaseInsensitive(t *testing.T) {
	got := Extract("PYTHON and SQL")
	if got["Python"] != 4 || got["SQL"] != 4 {
		t.Fatalf("got %v, want Python and SQL at 4", got)
	}
}

func TestExtractMultipleSkills(t *testing.T) {
	got := Extract("React frontends talking to SQL databases, deployed via docker.")
	for _, skill := range []string{"React", "SQL", "Docker"} {
		if _, ok := got[skill]; !ok {
			t.Errorf("missing %s in %v", skill, got)
		}
	}
}
