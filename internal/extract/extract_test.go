package extract

import (
	"testing"
	"time"
)

func TestYearsOfExperienceExplicit(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"5+ years of experience in Python", 5},
		{"3 years experience with Java", 3},
		{"over 10 years of experience leading teams", 10},
		{"experience spanning 7 years across fintech", 7},
		{"2 years exp and 6 years of experience", 6},
	}
	for _, c := range cases {
		if got := YearsOfExperience(c.text); got != c.want {
			t.Errorf("YearsOfExperience(%q) = %d, want %d", c.text, got, c.want)
		}
	}
}

func TestYearsOfExperienceFromDateRanges(t *testing.T) {
	got := YearsOfExperience("Acme Corp 2015 - 2019\nGlobex 2019 - 2022")
	if got != 7 {
		t.Errorf("summed date ranges = %d, want 7", got)
	}
}

func TestYearsOfExperiencePresentRange(t *testing.T) {
	nowYear := time.Now().Year()
	got, ok := yearsFromRanges("engineer 2020 - present", nowYear)
	if !ok {
		t.Fatal("expected a range match")
	}
	if want := nowYear - 2020; got != want {
		t.Errorf("present range = %d, want %d", got, want)
	}
}

func TestYearsOfExperienceRangeFloor(t *testing.T) {
	if got := YearsOfExperience("intern 2023 - 2023"); got != 1 {
		t.Errorf("same-year range = %d, want floor of 1", got)
	}
}

func TestYearsOfExperienceDefault(t *testing.T) {
	if got := YearsOfExperience("motivated self-starter, fast learner"); got != DefaultExperienceYears {
		t.Errorf("no signal = %d, want default %d", got, DefaultExperienceYears)
	}
}

func TestRequiredYearsExplicit(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"5+ years of experience required", 5},
		{"minimum 3 years in a similar role", 3},
		{"4 years of commercial development", 4},
	}
	for _, c := range cases {
		got, ok := RequiredYears(c.text)
		if !ok {
			t.Errorf("RequiredYears(%q): expected determined", c.text)
			continue
		}
		if got != c.want {
			t.Errorf("RequiredYears(%q) = %d, want %d", c.text, got, c.want)
		}
	}
}

func TestRequiredYearsSeniorityFallback(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"Looking for a Senior engineer", 5},
		{"Principal architect role", 5},
		{"Mid-level developer position", 3},
		{"Junior developer, no experience necessary", 1},
		{"Graduate scheme opening", 1},
	}
	for _, c := range cases {
		got, ok := RequiredYears(c.text)
		if !ok {
			t.Errorf("RequiredYears(%q): expected seniority fallback", c.text)
			continue
		}
		if got != c.want {
			t.Errorf("RequiredYears(%q) = %d, want %d", c.text, got, c.want)
		}
	}
}

func TestRequiredYearsUndetermined(t *testing.T) {
	if _, ok := RequiredYears("Join our friendly team of developers"); ok {
		t.Error("expected undetermined for text without signals")
	}
}

func TestRequiredSkillsInsertionOrder(t *testing.T) {
	got := RequiredSkills("We use Docker and Python with some SQL reporting")
	want := []string{"python", "sql", "docker"}
	if len(got) != len(want) {
		t.Fatalf("RequiredSkills = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("RequiredSkills[%d] = %q, want %q (reference order)", i, got[i], want[i])
		}
	}
}

func TestRequiredSkillsEmpty(t *testing.T) {
	if got := RequiredSkills("Warehouse operative, forklift licence needed"); len(got) != 0 {
		t.Errorf("RequiredSkills = %v, want none", got)
	}
}
