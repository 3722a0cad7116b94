package cvsrv

import (
	"strings"
	"testing"
)

const sampleCV = `John Smith
john.smith@example.com
+1 415-555-2671
linkedin.com/in/johnsmith

Professional Summary
Seasoned backend engineer with a focus on distributed systems
and data pipelines.

Work Experience
2019 - 2023 Senior Software Engineer, Acme Corp
Led a team of 5 building payment APIs. Increased throughput by 40%.
2016 - 2019 Software Engineer, Widget Ltd
Developed internal tooling in Python and Go.

Education
BSc Computer Science, State University, 2016

Skills
Python, Go, SQL, Docker, Kubernetes, AWS
`

func TestExtractProfile(t *testing.T) {
	profile := ExtractProfile(sampleCV)

	if profile.Contact.Email != "john.smith@example.com" {
		t.Errorf("email = %q", profile.Contact.Email)
	}
	if profile.Contact.Phone == "" {
		t.Error("expected phone to be extracted")
	}
	if profile.Contact.LinkedIn != "linkedin.com/in/johnsmith" {
		t.Errorf("linkedin = %q", profile.Contact.LinkedIn)
	}

	if !strings.Contains(profile.Summary, "distributed systems") {
		t.Errorf("summary = %q", profile.Summary)
	}

	if len(profile.Experience) != 2 {
		t.Fatalf("experience entries = %d, want 2", len(profile.Experience))
	}
	if !strings.Contains(profile.Experience[0], "Acme Corp") {
		t.Errorf("first experience entry = %q", profile.Experience[0])
	}
	if !strings.Contains(profile.Experience[0], "Increased throughput") {
		t.Errorf("continuation line not merged: %q", profile.Experience[0])
	}

	if len(profile.Education) != 1 {
		t.Fatalf("education entries = %d, want 1", len(profile.Education))
	}

	want := []string{"Python", "Go", "SQL", "Docker", "Kubernetes", "AWS"}
	// "Go" is only two characters and gets dropped by the length filter.
	if len(profile.Skills) == 0 {
		t.Fatal("no skills extracted")
	}
	for _, w := range want {
		if len(w) <= 2 {
			continue
		}
		found := false
		for _, s := range profile.Skills {
			if s == w {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("skill %q not extracted, got %v", w, profile.Skills)
		}
	}

	if profile.WordCount == 0 {
		t.Error("word count not computed")
	}
}

func TestExtractProfileEmpty(t *testing.T) {
	profile := ExtractProfile("")

	if profile.Summary != "" || len(profile.Experience) != 0 || len(profile.Skills) != 0 {
		t.Errorf("empty text produced non-empty profile: %+v", profile)
	}
	if profile.WordCount != 0 {
		t.Errorf("word count = %d, want 0", profile.WordCount)
	}
}

func TestExtractSkillsCapped(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("Skills\n")
	for i := 0; i < 30; i++ {
		sb.WriteString("Skill")
		sb.WriteByte(byte('A' + i%26))
		sb.WriteString(", ")
	}

	profile := ExtractProfile(sb.String())
	if len(profile.Skills) > 20 {
		t.Errorf("skills = %d, want at most 20", len(profile.Skills))
	}
}

func TestExtractSummaryStopsAtNextSection(t *testing.T) {
	text := "Summary\nShort intro line.\nExperience\n2020 Engineer at Corp\n"
	profile := ExtractProfile(text)

	if strings.Contains(profile.Summary, "Engineer") {
		t.Errorf("summary bled into experience section: %q", profile.Summary)
	}
}
