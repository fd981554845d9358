package report

import (
	"bytes"
	"strings"
	"testing"

	"cv-filter/internal/normalize"
)

func batch() []*normalize.Candidate {
	return []*normalize.Candidate{
		{
			Name:                 "Alice Martin",
			Skills:               []string{"Java", "Spring", "Docker"},
			TotalExperienceYears: 8,
			EducationLevel:       normalize.LevelMaster,
		},
		{
			Name:                 "Bob Durand",
			Skills:               []string{"Java", "Python"},
			TotalExperienceYears: 3,
			EducationLevel:       normalize.LevelBachelor,
		},
		{
			// Unusable record: nothing extracted.
			Name: "",
		},
	}
}

func TestBuild(t *testing.T) {
	stats := Build(batch())

	if stats.TotalRecords != 3 {
		t.Errorf("total = %d, want 3", stats.TotalRecords)
	}
	if stats.WithName != 2 || stats.WithSkills != 2 || stats.WithExperience != 2 || stats.WithEducation != 2 {
		t.Errorf("coverage counts wrong: %+v", stats)
	}

	if len(stats.TopSkills) == 0 || stats.TopSkills[0].Skill != "Java" || stats.TopSkills[0].Count != 2 {
		t.Errorf("expected Java on top with count 2, got %+v", stats.TopSkills)
	}

	if stats.MinExperienceYears != 0 || stats.MaxExperienceYears != 8 {
		t.Errorf("experience bounds wrong: min=%v max=%v", stats.MinExperienceYears, stats.MaxExperienceYears)
	}
	wantAvg := (8.0 + 3.0) / 3.0
	if diff := stats.AvgExperienceYears - wantAvg; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("avg = %v, want %v", stats.AvgExperienceYears, wantAvg)
	}

	if stats.EducationCounts["MASTER"] != 1 || stats.EducationCounts["NONE_SPECIFIED"] != 1 {
		t.Errorf("education distribution wrong: %v", stats.EducationCounts)
	}
}

func TestBuild_Empty(t *testing.T) {
	stats := Build(nil)

	if stats.TotalRecords != 0 || stats.AvgExperienceYears != 0 || len(stats.TopSkills) != 0 {
		t.Errorf("empty batch should produce zero stats, got %+v", stats)
	}
}

func TestStats_Write(t *testing.T) {
	var buf bytes.Buffer
	if err := Build(batch()).Write(&buf); err != nil {
		t.Fatalf("write: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"CV DATA PROCESSING REPORT",
		"Total records processed: 3",
		"Java: 2",
		"Average experience: 3.7 years",
		"MASTER: 1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q in:\n%s", want, out)
		}
	}
}
