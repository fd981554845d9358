package llm

import (
	"strings"
	"testing"
)

func TestParseAnalysis(t *testing.T) {
	response := `Here is the assessment you asked for:
{"overall_organization_score": 87.5, "organization_level": "GOOD", "strengths": ["clear sections"]}
Let me know if you need anything else.`

	analysis, err := parseAnalysis(response)
	if err != nil {
		t.Fatalf("parseAnalysis: %v", err)
	}
	if analysis.OverallScore != 87.5 {
		t.Errorf("expected score 87.5, got %v", analysis.OverallScore)
	}
	if analysis.Level != "GOOD" {
		t.Errorf("expected level GOOD, got %q", analysis.Level)
	}
	if !analysis.Shortlisted() {
		t.Error("score 87.5 should be shortlisted")
	}
}

func TestParseAnalysis_NoJSON(t *testing.T) {
	if _, err := parseAnalysis("sorry, I cannot help with that"); err == nil {
		t.Error("expected an error for a response without JSON")
	}
}

func TestParseAnalysis_Garbage(t *testing.T) {
	if _, err := parseAnalysis("{not json at all}"); err == nil {
		t.Error("expected an error for invalid JSON")
	}
}

func TestFallbackAnalysis(t *testing.T) {
	cvText := strings.Repeat("word ", 200) +
		"\nEmail: someone@example.com\nPhone: 0612345678\n" +
		"Experience\nEducation\nSkills\n"

	analysis := fallbackAnalysis(cvText)

	if analysis.Source != "rules" {
		t.Errorf("expected rules source, got %q", analysis.Source)
	}
	if analysis.OverallScore < 20 || analysis.OverallScore > 100 {
		t.Errorf("score out of range: %v", analysis.OverallScore)
	}
	if analysis.DetailedScores["contact_info"] != 60 {
		t.Errorf("contact present, expected 60, got %v", analysis.DetailedScores["contact_info"])
	}
	if analysis.Level != "FAIR" {
		t.Errorf("expected FAIR for a complete CV, got %q", analysis.Level)
	}
}

func TestFallbackAnalysis_Sparse(t *testing.T) {
	analysis := fallbackAnalysis("hello")

	if analysis.OverallScore != 20 {
		t.Errorf("floor score should be 20, got %v", analysis.OverallScore)
	}
	if analysis.Level != "POOR" {
		t.Errorf("expected POOR, got %q", analysis.Level)
	}
	if analysis.Shortlisted() {
		t.Error("sparse CV must not be shortlisted")
	}
}

func TestAnalyzeOrganization_Disabled(t *testing.T) {
	svc := NewService("none", "", "")

	analysis := svc.AnalyzeOrganization("Experience\nEducation\nSkills\nsomeone@example.com 0612345678", "cv.txt")
	if analysis == nil {
		t.Fatal("expected a fallback analysis")
	}
	if analysis.Source != "rules" {
		t.Errorf("disabled provider should use rules, got %q", analysis.Source)
	}
}
