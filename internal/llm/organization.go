package llm

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
)

// ShortlistThreshold is the organization score at or above which a CV joins
// the shortlist.
const ShortlistThreshold = 80.0

// promptTextLimit bounds how much CV text goes into the prompt.
const promptTextLimit = 4000

// OrganizationAnalysis is the structured assessment of how well a CV is
// organized and presented.
type OrganizationAnalysis struct {
	OverallScore   float64            `json:"overall_organization_score"`
	DetailedScores map[string]float64 `json:"detailed_scores"`
	Strengths      []string           `json:"strengths"`
	Weaknesses     []string           `json:"weaknesses"`
	Suggestions    []string           `json:"improvement_suggestions"`
	Level          string             `json:"organization_level"`
	Source         string             `json:"source"`
}

// Shortlisted reports whether the score clears the shortlist threshold.
func (a *OrganizationAnalysis) Shortlisted() bool {
	return a.OverallScore >= ShortlistThreshold
}

// AnalyzeOrganization scores the structure and presentation quality of a CV.
// Provider errors and unparseable responses degrade to the rule-based
// fallback instead of failing the caller.
func (s *Service) AnalyzeOrganization(cvText, filename string) *OrganizationAnalysis {
	if !s.Enabled() {
		return fallbackAnalysis(cvText)
	}

	response, err := s.Generate(organizationPrompt(cvText, filename))
	if err != nil {
		log.Printf("[LLM] organization analysis failed for %s: %v", filename, err)
		return fallbackAnalysis(cvText)
	}

	analysis, err := parseAnalysis(response)
	if err != nil {
		log.Printf("[LLM] unparseable organization response for %s: %v", filename, err)
		return fallbackAnalysis(cvText)
	}
	analysis.Source = string(s.provider)
	return analysis
}

func organizationPrompt(cvText, filename string) string {
	if len(cvText) > promptTextLimit {
		cvText = cvText[:promptTextLimit]
	}

	return fmt.Sprintf(`Analyze the following CV for organization and structure quality.
Provide scores from 0 to 100 for each category.

CV File: %s

CV Content:
"""
%s
"""

Evaluate these aspects:
1. OVERALL_STRUCTURE: How well-organized is the overall layout and flow?
2. CONTACT_INFO: Is contact information clearly presented and complete?
3. SECTIONS_CLARITY: Are education, experience and skills clearly defined?
4. CHRONOLOGICAL_ORDER: Is information in logical chronological order?
5. FORMATTING_CONSISTENCY: Is formatting consistent throughout?
6. READABILITY: How easy is it to scan and read quickly?
7. PROFESSIONAL_APPEARANCE: Does it look professional and polished?
8. COMPLETENESS: Are all important sections present?

Return ONLY valid JSON (no markdown, no explanation) with this structure:
{
  "overall_organization_score": 0,
  "detailed_scores": {
    "overall_structure": 0,
    "contact_info": 0,
    "sections_clarity": 0,
    "chronological_order": 0,
    "formatting_consistency": 0,
    "readability": 0,
    "professional_appearance": 0,
    "completeness": 0
  },
  "strengths": ["list of strengths"],
  "weaknesses": ["list of weaknesses"],
  "improvement_suggestions": ["list of specific suggestions"],
  "organization_level": "EXCELLENT|GOOD|FAIR|POOR"
}`, filename, cvText)
}

// parseAnalysis extracts the JSON object from a response that may carry
// surrounding prose: everything between the first '{' and the last '}'.
func parseAnalysis(response string) (*OrganizationAnalysis, error) {
	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object in response")
	}

	var analysis OrganizationAnalysis
	if err := json.Unmarshal([]byte(response[start:end+1]), &analysis); err != nil {
		return nil, fmt.Errorf("failed to parse analysis: %w", err)
	}
	return &analysis, nil
}

// fallbackAnalysis is the heuristic used when no LLM answer is available:
// score from text length, contact presence and recognizable sections.
func fallbackAnalysis(cvText string) *OrganizationAnalysis {
	lower := strings.ToLower(cvText)

	hasEmail := strings.Contains(cvText, "@")
	hasPhone := strings.ContainsAny(cvText, "0123456789")

	sectionsFound := 0
	for _, kw := range []string{"experience", "education", "skills", "work", "employment"} {
		if strings.Contains(lower, kw) {
			sectionsFound++
		}
	}

	score := float64(len(cvText) / 50)
	if hasEmail {
		score += 20
	}
	if hasPhone {
		score += 20
	}
	score += float64(sectionsFound * 10)
	if score > 100 {
		score = 100
	}
	if score < 20 {
		score = 20
	}

	contactScore := 30.0
	if hasEmail && hasPhone {
		contactScore = 60
	}

	level := "POOR"
	if score >= 60 {
		level = "FAIR"
	}

	return &OrganizationAnalysis{
		OverallScore: score,
		DetailedScores: map[string]float64{
			"overall_structure":       score,
			"contact_info":            contactScore,
			"sections_clarity":        minFloat(80, float64(sectionsFound*20)),
			"chronological_order":     50,
			"formatting_consistency":  50,
			"readability":             score,
			"professional_appearance": 50,
			"completeness":            minFloat(80, float64(sectionsFound*15)),
		},
		Strengths:   []string{"Basic CV structure detected"},
		Weaknesses:  []string{"Detailed analysis unavailable - using fallback scoring"},
		Suggestions: []string{"Consider professional CV formatting", "Ensure all sections are clearly defined"},
		Level:       level,
		Source:      "rules",
	}
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
