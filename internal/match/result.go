package match

import "time"

// MatchLevel buckets an overall score for display and triage.
type MatchLevel string

const (
	LevelExcellent MatchLevel = "EXCELLENT"
	LevelGood      MatchLevel = "GOOD"
	LevelFair      MatchLevel = "FAIR"
	LevelPoor      MatchLevel = "POOR"
)

// levelFor maps an overall score onto its bucket. Boundaries are inclusive
// on the lower edge: exactly 85 is EXCELLENT.
func levelFor(score float64) MatchLevel {
	switch {
	case score >= 85:
		return LevelExcellent
	case score >= 70:
		return LevelGood
	case score >= 55:
		return LevelFair
	default:
		return LevelPoor
	}
}

// SkillsFactor details the skills dimension of a match.
type SkillsFactor struct {
	Score           float64 `json:"skills_match_score"`
	MatchedCount    int     `json:"matched_skills_count"`
	RequiredCount   int     `json:"required_skills_count"`
	CoveragePercent float64 `json:"skills_coverage_percentage"`
}

// ExperienceFactor details the experience dimension of a match.
type ExperienceFactor struct {
	Score  float64 `json:"experience_match_score"`
	Gap    float64 `json:"experience_gap"`
	Status string  `json:"experience_status"`
}

// EducationFactor details the education dimension of a match.
type EducationFactor struct {
	Score  float64 `json:"education_match_score"`
	Status string  `json:"education_status"`
}

// RelevanceFactor details the content-relevance dimension of a match.
type RelevanceFactor struct {
	Score           float64  `json:"content_relevance_score"`
	MatchedKeywords []string `json:"matched_keywords"`
	TotalKeywords   int      `json:"total_keywords"`
}

// MatchResult is the full four-factor evaluation of one candidate against
// one job.
type MatchResult struct {
	OverallScore float64          `json:"overall_match_score"`
	Level        MatchLevel       `json:"match_level"`
	Skills       SkillsFactor     `json:"skills_match"`
	Experience   ExperienceFactor `json:"experience_match"`
	Education    EducationFactor  `json:"education_match"`
	Relevance    RelevanceFactor  `json:"content_relevance"`
	JobTitle     string           `json:"job_title"`
	EvaluatedAt  time.Time        `json:"analysis_timestamp"`
}
