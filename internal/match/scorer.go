package match

import (
	"math"
	"strings"
	"time"

	"cv-filter/internal/normalize"
)

// Factor weights. Skills dominate, then experience, education, and finally
// textual relevance.
const (
	weightSkills     = 0.40
	weightExperience = 0.25
	weightEducation  = 0.20
	weightRelevance  = 0.15
)

// probeKeywords are the tech and seniority terms the relevance factor looks
// for. A term only counts when the job mentions it, so the list can stay
// broad without skewing unrelated jobs.
var probeKeywords = []string{
	"java", "python", "go", "javascript", "react", "angular", "spring",
	"node", "docker", "kubernetes", "aws", "sql",
	"senior", "junior", "lead", "developer", "engineer", "architect",
	"devops", "fullstack",
}

// Scorer evaluates candidates against job requirements. Safe for concurrent
// use; it holds no mutable state beyond an injected clock.
type Scorer struct {
	now func() time.Time
}

func NewScorer() *Scorer {
	return &Scorer{now: time.Now}
}

// NewScorerAt pins the scorer's clock for reproducible timestamps.
func NewScorerAt(now func() time.Time) *Scorer {
	if now == nil {
		now = time.Now
	}
	return &Scorer{now: now}
}

// Score computes the weighted four-factor match of a candidate against a
// job. The requirement must have passed Validate.
func (s *Scorer) Score(c *normalize.Candidate, job *JobRequirement) *MatchResult {
	skills := s.scoreSkills(c.Skills, job.RequiredSkills)
	experience := s.scoreExperience(c.TotalExperienceYears, job.MinExperienceYears)
	education := s.scoreEducation(c.EducationLevel, job.RequiredDegree)
	relevance := s.scoreRelevance(c, job)

	overall := skills.Score*weightSkills +
		experience.Score*weightExperience +
		education.Score*weightEducation +
		relevance.Score*weightRelevance

	return &MatchResult{
		OverallScore: round2(overall),
		Level:        levelFor(overall),
		Skills:       skills,
		Experience:   experience,
		Education:    education,
		Relevance:    relevance,
		JobTitle:     job.Title,
		EvaluatedAt:  s.now(),
	}
}

// scoreSkills gives a neutral 50 when either side has no skill data, so a
// missing section neither sinks nor inflates the candidate. Otherwise the
// score is a base 50 plus half the coverage percentage.
func (s *Scorer) scoreSkills(cvSkills, required []string) SkillsFactor {
	if len(cvSkills) == 0 || len(required) == 0 {
		return SkillsFactor{
			Score:         50,
			RequiredCount: len(required),
		}
	}

	matched := 0
	for _, req := range required {
		if skillListed(cvSkills, req) {
			matched++
		}
	}

	coverage := float64(matched) / float64(len(required)) * 100
	return SkillsFactor{
		Score:           round2(math.Min(50+coverage*0.5, 100)),
		MatchedCount:    matched,
		RequiredCount:   len(required),
		CoveragePercent: round2(coverage),
	}
}

// skillListed reports whether a required skill appears in the candidate's
// list, counting case-insensitive containment in either direction so "JS"
// requirements match "JavaScript" entries and vice versa.
func skillListed(cvSkills []string, required string) bool {
	req := strings.ToLower(strings.TrimSpace(required))
	for _, cs := range cvSkills {
		cs = strings.ToLower(strings.TrimSpace(cs))
		if cs == "" {
			continue
		}
		if strings.Contains(cs, req) || strings.Contains(req, cs) {
			return true
		}
	}
	return false
}

func (s *Scorer) scoreExperience(actual, required float64) ExperienceFactor {
	if required <= 0 {
		return ExperienceFactor{Score: 100, Status: "No requirement"}
	}

	if actual >= required {
		bonus := math.Min((actual-required)*5, 20)
		return ExperienceFactor{
			Score:  round2(math.Min(80+bonus, 100)),
			Status: "Exceeds requirement",
		}
	}

	return ExperienceFactor{
		Score:  round2(actual / required * 80),
		Gap:    round2(required - actual),
		Status: "Below requirement",
	}
}

func (s *Scorer) scoreEducation(actual, required normalize.Level) EducationFactor {
	if required == normalize.LevelNone {
		return EducationFactor{Score: 100, Status: "No requirement"}
	}

	if actual >= required {
		bonus := float64(actual-required) * 10
		return EducationFactor{
			Score:  round2(math.Min(80+bonus, 100)),
			Status: "Meets or exceeds requirement",
		}
	}

	return EducationFactor{
		Score:  round2(float64(actual) / float64(required) * 70),
		Status: "Below requirement",
	}
}

// scoreRelevance probes the job text for known tech and seniority keywords,
// then checks how many of those the candidate's combined text also carries.
// A job mentioning none of the probes scores a neutral 75.
func (s *Scorer) scoreRelevance(c *normalize.Candidate, job *JobRequirement) RelevanceFactor {
	jobText := strings.ToLower(job.Title + " " + job.Description)
	cvText := strings.ToLower(strings.Join([]string{
		c.SkillsText,
		c.ExperienceText,
		c.EducationText,
		c.Description,
	}, " "))

	var jobKeywords, matched []string
	for _, kw := range probeKeywords {
		if !strings.Contains(jobText, kw) {
			continue
		}
		jobKeywords = append(jobKeywords, kw)
		if strings.Contains(cvText, kw) {
			matched = append(matched, kw)
		}
	}

	if len(jobKeywords) == 0 {
		return RelevanceFactor{Score: 75}
	}

	return RelevanceFactor{
		Score:           round2(float64(len(matched)) / float64(len(jobKeywords)) * 100),
		MatchedKeywords: matched,
		TotalKeywords:   len(jobKeywords),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
