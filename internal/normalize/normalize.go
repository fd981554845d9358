// Package normalize turns the free-text fields of a parsed CV into
// structured, comparable values: canonical skill lists, rewritten date
// ranges, estimated experience years, a classified education level and a
// salary expectation.
package normalize

import (
	"regexp"
	"strings"
	"time"
	"unicode"
)

var (
	nameNoiseRe  = regexp.MustCompile(`(?i)\b(cv|resume|curriculum|vitae|contact|email|phone|tel|mobile)\b`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// CleanName strips document noise words from a candidate name, drops tokens
// that are not purely alphabetic or are single letters, and title-cases what
// is left. An unusable name collapses to "".
func CleanName(name string) string {
	name = whitespaceRe.ReplaceAllString(strings.TrimSpace(name), " ")
	if name == "" {
		return ""
	}
	name = nameNoiseRe.ReplaceAllString(name, "")

	var parts []string
	for _, part := range strings.Fields(name) {
		if len([]rune(part)) > 1 && isAlpha(part) {
			parts = append(parts, titleCase(part))
		}
	}
	return strings.Join(parts, " ")
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// Fields carries the raw per-section text of one CV, as extracted from the
// source document or a CSV row.
type Fields struct {
	Name           string `json:"name"`
	SkillsText     string `json:"skills"`
	ExperienceText string `json:"experience"`
	EducationText  string `json:"education"`
	Description    string `json:"description"`
}

// Candidate is the normalized form of a CV, ready for matching and storage.
type Candidate struct {
	Name                 string   `json:"name"`
	Skills               []string `json:"skills"`
	SkillsText           string   `json:"skills_text"`
	ExperienceText       string   `json:"experience_text"`
	EducationText        string   `json:"education_text"`
	TotalExperienceYears float64  `json:"total_experience_years"`
	EducationLevel       Level    `json:"-"`
	EducationLevelName   string   `json:"education_level"`
	SalaryExpectation    string   `json:"salary_expectation,omitempty"`
	Description          string   `json:"description,omitempty"`
}

// Normalizer runs the full normalization pipeline over a CV's fields.
type Normalizer struct {
	skills    *SkillCanonicalizer
	estimator *ExperienceEstimator
}

// NewNormalizer builds a pipeline around the default vocabulary. A nil sim
// falls back to Levenshtein similarity.
func NewNormalizer(sim Similarity) (*Normalizer, error) {
	canon, err := NewSkillCanonicalizer(DefaultVocabulary(), sim)
	if err != nil {
		return nil, err
	}
	return &Normalizer{
		skills:    canon,
		estimator: NewExperienceEstimator(),
	}, nil
}

// NewNormalizerAt is NewNormalizer with an injected clock for the experience
// estimator, used by tests and batch replays.
func NewNormalizerAt(sim Similarity, now func() time.Time) (*Normalizer, error) {
	n, err := NewNormalizer(sim)
	if err != nil {
		return nil, err
	}
	n.estimator = NewExperienceEstimatorAt(now)
	return n, nil
}

// Normalize processes one CV. Experience is estimated from the raw
// experience text before date rewriting, then both experience and education
// text get their date ranges normalized for display and storage.
func (n *Normalizer) Normalize(f Fields) *Candidate {
	skills := n.skills.Dedupe(n.skills.Canonicalize(f.SkillsText))
	years := n.estimator.Estimate(f.ExperienceText)
	level := ClassifyEducation(f.EducationText)

	return &Candidate{
		Name:                 CleanName(f.Name),
		Skills:               skills,
		SkillsText:           strings.Join(skills, ", "),
		ExperienceText:       NormalizeDateRanges(f.ExperienceText),
		EducationText:        NormalizeDateRanges(f.EducationText),
		TotalExperienceYears: years,
		EducationLevel:       level,
		EducationLevelName:   level.String(),
		SalaryExpectation:    ExtractSalary(f.Description),
		Description:          f.Description,
	}
}

// Skills exposes the canonicalizer for callers that need token-level access,
// such as the requirement filter.
func (n *Normalizer) Skills() *SkillCanonicalizer {
	return n.skills
}
