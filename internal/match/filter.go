package match

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"cv-filter/internal/normalize"
)

// fuzzyFilterScore is the looser similarity cutoff the filter uses for skill
// matching; shortlisting tolerates more spelling drift than canonicalization.
const fuzzyFilterScore = 70

// Filter decides pass/fail shortlisting of candidates against a job. Strict
// mode demands every stated requirement is met; lenient mode tolerates a
// bounded shortfall on experience and accepts partial skill coverage.
type Filter struct {
	sim normalize.Similarity
}

// NewFilter builds a filter; a nil sim falls back to Levenshtein similarity.
func NewFilter(sim normalize.Similarity) *Filter {
	if sim == nil {
		sim = normalize.LevenshteinSimilarity
	}
	return &Filter{sim: sim}
}

// Passes reports whether the candidate clears every requirement dimension.
// A nil job or a dimension the job leaves unspecified never rejects anyone.
func (f *Filter) Passes(c *normalize.Candidate, job *JobRequirement, strict bool) bool {
	if job == nil {
		return true
	}
	return f.passesExperience(c, job, strict) &&
		f.passesSkills(c, job, strict) &&
		f.passesEducation(c, job)
}

func (f *Filter) passesExperience(c *normalize.Candidate, job *JobRequirement, strict bool) bool {
	required := job.MinExperienceYears
	if required <= 0 {
		return true
	}
	if strict {
		return c.TotalExperienceYears >= required
	}
	tolerance := required * 0.3
	if tolerance < 1 {
		tolerance = 1
	}
	return c.TotalExperienceYears >= required-tolerance
}

func (f *Filter) passesSkills(c *normalize.Candidate, job *JobRequirement, strict bool) bool {
	if len(job.RequiredSkills) == 0 {
		return true
	}

	matched := 0
	for _, req := range job.RequiredSkills {
		if f.hasSkill(c.Skills, req) {
			matched++
		}
	}

	if strict {
		return matched == len(job.RequiredSkills)
	}
	minMatched := len(job.RequiredSkills) / 2
	if minMatched < 1 {
		minMatched = 1
	}
	return matched >= minMatched
}

// hasSkill accepts word-anchored containment in either direction or a fuzzy
// similarity above the filter cutoff.
func (f *Filter) hasSkill(cvSkills []string, required string) bool {
	req := strings.ToLower(strings.TrimSpace(required))
	if req == "" {
		return false
	}
	for _, cs := range cvSkills {
		cs = strings.ToLower(strings.TrimSpace(cs))
		if cs == "" {
			continue
		}
		if containsAtWordStart(cs, req) || containsAtWordStart(req, cs) {
			return true
		}
		if f.sim(cs, req) > fuzzyFilterScore {
			return true
		}
	}
	return false
}

// containsAtWordStart reports whether needle occurs in haystack beginning at
// a word boundary. Plain substring search lets a short requirement like "go"
// match inside "django"; anchoring the start still accepts prefixes such as
// "postgres" in "postgresql".
func containsAtWordStart(haystack, needle string) bool {
	if needle == "" {
		return false
	}
	for from := 0; from+len(needle) <= len(haystack); {
		i := strings.Index(haystack[from:], needle)
		if i == -1 {
			return false
		}
		pos := from + i
		if pos == 0 {
			return true
		}
		prev, _ := utf8.DecodeLastRuneInString(haystack[:pos])
		if !unicode.IsLetter(prev) && !unicode.IsDigit(prev) {
			return true
		}
		from = pos + 1
	}
	return false
}

func (f *Filter) passesEducation(c *normalize.Candidate, job *JobRequirement) bool {
	if job.RequiredDegree == normalize.LevelNone {
		return true
	}
	return c.EducationLevel >= job.RequiredDegree
}
