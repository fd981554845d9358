// Package match scores normalized candidates against job requirements and
// filters shortlists.
package match

import (
	"errors"
	"fmt"
	"strings"

	"cv-filter/internal/normalize"
)

// ErrMalformedRequirement is returned when a job requirement carries unusable
// entries, such as blank required skills.
var ErrMalformedRequirement = errors.New("malformed job requirement")

// JobRequirement is what a job offer demands of a candidate. Zero values mean
// the dimension is unspecified and must not penalize anyone.
type JobRequirement struct {
	Title              string          `json:"title"`
	Description        string          `json:"description"`
	MinExperienceYears float64         `json:"min_experience_years"`
	RequiredDegree     normalize.Level `json:"required_degree"`
	RequiredSkills     []string        `json:"required_skills"`
}

// Validate rejects requirements that would make scoring meaningless.
func (j *JobRequirement) Validate() error {
	if j.MinExperienceYears < 0 {
		return fmt.Errorf("%w: negative experience requirement %.1f", ErrMalformedRequirement, j.MinExperienceYears)
	}
	for i, s := range j.RequiredSkills {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%w: blank required skill at index %d", ErrMalformedRequirement, i)
		}
	}
	return nil
}
