package storage

import (
	"time"

	"cv-filter/internal/normalize"
)

// CandidateRecord is the persisted form of a normalized CV.
type CandidateRecord struct {
	ID                   int64     `json:"id,omitempty"`
	Name                 string    `json:"name"`
	Email                string    `json:"email"`
	Phone                string    `json:"phone,omitempty"`
	Skills               []string  `json:"skills"`
	ExperienceText       string    `json:"experience_text"`
	EducationText        string    `json:"education_text"`
	TotalExperienceYears float64   `json:"total_experience_years"`
	EducationLevel       string    `json:"education_level"`
	SalaryExpectation    string    `json:"salary_expectation,omitempty"`
	CVFilePath           string    `json:"cv_file_path,omitempty"`
	UpdatedAt            time.Time `json:"updated_at,omitempty"`
}

// ToCandidate converts a stored record back into the normalized form the
// matching code works on.
func (r *CandidateRecord) ToCandidate() *normalize.Candidate {
	return &normalize.Candidate{
		Name:                 r.Name,
		Skills:               r.Skills,
		SkillsText:           joinSkills(r.Skills),
		ExperienceText:       r.ExperienceText,
		EducationText:        r.EducationText,
		TotalExperienceYears: r.TotalExperienceYears,
		EducationLevel:       normalize.ParseLevel(r.EducationLevel),
		EducationLevelName:   normalize.ParseLevel(r.EducationLevel).String(),
		SalaryExpectation:    r.SalaryExpectation,
	}
}

// FromCandidate builds a record from a normalized candidate plus the contact
// details the normalizer does not carry.
func FromCandidate(c *normalize.Candidate, email, phone, cvPath string) *CandidateRecord {
	return &CandidateRecord{
		Name:                 c.Name,
		Email:                email,
		Phone:                phone,
		Skills:               c.Skills,
		ExperienceText:       c.ExperienceText,
		EducationText:        c.EducationText,
		TotalExperienceYears: c.TotalExperienceYears,
		EducationLevel:       c.EducationLevel.String(),
		SalaryExpectation:    c.SalaryExpectation,
		CVFilePath:           cvPath,
	}
}

// Criteria narrows candidate searches. Zero values are ignored.
type Criteria struct {
	Name          string   `json:"name"`
	Skills        []string `json:"skills"`
	MinExperience float64  `json:"min_experience"`
	MinEducation  string   `json:"min_education"`
}

// JobOffer is the stored job posting a candidate is matched against.
type JobOffer struct {
	ID                 int64    `json:"id"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	MinExperienceYears float64  `json:"min_experience_years"`
	RequiredDegree     string   `json:"required_degree"`
	RequiredSkills     []string `json:"required_skills"`
	MinSalary          float64  `json:"min_salary,omitempty"`
	MaxSalary          float64  `json:"max_salary,omitempty"`
	EmploymentType     string   `json:"employment_type,omitempty"`
	Location           string   `json:"location,omitempty"`
}

// OrganizationScore is an LLM (or fallback) assessment of how a candidate's
// background fits an organization.
type OrganizationScore struct {
	CandidateID int64     `json:"candidate_id"`
	Score       float64   `json:"score"`
	Shortlisted bool      `json:"shortlisted"`
	Reasoning   string    `json:"reasoning"`
	Source      string    `json:"source"` // llm provider name or "rules"
	EvaluatedAt time.Time `json:"evaluated_at"`
}
