package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"cv-filter/internal/match"
	"cv-filter/internal/normalize"
)

// ErrJobOfferNotFound is returned when a job offer id has no row.
var ErrJobOfferNotFound = errors.New("job offer not found")

// GetJobOffer loads a job offer and its required skills.
func (db *DB) GetJobOffer(ctx context.Context, id int64) (*JobOffer, error) {
	query := `SELECT title, description, years_of_experience_required, required_degree,
	                 min_salary, max_salary, employment_type, location
	          FROM job_offer WHERE id = $1`

	job := &JobOffer{ID: id}
	var (
		title, description, degree   sql.NullString
		employmentType, location     sql.NullString
		minExp, minSalary, maxSalary sql.NullFloat64
	)
	err := db.connection.QueryRowContext(ctx, query, id).Scan(
		&title, &description, &minExp, &degree,
		&minSalary, &maxSalary, &employmentType, &location,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: id %d", ErrJobOfferNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("loading job offer %d: %w", id, err)
	}

	job.Title = title.String
	if job.Title == "" {
		job.Title = "Unknown Position"
	}
	job.Description = description.String
	job.MinExperienceYears = minExp.Float64
	job.RequiredDegree = degree.String
	if job.RequiredDegree == "" {
		job.RequiredDegree = normalize.LevelNone.String()
	}
	job.MinSalary = minSalary.Float64
	job.MaxSalary = maxSalary.Float64
	job.EmploymentType = employmentType.String
	job.Location = location.String

	skills, err := db.getJobOfferSkills(ctx, id)
	if err != nil {
		return nil, err
	}
	job.RequiredSkills = skills

	return job, nil
}

func (db *DB) getJobOfferSkills(ctx context.Context, jobOfferID int64) ([]string, error) {
	rows, err := db.connection.QueryContext(ctx,
		`SELECT skill FROM job_offer_skills WHERE job_offer_id = $1 ORDER BY skill`, jobOfferID)
	if err != nil {
		return nil, fmt.Errorf("loading skills for job offer %d: %w", jobOfferID, err)
	}
	defer rows.Close()

	var skills []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		if s != "" {
			skills = append(skills, s)
		}
	}
	return skills, rows.Err()
}

// ToRequirement converts a stored job offer into the form the scorer and
// filter consume.
func (j *JobOffer) ToRequirement() *match.JobRequirement {
	return &match.JobRequirement{
		Title:              j.Title,
		Description:        j.Description,
		MinExperienceYears: j.MinExperienceYears,
		RequiredDegree:     normalize.ParseLevel(j.RequiredDegree),
		RequiredSkills:     j.RequiredSkills,
	}
}
