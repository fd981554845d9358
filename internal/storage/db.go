// Package storage persists candidates, job offers and match results in
// PostgreSQL.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver

	"cv-filter/internal/normalize"
)

type DB struct {
	connection *sql.DB
}

func NewDB(dataSourceName string) (*DB, error) {
	db, err := sql.Open("postgres", dataSourceName)
	if err != nil {
		return nil, err
	}

	// Connection pool tuning
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return &DB{connection: db}, nil
}

func (db *DB) Close() {
	if err := db.connection.Close(); err != nil {
		log.Println("Error closing the database connection:", err)
	}
}

// SaveCandidate is kept for callers without a context and delegates to the
// context-aware variant.
func (db *DB) SaveCandidate(rec *CandidateRecord) (int64, error) {
	return db.SaveCandidateContext(context.Background(), rec)
}

// SaveCandidateContext upserts a candidate record keyed by email and returns
// its row id.
func (db *DB) SaveCandidateContext(ctx context.Context, rec *CandidateRecord) (int64, error) {
	query := `INSERT INTO candidates (name, email, phone, skills, experience_text, education_text,
	                                  total_experience_years, education_level, salary_expectation,
	                                  cv_file_path, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
	          ON CONFLICT (email) DO UPDATE
	            SET name = EXCLUDED.name,
	                phone = EXCLUDED.phone,
	                skills = EXCLUDED.skills,
	                experience_text = EXCLUDED.experience_text,
	                education_text = EXCLUDED.education_text,
	                total_experience_years = EXCLUDED.total_experience_years,
	                education_level = EXCLUDED.education_level,
	                salary_expectation = EXCLUDED.salary_expectation,
	                cv_file_path = EXCLUDED.cv_file_path,
	                updated_at = NOW()
	          RETURNING id`

	var id int64
	err := db.connection.QueryRowContext(ctx, query,
		rec.Name,
		rec.Email,
		rec.Phone,
		joinSkills(rec.Skills),
		rec.ExperienceText,
		rec.EducationText,
		rec.TotalExperienceYears,
		rec.EducationLevel,
		rec.SalaryExpectation,
		rec.CVFilePath,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("upserting candidate %q: %w", rec.Email, err)
	}
	return id, nil
}

// GetCandidateByEmail is kept for callers without a context.
func (db *DB) GetCandidateByEmail(email string) (*CandidateRecord, error) {
	return db.GetCandidateByEmailContext(context.Background(), email)
}

func (db *DB) GetCandidateByEmailContext(ctx context.Context, email string) (*CandidateRecord, error) {
	rec := &CandidateRecord{}
	query := `SELECT id, name, email, phone, skills, experience_text, education_text,
	                 total_experience_years, education_level, salary_expectation, cv_file_path, updated_at
	          FROM candidates WHERE email = $1`
	row := db.connection.QueryRowContext(ctx, query, email)

	var skills string
	err := row.Scan(&rec.ID, &rec.Name, &rec.Email, &rec.Phone, &skills, &rec.ExperienceText,
		&rec.EducationText, &rec.TotalExperienceYears, &rec.EducationLevel,
		&rec.SalaryExpectation, &rec.CVFilePath, &rec.UpdatedAt)
	if err != nil {
		return nil, err
	}
	rec.Skills = splitAndTrim(skills)
	return rec, nil
}

// SearchCandidates returns candidates matching the criteria using ILIKE for
// text fields and threshold comparisons for the numeric ones.
func (db *DB) SearchCandidates(ctx context.Context, criteria *Criteria) ([]*CandidateRecord, error) {
	base := `SELECT id, name, email, phone, skills, experience_text, education_text,
	                total_experience_years, education_level, salary_expectation, cv_file_path, updated_at
	         FROM candidates`
	var where []string
	var args []interface{}
	i := 1

	if criteria == nil {
		criteria = &Criteria{}
	}

	if criteria.Name != "" {
		where = append(where, fmt.Sprintf("name ILIKE $%d", i))
		args = append(args, "%"+criteria.Name+"%")
		i++
	}
	if len(criteria.Skills) > 0 {
		var skillConds []string
		for _, s := range criteria.Skills {
			skillConds = append(skillConds, fmt.Sprintf("skills ILIKE $%d", i))
			args = append(args, "%"+s+"%")
			i++
		}
		where = append(where, "("+strings.Join(skillConds, " OR ")+")")
	}
	if criteria.MinExperience > 0 {
		where = append(where, fmt.Sprintf("total_experience_years >= $%d", i))
		args = append(args, criteria.MinExperience)
		i++
	}

	if len(where) > 0 {
		base += " WHERE " + strings.Join(where, " AND ")
	}
	base += " ORDER BY total_experience_years DESC"

	rows, err := db.connection.QueryContext(ctx, base, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*CandidateRecord
	for rows.Next() {
		rec := &CandidateRecord{}
		var skills string
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Email, &rec.Phone, &skills, &rec.ExperienceText,
			&rec.EducationText, &rec.TotalExperienceYears, &rec.EducationLevel,
			&rec.SalaryExpectation, &rec.CVFilePath, &rec.UpdatedAt); err != nil {
			return nil, err
		}
		rec.Skills = splitAndTrim(skills)
		res = append(res, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Education level ordering lives in Go, not SQL, so the stored strings
	// stay plain.
	if criteria.MinEducation != "" {
		min := normalize.ParseLevel(criteria.MinEducation)
		filtered := res[:0]
		for _, rec := range res {
			if normalize.ParseLevel(rec.EducationLevel) >= min {
				filtered = append(filtered, rec)
			}
		}
		res = filtered
	}
	return res, nil
}

// CandidateExists checks if a candidate with the given email already exists
func (db *DB) CandidateExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM candidates WHERE email = $1)`
	err := db.connection.QueryRowContext(ctx, query, email).Scan(&exists)
	return exists, err
}

// SaveCVFile saves CV file metadata and extracted text to the database.
func (db *DB) SaveCVFile(ctx context.Context, candidateID *int64, filename, filePath, fileType, parsedText string, fileSize int64) (int64, error) {
	var cvID int64
	query := `
	    INSERT INTO cv_files (candidate_id, filename, file_path, file_type, file_size, parsed_text, uploaded_at)
	    VALUES ($1, $2, $3, $4, $5, $6, NOW())
	    RETURNING id
	`
	err := db.connection.QueryRowContext(ctx, query,
		candidateID, filename, filePath, fileType, fileSize, parsedText,
	).Scan(&cvID)

	return cvID, err
}

// GetConnection returns the underlying database connection for advanced queries
func (db *DB) GetConnection() *sql.DB {
	return db.connection
}

// helper to split comma-separated skills
func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		t := strings.TrimSpace(p)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

func joinSkills(skills []string) string {
	return strings.Join(skills, ",")
}
