package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"cv-filter/internal/match"
)

// SaveMatchResults persists a batch of match evaluations under one generated
// batch id, storing the per-factor detail as JSON. It returns the batch id.
func (db *DB) SaveMatchResults(ctx context.Context, jobOfferID int64, results map[int64]*match.MatchResult) (string, error) {
	batchID := uuid.New().String()

	tx, err := db.connection.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("starting match batch: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO match_results (batch_id, job_offer_id, candidate_id, overall_score,
	                                     match_level, detail, evaluated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`

	for candidateID, result := range results {
		detail, err := json.Marshal(result)
		if err != nil {
			return "", fmt.Errorf("encoding match detail for candidate %d: %w", candidateID, err)
		}
		if _, err := tx.ExecContext(ctx, query,
			batchID, jobOfferID, candidateID,
			result.OverallScore, string(result.Level), detail, result.EvaluatedAt,
		); err != nil {
			return "", fmt.Errorf("saving match result for candidate %d: %w", candidateID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing match batch: %w", err)
	}
	return batchID, nil
}

// SaveOrganizationScore stores one organization-fit assessment, replacing any
// earlier one for the same candidate.
func (db *DB) SaveOrganizationScore(ctx context.Context, score *OrganizationScore) error {
	query := `INSERT INTO organization_scores (candidate_id, score, shortlisted, reasoning, source, evaluated_at)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          ON CONFLICT (candidate_id) DO UPDATE
	            SET score = EXCLUDED.score,
	                shortlisted = EXCLUDED.shortlisted,
	                reasoning = EXCLUDED.reasoning,
	                source = EXCLUDED.source,
	                evaluated_at = EXCLUDED.evaluated_at`

	_, err := db.connection.ExecContext(ctx, query,
		score.CandidateID, score.Score, score.Shortlisted,
		score.Reasoning, score.Source, score.EvaluatedAt,
	)
	if err != nil {
		return fmt.Errorf("saving organization score for candidate %d: %w", score.CandidateID, err)
	}
	return nil
}

// GetShortlist returns the candidate ids whose organization score clears the
// threshold, best first.
func (db *DB) GetShortlist(ctx context.Context, threshold float64) ([]*OrganizationScore, error) {
	rows, err := db.connection.QueryContext(ctx,
		`SELECT candidate_id, score, shortlisted, reasoning, source, evaluated_at
		 FROM organization_scores
		 WHERE score >= $1
		 ORDER BY score DESC`, threshold)
	if err != nil {
		return nil, fmt.Errorf("loading shortlist: %w", err)
	}
	defer rows.Close()

	var scores []*OrganizationScore
	for rows.Next() {
		s := &OrganizationScore{}
		if err := rows.Scan(&s.CandidateID, &s.Score, &s.Shortlisted, &s.Reasoning, &s.Source, &s.EvaluatedAt); err != nil {
			return nil, err
		}
		scores = append(scores, s)
	}
	return scores, rows.Err()
}
