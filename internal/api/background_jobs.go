package api

import (
	"context"
	"log"
	"strings"
	"time"

	"cv-filter/internal/storage"
)

// OrganizationJob represents a background CV organization scoring task
type OrganizationJob struct {
	CandidateID int64
	CVText      string
	Filename    string
	Timestamp   time.Time
}

// StartBackgroundWorkers initializes background job workers
func (a *API) StartBackgroundWorkers() {
	go a.organizationWorker()

	log.Println("[BackgroundJobs] Workers started (organization scoring)")
}

// organizationWorker processes organization scoring jobs from the queue
func (a *API) organizationWorker() {
	log.Println("[OrganizationWorker] Started")

	for job := range a.organizationQueue {
		log.Printf("[OrganizationWorker] Scoring candidate %d (%s)", job.CandidateID, job.Filename)

		ctx := context.Background()

		analysis := a.llmService.AnalyzeOrganization(job.CVText, job.Filename)

		reasoning := analysis.Level
		if len(analysis.Strengths) > 0 {
			reasoning = strings.Join(analysis.Strengths, "; ")
		}

		score := &storage.OrganizationScore{
			CandidateID: job.CandidateID,
			Score:       analysis.OverallScore,
			Shortlisted: analysis.Shortlisted(),
			Reasoning:   reasoning,
			Source:      analysis.Source,
			EvaluatedAt: time.Now(),
		}
		if err := a.db.SaveOrganizationScore(ctx, score); err != nil {
			log.Printf("[OrganizationWorker] Failed to save score for candidate %d: %v", job.CandidateID, err)
			continue
		}

		duration := time.Since(job.Timestamp)
		log.Printf("[OrganizationWorker] Candidate %d scored %.1f (%s, source=%s, took %v)",
			job.CandidateID, analysis.OverallScore, analysis.Level, analysis.Source, duration)
	}
}

// EnqueueOrganizationScoring adds an organization scoring job to the
// background queue
func (a *API) EnqueueOrganizationScoring(job OrganizationJob) {
	if a.organizationQueue == nil {
		log.Printf("[BackgroundJobs] Organization queue not initialized, skipping candidate %d", job.CandidateID)
		return
	}

	// Non-blocking send
	select {
	case a.organizationQueue <- job:
		log.Printf("[BackgroundJobs] Queued organization scoring for candidate %d", job.CandidateID)
	default:
		log.Printf("[BackgroundJobs] Queue full! Dropping organization job for candidate %d", job.CandidateID)
	}
}
