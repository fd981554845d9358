// Package api exposes the normalization, matching and ranking pipeline over
// HTTP.
package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"cv-filter/internal/config"
	"cv-filter/internal/cv"
	"cv-filter/internal/llm"
	"cv-filter/internal/match"
	"cv-filter/internal/normalize"
	"cv-filter/internal/rank"
	"cv-filter/internal/storage"
)

type API struct {
	cfg        *config.Config
	db         *storage.DB
	parser     *cv.Parser
	normalizer *normalize.Normalizer
	scorer     *match.Scorer
	filter     *match.Filter
	ranker     *rank.Ranker
	llmService *llm.Service

	// Background queue for async CV organization scoring
	organizationQueue chan OrganizationJob
}

func NewAPI(cfg *config.Config, db *storage.DB) (*API, error) {
	normalizer, err := normalize.NewNormalizer(nil)
	if err != nil {
		return nil, err
	}

	a := &API{
		cfg:               cfg,
		db:                db,
		parser:            cv.NewParser(cfg.UploadsDir),
		normalizer:        normalizer,
		scorer:            match.NewScorer(),
		filter:            match.NewFilter(nil),
		ranker:            rank.NewRanker(),
		llmService:        llm.NewService(cfg.LLMProvider, cfg.LLMAPIKey, cfg.LLMModel),
		organizationQueue: make(chan OrganizationJob, 50),
	}

	a.StartBackgroundWorkers()

	return a, nil
}

// matchRequest carries one candidate's raw fields and the job to score
// against.
type matchRequest struct {
	JobOfferID int64            `json:"job_offer_id"`
	Fields     normalize.Fields `json:"fields"`
}

// shortlistRequest selects stored candidates for a job. Strict overrides the
// configured default when present.
type shortlistRequest struct {
	JobOfferID int64 `json:"job_offer_id"`
	Strict     *bool `json:"strict,omitempty"`
}

// NormalizeHandler normalizes raw CV fields
// @Summary Normalize CV fields
// @Description Normalize raw CV text fields: canonical skills, date ranges, experience years, education level
// @Tags normalize
// @Accept json
// @Produce json
// @Param fields body normalize.Fields true "Raw CV fields"
// @Success 200 {object} normalize.Candidate
// @Failure 400 {object} map[string]string
// @Router /normalize [post]
func (a *API) NormalizeHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var fields normalize.Fields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	writeJSON(w, a.normalizer.Normalize(fields))
}

// MatchHandler scores one candidate against a stored job offer
// @Summary Match a candidate against a job offer
// @Description Normalize the submitted CV fields and compute the four-factor match against the job offer
// @Tags match
// @Accept json
// @Produce json
// @Param request body matchRequest true "Job offer id and raw CV fields"
// @Success 200 {object} match.MatchResult
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /match [post]
func (a *API) MatchHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req matchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	job, err := a.db.GetJobOffer(r.Context(), req.JobOfferID)
	if err != nil {
		if errors.Is(err, storage.ErrJobOfferNotFound) {
			http.Error(w, "job offer not found", http.StatusNotFound)
			return
		}
		log.Printf("MatchHandler: loading job offer %d: %v", req.JobOfferID, err)
		http.Error(w, "database error", http.StatusInternalServerError)
		return
	}

	requirement := job.ToRequirement()
	if err := requirement.Validate(); err != nil {
		log.Printf("MatchHandler: job offer %d: %v", req.JobOfferID, err)
		http.Error(w, "job offer has unusable requirements", http.StatusUnprocessableEntity)
		return
	}

	candidate := a.normalizer.Normalize(req.Fields)
	writeJSON(w, a.scorer.Score(candidate, requirement))
}

// ShortlistHandler filters and scores all stored candidates for a job
// @Summary Shortlist stored candidates for a job offer
// @Description Apply the requirement filter to every stored candidate, score the survivors and persist the batch
// @Tags match
// @Accept json
// @Produce json
// @Param request body shortlistRequest true "Job offer id and optional strict override"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /shortlist [post]
func (a *API) ShortlistHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req shortlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	strict := a.cfg.StrictFiltering
	if req.Strict != nil {
		strict = *req.Strict
	}

	job, err := a.db.GetJobOffer(r.Context(), req.JobOfferID)
	if err != nil {
		if errors.Is(err, storage.ErrJobOfferNotFound) {
			http.Error(w, "job offer not found", http.StatusNotFound)
			return
		}
		log.Printf("ShortlistHandler: loading job offer %d: %v", req.JobOfferID, err)
		http.Error(w, "database error", http.StatusInternalServerError)
		return
	}

	requirement := job.ToRequirement()
	if err := requirement.Validate(); err != nil {
		log.Printf("ShortlistHandler: job offer %d: %v", req.JobOfferID, err)
		http.Error(w, "job offer has unusable requirements", http.StatusUnprocessableEntity)
		return
	}

	records, err := a.db.SearchCandidates(r.Context(), nil)
	if err != nil {
		log.Printf("ShortlistHandler: loading candidates: %v", err)
		http.Error(w, "database error", http.StatusInternalServerError)
		return
	}

	type entry struct {
		Candidate *storage.CandidateRecord `json:"candidate"`
		Result    *match.MatchResult       `json:"result"`
	}

	results := make(map[int64]*match.MatchResult)
	passed := []entry{}
	for _, rec := range records {
		candidate := rec.ToCandidate()
		if !a.filter.Passes(candidate, requirement, strict) {
			continue
		}
		result := a.scorer.Score(candidate, requirement)
		results[rec.ID] = result
		passed = append(passed, entry{Candidate: rec, Result: result})
	}

	var batchID string
	if len(results) > 0 {
		batchID, err = a.db.SaveMatchResults(r.Context(), req.JobOfferID, results)
		if err != nil {
			log.Printf("ShortlistHandler: saving batch: %v", err)
			http.Error(w, "failed to persist results", http.StatusInternalServerError)
			return
		}
	}

	writeJSON(w, map[string]interface{}{
		"job_offer_id": req.JobOfferID,
		"strict":       strict,
		"batch_id":     batchID,
		"total":        len(records),
		"passed":       len(passed),
		"matches":      passed,
	})
}

// RankHandler orders stored candidates by similarity to a job description
// @Summary Rank stored candidates for a job offer
// @Description TF-IDF cosine similarity between each candidate's CV content and the job description
// @Tags rank
// @Produce json
// @Param job_offer_id query int true "Job offer id"
// @Param top_n query int false "How many rankings to return" default(5)
// @Success 200 {array} rank.Ranking
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /jobs/rank [get]
func (a *API) RankHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	jobOfferID, err := strconv.ParseInt(r.URL.Query().Get("job_offer_id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid job_offer_id", http.StatusBadRequest)
		return
	}

	topN := 5
	if v := r.URL.Query().Get("top_n"); v != "" {
		topN, err = strconv.Atoi(v)
		if err != nil {
			http.Error(w, "invalid top_n", http.StatusBadRequest)
			return
		}
	}

	job, err := a.db.GetJobOffer(r.Context(), jobOfferID)
	if err != nil {
		if errors.Is(err, storage.ErrJobOfferNotFound) {
			http.Error(w, "job offer not found", http.StatusNotFound)
			return
		}
		log.Printf("RankHandler: loading job offer %d: %v", jobOfferID, err)
		http.Error(w, "database error", http.StatusInternalServerError)
		return
	}

	records, err := a.db.SearchCandidates(r.Context(), nil)
	if err != nil {
		log.Printf("RankHandler: loading candidates: %v", err)
		http.Error(w, "database error", http.StatusInternalServerError)
		return
	}

	candidates := make([]*normalize.Candidate, 0, len(records))
	for _, rec := range records {
		candidates = append(candidates, rec.ToCandidate())
	}

	rankings, err := a.ranker.Rank(job.Description, candidates, topN)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if rankings == nil {
		rankings = []rank.Ranking{}
	}

	writeJSON(w, rankings)
}

// SearchHandler searches stored candidates
// @Summary Search candidates
// @Description Search stored candidates by name, skills and minimum experience or education
// @Tags candidates
// @Accept json
// @Produce json
// @Param criteria body storage.Criteria true "Search criteria"
// @Success 200 {array} storage.CandidateRecord
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /search [post]
func (a *API) SearchHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var crit storage.Criteria
	if err := json.NewDecoder(r.Body).Decode(&crit); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	candidates, err := a.db.SearchCandidates(r.Context(), &crit)
	if err != nil {
		http.Error(w, "search error", http.StatusInternalServerError)
		return
	}
	if candidates == nil {
		candidates = []*storage.CandidateRecord{}
	}
	writeJSON(w, candidates)
}

// OrganizationShortlistHandler lists candidates whose CV organization score
// cleared the threshold
// @Summary Organization-score shortlist
// @Description Candidates whose CV structure scored at or above the threshold, best first
// @Tags match
// @Produce json
// @Param threshold query number false "Minimum score" default(80)
// @Success 200 {array} storage.OrganizationScore
// @Failure 500 {object} map[string]string
// @Router /shortlist/organization [get]
func (a *API) OrganizationShortlistHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	threshold := llm.ShortlistThreshold
	if v := r.URL.Query().Get("threshold"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			http.Error(w, "invalid threshold", http.StatusBadRequest)
			return
		}
		threshold = parsed
	}

	scores, err := a.db.GetShortlist(r.Context(), threshold)
	if err != nil {
		log.Printf("OrganizationShortlistHandler: %v", err)
		http.Error(w, "database error", http.StatusInternalServerError)
		return
	}
	if scores == nil {
		scores = []*storage.OrganizationScore{}
	}
	writeJSON(w, scores)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("ERROR: Failed to encode JSON response: %v", err)
	}
}
