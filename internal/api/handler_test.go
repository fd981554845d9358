package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cv-filter/internal/normalize"
)

func newTestAPI(t *testing.T) *API {
	t.Helper()
	normalizer, err := normalize.NewNormalizer(nil)
	if err != nil {
		t.Fatalf("NewNormalizer: %v", err)
	}
	return &API{normalizer: normalizer}
}

func TestNormalizeHandler(t *testing.T) {
	a := newTestAPI(t)

	body := `{
		"name": "jean dupont CV",
		"skills": "Python, JS, k8s",
		"experience": "5 years of experience, 2019-01 - 2024-01",
		"education": "Master in Computer Science",
		"description": "Expected salary: 55k EUR"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/normalize", strings.NewReader(body))
	rec := httptest.NewRecorder()

	a.NormalizeHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}

	var candidate normalize.Candidate
	if err := json.Unmarshal(rec.Body.Bytes(), &candidate); err != nil {
		t.Fatalf("decoding response: %v", err)
	}

	if candidate.Name != "Jean Dupont" {
		t.Errorf("Name = %q, want %q", candidate.Name, "Jean Dupont")
	}
	if len(candidate.Skills) != 3 {
		t.Errorf("Skills = %v, want 3 canonical entries", candidate.Skills)
	}
	if candidate.TotalExperienceYears != 5 {
		t.Errorf("TotalExperienceYears = %v, want 5", candidate.TotalExperienceYears)
	}
	if candidate.EducationLevelName != "MASTER" {
		t.Errorf("EducationLevelName = %q, want MASTER", candidate.EducationLevelName)
	}
	if candidate.SalaryExpectation == "" {
		t.Error("SalaryExpectation is empty, want the labeled amount from the description")
	}
}

func TestNormalizeHandler_BadRequests(t *testing.T) {
	a := newTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/api/normalize", nil)
	rec := httptest.NewRecorder()
	a.NormalizeHandler(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET status = %d, want 405", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/normalize", strings.NewReader("{not json"))
	rec = httptest.NewRecorder()
	a.NormalizeHandler(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("invalid JSON status = %d, want 400", rec.Code)
	}
}

func TestHealthEndpoint(t *testing.T) {
	a := newTestAPI(t)
	router := NewRouter(a)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Body.String(); got != `{"status":"healthy"}` {
		t.Errorf("body = %s", got)
	}
}

func TestEnqueueOrganizationScoring_NilQueue(t *testing.T) {
	a := newTestAPI(t)

	// Must not panic or block when no worker was started.
	a.EnqueueOrganizationScoring(OrganizationJob{CandidateID: 1, CVText: "text"})
}
