package api

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

func NewRouter(a *API) http.Handler {
	mux := http.NewServeMux()

	// Swagger documentation - must be registered first
	mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"),
	))

	// Health check (for Railway, k8s, etc.)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// Normalization & matching endpoints
	mux.HandleFunc("/api/normalize", a.NormalizeHandler)
	mux.HandleFunc("/api/match", a.MatchHandler)
	mux.HandleFunc("/api/shortlist", a.ShortlistHandler)
	mux.HandleFunc("/api/shortlist/organization", a.OrganizationShortlistHandler)

	// Candidate endpoints
	mux.HandleFunc("/api/search", a.SearchHandler)
	mux.HandleFunc("/api/cv/upload", a.CVUploadHandler)

	// Ranking endpoint (TF-IDF over stored candidates)
	mux.HandleFunc("/api/jobs/rank", a.RankHandler)

	return mux
}
