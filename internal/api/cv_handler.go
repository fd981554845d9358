package api

import (
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"cv-filter/internal/cv"
	"cv-filter/internal/storage"
)

// CVUploadHandler handles CV file uploads and processing
// @Summary Upload and process a CV
// @Description Upload a CV file (PDF, DOCX, DOC, RTF, ODT or TXT), extract its text and store the normalized candidate
// @Tags cv
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CV file"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /cv/upload [post]
func (a *API) CVUploadHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	startTime := time.Now()

	// Parse multipart form (max 10MB)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "file too large or invalid (max 10MB)", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "no file provided", http.StatusBadRequest)
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	switch ext {
	case ".pdf", ".docx", ".doc", ".rtf", ".odt", ".txt":
	default:
		http.Error(w, "unsupported file type (allowed: pdf, docx, doc, rtf, odt, txt)", http.StatusBadRequest)
		return
	}

	log.Printf("Processing CV upload: %s (%d bytes)", header.Filename, header.Size)

	parsed, err := a.parser.ParseFile(header.Filename, file)
	if err != nil {
		log.Printf("ERROR: Failed to parse CV %s: %v", header.Filename, err)
		http.Error(w, "failed to extract text from file", http.StatusInternalServerError)
		return
	}

	fields := cv.ExtractFields(parsed.FullText)
	contact := cv.ExtractContact(parsed.FullText)
	candidate := a.normalizer.Normalize(fields)

	var candidateID int64
	if contact.Email != "" {
		rec := storage.FromCandidate(candidate, contact.Email, contact.Phone, parsed.FilePath)
		candidateID, err = a.db.SaveCandidateContext(r.Context(), rec)
		if err != nil {
			log.Printf("ERROR: Failed to save candidate from %s: %v", header.Filename, err)
			http.Error(w, "failed to save candidate", http.StatusInternalServerError)
			return
		}
	} else {
		log.Printf("CV %s has no email address, storing file only", header.Filename)
	}

	var linkedCandidate *int64
	if candidateID > 0 {
		linkedCandidate = &candidateID
	}
	fileID, err := a.db.SaveCVFile(r.Context(), linkedCandidate,
		header.Filename, parsed.FilePath, parsed.FileType, parsed.FullText, parsed.FileSize)
	if err != nil {
		log.Printf("ERROR: Failed to record CV file %s: %v", header.Filename, err)
		http.Error(w, "failed to save file record", http.StatusInternalServerError)
		return
	}

	if candidateID > 0 {
		a.EnqueueOrganizationScoring(OrganizationJob{
			CandidateID: candidateID,
			CVText:      parsed.FullText,
			Filename:    header.Filename,
			Timestamp:   time.Now(),
		})
	}

	processingTime := time.Since(startTime).Milliseconds()
	log.Printf("CV processed in %dms: %s", processingTime, header.Filename)

	writeJSON(w, map[string]interface{}{
		"file_id":            fileID,
		"candidate_id":       candidateID,
		"filename":           header.Filename,
		"file_type":          parsed.FileType,
		"file_size":          parsed.FileSize,
		"email":              contact.Email,
		"phone":              contact.Phone,
		"candidate":          candidate,
		"processing_time_ms": processingTime,
	})
}
