package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/chenna-nefer/InsightScout-new/internal/domain"
	"github.com/chenna-nefer/InsightScout-new/internal/infra/loader"

	"github.com/go-chi/chi/v5"
)

type startRequest struct {
	Companies []string `json:"companies"`
}

func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	var req startRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, domain.ErrInvalidArgument)
		return
	}

	jobID, err := s.research.Start(r.Context(), req.Companies)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]string{"jobId": jobID})
}

// handleUpload loads a company list from a spreadsheet and starts a job in
// one call.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	companies, ok := s.readCompaniesFile(w, r)
	if !ok {
		return
	}

	jobID, err := s.research.Start(r.Context(), companies)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, struct {
		JobID     string   `json:"jobId"`
		Total     int      `json:"total"`
		Companies []string `json:"companies"`
	}{JobID: jobID, Total: len(companies), Companies: companies})
}

func (s *Server) handleLoad(w http.ResponseWriter, r *http.Request) {
	companies, ok := s.readCompaniesFile(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, map[string][]string{"companies": companies})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")

	if !s.polls.Allow(jobID) {
		s.writeError(w, r, domain.ErrTooManyRequests)
		return
	}

	job, err := s.research.Status(r.Context(), jobID)
	if err != nil {
		if errors.Is(err, domain.ErrJobNotFound) {
			s.polls.Forget(jobID)
		}
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, job)
}

func (s *Server) handleCancel(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")

	if err := s.research.Cancel(r.Context(), jobID); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"message": "cancelled"})
}

func (s *Server) handleCleanup(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")

	if err := s.research.Cleanup(r.Context(), jobID); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.polls.Forget(jobID)
	s.writeJSON(w, http.StatusOK, map[string]string{"message": "cleaned up"})
}

// handleExport streams the job's accumulated results as an xlsx workbook,
// including partial results of failed or cancelled jobs.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")

	job, err := s.research.Status(r.Context(), jobID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	data, err := loader.WriteResults(job.Results)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="company_details.xlsx"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

type lookupRequest struct {
	URL string `json:"url"`
}

func (s *Server) handleEmail(w http.ResponseWriter, r *http.Request) {
	url, ok := s.readLookupURL(w, r)
	if !ok {
		return
	}

	email, err := s.contacts.FindEmail(r.Context(), url)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]*string{"email": orNull(email)})
}

func (s *Server) handlePhone(w http.ResponseWriter, r *http.Request) {
	url, ok := s.readLookupURL(w, r)
	if !ok {
		return
	}

	phone, err := s.contacts.FindPhone(r.Context(), url)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]*string{"phone": orNull(phone)})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, struct {
		Status    string `json:"status"`
		Timestamp string `json:"timestamp"`
	}{Status: "ok", Timestamp: time.Now().UTC().Format(time.RFC3339)})
}

// readCompaniesFile pulls the "file" part out of a multipart upload and runs
// it through the loader; on failure it writes the error response itself.
func (s *Server) readCompaniesFile(w http.ResponseWriter, r *http.Request) ([]string, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxBytes+4096) // multipart framing overhead
	if err := r.ParseMultipartForm(s.maxBytes); err != nil {
		s.writeError(w, r, domain.ErrInvalidArgument)
		return nil, false
	}
	file, hdr, err := r.FormFile("file")
	if err != nil {
		s.writeError(w, r, domain.ErrInvalidArgument)
		return nil, false
	}
	defer file.Close()

	companies, err := s.loader.FromUpload(file, hdr)
	if err != nil {
		s.writeError(w, r, err)
		return nil, false
	}
	return companies, true
}

func (s *Server) readLookupURL(w http.ResponseWriter, r *http.Request) (string, bool) {
	if s.contacts == nil {
		s.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "contact lookup not configured"})
		return "", false
	}
	var req lookupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.URL == "" {
		s.writeError(w, r, domain.ErrInvalidArgument)
		return "", false
	}
	return req.URL, true
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrJobNotFound):
		code = http.StatusNotFound
	case errors.Is(err, domain.ErrTooManyRequests):
		code = http.StatusTooManyRequests
	case errors.Is(err, domain.ErrEmptyCompanyList),
		errors.Is(err, domain.ErrInvalidArgument),
		errors.Is(err, domain.ErrUnsupportedFile),
		errors.Is(err, domain.ErrNoCompaniesInFile):
		code = http.StatusBadRequest
	case errors.Is(err, domain.ErrInsufficientCredits):
		code = http.StatusPaymentRequired
	}

	if code == http.StatusInternalServerError {
		s.log.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	}
	s.writeJSON(w, code, map[string]string{"error": err.Error()})
}

func orNull(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
