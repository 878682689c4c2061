package web

import (
	"net/http"

	"github.com/chenna-nefer/InsightScout-new/internal/domain/ports/adapter"
	"github.com/chenna-nefer/InsightScout-new/internal/infra/loader"
	"github.com/chenna-nefer/InsightScout-new/internal/infra/logging"
	"github.com/chenna-nefer/InsightScout-new/internal/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Server wires the research job-control API.
type Server struct {
	research usecase.ResearchUseCase
	loader   *loader.Loader
	contacts adapter.ContactFinder // nil when no contact key is configured
	polls    *PollLimiter
	maxBytes int64
	log      *zerolog.Logger
}

func NewServer(
	research usecase.ResearchUseCase,
	companyLoader *loader.Loader,
	contacts adapter.ContactFinder,
	polls *PollLimiter,
	maxUploadBytes int64,
	logger *zerolog.Logger,
) *Server {
	l := logger.With().Str("component", "Server").Logger()
	return &Server{
		research: research,
		loader:   companyLoader,
		contacts: contacts,
		polls:    polls,
		maxBytes: maxUploadBytes,
		log:      &l,
	}
}

// Routes builds the router for the job-control API.
func (s *Server) Routes() *chi.Mux {
	r := chi.NewRouter()
	r.Use(s.requestID)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Route("/research", func(r chi.Router) {
			r.Post("/start", s.handleStart)
			r.Post("/upload", s.handleUpload)
			r.Post("/load", s.handleLoad)
			r.Get("/status/{jobID}", s.handleStatus)
			r.Post("/cancel/{jobID}", s.handleCancel)
			r.Post("/cleanup/{jobID}", s.handleCleanup)
			r.Get("/export/{jobID}", s.handleExport)
			r.Post("/email", s.handleEmail)
			r.Post("/phone", s.handlePhone)
		})
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}

// requestID tags every request with an id for log correlation.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logging.WithRequestID(r.Context(), uuid.NewString())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
