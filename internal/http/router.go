package httpserver

import (
	"log"
	"net/http"

	"github.com/talentflow/talentflow-back/internal/http/handlers"
	"github.com/talentflow/talentflow-back/internal/http/middleware"
)

type RouterDependencies struct {
	API            *handlers.API
	Logger         *log.Logger
	AuthToken      string
	CORSOrigins    []string
	RateLimitRPS   float64
	RateLimitBurst int
	Chaos          middleware.ChaosConfig
}

// NewRouter wires the full route surface. The artificial latency wraps
// every /api route; the per-route failure rolls live inside the handlers so
// exactly the designated mutations are flaky.
func NewRouter(deps RouterDependencies) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", deps.API.Health)

	api := http.NewServeMux()
	api.HandleFunc("/api/jobs", deps.API.Jobs)
	api.HandleFunc("/api/jobs/reorder", deps.API.ReorderJobs)
	api.HandleFunc("/api/jobs/bulk-unarchive", deps.API.BulkUnarchiveJobs)
	api.HandleFunc("/api/jobs/", deps.API.JobByID)
	api.HandleFunc("/api/candidates", deps.API.Candidates)
	api.HandleFunc("/api/candidates/", deps.API.CandidateByID)
	api.HandleFunc("/api/assessments/", deps.API.AssessmentByJob)
	api.HandleFunc("/api/auth/invite", deps.API.InviteCandidate)
	api.HandleFunc("/api/auth/login", deps.API.Login)
	api.HandleFunc("/api/outbox", deps.API.Outbox)
	api.HandleFunc("/api/dev/reseed", deps.API.Reseed)
	mux.Handle("/api/", middleware.Latency(deps.Chaos)(api))

	handler := http.Handler(mux)
	handler = middleware.Auth(deps.AuthToken)(handler)
	handler = middleware.RateLimit(deps.RateLimitRPS, deps.RateLimitBurst)(handler)
	handler = middleware.CORS(middleware.CORSConfig{
		AllowedOrigins: deps.CORSOrigins,
	})(handler)
	handler = middleware.Trace(deps.Logger)(handler)
	handler = middleware.RequestID(handler)

	return handler
}
