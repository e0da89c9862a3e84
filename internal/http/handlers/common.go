package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/talentflow/talentflow-back/internal/assessment"
	"github.com/talentflow/talentflow-back/internal/http/middleware"
	"github.com/talentflow/talentflow-back/internal/storage"
)

var errInvalidPayload = errors.New("invalid payload")

// API bundles the route handlers over the storage service. The flaky
// wrapper is applied per mutating route; with a zero failure rate it is a
// passthrough.
type API struct {
	store     *storage.Service
	validator *assessment.Validator
	seedData  func() storage.SeedData
	flaky     func(http.HandlerFunc) http.HandlerFunc
}

type Dependencies struct {
	Storage     *storage.Service
	Validator   *assessment.Validator
	SeedData    func() storage.SeedData
	FailureRate float64
}

func NewAPI(deps Dependencies) *API {
	validator := deps.Validator
	if validator == nil {
		validator = assessment.NewValidator()
	}
	seedData := deps.SeedData
	if seedData == nil {
		seedData = func() storage.SeedData { return storage.SeedData{} }
	}
	rate := deps.FailureRate
	return &API{
		store:     deps.Storage,
		validator: validator,
		seedData:  seedData,
		flaky: func(handler http.HandlerFunc) http.HandlerFunc {
			return middleware.Flaky(rate, handler)
		},
	}
}

type errorPayload struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Issues    []assessment.Issue `json:"issues,omitempty"`
	RequestID string             `json:"request_id"`
}

func writeJSON(w http.ResponseWriter, statusCode int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(value)
}

func writeError(w http.ResponseWriter, r *http.Request, statusCode int, code, message string) {
	payload := errorPayload{RequestID: middleware.GetRequestID(r.Context())}
	payload.Error.Code = code
	payload.Error.Message = message
	writeJSON(w, statusCode, payload)
}

// writeStorageError maps storage sentinels onto their HTTP statuses:
// uniqueness conflicts to 409, missing entities to 404, anything else 500.
func writeStorageError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, storage.ErrEmailTaken):
		writeError(w, r, http.StatusConflict, "email_conflict", storage.ErrEmailTaken.Error())
	case errors.Is(err, storage.ErrSlugTaken):
		writeError(w, r, http.StatusConflict, "slug_conflict", storage.ErrSlugTaken.Error())
	case errors.Is(err, storage.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "not_found", "resource not found")
	default:
		writeError(w, r, http.StatusInternalServerError, "internal_error", "storage operation failed")
	}
}

func decodeJSON(r *http.Request, value any) error {
	if err := json.NewDecoder(r.Body).Decode(value); err != nil {
		return errInvalidPayload
	}
	return nil
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return parsed
}

// pathSegments splits the path remainder after prefix into its slash parts.
func pathSegments(path, prefix string) []string {
	rest := strings.Trim(strings.TrimPrefix(path, prefix), "/")
	if rest == "" {
		return nil
	}
	return strings.Split(rest, "/")
}
