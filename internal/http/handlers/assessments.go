package handlers

import (
	"net/http"

	"github.com/talentflow/talentflow-back/internal/domain"
	"github.com/talentflow/talentflow-back/internal/http/middleware"
)

// AssessmentByJob handles /api/assessments/{jobId} (GET, PUT) plus the
// nested submit and submissions routes.
func (api *API) AssessmentByJob(w http.ResponseWriter, r *http.Request) {
	segments := pathSegments(r.URL.Path, "/api/assessments/")
	switch {
	case len(segments) == 1:
		jobID := segments[0]
		switch r.Method {
		case http.MethodGet:
			api.getAssessment(w, r, jobID)
		case http.MethodPut:
			api.flaky(func(w http.ResponseWriter, r *http.Request) {
				api.saveAssessment(w, r, jobID)
			})(w, r)
		default:
			methodNotAllowed(w, r)
		}
	case len(segments) == 2 && segments[1] == "submit":
		if r.Method != http.MethodPost {
			methodNotAllowed(w, r)
			return
		}
		api.submitAssessment(w, r, segments[0])
	case len(segments) == 2 && segments[1] == "submissions":
		if r.Method != http.MethodGet {
			methodNotAllowed(w, r)
			return
		}
		api.listSubmissions(w, r, segments[0])
	default:
		writeError(w, r, http.StatusNotFound, "not_found", "unknown route")
	}
}

// getAssessment returns {"assessment": null} for jobs without one; callers
// treat that as "start from a blank builder".
func (api *API) getAssessment(w http.ResponseWriter, r *http.Request, jobID string) {
	assessment, err := api.store.GetAssessment(r.Context(), jobID)
	if err != nil {
		writeStorageError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"assessment": assessment})
}

func (api *API) saveAssessment(w http.ResponseWriter, r *http.Request, jobID string) {
	var payload domain.Assessment
	if err := decodeJSON(r, &payload); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid_request", "invalid payload")
		return
	}

	saved, err := api.store.SaveAssessment(r.Context(), jobID, payload)
	if err != nil {
		writeStorageError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"assessment": saved})
}

// submitAssessment validates responses against the saved assessment before
// appending. A job without a saved assessment accepts any submission.
func (api *API) submitAssessment(w http.ResponseWriter, r *http.Request, jobID string) {
	var submission domain.Submission
	if err := decodeJSON(r, &submission); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid_request", "invalid payload")
		return
	}

	definition, err := api.store.GetAssessment(r.Context(), jobID)
	if err != nil {
		writeStorageError(w, r, err)
		return
	}
	if definition != nil {
		if issues := api.validator.Validate(*definition, submission.Responses); len(issues) > 0 {
			payload := errorPayload{RequestID: middleware.GetRequestID(r.Context())}
			payload.Error.Code = "invalid_submission"
			payload.Error.Message = "submission failed validation"
			payload.Issues = issues
			writeJSON(w, http.StatusBadRequest, payload)
			return
		}
	}

	stored, err := api.store.SubmitAssessment(r.Context(), jobID, submission)
	if err != nil {
		writeStorageError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"submission": stored})
}

func (api *API) listSubmissions(w http.ResponseWriter, r *http.Request, jobID string) {
	submissions, err := api.store.Submissions(r.Context(), jobID)
	if err != nil {
		writeStorageError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"submissions": submissions})
}
