package handlers

import (
	"net/http"
	"strings"

	"github.com/talentflow/talentflow-back/internal/domain"
	"github.com/talentflow/talentflow-back/internal/storage"
)

// Candidates handles the /api/candidates collection: GET lists with
// filters, POST creates with the email uniqueness check.
func (api *API) Candidates(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		api.listCandidates(w, r)
	case http.MethodPost:
		api.createCandidate(w, r)
	default:
		methodNotAllowed(w, r)
	}
}

func (api *API) listCandidates(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := domain.CandidateListFilter{
		Search:   query.Get("search"),
		Stage:    query.Get("stage"),
		Page:     queryInt(r, "page", 1),
		PageSize: queryInt(r, "pageSize", 0),
	}
	if filter.Stage == "" {
		filter.Stage = "all"
	}

	candidates, total, err := api.store.ListCandidates(r.Context(), filter)
	if err != nil {
		writeStorageError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"candidates": candidates, "total": total})
}

func (api *API) createCandidate(w http.ResponseWriter, r *http.Request) {
	var candidate domain.Candidate
	if err := decodeJSON(r, &candidate); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid_request", "invalid payload")
		return
	}
	if strings.TrimSpace(candidate.Name) == "" {
		writeError(w, r, http.StatusBadRequest, "invalid_request", "name is required")
		return
	}
	if candidate.Stage != "" && !domain.ValidStage(candidate.Stage) {
		writeError(w, r, http.StatusBadRequest, "invalid_request", "unknown stage")
		return
	}

	created, err := api.store.AddCandidate(r.Context(), candidate)
	if err != nil {
		writeStorageError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"candidate": created})
}

// CandidateByID handles /api/candidates/{id} plus the nested timeline,
// assignments and assign routes.
func (api *API) CandidateByID(w http.ResponseWriter, r *http.Request) {
	segments := pathSegments(r.URL.Path, "/api/candidates/")
	switch {
	case len(segments) == 1:
		candidateID := segments[0]
		switch r.Method {
		case http.MethodGet:
			api.getCandidate(w, r, candidateID)
		case http.MethodPut:
			api.updateCandidate(w, r, candidateID)
		case http.MethodDelete:
			api.flaky(func(w http.ResponseWriter, r *http.Request) {
				api.deleteCandidate(w, r, candidateID)
			})(w, r)
		default:
			methodNotAllowed(w, r)
		}
	case len(segments) == 2 && segments[1] == "timeline":
		if r.Method != http.MethodGet {
			methodNotAllowed(w, r)
			return
		}
		api.candidateTimeline(w, r, segments[0])
	case len(segments) == 2 && segments[1] == "assignments":
		if r.Method != http.MethodGet {
			methodNotAllowed(w, r)
			return
		}
		api.candidateAssignments(w, r, segments[0])
	case len(segments) == 2 && segments[1] == "assign":
		if r.Method != http.MethodPost {
			methodNotAllowed(w, r)
			return
		}
		candidateID := segments[0]
		api.flaky(func(w http.ResponseWriter, r *http.Request) {
			api.assignCandidate(w, r, candidateID)
		})(w, r)
	default:
		writeError(w, r, http.StatusNotFound, "not_found", "unknown route")
	}
}

func (api *API) getCandidate(w http.ResponseWriter, r *http.Request, candidateID string) {
	candidate, err := api.store.GetCandidate(r.Context(), candidateID)
	if err != nil {
		writeStorageError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"candidate": candidate})
}

func (api *API) updateCandidate(w http.ResponseWriter, r *http.Request, candidateID string) {
	var update storage.CandidateUpdate
	if err := decodeJSON(r, &update); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid_request", "invalid payload")
		return
	}
	if update.Stage != nil && !domain.ValidStage(*update.Stage) {
		writeError(w, r, http.StatusBadRequest, "invalid_request", "unknown stage")
		return
	}

	candidate, err := api.store.UpdateCandidate(r.Context(), candidateID, update)
	if err != nil {
		writeStorageError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"candidate": candidate})
}

func (api *API) deleteCandidate(w http.ResponseWriter, r *http.Request, candidateID string) {
	if err := api.store.DeleteCandidate(r.Context(), candidateID); err != nil {
		writeStorageError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (api *API) candidateTimeline(w http.ResponseWriter, r *http.Request, candidateID string) {
	timeline, err := api.store.Timeline(r.Context(), candidateID)
	if err != nil {
		writeStorageError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"timeline": timeline})
}

func (api *API) candidateAssignments(w http.ResponseWriter, r *http.Request, candidateID string) {
	assignments, err := api.store.Assignments(r.Context(), candidateID)
	if err != nil {
		writeStorageError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"assignments": assignments})
}

func (api *API) assignCandidate(w http.ResponseWriter, r *http.Request, candidateID string) {
	var body struct {
		JobID string `json:"jobId"`
	}
	if err := decodeJSON(r, &body); err != nil || strings.TrimSpace(body.JobID) == "" {
		writeError(w, r, http.StatusBadRequest, "invalid_request", "jobId is required")
		return
	}

	assignments, err := api.store.AssignAssessment(r.Context(), candidateID, body.JobID)
	if err != nil {
		writeStorageError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"assignments": assignments})
}
