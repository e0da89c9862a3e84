package handlers

import (
	"net/http"
	"strings"

	"github.com/talentflow/talentflow-back/internal/domain"
	"github.com/talentflow/talentflow-back/internal/storage"
)

// Jobs handles the /api/jobs collection: GET lists with filters, POST
// creates (subject to the failure roll).
func (api *API) Jobs(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		api.listJobs(w, r)
	case http.MethodPost:
		api.flaky(api.createJob)(w, r)
	default:
		methodNotAllowed(w, r)
	}
}

func (api *API) listJobs(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := domain.JobListFilter{
		Search:   query.Get("search"),
		Status:   query.Get("status"),
		Type:     query.Get("type"),
		Sort:     query.Get("sort"),
		Page:     queryInt(r, "page", 1),
		PageSize: queryInt(r, "pageSize", 0),
	}
	if filter.Status == "" {
		filter.Status = domain.JobFilterAll
	}
	if rawTags := strings.TrimSpace(query.Get("tags")); rawTags != "" {
		for _, tag := range strings.Split(rawTags, ",") {
			if trimmed := strings.TrimSpace(tag); trimmed != "" {
				filter.Tags = append(filter.Tags, trimmed)
			}
		}
	}

	jobs, total, err := api.store.ListJobs(r.Context(), filter)
	if err != nil {
		writeStorageError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"jobs": jobs, "total": total})
}

func (api *API) createJob(w http.ResponseWriter, r *http.Request) {
	var job domain.Job
	if err := decodeJSON(r, &job); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid_request", "invalid payload")
		return
	}
	if strings.TrimSpace(job.Title) == "" {
		writeError(w, r, http.StatusBadRequest, "invalid_request", "title is required")
		return
	}

	created, err := api.store.CreateJob(r.Context(), job)
	if err != nil {
		writeStorageError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"job": created})
}

// ReorderJobs applies a stable partial reorder: listed ids first in the
// given order, everything else after in original relative order.
func (api *API) ReorderJobs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r)
		return
	}
	api.flaky(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Order []string `json:"order"`
		}
		if err := decodeJSON(r, &body); err != nil {
			writeError(w, r, http.StatusBadRequest, "invalid_request", "invalid payload")
			return
		}

		jobs, err := api.store.ReorderJobs(r.Context(), body.Order)
		if err != nil {
			writeStorageError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"jobs": jobs})
	})(w, r)
}

func (api *API) BulkUnarchiveJobs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r)
		return
	}
	var body struct {
		IDs []string `json:"ids"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid_request", "invalid payload")
		return
	}

	jobs, err := api.store.BulkUnarchive(r.Context(), body.IDs)
	if err != nil {
		writeStorageError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"jobs": jobs})
}

// JobByID handles /api/jobs/{id} (PUT, DELETE) and /api/jobs/{id}/archive
// (PATCH). All three are subject to the failure roll.
func (api *API) JobByID(w http.ResponseWriter, r *http.Request) {
	segments := pathSegments(r.URL.Path, "/api/jobs/")
	switch {
	case len(segments) == 1:
		jobID := segments[0]
		switch r.Method {
		case http.MethodPut:
			api.flaky(func(w http.ResponseWriter, r *http.Request) {
				api.updateJob(w, r, jobID)
			})(w, r)
		case http.MethodDelete:
			api.flaky(func(w http.ResponseWriter, r *http.Request) {
				api.deleteJob(w, r, jobID)
			})(w, r)
		default:
			methodNotAllowed(w, r)
		}
	case len(segments) == 2 && segments[1] == "archive":
		if r.Method != http.MethodPatch {
			methodNotAllowed(w, r)
			return
		}
		jobID := segments[0]
		api.flaky(func(w http.ResponseWriter, r *http.Request) {
			api.archiveJob(w, r, jobID)
		})(w, r)
	default:
		writeError(w, r, http.StatusNotFound, "not_found", "unknown route")
	}
}

func (api *API) updateJob(w http.ResponseWriter, r *http.Request, jobID string) {
	var update storage.JobUpdate
	if err := decodeJSON(r, &update); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid_request", "invalid payload")
		return
	}

	job, err := api.store.UpdateJob(r.Context(), jobID, update)
	if err != nil {
		writeStorageError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"job": job})
}

func (api *API) archiveJob(w http.ResponseWriter, r *http.Request, jobID string) {
	var body struct {
		Archived bool `json:"archived"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid_request", "invalid payload")
		return
	}

	job, err := api.store.ArchiveJob(r.Context(), jobID, body.Archived)
	if err != nil {
		writeStorageError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"job": job})
}

func (api *API) deleteJob(w http.ResponseWriter, r *http.Request, jobID string) {
	if err := api.store.DeleteJob(r.Context(), jobID); err != nil {
		writeStorageError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
