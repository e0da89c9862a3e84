package handlers

import "net/http"

// Outbox is a debug listing of the simulated email side channel.
func (api *API) Outbox(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, r)
		return
	}

	messages, err := api.store.Outbox(r.Context())
	if err != nil {
		writeStorageError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"outbox": messages})
}
