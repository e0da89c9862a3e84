package handlers

import "net/http"

// Reseed wipes the store and loads a fresh sample dataset. Development
// helper only; the clear makes seed-if-empty unconditional.
func (api *API) Reseed(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r)
		return
	}

	if err := api.store.ClearAll(r.Context()); err != nil {
		writeStorageError(w, r, err)
		return
	}
	if err := api.store.SeedIfEmpty(r.Context(), api.seedData()); err != nil {
		writeStorageError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Data re-seeded successfully",
	})
}
