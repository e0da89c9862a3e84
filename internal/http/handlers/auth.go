package handlers

import (
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"strings"

	"github.com/talentflow/talentflow-back/internal/domain"
	"github.com/talentflow/talentflow-back/internal/storage"
)

const passwordAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// tempPassword mimics the original invite flow: a short lowercase
// alphanumeric throwaway, emailed in clear via the outbox. Not a real
// credential system.
func tempPassword() string {
	buf := make([]byte, 6)
	for i := range buf {
		buf[i] = passwordAlphabet[rand.Intn(len(passwordAlphabet))]
	}
	return string(buf)
}

// InviteCandidate issues (or reissues) a temporary credential and records
// the notification email in the outbox.
func (api *API) InviteCandidate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r)
		return
	}
	api.flaky(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			CandidateID string `json:"candidateId"`
			Email       string `json:"email"`
		}
		if err := decodeJSON(r, &body); err != nil {
			writeError(w, r, http.StatusBadRequest, "invalid_request", "invalid payload")
			return
		}
		if strings.TrimSpace(body.Email) == "" {
			writeError(w, r, http.StatusBadRequest, "invalid_request", "email is required")
			return
		}

		password := tempPassword()
		auth, err := api.store.CreateCandidateAuth(r.Context(), body.CandidateID, body.Email, password)
		if err != nil {
			writeStorageError(w, r, err)
			return
		}

		_, err = api.store.AddOutboxMessage(r.Context(), domain.OutboxMessage{
			To:      body.Email,
			Subject: "Your TalentFlow access",
			Body:    fmt.Sprintf("Hello, your temporary password is: %s", password),
		})
		if err != nil {
			writeStorageError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"auth":     map[string]any{"email": auth.Email},
			"password": password,
		})
	})(w, r)
}

// Login validates the temporary credential. A credential whose candidate
// was deleted since the invite is treated as invalid.
func (api *API) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, r)
		return
	}

	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid_request", "invalid payload")
		return
	}

	email := storage.NormalizeEmail(body.Email)
	password := strings.TrimSpace(body.Password)
	if email == "" || password == "" {
		writeError(w, r, http.StatusBadRequest, "invalid_request", "email and password are required")
		return
	}

	auth, err := api.store.CandidateAuthByEmail(r.Context(), email)
	if err != nil {
		writeStorageError(w, r, err)
		return
	}
	if auth == nil || auth.Password != password {
		writeError(w, r, http.StatusUnauthorized, "invalid_credentials", "invalid credentials")
		return
	}

	if _, err := api.store.GetCandidate(r.Context(), auth.CandidateID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, r, http.StatusUnauthorized, "invalid_credentials", "invalid credentials")
			return
		}
		writeStorageError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"session": map[string]any{
			"candidateId": auth.CandidateID,
			"email":       auth.Email,
		},
	})
}
