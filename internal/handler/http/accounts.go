// SPDX-License-Identifier: Apache-2.0

package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/cpm-tools/vault-console/internal/app"
	"github.com/cpm-tools/vault-console/internal/logger"
	"github.com/cpm-tools/vault-console/models"
)

// listAccounts serves the collection under the "data" envelope key. The
// console also understands the legacy "accounts" key; the stub always speaks
// the current revision.
func (h *Handler) listAccounts(w http.ResponseWriter, r *http.Request) {
	accounts := h.store.list()

	wire := make([]models.Account, 0, len(accounts))
	for _, account := range accounts {
		wire = append(wire, account.Account)
	}

	writeJSON(w, http.StatusOK, map[string]any{"data": wire})
}

func (h *Handler) getStatistics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.statistics())
}

func (h *Handler) createAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("error decoding create request")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Hostname) == "" ||
		strings.TrimSpace(req.Username) == "" || req.Password == "" {
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}
	if h.store.nameTaken(req.Name) {
		http.Error(w, app.MsgAccountNameTaken, http.StatusConflict)
		return
	}

	account := h.store.create(req, actorFromContext(r.Context()))
	log.Info().Str("account_id", account.ID).Str("name", account.Name).Msg("account created")

	writeJSON(w, http.StatusCreated, account.Account)
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !h.store.delete(id, actorFromContext(r.Context())) {
		http.Error(w, app.MsgAccountNotFound, http.StatusNotFound)
		return
	}

	logger.FromRequest(r).Info().Str("account_id", id).Msg("account deleted")
	w.WriteHeader(http.StatusNoContent)
}

// getCredential serves the detail projection including the stored secret.
// The stub grants reveal permission unconditionally.
func (h *Handler) getCredential(w http.ResponseWriter, r *http.Request) {
	account, ok := h.store.get(chi.URLParam(r, "id"))
	if !ok {
		http.Error(w, app.MsgAccountNotFound, http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, models.Credential{
		Account:           account.Account,
		Password:          account.password,
		VerificationError: account.verificationError,
		DatabaseHost:      account.databaseHost,
		DatabasePort:      account.databasePort,
		DatabaseName:      account.databaseName,
		DatabaseSchema:    account.databaseSchema,
		SSLEnabled:        account.sslEnabled,
	})
}

func (h *Handler) rotatePassword(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	resp, ok := h.store.rotate(id, actorFromContext(r.Context()))
	if !ok {
		http.Error(w, app.MsgAccountNotFound, http.StatusNotFound)
		return
	}

	logger.FromRequest(r).Info().Str("account_id", id).Bool("success", resp.Success).Msg("rotate requested")
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) validateCredential(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	resp, ok := h.store.validate(id, actorFromContext(r.Context()))
	if !ok {
		http.Error(w, app.MsgAccountNotFound, http.StatusNotFound)
		return
	}

	logger.FromRequest(r).Info().Str("account_id", id).Str("status", string(resp.ValidationStatus)).Msg("validate requested")
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) getValidationHistory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := h.store.get(id); !ok {
		http.Error(w, app.MsgAccountNotFound, http.StatusNotFound)
		return
	}

	entries := h.store.validationHistory(id)
	writeJSON(w, http.StatusOK, models.HistoryEnvelope{Validations: entries, Length: len(entries)})
}

func (h *Handler) getAuditLogs(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := h.store.get(id); !ok {
		http.Error(w, app.MsgAccountNotFound, http.StatusNotFound)
		return
	}

	entries := h.store.auditLogs(id)
	writeJSON(w, http.StatusOK, models.HistoryEnvelope{AuditLogs: entries, Length: len(entries)})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
