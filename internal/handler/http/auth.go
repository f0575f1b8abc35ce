// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/cpm-tools/vault-console/internal/app"
	"github.com/cpm-tools/vault-console/internal/logger"
	"github.com/cpm-tools/vault-console/internal/utils"
	"github.com/cpm-tools/vault-console/models"
)

type actorCtxKey struct{}

const tokenIssuer = "vault-console-stub"

// logon issues a signed bearer token for any non-empty username/password
// pair. The stub has no user database; authentication here only exists so
// the console exercises its real logon and expiry paths.
func (h *Handler) logon(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.LogonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("error decoding logon request")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		log.Warn().Str("username", req.Username).Msg("logon rejected")
		http.Error(w, app.MsgInvalidLoginPassword, http.StatusUnauthorized)
		return
	}

	token, err := utils.GenerateJWTToken(tokenIssuer, req.Username, h.cfg.TokenTTL, h.cfg.SignKey)
	if err != nil {
		log.Err(err).Msg("error signing token")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", "Bearer "+token)
	writeJSON(w, http.StatusOK, models.LogonResponse{Token: token})
}

// auth enforces bearer-token authentication on every API route except logon.
// The verified subject claim is stored in the request context so handlers can
// attribute audit entries to the caller.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		subject, err := h.verifyToken(tokenString)
		if err != nil {
			log.Err(err).Msg("token rejected")
			message := app.MsgTokenIsExpiredOrInvalid
			if errors.Is(err, jwt.ErrTokenExpired) {
				message = app.MsgTokenIsExpired
			}
			http.Error(w, message, http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), actorCtxKey{}, subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// verifyToken checks the signature and expiry and returns the subject claim.
func (h *Handler) verifyToken(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return []byte(h.cfg.SignKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// actorFromContext returns the authenticated subject, or "unknown" when the
// middleware did not run (tests hitting handlers directly).
func actorFromContext(ctx context.Context) string {
	if actor, ok := ctx.Value(actorCtxKey{}).(string); ok && actor != "" {
		return actor
	}
	return "unknown"
}
