// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/cpm-tools/vault-console/internal/config"
	"github.com/cpm-tools/vault-console/internal/logger"
	"github.com/cpm-tools/vault-console/internal/utils"
	"github.com/cpm-tools/vault-console/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.APIAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.APIAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.APIAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter api address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	return h.token
}

// Logon implements [ServerAdapter]. It POSTs the credentials to
// POST /api/v1/auth/logon. The token is taken from the response body, with
// the Authorization response header as a fallback for older servers. On
// success the token is stored via SetToken.
func (h *httpServerAdapter) Logon(ctx context.Context, req models.LogonRequest) (string, error) {
	var result models.LogonResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post("/api/v1/auth/logon")
	if err != nil {
		return "", fmt.Errorf("logon request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	token := result.Token
	if token == "" {
		token, err = utils.ParseBearerToken(resp.Header().Get("Authorization"))
		if err != nil {
			return "", fmt.Errorf("logon parse bearer token: %w", err)
		}
	}

	h.SetToken(token)
	return token, nil
}

// ListAccounts implements [ServerAdapter]. It GETs /api/v1/accounts, accepts
// the collection under either the "data" or legacy "accounts" key, and
// normalizes every entry into the console-facing [models.Account] shape.
// Requires a valid bearer token.
func (h *httpServerAdapter) ListAccounts(ctx context.Context) ([]models.Account, error) {
	resp, err := h.authedRequest(ctx).Get("/api/v1/accounts")
	if err != nil {
		return nil, fmt.Errorf("list accounts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var envelope models.AccountsEnvelope
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, fmt.Errorf("decode accounts response: %w", err)
	}

	return models.NormalizeAll(envelope.Collection()), nil
}

// GetStatistics implements [ServerAdapter]. It GETs
// /api/v1/accounts/statistics and decodes the aggregate counters. Requires a
// valid bearer token.
func (h *httpServerAdapter) GetStatistics(ctx context.Context) (models.AccountStatistics, error) {
	var stats models.AccountStatistics

	resp, err := h.authedRequest(ctx).
		SetResult(&stats).
		Get("/api/v1/accounts/statistics")
	if err != nil {
		return models.AccountStatistics{}, fmt.Errorf("get statistics request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AccountStatistics{}, err
	}

	return stats, nil
}

// GetCredential implements [ServerAdapter]. It GETs /api/v1/credentials/{id}
// and normalizes the detail projection. Requires a valid bearer token.
func (h *httpServerAdapter) GetCredential(ctx context.Context, id string) (models.Credential, error) {
	resp, err := h.authedRequest(ctx).Get("/api/v1/credentials/" + url.PathEscape(id))
	if err != nil {
		return models.Credential{}, fmt.Errorf("get credential request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Credential{}, err
	}

	var raw models.RawCredential
	if err = json.Unmarshal(resp.Body(), &raw); err != nil {
		return models.Credential{}, fmt.Errorf("decode credential response: %w", err)
	}

	return raw.Normalize(), nil
}

// CreateAccount implements [ServerAdapter]. It POSTs the wizard payload to
// POST /api/v1/accounts exactly once and returns the created account as the
// server echoes it. Requires a valid bearer token.
func (h *httpServerAdapter) CreateAccount(ctx context.Context, req models.CreateAccountRequest) (models.Account, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/v1/accounts")
	if err != nil {
		return models.Account{}, fmt.Errorf("create account request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Account{}, err
	}

	var raw models.RawAccount
	if err = json.Unmarshal(resp.Body(), &raw); err != nil {
		return models.Account{}, fmt.Errorf("decode created account: %w", err)
	}

	return raw.Normalize(), nil
}

// DeleteAccount implements [ServerAdapter]. It sends
// DELETE /api/v1/accounts/{id}. Requires a valid bearer token.
func (h *httpServerAdapter) DeleteAccount(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).Delete("/api/v1/accounts/" + url.PathEscape(id))
	if err != nil {
		return fmt.Errorf("delete account request: %w", err)
	}

	return mapHTTPError(resp)
}

// RotatePassword implements [ServerAdapter]. It POSTs to
// /api/v1/accounts/{id}/rotate. A rotation the backend refused arrives as
// Success=false inside a 200 body and is returned to the caller unchanged,
// not as an error. Requires a valid bearer token.
func (h *httpServerAdapter) RotatePassword(ctx context.Context, id string) (models.ActionResponse, error) {
	return h.postAction(ctx, "/api/v1/accounts/"+url.PathEscape(id)+"/rotate", "rotate password")
}

// ValidateCredential implements [ServerAdapter]. It POSTs to
// /api/v1/accounts/{id}/validate and returns the resulting validation status.
// Requires a valid bearer token.
func (h *httpServerAdapter) ValidateCredential(ctx context.Context, id string) (models.ActionResponse, error) {
	return h.postAction(ctx, "/api/v1/accounts/"+url.PathEscape(id)+"/validate", "validate credential")
}

func (h *httpServerAdapter) postAction(ctx context.Context, path, action string) (models.ActionResponse, error) {
	var result models.ActionResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&result).
		Post(path)
	if err != nil {
		return models.ActionResponse{}, fmt.Errorf("%s request: %w", action, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ActionResponse{}, err
	}

	return result, nil
}

// GetValidationHistory implements [ServerAdapter]. It GETs
// /api/v1/accounts/{id}/validations and decodes the append-only records.
// Requires a valid bearer token.
func (h *httpServerAdapter) GetValidationHistory(ctx context.Context, id string) ([]models.ValidationHistoryEntry, error) {
	resp, err := h.authedRequest(ctx).Get("/api/v1/accounts/" + url.PathEscape(id) + "/validations")
	if err != nil {
		return nil, fmt.Errorf("get validation history request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var envelope models.HistoryEnvelope
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, fmt.Errorf("decode validation history response: %w", err)
	}

	return envelope.Validations, nil
}

// GetAuditLogs implements [ServerAdapter]. It GETs
// /api/v1/accounts/{id}/audit and decodes the append-only audit records.
// Requires a valid bearer token.
func (h *httpServerAdapter) GetAuditLogs(ctx context.Context, id string) ([]models.AuditLog, error) {
	resp, err := h.authedRequest(ctx).Get("/api/v1/accounts/" + url.PathEscape(id) + "/audit")
	if err != nil {
		return nil, fmt.Errorf("get audit logs request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var envelope models.HistoryEnvelope
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, fmt.Errorf("decode audit logs response: %w", err)
	}

	return envelope.AuditLogs, nil
}

// ExportReport implements [ServerAdapter]. It POSTs the export configuration
// to /api/v1/reports/export and decodes the {content, recordCount} response.
// Requires a valid bearer token.
func (h *httpServerAdapter) ExportReport(ctx context.Context, opts models.ExportOptions) (models.ExportResult, error) {
	var result models.ExportResult

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(opts).
		SetResult(&result).
		Post("/api/v1/reports/export")
	if err != nil {
		return models.ExportResult{}, fmt.Errorf("export report request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ExportResult{}, err
	}

	return result, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
