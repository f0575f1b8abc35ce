// SPDX-License-Identifier: Apache-2.0

package http

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/cpm-tools/vault-console/internal/app"
	"github.com/cpm-tools/vault-console/internal/logger"
	"github.com/cpm-tools/vault-console/models"
)

// exportReport builds a report from the current dataset. CSV and JSON
// payloads are real; xlsx and pdf reuse the CSV bytes as a placeholder, the
// stub does not fabricate binary formats.
func (h *Handler) exportReport(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var opts models.ExportOptions
	if err := json.NewDecoder(r.Body).Decode(&opts); err != nil {
		log.Err(err).Msg("error decoding export options")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}
	if opts.Format.Extension() == "bin" {
		http.Error(w, app.MsgUnknownExportFormat, http.StatusBadRequest)
		return
	}

	accounts := h.filterForExport(opts)

	var content []byte
	var err error
	switch opts.Format {
	case models.FormatJSON:
		content, err = h.renderJSON(accounts, opts)
	default:
		content, err = renderCSV(accounts, opts.Fields)
	}
	if err != nil {
		log.Err(err).Msg("error rendering report")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
		return
	}

	log.Info().Str("preset", opts.Preset).Int("records", len(accounts)).Msg("report generated")
	writeJSON(w, http.StatusOK, models.ExportResult{Content: content, RecordCount: len(accounts)})
}

func (h *Handler) filterForExport(opts models.ExportOptions) []stubAccount {
	accounts := h.store.list()

	filtered := accounts[:0]
	for _, account := range accounts {
		if opts.OnlyFailures && account.ValidationStatus != models.ValidationInvalid {
			continue
		}
		if opts.OnlyOverdue && account.RotationStatus != models.RotationOverdue {
			continue
		}
		if opts.DateFrom != nil && account.CreatedAt != nil && account.CreatedAt.Before(*opts.DateFrom) {
			continue
		}
		if opts.DateTo != nil && account.CreatedAt != nil && account.CreatedAt.After(*opts.DateTo) {
			continue
		}
		filtered = append(filtered, account)
	}
	return filtered
}

func renderCSV(accounts []stubAccount, fields []string) ([]byte, error) {
	if len(fields) == 0 {
		fields = []string{"name", "system_type", "hostname", "username", "safe", "rotation_status", "validation_status"}
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.Write(fields); err != nil {
		return nil, err
	}

	for _, account := range accounts {
		row := make([]string, 0, len(fields))
		for _, field := range fields {
			row = append(row, fieldValue(account, field))
		}
		if err := writer.Write(row); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	return buf.Bytes(), writer.Error()
}

func (h *Handler) renderJSON(accounts []stubAccount, opts models.ExportOptions) ([]byte, error) {
	rows := make([]map[string]string, 0, len(accounts))
	for _, account := range accounts {
		row := make(map[string]string, len(opts.Fields))
		for _, field := range opts.Fields {
			row[field] = fieldValue(account, field)
		}
		rows = append(rows, row)
	}

	payload := map[string]any{"rows": rows}
	if opts.IncludeAudit {
		audits := make([]models.AuditLog, 0)
		for _, account := range accounts {
			audits = append(audits, h.store.auditLogs(account.ID)...)
		}
		payload["audit"] = audits
	}

	return json.Marshal(payload)
}

// fieldValue resolves one report column. Unknown field names yield an empty
// cell rather than an error, matching the backend's lenient behaviour.
func fieldValue(account stubAccount, field string) string {
	switch field {
	case "id", "account_id":
		return account.ID
	case "name":
		return account.Name
	case "owner":
		return account.Owner
	case "system_type":
		return string(account.SystemType)
	case "hostname":
		return account.Hostname
	case "port":
		return strconv.Itoa(account.Port)
	case "safe":
		return account.Safe
	case "username":
		return account.Username
	case "rotation_status":
		return string(account.RotationStatus)
	case "rotation_policy_id":
		return account.RotationPolicyID
	case "validation_status":
		return string(account.ValidationStatus)
	case "verification_error":
		return account.verificationError
	default:
		return ""
	}
}
