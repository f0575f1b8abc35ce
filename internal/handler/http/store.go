// SPDX-License-Identifier: Apache-2.0

package http

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cpm-tools/vault-console/models"
)

// stubAccount is an account plus the detail-only fields the list endpoint
// never exposes.
type stubAccount struct {
	models.Account

	password          string
	verificationError string

	databaseHost   string
	databasePort   int
	databaseName   string
	databaseSchema string
	sslEnabled     bool
}

// memoryStore holds the fabricated dataset behind a single mutex. Accounts,
// validation history, and audit logs live and die with the process.
type memoryStore struct {
	mu sync.Mutex

	accounts    map[string]*stubAccount
	validations map[string][]models.ValidationHistoryEntry
	audits      map[string][]models.AuditLog
}

func newMemoryStore() *memoryStore {
	s := &memoryStore{
		accounts:    make(map[string]*stubAccount),
		validations: make(map[string][]models.ValidationHistoryEntry),
		audits:      make(map[string][]models.AuditLog),
	}
	s.seed()
	return s
}

// seed loads a small dataset covering every rotation and validation status so
// each console screen has something to show.
func (s *memoryStore) seed() {
	now := time.Now()
	seeded := []stubAccount{
		{
			Account: models.Account{
				Name: "prod-web-01 root", SystemType: models.SystemLinux,
				Hostname: "web01.corp.local", Port: 22, ConnectionMethod: "ssh",
				Safe: "Production", Username: "root", Owner: "infra-team",
				RotationPolicyID: "linux-30d", RotationStatus: models.RotationCurrent,
				ValidationStatus: models.ValidationValid,
			},
			password: "Xy!7pQw9rT2m",
		},
		{
			Account: models.Account{
				Name: "prod-db-01 sys", SystemType: models.SystemOracleDB,
				Hostname: "db01.corp.local", Port: 1521, ConnectionMethod: "sqlnet",
				Safe: "Production", Username: "sys", Owner: "dba-team",
				RotationPolicyID: "db-14d", RotationStatus: models.RotationOverdue,
				ValidationStatus: models.ValidationInvalid,
			},
			password:          "0r4cle#Adm1n",
			verificationError: "ORA-01017: invalid username/password",
			databaseHost:      "db01.corp.local", databasePort: 1521,
			databaseName: "PRODDB", databaseSchema: "SYS", sslEnabled: true,
		},
		{
			Account: models.Account{
				Name: "ad-svc-backup", SystemType: models.SystemAD,
				Hostname: "dc01.corp.local", Port: 389, ConnectionMethod: "ldap",
				Safe: "Services", Username: "svc_backup", Owner: "infra-team",
				RotationPolicyID: "ad-90d", RotationStatus: models.RotationDueSoon,
				ValidationStatus: models.ValidationPending,
			},
			password: "B4ckup$2026",
		},
		{
			Account: models.Account{
				Name: "legacy-app admin", SystemType: models.SystemWebApp,
				Hostname: "legacy.corp.local", Port: 443, ConnectionMethod: "https",
				Safe: "Default", Username: "admin", Owner: "app-team",
				RotationPolicyID: "no_policy", RotationStatus: models.RotationNoPolicy,
				ValidationStatus: models.ValidationUntested,
			},
		},
	}

	for i := range seeded {
		account := seeded[i]
		account.ID = uuid.NewString()
		account.AccountType = "local"
		createdAt := now.Add(-time.Duration(i+1) * 24 * time.Hour)
		account.CreatedAt = &createdAt
		account.UpdatedAt = &createdAt
		s.accounts[account.ID] = &account

		s.audits[account.ID] = []models.AuditLog{{
			ID:        uuid.NewString(),
			AccountID: account.ID,
			Action:    "create",
			Result:    models.ResultSuccess,
			Actor:     "seed",
			Timestamp: createdAt,
		}}
		if account.ValidationStatus != models.ValidationUntested {
			result := models.ResultSuccess
			if account.ValidationStatus == models.ValidationInvalid {
				result = models.ResultFailure
			}
			s.validations[account.ID] = []models.ValidationHistoryEntry{{
				ID:        uuid.NewString(),
				AccountID: account.ID,
				Result:    result,
				Message:   account.verificationError,
				Actor:     "scheduler",
				Timestamp: now.Add(-6 * time.Hour),
			}}
		}
	}
}

// list returns the accounts sorted by name for a stable wire order.
func (s *memoryStore) list() []stubAccount {
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts := make([]stubAccount, 0, len(s.accounts))
	for _, account := range s.accounts {
		accounts = append(accounts, *account)
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].Name < accounts[j].Name })
	return accounts
}

func (s *memoryStore) get(id string) (stubAccount, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[id]
	if !ok {
		return stubAccount{}, false
	}
	return *account, true
}

// nameTaken reports whether another account already uses name.
func (s *memoryStore) nameTaken(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, account := range s.accounts {
		if strings.EqualFold(account.Name, name) {
			return true
		}
	}
	return false
}

func (s *memoryStore) create(req models.CreateAccountRequest, actor string) stubAccount {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	rotationStatus := models.RotationCurrent
	if req.RotationPolicyID == "" {
		rotationStatus = models.RotationNoPolicy
	}

	account := &stubAccount{
		Account: models.Account{
			ID:               uuid.NewString(),
			Owner:            actor,
			Name:             req.Name,
			SystemType:       req.SystemType,
			Hostname:         req.Hostname,
			Port:             req.Port,
			ConnectionMethod: req.ConnectionMethod,
			PlatformID:       req.PlatformID,
			AccountType:      "local",
			Safe:             req.Safe,
			Username:         req.Username,
			RotationPolicyID: req.RotationPolicyID,
			RotationStatus:   rotationStatus,
			ValidationStatus: models.ValidationUntested,
			CreatedAt:        &now,
			UpdatedAt:        &now,
		},
		password: req.Password,
	}
	s.accounts[account.ID] = account
	s.appendAuditLocked(account.ID, "create", models.ResultSuccess, actor, nil)

	return *account
}

func (s *memoryStore) delete(id string, actor string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[id]; !ok {
		return false
	}
	delete(s.accounts, id)
	s.appendAuditLocked(id, "delete", models.ResultSuccess, actor, nil)
	return true
}

// rotate fabricates a rotation. An account without a rotation policy cannot
// be rotated; everything else succeeds and becomes current.
func (s *memoryStore) rotate(id string, actor string) (models.ActionResponse, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[id]
	if !ok {
		return models.ActionResponse{}, false
	}

	if account.RotationStatus == models.RotationNoPolicy {
		s.appendAuditLocked(id, "rotate", models.ResultFailure, actor, map[string]string{"reason": "no rotation policy"})
		return models.ActionResponse{
			Success:        false,
			RotationStatus: account.RotationStatus,
			Message:        "account has no rotation policy assigned",
		}, true
	}

	now := time.Now()
	account.password = "R!" + uuid.NewString()[:12]
	account.RotationStatus = models.RotationCurrent
	account.UpdatedAt = &now
	s.appendAuditLocked(id, "rotate", models.ResultSuccess, actor, nil)

	return models.ActionResponse{Success: true, RotationStatus: models.RotationCurrent}, true
}

// validate fabricates a credential check: an empty stored secret is invalid,
// anything else is valid.
func (s *memoryStore) validate(id string, actor string) (models.ActionResponse, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[id]
	if !ok {
		return models.ActionResponse{}, false
	}

	now := time.Now()
	entry := models.ValidationHistoryEntry{
		ID:        uuid.NewString(),
		AccountID: id,
		Actor:     actor,
		Timestamp: now,
	}

	resp := models.ActionResponse{Success: true}
	if account.password == "" {
		account.ValidationStatus = models.ValidationInvalid
		account.verificationError = "no secret stored for account"
		entry.Result = models.ResultFailure
		entry.Message = account.verificationError
		resp.Success = false
		resp.Message = account.verificationError
	} else {
		account.ValidationStatus = models.ValidationValid
		account.verificationError = ""
		entry.Result = models.ResultSuccess
	}
	resp.ValidationStatus = account.ValidationStatus
	account.UpdatedAt = &now

	s.validations[id] = append(s.validations[id], entry)
	s.appendAuditLocked(id, "validate", entry.Result, actor, nil)

	return resp, true
}

func (s *memoryStore) statistics() models.AccountStatistics {
	s.mu.Lock()
	defer s.mu.Unlock()

	var stats models.AccountStatistics
	for _, account := range s.accounts {
		stats.Total++
		stats.Active++
		switch account.ValidationStatus {
		case models.ValidationValid:
			stats.Valid++
		case models.ValidationInvalid:
			stats.Invalid++
		case models.ValidationPending:
			stats.Pending++
		default:
			stats.Untested++
		}
		if account.RotationStatus == models.RotationDueSoon || account.RotationStatus == models.RotationOverdue {
			stats.RequiringRotation++
		}
	}
	return stats
}

func (s *memoryStore) validationHistory(id string) []models.ValidationHistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.ValidationHistoryEntry(nil), s.validations[id]...)
}

func (s *memoryStore) auditLogs(id string) []models.AuditLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.AuditLog(nil), s.audits[id]...)
}

func (s *memoryStore) appendAuditLocked(id, action string, result models.HistoryResult, actor string, metadata map[string]string) {
	s.audits[id] = append(s.audits[id], models.AuditLog{
		ID:        uuid.NewString(),
		AccountID: id,
		Action:    action,
		Result:    result,
		Actor:     actor,
		Timestamp: time.Now(),
		Metadata:  metadata,
	})
}
