// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cpm-tools/vault-console/models"
)

func testAccounts(ids ...string) []models.Account {
	accounts := make([]models.Account, 0, len(ids))
	for _, id := range ids {
		accounts = append(accounts, models.Account{ID: id, Name: "acc-" + id})
	}
	return accounts
}

func TestListSetAccountsKeepsCursor(t *testing.T) {
	m := newListModel()
	accounts := testAccounts("a", "b", "c")
	m = m.setAccounts(accounts, accounts)
	m.idx = 1

	t.Run("selection survives reorder", func(t *testing.T) {
		reordered := testAccounts("c", "b", "a")
		next := m.setAccounts(reordered, reordered)

		current, ok := next.current()
		assert.True(t, ok)
		assert.Equal(t, "b", current.ID)
		assert.Equal(t, 1, next.idx)
	})

	t.Run("selection survives growth", func(t *testing.T) {
		grown := testAccounts("x", "a", "b", "c")
		next := m.setAccounts(grown, grown)

		current, ok := next.current()
		assert.True(t, ok)
		assert.Equal(t, "b", current.ID)
		assert.Equal(t, 2, next.idx)
	})

	t.Run("cursor resets when the account is gone", func(t *testing.T) {
		shrunk := testAccounts("a", "c")
		next := m.setAccounts(shrunk, shrunk)

		assert.Equal(t, 0, next.idx)
	})

	t.Run("empty collection leaves no selection", func(t *testing.T) {
		next := m.setAccounts(nil, nil)

		_, ok := next.current()
		assert.False(t, ok)
	})
}

func TestListBusyTracking(t *testing.T) {
	m := newListModel()
	m.busy["acc-1"] = actionRotate

	assert.True(t, m.isBusy("acc-1"))
	assert.False(t, m.isBusy("acc-2"), "busy is per account, not global")

	delete(m.busy, "acc-1")
	assert.False(t, m.isBusy("acc-1"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exactly-te", truncate("exactly-te", 10))
	assert.Equal(t, "much-long…", truncate("much-longer-than-ten", 10))
	assert.Equal(t, "m", truncate("much-longer", 1))
	// multi-byte hostnames must be cut on rune boundaries, not bytes
	assert.Equal(t, "сервер-бд", truncate("сервер-бд", 9))
	assert.Equal(t, "сервер-б…", truncate("сервер-бд-продакшн", 9))
	assert.Equal(t, "с", truncate("сервер", 1))
}
