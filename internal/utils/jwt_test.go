// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBearerToken(t *testing.T) {
	token, err := ParseBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ParseBearerToken("")
	assert.Error(t, err)

	_, err = ParseBearerToken("Bearer")
	assert.Error(t, err)

	_, err = ParseBearerToken("Basic dXNlcjpwYXNz")
	assert.Error(t, err)
}

func TestTokenExpired(t *testing.T) {
	now := time.Now()

	fresh, err := GenerateJWTToken("vault-stub", "operator", time.Hour, "signkey")
	require.NoError(t, err)
	assert.False(t, TokenExpired(fresh, now))

	stale, err := GenerateJWTToken("vault-stub", "operator", time.Second, "signkey")
	require.NoError(t, err)
	assert.True(t, TokenExpired(stale, now.Add(time.Minute)))

	assert.True(t, TokenExpired("not-a-jwt", now))
	assert.True(t, TokenExpired("", now))
}

func TestGenerateJWTToken_RequiresParams(t *testing.T) {
	_, err := GenerateJWTToken("", "operator", time.Hour, "key")
	assert.Error(t, err)

	_, err = GenerateJWTToken("iss", "operator", 0, "key")
	assert.Error(t, err)

	_, err = GenerateJWTToken("iss", "operator", time.Hour, "")
	assert.Error(t, err)
}
