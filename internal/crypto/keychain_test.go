// SPDX-License-Identifier: Apache-2.0

package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveKey_Deterministic(t *testing.T) {
	k := NewKeyChainService()

	salt, err := k.GenerateSalt()
	require.NoError(t, err)
	require.Len(t, salt, 16)

	key1 := k.DeriveKey("passphrase", salt)
	key2 := k.DeriveKey("passphrase", salt)
	assert.Equal(t, key1, key2)
	assert.Len(t, key1, 32)

	other := k.DeriveKey("different", salt)
	assert.NotEqual(t, key1, other)
}

func TestEncryptDecryptSecret_RoundTrip(t *testing.T) {
	k := NewKeyChainService()
	salt, err := k.GenerateSalt()
	require.NoError(t, err)
	key := k.DeriveKey("cache-passphrase", salt)

	blob, err := k.EncryptSecret("s3cr3t-p@ssw0rd", key)
	require.NoError(t, err)
	assert.NotContains(t, blob, "s3cr3t")

	got, err := k.DecryptSecret(blob, key)
	require.NoError(t, err)
	assert.Equal(t, "s3cr3t-p@ssw0rd", got)
}

func TestDecryptSecret_WrongKeyFails(t *testing.T) {
	k := NewKeyChainService()
	salt, err := k.GenerateSalt()
	require.NoError(t, err)

	blob, err := k.EncryptSecret("secret", k.DeriveKey("right", salt))
	require.NoError(t, err)

	_, err = k.DecryptSecret(blob, k.DeriveKey("wrong", salt))
	assert.Error(t, err)
}

func TestDecryptSecret_TruncatedBlobFails(t *testing.T) {
	k := NewKeyChainService()
	salt, err := k.GenerateSalt()
	require.NoError(t, err)
	key := k.DeriveKey("p", salt)

	_, err = k.DecryptSecret("QQ==", key) // single byte, shorter than nonce
	assert.Error(t, err)

	_, err = k.DecryptSecret("%%%not-base64%%%", key)
	assert.Error(t, err)
}
