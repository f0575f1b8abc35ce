// SPDX-License-Identifier: Apache-2.0

// Package crypto provides the keychain used to protect credential secrets
// cached by the console.
//
// Revealed passwords are the only sensitive values the console ever writes to
// the local SQLite cache; before a write they are sealed with AES-256-GCM
// under a key derived from the operator's local cache passphrase via
// Argon2id. The derived key exists only in process memory.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_mock.go -package=mock

// KeyChainService derives the local cache key and seals/opens cached secrets.
type KeyChainService interface {
	// GenerateSalt returns 16 random bytes for Argon2id key derivation.
	GenerateSalt() ([]byte, error)

	// DeriveKey derives a 256-bit cache key from the local passphrase and
	// salt using Argon2id. The key never leaves client memory.
	DeriveKey(passphrase string, salt []byte) []byte

	// EncryptSecret seals plaintext with key using AES-256-GCM and returns
	// a Base64 blob of nonce ‖ ciphertext.
	EncryptSecret(plaintext string, key []byte) (string, error)

	// DecryptSecret opens a blob produced by EncryptSecret. Returns an
	// error if the key is wrong or the blob is corrupted.
	DecryptSecret(encryptedB64 string, key []byte) (string, error)
}
