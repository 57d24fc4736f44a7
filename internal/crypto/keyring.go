// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ClinicKit

package crypto

import (
	"crypto/rand"
	"encoding/hex"
	"io"

	"golang.org/x/crypto/argon2"
)

// keyDerivationSalt is the fixed, scheme-wide salt for passphrase-derived
// keys. It is deliberately not per-user or per-record: one secret maps to
// one key for the whole datastore. Changing it invalidates every field
// encrypted under a derived key.
const keyDerivationSalt = "phicrypt/field-key/v1"

// rawKeyHexLen is the length of a raw-mode secret: 32 key bytes hex-encoded.
const rawKeyHexLen = 64

// keyring is the private implementation of [KeyProvider].
type keyring struct {
	secret string

	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewKeyring constructs a [KeyProvider] over the given secret with the
// Argon2id parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
//
// The secret is treated as immutable for the life of the process.
func NewKeyring(secret string) KeyProvider {
	return &keyring{
		secret:       secret,
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
	}
}

// ResolveKey implements [KeyProvider]. An empty secret returns
// [ErrNoEncryptionSecret]. A secret of exactly 64 hexadecimal characters is
// decoded directly as the raw 256-bit key; any other secret is treated as a
// passphrase and run through Argon2id with the fixed scheme salt.
//
// The key is recomputed on every call instead of being cached, so derived
// key material never sits in long-lived memory between operations.
func (k *keyring) ResolveKey() ([]byte, error) {
	if k.secret == "" {
		return nil, ErrNoEncryptionSecret
	}

	if len(k.secret) == rawKeyHexLen {
		if key, err := hex.DecodeString(k.secret); err == nil {
			return key, nil
		}
		// 64 characters that are not valid hex: fall through to
		// passphrase derivation.
	}

	key := argon2.IDKey(
		[]byte(k.secret),
		[]byte(keyDerivationSalt),
		k.argonTime,
		k.argonMemory,
		k.argonThreads,
		k.argonKeyLen,
	)
	return key, nil
}

// GenerateRawKey returns a fresh 256-bit key as a 64-character hex string,
// ready to be installed as the encryption secret in raw-key mode. It reads
// 32 bytes from the OS CSPRNG and is intended for one-time operator
// provisioning, not for the request path.
func GenerateRawKey() (string, error) {
	key := make([]byte, 32)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return "", err
	}
	return hex.EncodeToString(key), nil
}
