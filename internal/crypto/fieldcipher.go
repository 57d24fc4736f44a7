// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ClinicKit

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/clinickit/phicrypt/internal/logger"
	"github.com/clinickit/phicrypt/models"
)

// gcmTagSize is the length of the GCM authentication tag stored in the
// envelope's tag member, separate from the ciphertext.
const gcmTagSize = 16

// fieldCipher is the private implementation of [FieldCipher].
type fieldCipher struct {
	keys KeyProvider

	logger *logger.Logger
}

// NewFieldCipher constructs a [FieldCipher] over the given key provider.
// The logger carries the side channel that separates genuine decryption
// failures from routine legacy-plaintext passthrough.
func NewFieldCipher(keys KeyProvider, logger *logger.Logger) FieldCipher {
	return &fieldCipher{
		keys:   keys,
		logger: logger,
	}
}

// EncryptValue implements [FieldCipher]. nil and the empty string collapse
// to nil — there is nothing to protect, and "present but empty" is not
// preserved. Any other string is encrypted into a *models.Envelope. A
// non-string value is a programming defect on the write path and is
// rejected with an error rather than silently transformed.
func (f *fieldCipher) EncryptValue(value any) (any, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case string:
		if v == "" {
			return nil, nil
		}
		envelope, err := f.Encrypt(v)
		if err != nil {
			return nil, err
		}
		return &envelope, nil
	default:
		return nil, fmt.Errorf("encrypt field: unsupported plaintext type %T", value)
	}
}

// DecryptValue implements [FieldCipher]. The input is classified once via
// [models.ClassifyStored]; legacy plaintext passes through unchanged and a
// value that cannot be decrypted degrades to nil. Failures never propagate
// as errors, so one corrupted field cannot abort a read of many rows.
func (f *fieldCipher) DecryptValue(value any) any {
	stored := models.ClassifyStored(value)

	switch stored.Kind {
	case models.StoredAbsent:
		return nil
	case models.StoredLegacy:
		// Plaintext persisted before field encryption existed. Valid
		// historical data, not an error.
		return stored.Legacy
	}

	plaintext, err := f.Decrypt(stored.Envelope)
	if err != nil {
		// Tampered ciphertext, a rotated key, or a wrong shape from the
		// caller. The field degrades to nil while the row read survives.
		f.logger.Warn().Err(err).Msg("field decryption failed")
		return nil
	}

	return plaintext
}

// Encrypt implements [FieldCipher]. It encrypts the UTF-8 bytes of
// plaintext with AES-256-GCM under the resolved key and a fresh random
// 12-byte nonce, and returns the envelope with ciphertext, iv, and tag
// hex-encoded. Returns an error if key resolution, cipher creation, or the
// random nonce read fails.
func (f *fieldCipher) Encrypt(plaintext string) (models.Envelope, error) {
	key, err := f.keys.ResolveKey()
	if err != nil {
		return models.Envelope{}, fmt.Errorf("resolve key: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return models.Envelope{}, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return models.Envelope{}, fmt.Errorf("create gcm: %w", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return models.Envelope{}, fmt.Errorf("generate nonce: %w", err)
	}

	// Seal appends the 16-byte tag to the ciphertext; the envelope stores
	// the two parts separately.
	sealed := gcm.Seal(nil, nonce, []byte(plaintext), nil)
	tagStart := len(sealed) - gcmTagSize

	return models.Envelope{
		Ciphertext: hex.EncodeToString(sealed[:tagStart]),
		IV:         hex.EncodeToString(nonce),
		Tag:        hex.EncodeToString(sealed[tagStart:]),
	}, nil
}

// Decrypt implements [FieldCipher]. It hex-decodes the envelope members,
// reassembles ciphertext‖tag, and opens it with AES-256-GCM under the
// resolved key. Returns an error if the envelope is incomplete, a member
// fails to decode, the nonce has the wrong length, or the authentication
// check fails (tampered data or a different key).
func (f *fieldCipher) Decrypt(envelope models.Envelope) (string, error) {
	if !envelope.Complete() {
		return "", ErrIncompleteEnvelope
	}

	key, err := f.keys.ResolveKey()
	if err != nil {
		return "", fmt.Errorf("resolve key: %w", err)
	}

	ciphertext, err := hex.DecodeString(envelope.Ciphertext)
	if err != nil {
		return "", fmt.Errorf("decode ciphertext: %w", err)
	}
	nonce, err := hex.DecodeString(envelope.IV)
	if err != nil {
		return "", fmt.Errorf("decode iv: %w", err)
	}
	tag, err := hex.DecodeString(envelope.Tag)
	if err != nil {
		return "", fmt.Errorf("decode tag: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("create gcm: %w", err)
	}

	// gcm.Open panics on a wrong-length nonce, so check it here.
	if len(nonce) != gcm.NonceSize() {
		return "", fmt.Errorf("iv length = %d, want %d", len(nonce), gcm.NonceSize())
	}
	if len(tag) != gcmTagSize {
		return "", fmt.Errorf("tag length = %d, want %d", len(tag), gcmTagSize)
	}

	plaintext, err := gcm.Open(nil, nonce, append(ciphertext, tag...), nil)
	if err != nil {
		return "", fmt.Errorf("decrypt field: %w", err)
	}

	return string(plaintext), nil
}
