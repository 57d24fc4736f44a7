package crypto

import "errors"

var (
	// ErrNoEncryptionSecret means the encryption secret was not configured
	// at the moment of an encryption call. It is fatal to the enclosing
	// write: falling back to persisting plaintext is not permitted.
	ErrNoEncryptionSecret = errors.New("encryption secret is not configured")

	// ErrIncompleteEnvelope means an envelope is missing its ciphertext,
	// iv, or tag and cannot be reconstructed.
	ErrIncompleteEnvelope = errors.New("envelope is missing ciphertext, iv or tag")
)
