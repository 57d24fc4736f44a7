package crypto

import "github.com/clinickit/phicrypt/models"

// KeyProvider resolves the single 256-bit symmetric key used by all field
// cipher operations. The key is recomputed on every call; implementations
// must be safe for concurrent use.
type KeyProvider interface {
	// ResolveKey returns the 32-byte key, or [ErrNoEncryptionSecret] if no
	// secret is configured.
	ResolveKey() ([]byte, error)
}

// FieldCipher encrypts and decrypts one scalar field value.
//
// The value-level pair (EncryptValue/DecryptValue) implements the storage
// contract: absence collapses to nil on encryption, and decryption is
// fail-soft — a value that cannot be decrypted degrades to nil instead of
// failing the read. The typed pair (Encrypt/Decrypt) carries the actual
// cryptography and reports errors explicitly.
type FieldCipher interface {
	// EncryptValue encrypts one field value taken from a record. nil and
	// the empty string yield nil; a non-empty string yields a
	// *models.Envelope. Key resolution failures are returned as errors
	// and must abort the enclosing write.
	EncryptValue(value any) (any, error)

	// DecryptValue decrypts one stored field value. It returns the
	// plaintext string, the unchanged legacy plaintext for values written
	// before encryption existed, or nil when there is nothing to decrypt
	// or the value cannot be decrypted. It never returns an error.
	DecryptValue(value any) any

	// Encrypt encrypts a non-empty plaintext into a fresh envelope.
	Encrypt(plaintext string) (models.Envelope, error)

	// Decrypt opens a complete envelope and returns the plaintext.
	Decrypt(envelope models.Envelope) (string, error)
}
