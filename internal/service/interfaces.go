package service

import "github.com/clinickit/phicrypt/models"

// RecordCipher applies the field cipher to the manifested fields of whole
// records. Every write path must call EncryptRecord exactly once before
// persistence, and every read path must call DecryptRecord exactly once
// after retrieval.
type RecordCipher interface {
	// EncryptRecord returns a shallow copy of record with every manifest
	// field that is present replaced by its encrypted form. Fields absent
	// from the input stay absent, and non-manifest fields keep their exact
	// value identity. Fails if the entity type is unknown or the
	// encryption secret is missing.
	EncryptRecord(entityType models.EntityType, record models.Record) (models.Record, error)

	// DecryptRecord returns a shallow copy of record with every manifest
	// field that is present and non-nil replaced by its decrypted form.
	// Individual fields that cannot be decrypted degrade to nil without
	// failing the record. A nil record decrypts to nil.
	DecryptRecord(entityType models.EntityType, record models.Record) (models.Record, error)
}
