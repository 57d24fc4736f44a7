package models

import "maps"

// EntityType names a practice-management entity whose rows may carry
// protected personal or clinical fields.
type EntityType string

const (
	// EntityPatient represents a patient demographics record.
	EntityPatient EntityType = "patient"

	// EntityClinicalNote represents a clinical note attached to a visit.
	EntityClinicalNote EntityType = "clinical_note"

	// EntitySession represents a treatment session record.
	EntitySession EntityType = "session"
)

// Record is one row of an entity as a plain key/value object. Only the
// fields named in the entity's manifest are ever transformed; every other
// key passes through with its exact value identity.
type Record map[string]any

// Clone returns a shallow copy of the record. A nil record clones to nil.
func (r Record) Clone() Record {
	return maps.Clone(r)
}
