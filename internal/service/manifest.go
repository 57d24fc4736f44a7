// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ClinicKit

package service

import (
	"slices"

	"github.com/clinickit/phicrypt/models"
)

// protectedFields maps each entity type to the ordered list of its fields
// that carry protected personal or clinical content. The registry is fixed
// at build time and is not data-driven: adding a field here is a deploy,
// not a configuration change.
var protectedFields = map[models.EntityType][]string{
	models.EntityPatient: {
		"first_name",
		"last_name",
		"date_of_birth",
		"email",
		"phone",
		"address",
		"insurance_member_id",
		"emergency_contact",
	},
	models.EntityClinicalNote: {
		"subjective",
		"objective",
		"assessment",
		"plan",
		"content",
	},
	models.EntitySession: {
		"notes",
		"diagnosis",
	},
}

// ProtectedFields returns a copy of the manifest for the given entity type.
// The second result is false for entity types without a manifest.
func ProtectedFields(entityType models.EntityType) ([]string, bool) {
	fields, ok := protectedFields[entityType]
	if !ok {
		return nil, false
	}
	return slices.Clone(fields), true
}
