package service

import (
	"testing"

	"github.com/clinickit/phicrypt/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProtectedFields_KnownEntities(t *testing.T) {
	for _, entityType := range []models.EntityType{
		models.EntityPatient,
		models.EntityClinicalNote,
		models.EntitySession,
	} {
		fields, ok := ProtectedFields(entityType)
		require.Truef(t, ok, "expected manifest for %s", entityType)
		assert.NotEmpty(t, fields)
	}
}

func TestProtectedFields_UnknownEntity(t *testing.T) {
	fields, ok := ProtectedFields("invoice")
	assert.False(t, ok)
	assert.Nil(t, fields)
}

func TestProtectedFields_ReturnsACopy(t *testing.T) {
	fields, ok := ProtectedFields(models.EntitySession)
	require.True(t, ok)

	fields[0] = "tampered"

	again, _ := ProtectedFields(models.EntitySession)
	assert.NotEqual(t, "tampered", again[0], "manifest registry must be immutable")
}
