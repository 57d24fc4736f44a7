// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ClinicKit

package service

import (
	"fmt"

	"github.com/clinickit/phicrypt/internal/crypto"
	"github.com/clinickit/phicrypt/internal/logger"
	"github.com/clinickit/phicrypt/models"
)

type recordCipherService struct {
	cipher crypto.FieldCipher

	logger *logger.Logger
}

// NewRecordCipherService constructs a [RecordCipher] over the given field
// cipher. The service is stateless and safe for concurrent use.
func NewRecordCipherService(cipher crypto.FieldCipher, logger *logger.Logger) RecordCipher {
	return &recordCipherService{
		cipher: cipher,
		logger: logger,
	}
}

func (s *recordCipherService) EncryptRecord(entityType models.EntityType, record models.Record) (models.Record, error) {
	if record == nil {
		return nil, nil
	}

	fields, ok := ProtectedFields(entityType)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEntityType, entityType)
	}

	out := record.Clone()
	for _, field := range fields {
		value, present := out[field]
		if !present {
			// Partial update: a field absent from the input stays absent.
			continue
		}

		encrypted, err := s.cipher.EncryptValue(value)
		if err != nil {
			return nil, fmt.Errorf("encrypt %s.%s: %w", entityType, field, err)
		}
		out[field] = encrypted
	}

	return out, nil
}

func (s *recordCipherService) DecryptRecord(entityType models.EntityType, record models.Record) (models.Record, error) {
	if record == nil {
		return nil, nil
	}

	fields, ok := ProtectedFields(entityType)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEntityType, entityType)
	}

	out := record.Clone()
	for _, field := range fields {
		value, present := out[field]
		if !present || value == nil {
			continue
		}

		out[field] = s.cipher.DecryptValue(value)
	}

	return out, nil
}
