// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ClinicKit

// Package phicrypt protects sensitive personal and clinical fields at rest
// by encrypting individual attributes of practice-management records with
// AES-256-GCM, while tolerating rows written before encryption existed.
//
// The persistence layer calls [Vault.EncryptRecord] exactly once before
// every insert or update and [Vault.DecryptRecord] exactly once after every
// select. Which fields of an entity are protected is decided by a fixed
// per-entity manifest; everything else passes through untouched.
package phicrypt

import (
	"github.com/clinickit/phicrypt/internal/config"
	"github.com/clinickit/phicrypt/internal/crypto"
	"github.com/clinickit/phicrypt/internal/logger"
	"github.com/clinickit/phicrypt/internal/service"
	"github.com/clinickit/phicrypt/models"
)

// Vault is the entry point for field-level encryption. It is stateless
// apart from the configured secret and safe for concurrent use.
type Vault struct {
	services *service.Services
	log      *logger.Logger
}

// Config holds the settings for a [Vault].
type Config struct {
	// Secret is the external encryption secret: either a raw 256-bit key
	// as 64 hexadecimal characters, or a passphrase to derive a key from.
	// Leaving it empty makes every encryption call fail; decryption of
	// legacy plaintext rows still works.
	Secret string
}

// New constructs a Vault from the given config.
func New(conf Config) *Vault {
	log := logger.NewLogger("phicrypt")

	return &Vault{
		services: service.NewServices(config.Crypto{Secret: conf.Secret}, log),
		log:      log,
	}
}

// NewFromEnv constructs a Vault configured from the process environment,
// command-line flags, and an optional JSON config file (see the config
// package for the merge order). Intended for binaries that own their
// process; library consumers should prefer [New].
func NewFromEnv() (*Vault, error) {
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		return nil, err
	}

	log := logger.NewLogger("phicrypt")

	return &Vault{
		services: service.NewServices(cfg.Crypto, log),
		log:      log,
	}, nil
}

// EncryptRecord encrypts the manifested fields of one record before it is
// persisted. See [service.RecordCipher] for the exact semantics.
func (v *Vault) EncryptRecord(entityType models.EntityType, record models.Record) (models.Record, error) {
	return v.services.RecordCipher.EncryptRecord(entityType, record)
}

// DecryptRecord decrypts the manifested fields of one stored row. Fields
// that cannot be decrypted degrade to nil; legacy plaintext passes through.
func (v *Vault) DecryptRecord(entityType models.EntityType, record models.Record) (models.Record, error) {
	return v.services.RecordCipher.DecryptRecord(entityType, record)
}

// GenerateRawKey returns a fresh raw encryption key as 64 hex characters,
// for one-time operator provisioning. See cmd/keygen.
func GenerateRawKey() (string, error) {
	return crypto.GenerateRawKey()
}
