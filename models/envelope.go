// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ClinicKit

package models

import "encoding/json"

// Envelope is the stored representation of one encrypted field value.
// All three members are hex-encoded and produced together by a single
// encryption call; an Envelope is never partially updated afterwards.
type Envelope struct {
	// Ciphertext is the AES-256-GCM output over the UTF-8 plaintext bytes,
	// without the authentication tag.
	Ciphertext string `json:"ciphertext"`

	// IV is the 12-byte nonce used for this encryption. Generated fresh
	// from the OS CSPRNG on every call; never reused under the same key.
	IV string `json:"iv"`

	// Tag is the 16-byte GCM authentication tag. Verification failure on
	// decryption means the ciphertext was tampered with or the key changed.
	Tag string `json:"tag"`
}

// Complete reports whether all three envelope members are present.
// Decryption is only attempted on complete envelopes.
func (e Envelope) Complete() bool {
	return e.Ciphertext != "" && e.IV != "" && e.Tag != ""
}

// StoredKind discriminates the possible shapes of a persisted field value.
type StoredKind int

const (
	// StoredAbsent means there is no value: the column was null or the
	// field was never written.
	StoredAbsent StoredKind = iota

	// StoredEnveloped means the value carries an Envelope shape. The
	// envelope may still be incomplete, in which case decryption yields
	// nothing.
	StoredEnveloped

	// StoredLegacy means the value is a plain string persisted before
	// field encryption existed. It is valid historical plaintext, not an
	// error condition.
	StoredLegacy
)

// StoredValue is the classified form of a raw value read back from storage.
// It is constructed once at the persistence boundary via [ClassifyStored]
// so that the cipher itself never has to sniff shapes at runtime.
type StoredValue struct {
	Kind     StoredKind
	Envelope Envelope
	Legacy   string
}

// ClassifyStored inspects one raw stored value and returns its tagged form.
//
// Classification rules:
//   - nil → StoredAbsent
//   - Envelope, *Envelope, or a map with ciphertext/iv/tag keys →
//     StoredEnveloped (incomplete envelopes stay Enveloped and later
//     decrypt to nothing)
//   - a string that parses as a JSON-encoded complete Envelope →
//     StoredEnveloped
//   - any other string → StoredLegacy (pre-encryption plaintext)
//   - anything else → StoredEnveloped with an empty envelope, which
//     degrades to nothing on decryption
func ClassifyStored(value any) StoredValue {
	switch v := value.(type) {
	case nil:
		return StoredValue{Kind: StoredAbsent}
	case Envelope:
		return StoredValue{Kind: StoredEnveloped, Envelope: v}
	case *Envelope:
		if v == nil {
			return StoredValue{Kind: StoredAbsent}
		}
		return StoredValue{Kind: StoredEnveloped, Envelope: *v}
	case map[string]any:
		return StoredValue{Kind: StoredEnveloped, Envelope: envelopeFromMap(v)}
	case string:
		var env Envelope
		if err := json.Unmarshal([]byte(v), &env); err == nil && env.Complete() {
			return StoredValue{Kind: StoredEnveloped, Envelope: env}
		}
		return StoredValue{Kind: StoredLegacy, Legacy: v}
	default:
		// Wrong shape from the caller. Classified as an empty envelope so
		// the value degrades to nothing instead of failing the whole read.
		return StoredValue{Kind: StoredEnveloped}
	}
}

func envelopeFromMap(m map[string]any) Envelope {
	var env Envelope
	if s, ok := m["ciphertext"].(string); ok {
		env.Ciphertext = s
	}
	if s, ok := m["iv"].(string); ok {
		env.IV = s
	}
	if s, ok := m["tag"].(string); ok {
		env.Tag = s
	}
	return env
}
