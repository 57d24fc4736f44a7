package models

import (
	"encoding/json"
	"testing"
)

func TestClassifyStored_Nil(t *testing.T) {
	sv := ClassifyStored(nil)
	if sv.Kind != StoredAbsent {
		t.Fatalf("kind = %v, want StoredAbsent", sv.Kind)
	}
}

func TestClassifyStored_NilEnvelopePointer(t *testing.T) {
	var env *Envelope
	sv := ClassifyStored(env)
	if sv.Kind != StoredAbsent {
		t.Fatalf("kind = %v, want StoredAbsent", sv.Kind)
	}
}

func TestClassifyStored_EnvelopeStruct(t *testing.T) {
	env := Envelope{Ciphertext: "aa", IV: "bb", Tag: "cc"}

	sv := ClassifyStored(env)
	if sv.Kind != StoredEnveloped {
		t.Fatalf("kind = %v, want StoredEnveloped", sv.Kind)
	}
	if sv.Envelope != env {
		t.Fatalf("envelope = %+v, want %+v", sv.Envelope, env)
	}

	sv = ClassifyStored(&env)
	if sv.Kind != StoredEnveloped || sv.Envelope != env {
		t.Fatalf("pointer classification = %+v, want enveloped %+v", sv, env)
	}
}

func TestClassifyStored_MapShape(t *testing.T) {
	m := map[string]any{"ciphertext": "aa", "iv": "bb", "tag": "cc"}

	sv := ClassifyStored(m)
	if sv.Kind != StoredEnveloped {
		t.Fatalf("kind = %v, want StoredEnveloped", sv.Kind)
	}
	if !sv.Envelope.Complete() {
		t.Fatalf("expected complete envelope, got %+v", sv.Envelope)
	}
}

func TestClassifyStored_MapMissingField(t *testing.T) {
	m := map[string]any{"ciphertext": "aa", "iv": "bb"}

	sv := ClassifyStored(m)
	if sv.Kind != StoredEnveloped {
		t.Fatalf("kind = %v, want StoredEnveloped", sv.Kind)
	}
	if sv.Envelope.Complete() {
		t.Fatalf("expected incomplete envelope, got %+v", sv.Envelope)
	}
}

func TestClassifyStored_JSONString(t *testing.T) {
	raw, err := json.Marshal(Envelope{Ciphertext: "aa", IV: "bb", Tag: "cc"})
	if err != nil {
		t.Fatalf("marshal envelope: %v", err)
	}

	sv := ClassifyStored(string(raw))
	if sv.Kind != StoredEnveloped {
		t.Fatalf("kind = %v, want StoredEnveloped", sv.Kind)
	}
	if sv.Envelope.Ciphertext != "aa" || sv.Envelope.IV != "bb" || sv.Envelope.Tag != "cc" {
		t.Fatalf("unexpected envelope %+v", sv.Envelope)
	}
}

func TestClassifyStored_LegacyPlaintext(t *testing.T) {
	for _, s := range []string{
		"Jane Doe",
		"",
		"{not json",
		`{"ciphertext":"aa"}`, // partial envelope shape in JSON stays legacy
		"42",
	} {
		sv := ClassifyStored(s)
		if sv.Kind != StoredLegacy {
			t.Fatalf("ClassifyStored(%q).Kind = %v, want StoredLegacy", s, sv.Kind)
		}
		if sv.Legacy != s {
			t.Fatalf("legacy value = %q, want %q", sv.Legacy, s)
		}
	}
}

func TestClassifyStored_UnexpectedType(t *testing.T) {
	sv := ClassifyStored(42)
	if sv.Kind != StoredEnveloped {
		t.Fatalf("kind = %v, want StoredEnveloped", sv.Kind)
	}
	if sv.Envelope.Complete() {
		t.Fatalf("expected incomplete envelope for wrong shape")
	}
}

func TestRecord_CloneIsShallowAndIndependent(t *testing.T) {
	r := Record{"first_name": "Jane", "age": 8}

	c := r.Clone()
	c["first_name"] = "REDACTED"

	if r["first_name"] != "Jane" {
		t.Fatalf("clone mutated the original record")
	}
	if c["age"] != 8 {
		t.Fatalf("clone lost untouched field")
	}
}

func TestRecord_CloneNil(t *testing.T) {
	var r Record
	if r.Clone() != nil {
		t.Fatalf("expected nil clone of nil record")
	}
}
