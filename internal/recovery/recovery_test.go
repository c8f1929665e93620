package recovery

import (
	"bytes"
	"errors"
	"testing"

	"github.com/MKhiriev/go-zkeb/internal/crypto"
)

func TestDeriveRecoveryKey_Deterministic(t *testing.T) {
	salt := bytes.Repeat([]byte{0xAB}, 16)

	k1, err := DeriveRecoveryKey("correct horse battery staple", salt, 1000)
	if err != nil {
		t.Fatalf("DeriveRecoveryKey error: %v", err)
	}
	k2, err := DeriveRecoveryKey("correct horse battery staple", salt, 1000)
	if err != nil {
		t.Fatalf("DeriveRecoveryKey error: %v", err)
	}

	if len(k1) != crypto.EnvelopeKeySize {
		t.Fatalf("key length = %d, want %d", len(k1), crypto.EnvelopeKeySize)
	}
	if !bytes.Equal(k1, k2) {
		t.Fatalf("expected identical keys for identical inputs")
	}
}

func TestDeriveRecoveryKey_Validation(t *testing.T) {
	salt := bytes.Repeat([]byte{0xAB}, 16)

	if _, err := DeriveRecoveryKey("", salt, 1000); !errors.Is(err, ErrEmptyPassphrase) {
		t.Fatalf("error = %v, want ErrEmptyPassphrase", err)
	}
	if _, err := DeriveRecoveryKey("pass", salt, 0); !errors.Is(err, ErrInvalidIterations) {
		t.Fatalf("error = %v, want ErrInvalidIterations", err)
	}
}

func TestWrapUnwrapUMK_RoundTrip(t *testing.T) {
	svc := NewService(crypto.NewEnvelopeCipher())
	svc.iterations = 1000 // keep the test fast

	umk := bytes.Repeat([]byte{0x01}, 32)

	bundle, err := svc.WrapUMK(umk, "my recovery phrase")
	if err != nil {
		t.Fatalf("WrapUMK error: %v", err)
	}
	if bundle.Iterations != 1000 {
		t.Fatalf("bundle iterations = %d, want 1000", bundle.Iterations)
	}
	if len(bundle.Salt) != 16 {
		t.Fatalf("salt length = %d, want 16", len(bundle.Salt))
	}

	got, err := svc.UnwrapUMK(bundle, "my recovery phrase")
	if err != nil {
		t.Fatalf("UnwrapUMK error: %v", err)
	}
	if !bytes.Equal(got, umk) {
		t.Fatalf("unwrapped UMK mismatch")
	}
}

func TestUnwrapUMK_WrongPassphraseFails(t *testing.T) {
	svc := NewService(crypto.NewEnvelopeCipher())
	svc.iterations = 1000

	bundle, err := svc.WrapUMK(bytes.Repeat([]byte{0x01}, 32), "right phrase")
	if err != nil {
		t.Fatalf("WrapUMK error: %v", err)
	}

	if _, err = svc.UnwrapUMK(bundle, "wrong phrase"); !errors.Is(err, crypto.ErrAuthenticationFailed) {
		t.Fatalf("error = %v, want crypto.ErrAuthenticationFailed", err)
	}
}
