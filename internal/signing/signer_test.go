package signing

import (
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"sync"
	"testing"
)

// RSA-4096 generation is expensive; share one key pair across the tests.
var (
	testKeyOnce sync.Once
	testKey     *rsa.PrivateKey
)

func deviceKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	testKeyOnce.Do(func() {
		// 2048 bits keeps the suite fast; the PSS path is identical.
		key, err := rsa.GenerateKey(rand.Reader, 2048)
		if err != nil {
			t.Fatalf("generate test key: %v", err)
		}
		testKey = key
	})
	return testKey
}

func TestSignVerifyCiphertext_RoundTrip(t *testing.T) {
	key := deviceKey(t)
	ciphertext := []byte("sealed backup bytes")

	sig, err := SignCiphertext(key, ciphertext)
	if err != nil {
		t.Fatalf("SignCiphertext error: %v", err)
	}

	if err = VerifyCiphertext(&key.PublicKey, ciphertext, sig); err != nil {
		t.Fatalf("VerifyCiphertext error: %v", err)
	}
}

func TestVerifyCiphertext_TamperedCiphertextFails(t *testing.T) {
	key := deviceKey(t)
	ciphertext := []byte("sealed backup bytes")

	sig, err := SignCiphertext(key, ciphertext)
	if err != nil {
		t.Fatalf("SignCiphertext error: %v", err)
	}

	tampered := append([]byte{}, ciphertext...)
	tampered[0] ^= 0x01

	if err = VerifyCiphertext(&key.PublicKey, tampered, sig); !errors.Is(err, ErrSignatureInvalid) {
		t.Fatalf("error = %v, want ErrSignatureInvalid", err)
	}
}

func TestPublicKeyPEM_RoundTrip(t *testing.T) {
	key := deviceKey(t)

	pemData, err := EncodePublicKey(&key.PublicKey)
	if err != nil {
		t.Fatalf("EncodePublicKey error: %v", err)
	}

	decoded, err := DecodePublicKey(pemData)
	if err != nil {
		t.Fatalf("DecodePublicKey error: %v", err)
	}

	if decoded.N.Cmp(key.PublicKey.N) != 0 || decoded.E != key.PublicKey.E {
		t.Fatalf("decoded public key mismatch")
	}
}

func TestDecodePublicKey_Garbage(t *testing.T) {
	if _, err := DecodePublicKey("not a pem block"); !errors.Is(err, ErrInvalidPublicKey) {
		t.Fatalf("error = %v, want ErrInvalidPublicKey", err)
	}
}

func TestPrivateKeyPEM_RoundTrip(t *testing.T) {
	key := deviceKey(t)

	pemData, err := EncodePrivateKey(key)
	if err != nil {
		t.Fatalf("EncodePrivateKey error: %v", err)
	}

	decoded, err := DecodePrivateKey(pemData)
	if err != nil {
		t.Fatalf("DecodePrivateKey error: %v", err)
	}

	if !decoded.Equal(key) {
		t.Fatalf("decoded private key mismatch")
	}
}

func TestDecodePrivateKey_Garbage(t *testing.T) {
	if _, err := DecodePrivateKey("not a pem block"); !errors.Is(err, ErrInvalidPrivateKey) {
		t.Fatalf("error = %v, want ErrInvalidPrivateKey", err)
	}
}
