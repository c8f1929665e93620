package crypto

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex in test: %v", err)
	}
	return b
}

// RFC 5869 Appendix A, SHA-256 test cases.
func TestHKDF_RFC5869Vectors(t *testing.T) {
	tests := []struct {
		name string
		ikm  string
		salt string
		info string
		l    int
		prk  string
		okm  string
	}{
		{
			name: "basic (A.1)",
			ikm:  "0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b",
			salt: "000102030405060708090a0b0c",
			info: "f0f1f2f3f4f5f6f7f8f9",
			l:    42,
			prk:  "077709362c2e32df0ddc3f0dc47bba6390b6c73bb50f9c3122ec844ad7c2b3e5",
			okm:  "3cb25f25faacd57a90434f64d0362f2a2d2d0a90cf1a5a4c5db02d56ecc4c5bf34007208d5b887185865",
		},
		{
			name: "longer inputs (A.2)",
			ikm:  "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f202122232425262728292a2b2c2d2e2f303132333435363738393a3b3c3d3e3f404142434445464748494a4b4c4d4e4f",
			salt: "606162636465666768696a6b6c6d6e6f707172737475767778797a7b7c7d7e7f808182838485868788898a8b8c8d8e8f909192939495969798999a9b9c9d9e9fa0a1a2a3a4a5a6a7a8a9aaabacadaeaf",
			info: "b0b1b2b3b4b5b6b7b8b9babbbcbdbebfc0c1c2c3c4c5c6c7c8c9cacbcccdcecfd0d1d2d3d4d5d6d7d8d9dadbdcdddedfe0e1e2e3e4e5e6e7e8e9eaebecedeeeff0f1f2f3f4f5f6f7f8f9fafbfcfdfeff",
			l:    82,
			okm:  "b11e398dc80327a1c8e7f78c596a49344f012eda2d4efad8a050cc4c19afa97c59045a99cac7827271cb41c65e590e09da3275600c2f09b8367793a9aca3db71cc30c58179ec3e87c14c01d5c1f3434f1d87",
		},
		{
			name: "zero-length salt and info (A.3)",
			ikm:  "0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b",
			salt: "",
			info: "",
			l:    42,
			okm:  "8da4e775a563c18f715f802a063c5a31b8a11f5c5ee1879ec3454e5f3c738d2d9d201395faa4b61a96c8",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ikm := mustHex(t, tc.ikm)
			salt := mustHex(t, tc.salt)
			info := mustHex(t, tc.info)

			if tc.prk != "" {
				prk := Extract(salt, ikm)
				if !bytes.Equal(prk, mustHex(t, tc.prk)) {
					t.Fatalf("PRK mismatch: got %x", prk)
				}
			}

			okm, err := Derive(salt, ikm, info, tc.l)
			if err != nil {
				t.Fatalf("Derive error: %v", err)
			}
			if !bytes.Equal(okm, mustHex(t, tc.okm)) {
				t.Fatalf("OKM mismatch: got %x", okm)
			}
		})
	}
}

func TestExtract_AlwaysHashLen(t *testing.T) {
	if got := len(Extract(nil, nil)); got != HashLen {
		t.Fatalf("PRK length = %d, want %d", got, HashLen)
	}
	if got := len(Extract([]byte("salt"), []byte("ikm"))); got != HashLen {
		t.Fatalf("PRK length = %d, want %d", got, HashLen)
	}
}

func TestExtract_EmptySaltEqualsZeroSalt(t *testing.T) {
	ikm := []byte("input keying material")

	implicit := Extract(nil, ikm)
	explicit := Extract(make([]byte, HashLen), ikm)

	if !bytes.Equal(implicit, explicit) {
		t.Fatalf("nil salt must behave as %d zero bytes", HashLen)
	}
}

func TestDerive_Deterministic(t *testing.T) {
	salt := []byte("salt")
	ikm := []byte("secret")
	info := []byte("context")

	a, err := Derive(salt, ikm, info, 64)
	if err != nil {
		t.Fatalf("Derive error: %v", err)
	}
	b, err := Derive(salt, ikm, info, 64)
	if err != nil {
		t.Fatalf("Derive error: %v", err)
	}

	if !bytes.Equal(a, b) {
		t.Fatalf("expected identical output for identical inputs")
	}
}

func TestDerive_PrefixProperty(t *testing.T) {
	salt := []byte("salt")
	ikm := []byte("secret")
	info := []byte("context")

	// Cross block boundaries: 31..33 and 63..65 exercise the counter step.
	for _, l := range []int{1, 31, 32, 33, 63, 64, 65, 100} {
		shorter, err := Derive(salt, ikm, info, l)
		if err != nil {
			t.Fatalf("Derive(%d) error: %v", l, err)
		}
		longer, err := Derive(salt, ikm, info, l+1)
		if err != nil {
			t.Fatalf("Derive(%d) error: %v", l+1, err)
		}

		if !bytes.Equal(shorter, longer[:l]) {
			t.Fatalf("output for L=%d is not a prefix of L=%d", l, l+1)
		}
	}
}

func TestExpand_LengthBounds(t *testing.T) {
	prk := Extract([]byte("salt"), []byte("ikm"))

	for _, l := range []int{0, -1, MaxOutputLength + 1} {
		if _, err := Expand(prk, nil, l); !errors.Is(err, ErrInvalidOutputLength) {
			t.Fatalf("Expand(L=%d) error = %v, want ErrInvalidOutputLength", l, err)
		}
	}

	okm, err := Expand(prk, nil, MaxOutputLength)
	if err != nil {
		t.Fatalf("Expand(L=%d) error: %v", MaxOutputLength, err)
	}
	if len(okm) != MaxOutputLength {
		t.Fatalf("OKM length = %d, want %d", len(okm), MaxOutputLength)
	}
}

func TestExpand_ShortPRKAccepted(t *testing.T) {
	// RFC 5869 is silent on PRKs shorter than HashLen; Expand takes the
	// strict reading and accepts them.
	okm, err := Expand([]byte("short"), []byte("info"), 32)
	if err != nil {
		t.Fatalf("Expand with short PRK error: %v", err)
	}
	if len(okm) != 32 {
		t.Fatalf("OKM length = %d, want 32", len(okm))
	}
}
