package aead

import (
	"bytes"
	"crypto/rand"
	"errors"
	"testing"

	"github.com/heirlock/vault/internal/vaulterr"
)

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		plaintext []byte
		aad       []byte
	}{
		{"empty plaintext, no aad", []byte{}, nil},
		{"simple", []byte("hello vault"), []byte("aad")},
		{"binary", []byte{0x00, 0xff, 0x7f, 0x80}, []byte("more context")},
		{"large", make([]byte, 64*1024), []byte("large payload aad")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := GenerateKey()
			if err != nil {
				t.Fatal(err)
			}
			nonce, err := GenerateNonce()
			if err != nil {
				t.Fatal(err)
			}

			ciphertext, err := Encrypt(key, tt.plaintext, tt.aad, nonce)
			if err != nil {
				t.Fatalf("Encrypt() error = %v", err)
			}

			wantLen := len(tt.plaintext) + TagSize
			if len(ciphertext) != wantLen {
				t.Errorf("ciphertext length = %d, want %d", len(ciphertext), wantLen)
			}

			plaintext, err := Decrypt(key, ciphertext, tt.aad, nonce)
			if err != nil {
				t.Fatalf("Decrypt() error = %v", err)
			}

			if !bytes.Equal(plaintext, tt.plaintext) {
				t.Errorf("decrypted = %v, want %v", plaintext, tt.plaintext)
			}
		})
	}
}

func TestDecrypt_WrongKeyFails(t *testing.T) {
	t.Parallel()

	key, _ := GenerateKey()
	otherKey, _ := GenerateKey()
	nonce, _ := GenerateNonce()

	ciphertext, err := Encrypt(key, []byte("secret contents"), []byte("aad"), nonce)
	if err != nil {
		t.Fatal(err)
	}

	_, err = Decrypt(otherKey, ciphertext, []byte("aad"), nonce)
	if !errors.Is(err, vaulterr.ErrCryptoFailed) {
		t.Errorf("expected ErrCryptoFailed, got %v", err)
	}
}

func TestDecrypt_TamperedAADFails(t *testing.T) {
	t.Parallel()

	key, _ := GenerateKey()
	nonce, _ := GenerateNonce()

	ciphertext, err := Encrypt(key, []byte("secret contents"), []byte("original aad"), nonce)
	if err != nil {
		t.Fatal(err)
	}

	_, err = Decrypt(key, ciphertext, []byte("tampered aad"), nonce)
	if !errors.Is(err, vaulterr.ErrCryptoFailed) {
		t.Errorf("expected ErrCryptoFailed, got %v", err)
	}
}

func TestDecrypt_TamperedCiphertextFails(t *testing.T) {
	t.Parallel()

	key, _ := GenerateKey()
	nonce, _ := GenerateNonce()

	ciphertext, err := Encrypt(key, []byte("secret contents"), []byte("aad"), nonce)
	if err != nil {
		t.Fatal(err)
	}

	tampered := append([]byte(nil), ciphertext...)
	tampered[0] ^= 0xff

	plaintext, err := Decrypt(key, tampered, []byte("aad"), nonce)
	if !errors.Is(err, vaulterr.ErrCryptoFailed) {
		t.Errorf("expected ErrCryptoFailed, got %v", err)
	}
	if plaintext != nil {
		t.Error("expected no partial plaintext on authentication failure")
	}
}

func TestEncrypt_RejectsWrongSizedKey(t *testing.T) {
	t.Parallel()

	nonce, _ := GenerateNonce()
	_, err := Encrypt(make([]byte, 16), []byte("data"), nil, nonce)
	if err == nil {
		t.Fatal("expected error for wrong-sized key")
	}
}

func TestGenerateNonce_Unique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		nonce, err := GenerateNonce()
		if err != nil {
			t.Fatal(err)
		}
		key := string(nonce)
		if _, dup := seen[key]; dup {
			t.Fatal("generated duplicate nonce")
		}
		seen[key] = struct{}{}
	}
}

func TestMain_randAvailable(t *testing.T) {
	t.Parallel()
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		t.Fatalf("crypto/rand unavailable: %v", err)
	}
}
