package aead

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/heirlock/vault/internal/vaulterr"
)

const (
	// KeySize is the size of a ChaCha20-Poly1305 key in bytes.
	KeySize = chacha20poly1305.KeySize
	// NonceSize is the size of a ChaCha20-Poly1305 nonce in bytes.
	NonceSize = chacha20poly1305.NonceSize
	// TagSize is the size of the appended Poly1305 authentication tag.
	TagSize = chacha20poly1305.Overhead
)

// GenerateKey returns a fresh, cryptographically random 32-byte key.
func GenerateKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, vaulterr.Wrap(vaulterr.KindSystemTime, fmt.Errorf("generate key: %w", err))
	}
	return key, nil
}

// GenerateNonce returns a fresh, cryptographically random 12-byte nonce.
//
// Nonce reuse under the same key is catastrophic. Every call to Encrypt in
// this module's orchestrator mints a fresh nonce, even when an existing key
// is being reused for an update.
func GenerateNonce() ([]byte, error) {
	nonce := make([]byte, NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, vaulterr.Wrap(vaulterr.KindSystemTime, fmt.Errorf("generate nonce: %w", err))
	}
	return nonce, nil
}

// Encrypt seals plaintext under key and nonce, binding aad via Poly1305.
// The returned ciphertext is plaintext's length plus the 16-byte tag.
func Encrypt(key, plaintext, aad, nonce []byte) ([]byte, error) {
	if len(key) != KeySize {
		return nil, vaulterr.Newf(vaulterr.KindKeyLength, "encryption key must be %d bytes, got %d", KeySize, len(key))
	}
	if len(nonce) != NonceSize {
		return nil, vaulterr.Newf(vaulterr.KindKeyLength, "nonce must be %d bytes, got %d", NonceSize, len(nonce))
	}

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, vaulterr.Wrap(vaulterr.KindCrypto, fmt.Errorf("init cipher: %w", err))
	}

	return aead.Seal(nil, nonce, plaintext, aad), nil
}

// Decrypt opens ciphertext under key and nonce, verifying aad.
//
// On any authentication failure it returns a generic crypto error and never
// returns partial plaintext — callers must not be able to distinguish a MAC
// mismatch from a wrong key or a wrong aad from the error alone.
func Decrypt(key, ciphertext, aad, nonce []byte) ([]byte, error) {
	if len(key) != KeySize {
		return nil, vaulterr.Newf(vaulterr.KindKeyLength, "decryption key must be %d bytes, got %d", KeySize, len(key))
	}
	if len(nonce) != NonceSize {
		return nil, vaulterr.Newf(vaulterr.KindKeyLength, "nonce must be %d bytes, got %d", NonceSize, len(nonce))
	}

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, vaulterr.Wrap(vaulterr.KindCrypto, fmt.Errorf("init cipher: %w", err))
	}

	plaintext, err := aead.Open(nil, nonce, ciphertext, aad)
	if err != nil {
		return nil, vaulterr.ErrCryptoFailed
	}

	return plaintext, nil
}
