// Package aead provides the authenticated-encryption envelope used to seal
// a vault archive: ChaCha20-Poly1305 with a 32-byte key and 12-byte nonce,
// combined-tag form. Decrypt never returns partial plaintext on failure.
package aead
