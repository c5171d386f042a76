package vault

import "github.com/heirlock/vault/internal/vaulterr"

// ErrorKind tags every error this module returns with the closed category
// of failure that produced it.
type ErrorKind = vaulterr.Kind

// Error is the concrete error type returned by every operation in this
// module. Use errors.As to recover it and inspect its Kind, or errors.Is
// against one of the Err* sentinels below.
type Error = vaulterr.Error

const (
	ErrKindIO             = vaulterr.KindIO
	ErrKindKeyLength      = vaulterr.KindKeyLength
	ErrKindEncode         = vaulterr.KindEncode
	ErrKindDecode         = vaulterr.KindDecode
	ErrKindSSS            = vaulterr.KindSSS
	ErrKindCrypto         = vaulterr.KindCrypto
	ErrKindIntSize        = vaulterr.KindIntSize
	ErrKindSystemTime     = vaulterr.KindSystemTime
	ErrKindUnknown        = vaulterr.KindUnknown
	ErrKindCombine        = vaulterr.KindCombine
	ErrKindIndivCombine   = vaulterr.KindIndivCombine
	ErrKindCircleCombine  = vaulterr.KindCircleCombine
	ErrKindFS             = vaulterr.KindFS
	ErrKindDirectoryLoad  = vaulterr.KindDirectoryLoad
)

var (
	// ErrCryptoFailed is returned when AEAD decryption fails: wrong key,
	// tampered ciphertext, or mismatched associated data.
	ErrCryptoFailed = vaulterr.ErrCryptoFailed
	// ErrIndivCombine is returned when the supplied key pieces cannot
	// reconstruct the individual-layer secret (too few, or not genuine).
	ErrIndivCombine = vaulterr.ErrIndivCombine
	// ErrCircleCombine is returned when the individual layer combines but
	// the required circles' group shares are missing or insufficient.
	ErrCircleCombine = vaulterr.ErrCircleCombine
	// ErrBadSecret carries the SSS kind, so errors.Is matches it against
	// the errors Create returns when the share configuration is rejected
	// (a slot count above 255 is int_size instead) or the split fails. A
	// master key or key piece of the wrong length is reported with the
	// key_length kind instead.
	ErrBadSecret = vaulterr.ErrBadSecret
)
