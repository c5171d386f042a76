package vaulterr

import "fmt"

// Kind tags an Error with the closed taxonomy the external caller matches on.
type Kind string

// The full set of error kinds surfaced by the core.
const (
	KindIO            Kind = "io"
	KindKeyLength     Kind = "key_length"
	KindEncode        Kind = "encode"
	KindDecode        Kind = "decode"
	KindSSS           Kind = "SSS"
	KindCrypto        Kind = "crypto"
	KindIntSize       Kind = "int_size"
	KindSystemTime    Kind = "system_time"
	KindUnknown       Kind = "unknown"
	KindCombine       Kind = "combine"
	KindIndivCombine  Kind = "indiv_combine"
	KindCircleCombine Kind = "circle_combine"
	KindFS            Kind = "fs"
	KindDirectoryLoad Kind = "directory_load"
)

// Error is the single error type returned by every exported vault operation.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the wrapped cause, if any, to errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is lets callers use errors.Is against the sentinel values below or
// against another *Error sharing the same Kind.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return other.Kind == e.Kind
}

// New creates an Error with the given kind and message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates an Error with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap tags an existing error with a Kind, keeping it reachable via Unwrap.
func Wrap(kind Kind, cause error) *Error {
	if cause == nil {
		return nil
	}
	return &Error{Kind: kind, Message: cause.Error(), cause: cause}
}

// Sentinel values for errors.Is(err, vaulterr.ErrCryptoFailed)-style checks.
var (
	ErrCryptoFailed  = &Error{Kind: KindCrypto, Message: "decryption failed"}
	ErrIndivCombine  = &Error{Kind: KindIndivCombine, Message: "not enough keys"}
	ErrCircleCombine = &Error{Kind: KindCircleCombine, Message: "missing required participants"}
	ErrBadSecret     = &Error{Kind: KindSSS, Message: "bad secret"}
)
