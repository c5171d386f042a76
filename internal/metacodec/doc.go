// Package metacodec encodes and decodes the cleartext PublicInfo prologue
// that precedes the encrypted body of a vault container.
//
// The wire format is a 4-byte big-endian length prefix followed by that
// many bytes of MessagePack-encoded data, matching the compact-binary
// metadata codec this module's container format specifies. Encoding uses
// [github.com/vmihailenco/msgpack/v5], the same msgpack library the rest
// of this module's dependency pack reaches for wherever a compact binary
// format is needed.
package metacodec
