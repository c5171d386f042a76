package metacodec

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/heirlock/vault/internal/vaulterr"
)

// LengthPrefixSize is the size of the big-endian length header that
// precedes every encoded payload.
const LengthPrefixSize = 4

// Encode serializes v as MessagePack and returns both the full wire form
// (length prefix plus payload) and the raw payload bytes on their own.
//
// Callers that need to bind the payload as AEAD associated data must use
// the returned raw bytes directly rather than re-encoding v — msgpack map
// key ordering is not guaranteed to be stable across encodes of the same
// logical value.
func Encode(v any) (wire, raw []byte, err error) {
	raw, err = msgpack.Marshal(v)
	if err != nil {
		return nil, nil, vaulterr.Wrap(vaulterr.KindEncode, fmt.Errorf("marshal: %w", err))
	}

	wire = make([]byte, LengthPrefixSize+len(raw))
	binary.BigEndian.PutUint32(wire[:LengthPrefixSize], uint32(len(raw)))
	copy(wire[LengthPrefixSize:], raw)

	return wire, raw, nil
}

// Decode reads a length-prefixed MessagePack payload from r, unmarshals it
// into v, and returns the raw payload bytes that were decoded.
func Decode(r io.Reader, v any) (raw []byte, err error) {
	var lenBuf [LengthPrefixSize]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return nil, vaulterr.Wrap(vaulterr.KindIO, fmt.Errorf("read length prefix: %w", err))
	}

	length := binary.BigEndian.Uint32(lenBuf[:])
	raw = make([]byte, length)
	if _, err := io.ReadFull(r, raw); err != nil {
		return nil, vaulterr.Wrap(vaulterr.KindIO, fmt.Errorf("read payload: %w", err))
	}

	if err := msgpack.Unmarshal(raw, v); err != nil {
		return nil, vaulterr.Wrap(vaulterr.KindDecode, fmt.Errorf("unmarshal: %w", err))
	}

	return raw, nil
}

// Split reads a length-prefixed payload from the front of data and returns
// the raw payload bytes alongside whatever bytes follow it (the encrypted
// body, in a vault container).
func Split(data []byte) (raw, rest []byte, err error) {
	if len(data) < LengthPrefixSize {
		return nil, nil, vaulterr.New(vaulterr.KindDecode, "container shorter than length prefix")
	}

	length := binary.BigEndian.Uint32(data[:LengthPrefixSize])
	end := LengthPrefixSize + int(length)
	if end > len(data) {
		return nil, nil, vaulterr.New(vaulterr.KindDecode, "declared payload length exceeds container size")
	}

	return data[LengthPrefixSize:end], data[end:], nil
}

// DecodeBytes unmarshals a length-prefixed payload at the front of data
// into v and returns the raw payload bytes plus whatever followed it.
func DecodeBytes(data []byte, v any) (raw, rest []byte, err error) {
	raw, rest, err = Split(data)
	if err != nil {
		return nil, nil, err
	}
	if err := msgpack.Unmarshal(raw, v); err != nil {
		return nil, nil, vaulterr.Wrap(vaulterr.KindDecode, fmt.Errorf("unmarshal: %w", err))
	}
	return raw, rest, nil
}
