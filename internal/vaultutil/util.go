package vaultutil

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/heirlock/vault/internal/vaulterr"
)

// metaFileName is the manifest entry a sealed archive carries; it mirrors
// the archive package's constant so this package stays leaf-level.
const metaFileName = "META"

// RandomBytes returns n cryptographically random bytes.
func RandomBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(randReader, buf); err != nil {
		return nil, vaulterr.Wrap(vaulterr.KindSystemTime, fmt.Errorf("read random bytes: %w", err))
	}
	return buf, nil
}

// RandomName returns a file name with no path separators that is unique
// with overwhelming probability: a random uint64 joined to a millisecond
// epoch timestamp. The random prefix prevents collisions within the same
// millisecond; the timestamp records when the name was minted.
func RandomName() (string, error) {
	buf, err := RandomBytes(8)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d-%d", binary.BigEndian.Uint64(buf), time.Now().UnixMilli()), nil
}

// RandomPath returns a path under dir for a new container file, using
// RandomName for the file's base name plus ext as the extension.
func RandomPath(dir, ext string) (string, error) {
	name, err := RandomName()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name+ext), nil
}

// ReadMetaFile reads the raw bytes of the manifest file under dir and
// deletes it, so the decrypted manifest never lingers on disk once its
// contents are in memory.
func ReadMetaFile(dir string) ([]byte, error) {
	path := filepath.Join(dir, metaFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, vaulterr.Wrap(vaulterr.KindFS, fmt.Errorf("read meta file %q: %w", path, err))
	}
	if err := os.Remove(path); err != nil {
		return nil, vaulterr.Wrap(vaulterr.KindFS, fmt.Errorf("remove meta file %q: %w", path, err))
	}
	return data, nil
}
