package vault

import (
	"path/filepath"
	"strconv"
	"time"

	"github.com/heirlock/vault/internal/aead"
	"github.com/heirlock/vault/internal/archive"
)

// Open decrypts a container with the depositor's own master key,
// bypassing threshold recovery. The container is unpacked into a fresh
// directory under outputDirRoot; the private manifest is read and
// removed from it, and the returned Vault's VaultFolder points at the
// unpacked directory.
func Open(outputDirRoot, inputPath string, master []byte) (*Vault, error) {
	dest := filepath.Join(outputDirRoot, strconv.FormatInt(time.Now().Unix(), 10))

	public, raw, ciphertext, err := readContainer(inputPath)
	if err != nil {
		return nil, err
	}

	plaintext, err := aead.Decrypt(master, ciphertext, raw, public.Nonce)
	if err != nil {
		return nil, err
	}

	if err := archive.Unpack(plaintext, dest); err != nil {
		return nil, err
	}

	v, err := readManifest(dest)
	if err != nil {
		return nil, err
	}
	v.VaultFolder = dest
	return v, nil
}
