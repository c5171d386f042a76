package vault

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/heirlock/vault/internal/aead"
	"github.com/heirlock/vault/internal/archive"
	"github.com/heirlock/vault/internal/shares"
	"github.com/heirlock/vault/internal/vaulterr"
)

// Unlock reconstructs a vault's master key from a threshold set of
// recipient key pieces and decrypts the container at inputPath. The
// vault is unpacked into a directory named after the container file
// under the save path (the user's downloads directory unless
// WithSavePath overrides it), its private manifest is read and removed,
// and the unpacked directory's path is returned.
func Unlock(inputPath string, pieces [][]byte, opts ...UnlockOption) (string, error) {
	var options unlockConfig
	for _, opt := range opts {
		opt(&options)
	}

	master, err := shares.Combine(pieces)
	if err != nil {
		return "", err
	}

	public, raw, ciphertext, err := readContainer(inputPath)
	if err != nil {
		return "", err
	}

	plaintext, err := aead.Decrypt(master[:], ciphertext, raw, public.Nonce)
	if err != nil {
		// The pieces combined to a key that doesn't open this container:
		// a valid-looking set from another vault, or a tampered file.
		return "", vaulterr.New(vaulterr.KindCrypto, "decryption failed; wrong set or wrong vault")
	}

	root := options.savePath
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", vaulterr.Wrap(vaulterr.KindFS, fmt.Errorf("resolve downloads directory: %w", err))
		}
		root = filepath.Join(home, "Downloads")
	}
	dest := filepath.Join(root, containerStem(inputPath))

	if err := archive.Unpack(plaintext, dest); err != nil {
		return "", err
	}
	if _, err := readManifest(dest); err != nil {
		return "", err
	}
	return dest, nil
}

// UnlockCloud reconstructs the master key from a threshold set of key
// pieces and returns the read-only cloud handle derived from it, used to
// fetch a cloud-hosted container.
func UnlockCloud(pieces [][]byte) ([]byte, error) {
	master, err := shares.Combine(pieces)
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), master[:ShareTokenSize]...), nil
}

// containerStem is the container file's base name without extension.
func containerStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
