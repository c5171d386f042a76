package vault

import (
	"fmt"
	"os"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/heirlock/vault/internal/metacodec"
	"github.com/heirlock/vault/internal/vaulterr"
	"github.com/heirlock/vault/internal/vaultutil"
)

// A sealed container is laid out as:
//
//	[4-byte big-endian L][L bytes msgpack PublicInfo][ciphertext + 16-byte tag]
//
// The PublicInfo payload (without its length prefix) doubles as the AEAD
// associated data, and carries the nonce. LoadMeta can therefore read a
// container's identity without any key, while any modification to the
// prologue breaks decryption of the body.

// readContainer loads a container from disk and splits it into its
// parsed prologue, the exact prologue bytes (the associated data), and
// the ciphertext.
func readContainer(path string) (public *PublicInfo, raw, ciphertext []byte, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, nil, vaulterr.Wrap(vaulterr.KindIO, fmt.Errorf("read container %q: %w", path, err))
	}

	var info PublicInfo
	raw, ciphertext, err = metacodec.DecodeBytes(data, &info)
	if err != nil {
		return nil, nil, nil, err
	}
	return &info, raw, ciphertext, nil
}

// readManifest reads the private manifest left in dir by an unpack,
// deletes it, and deserializes it into a Vault.
func readManifest(dir string) (*Vault, error) {
	data, err := vaultutil.ReadMetaFile(dir)
	if err != nil {
		return nil, err
	}
	var v Vault
	if err := msgpack.Unmarshal(data, &v); err != nil {
		return nil, vaulterr.Wrap(vaulterr.KindDecode, fmt.Errorf("unmarshal vault manifest: %w", err))
	}
	return &v, nil
}

// stripKeys returns cfg with every circle's minted key pieces removed,
// for embedding in the cleartext prologue. Key pieces never appear
// outside the encrypted body.
func stripKeys(cfg ShareConfiguration) ShareConfiguration {
	circles := make([]Circle, len(cfg.Circles))
	for i, c := range cfg.Circles {
		circles[i] = Circle{
			Name:        c.Name,
			Required:    c.Required,
			KeyComments: c.KeyComments,
			Keys:        nil,
		}
	}
	return ShareConfiguration{Required: cfg.Required, Circles: circles}
}
