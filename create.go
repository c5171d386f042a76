package vault

import (
	"fmt"
	"os"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/heirlock/vault/internal/aead"
	"github.com/heirlock/vault/internal/archive"
	"github.com/heirlock/vault/internal/metacodec"
	"github.com/heirlock/vault/internal/shares"
	"github.com/heirlock/vault/internal/vaulterr"
	"github.com/heirlock/vault/internal/vaultutil"
)

// Create seals a vault. It packs every file under stagingDir together
// with a privacy notice and the vault's private manifest into a tar
// archive, encrypts the archive under the vault's master key, and writes
// the sealed container to outputPath. The staging directory is removed
// only after the container has been written successfully; any earlier
// failure leaves it intact for retry.
//
// When v.Keys is nil a fresh master key is minted and split across
// v.ShareConfig's circles, and the response carries the cloud credentials
// derived from the new key. When v.Keys is supplied the existing key
// material is reused unchanged — no new pieces are minted and CloudKeys
// is nil — though the encryption nonce is always fresh.
func Create(v Vault, stagingDir, outputPath string, opts ...CreateOption) (*CreateResponse, error) {
	options := createConfig{privacyTemplate: defaultPrivacyTemplate}
	for _, opt := range opts {
		opt(&options)
	}

	var cloudKeys *CloudKeyData
	if v.Keys == nil {
		master, err := aead.GenerateKey()
		if err != nil {
			return nil, err
		}
		ownerToken, err := vaultutil.RandomBytes(OwnerTokenSize)
		if err != nil {
			return nil, err
		}

		var m [shares.MasterKeySize]byte
		copy(m[:], master)
		circles, err := shares.Split(m, v.ShareConfig)
		if err != nil {
			return nil, err
		}

		v.Keys = &KeyCollection{Main: master, ShareKeys: circles}
		cloudKeys = &CloudKeyData{
			OwnerToken: ownerToken,
			ShareToken: append([]byte(nil), master[:ShareTokenSize]...),
		}
	} else if len(v.Keys.Main) != MasterKeySize {
		return nil, vaulterr.Newf(vaulterr.KindKeyLength, "supplied master key must be %d bytes, got %d", MasterKeySize, len(v.Keys.Main))
	}

	manifest, err := msgpack.Marshal(v)
	if err != nil {
		return nil, vaulterr.Wrap(vaulterr.KindEncode, fmt.Errorf("marshal vault manifest: %w", err))
	}

	notice := renderPrivacyNotice(options.privacyTemplate, v.PersonalInfo)
	packed, err := archive.Pack(stagingDir, []byte(notice), manifest)
	if err != nil {
		return nil, err
	}

	nonce, err := aead.GenerateNonce()
	if err != nil {
		return nil, err
	}

	public := PublicInfo{
		ShareConfig:  stripKeys(v.ShareConfig),
		Name:         v.PersonalInfo.Name,
		EmailAddress: v.PersonalInfo.EmailAddress,
		Nonce:        nonce,
		Path:         outputPath,
	}
	wire, aad, err := metacodec.Encode(public)
	if err != nil {
		return nil, err
	}

	ciphertext, err := aead.Encrypt(v.Keys.Main, packed, aad, nonce)
	if err != nil {
		return nil, err
	}

	container := make([]byte, 0, len(wire)+len(ciphertext))
	container = append(container, wire...)
	container = append(container, ciphertext...)
	if err := os.WriteFile(outputPath, container, 0o600); err != nil {
		return nil, vaulterr.Wrap(vaulterr.KindIO, fmt.Errorf("write container %q: %w", outputPath, err))
	}

	if err := os.RemoveAll(stagingDir); err != nil {
		return nil, vaulterr.Wrap(vaulterr.KindFS, fmt.Errorf("remove staging directory %q: %w", stagingDir, err))
	}

	return &CreateResponse{
		Keys:      *v.Keys,
		Path:      outputPath,
		CloudKeys: cloudKeys,
	}, nil
}
