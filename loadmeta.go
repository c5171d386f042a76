package vault

import (
	"fmt"
	"os"

	"github.com/heirlock/vault/internal/vaulterr"
	"github.com/heirlock/vault/internal/vaultutil"
)

const containerExtension = ".vault"

// LoadMeta parses a container's cleartext prologue without touching its
// encrypted body: enough to identify a vault and display its recipient
// layout before any key piece has been gathered.
func LoadMeta(path string) (*PublicInfo, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, vaulterr.Wrap(vaulterr.KindFS, fmt.Errorf("stat container %q: %w", path, err))
	}
	public, _, _, err := readContainer(path)
	if err != nil {
		return nil, err
	}
	return public, nil
}

// GetRandomPath returns a randomly named path under appDataDir suitable
// for a new container file. The name is unique with overwhelming
// probability; the filesystem is not checked.
func GetRandomPath(appDataDir string) (string, error) {
	return vaultutil.RandomPath(appDataDir, containerExtension)
}
