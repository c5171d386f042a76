package vault

import (
	"fmt"
	"strings"

	"github.com/heirlock/vault/internal/shares"
)

// VaultType distinguishes where a sealed container is meant to live.
// Values serialize as their names so readers in other languages can
// match on them.
type VaultType string

const (
	// VaultTypeOffline vaults are kept by the depositor on their own
	// storage.
	VaultTypeOffline VaultType = "Offline"
	// VaultTypeCloud vaults are uploaded to a hosting service; the
	// CloudKeyData minted at creation authorizes access to the hosted
	// copy.
	VaultTypeCloud VaultType = "Cloud"
)

const (
	// MasterKeySize is the length of a vault's master symmetric key.
	MasterKeySize = shares.MasterKeySize
	// ShareTokenSize is the length of the read-only cloud handle derived
	// from the master key's leading bytes.
	ShareTokenSize = 8
	// OwnerTokenSize is the length of the random cloud owner credential.
	OwnerTokenSize = 16
)

// PersonalInfo is the depositor's identity and contact details. Name and
// email are always present; the rest is optional and substituted as an
// empty string wherever it's rendered.
type PersonalInfo struct {
	Name             string  `msgpack:"name"`
	EmailAddress     string  `msgpack:"email_address"`
	FullLegalName    *string `msgpack:"full_legal_name"`
	PhoneNumber      *string `msgpack:"phone_number"`
	GuidanceDocument *string `msgpack:"guidance_document"`
	Address          *string `msgpack:"address"`
}

// ShareConfiguration is the recipient layout and recovery threshold used
// to split a vault's master key.
type ShareConfiguration = shares.Config

// Circle is a named group of recipients holding key pieces.
type Circle = shares.Circle

// KeyCollection is a vault's complete key material: the master symmetric
// key plus every circle annotated with its recipients' minted key pieces.
type KeyCollection struct {
	Main      []byte   `msgpack:"main"`
	ShareKeys []Circle `msgpack:"share_keys"`
}

// CloudKeyData is the pair of cloud credentials minted alongside a fresh
// vault: OwnerToken authorizes overwriting or deleting the hosted copy,
// ShareToken (the master key's first bytes) is the read-only handle used
// to fetch it.
type CloudKeyData struct {
	OwnerToken []byte `msgpack:"owner_token"`
	ShareToken []byte `msgpack:"share_token"`
}

// Vault is the full private manifest sealed inside a container's
// encrypted body.
type Vault struct {
	VaultType    VaultType          `msgpack:"vault_type"`
	PersonalInfo PersonalInfo       `msgpack:"personal_info"`
	ShareConfig  ShareConfiguration `msgpack:"share_config"`

	// VaultFolder is the staging path the manifest was packed from, or
	// the folder a container was unpacked into. Transient bookkeeping for
	// the caller; never interpreted here.
	VaultFolder string `msgpack:"vault_folder"`

	// AlertDuration and ReminderPeriod are transported for the external
	// caller's scheduling; this module never acts on them.
	AlertDuration  uint32 `msgpack:"alert_duration"`
	ReminderPeriod uint8  `msgpack:"reminder_period"`

	// Keys, when the caller supplies it to Create, means "rewrap this
	// existing vault with the same key material"; when nil, Create mints
	// a fresh master key and key pieces.
	Keys *KeyCollection `msgpack:"keys"`
}

// String renders a short human-readable summary of a vault.
func (v Vault) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Vault (%s) for %s <%s>\n", v.VaultType, v.PersonalInfo.Name, v.PersonalInfo.EmailAddress)
	fmt.Fprintf(&b, "  threshold: %d of %d total slots\n", v.ShareConfig.Required, totalSlots(v.ShareConfig))
	for _, c := range v.ShareConfig.Circles {
		req := ""
		if c.Required {
			req = " (required)"
		}
		fmt.Fprintf(&b, "  circle %q%s: %d recipients\n", c.Name, req, len(c.KeyComments))
	}
	if v.VaultFolder != "" {
		fmt.Fprintf(&b, "  folder: %s\n", v.VaultFolder)
	}
	return b.String()
}

func totalSlots(cfg ShareConfiguration) int {
	n := 0
	for _, c := range cfg.Circles {
		n += len(c.KeyComments)
	}
	return n
}

// PublicInfo is the cleartext prologue at the head of a container. It
// identifies the vault and carries the AEAD nonce; its exact serialized
// bytes are bound to the ciphertext as associated data, so nothing in it
// can be altered without breaking decryption.
type PublicInfo struct {
	ShareConfig  ShareConfiguration `msgpack:"share_config"`
	Name         string             `msgpack:"name"`
	EmailAddress string             `msgpack:"email_address"`
	Nonce        []byte             `msgpack:"nonce"`

	// Path is the container's own filesystem path at creation time.
	// Informational: a renamed container still decrypts, since the field
	// is carried but never compared.
	Path string `msgpack:"path"`
}

// CreateResponse is the result of sealing a vault: the complete key
// material to distribute, the container's path, and — only when a fresh
// master key was minted — the cloud credentials derived from it.
type CreateResponse struct {
	Keys      KeyCollection
	Path      string
	CloudKeys *CloudKeyData
}
