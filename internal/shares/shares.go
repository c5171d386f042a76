package shares

import (
	"hash/crc32"

	"github.com/hashicorp/vault/shamir"

	"github.com/heirlock/vault/internal/vaulterr"
)

// MasterKeySize is the length of the master symmetric key being split.
const MasterKeySize = 32

const checksumSize = 4

// groupShareSize is the length of a single group-layer share: the master
// key plus its integrity checksum plus the Shamir point's trailing
// x-coordinate byte.
const groupShareSize = MasterKeySize + checksumSize + 1

// individualShareSize is the length of a single individual-layer share:
// a group share (Z) plus its own integrity checksum plus the trailing
// x-coordinate byte.
const individualShareSize = groupShareSize + checksumSize + 1

// maxPieceSize is the longest a key piece can legally be: an individual
// share plus a trailing group share, issued to a required circle's member.
const maxPieceSize = individualShareSize + groupShareSize

// Circle is a named group of recipients who jointly hold key pieces.
// The msgpack tags fix the wire names used in both the cleartext
// container prologue and the encrypted manifest.
type Circle struct {
	Name        string   `msgpack:"name"`
	Required    bool     `msgpack:"required"`
	KeyComments []string `msgpack:"key_comments"`
	Keys        [][]byte `msgpack:"keys"` // nil until Split populates it
}

// Config is the share configuration: a recovery threshold plus circles.
type Config struct {
	// Required is the individual-layer threshold T: the number of distinct
	// individual shares (across all circles) needed to recover Z.
	Required uint8    `msgpack:"required"`
	Circles  []Circle `msgpack:"circles"`
}

// validate checks the configuration invariants: 1<=T<=255, total
// slots<=255, T<=total slots, at least one circle.
func (cfg Config) validate() (requiredCircles, totalSlots int, err error) {
	if len(cfg.Circles) == 0 {
		return 0, 0, vaulterr.New(vaulterr.KindSSS, "share configuration must have at least one circle")
	}
	if cfg.Required < 1 {
		return 0, 0, vaulterr.New(vaulterr.KindSSS, "threshold must be at least 1")
	}

	for _, c := range cfg.Circles {
		if c.Required {
			requiredCircles++
		}
		totalSlots += len(c.KeyComments)
		if totalSlots > 255 {
			return 0, 0, vaulterr.New(vaulterr.KindIntSize, "total recipient slots exceeds 255")
		}
	}

	if totalSlots == 0 {
		return 0, 0, vaulterr.New(vaulterr.KindSSS, "share configuration has no recipient slots")
	}
	if int(cfg.Required) > totalSlots {
		return 0, 0, vaulterr.New(vaulterr.KindSSS, "threshold cannot exceed total recipient slots")
	}

	return requiredCircles, totalSlots, nil
}

// withChecksum appends a CRC32 integrity tag to secret. Plain GF(2^8)
// Shamir has no built-in way to tell "insufficient shares" from "valid
// shares reconstructing the wrong value" apart — interpolating with too
// few points still produces *a* value. Tagging the secret before splitting
// lets combine distinguish the two cases without relying on the outer AEAD
// (which only runs after a layer has already claimed success).
func withChecksum(secret []byte) []byte {
	sum := crc32.ChecksumIEEE(secret)
	tagged := make([]byte, len(secret)+checksumSize)
	copy(tagged, secret)
	tagged[len(secret)] = byte(sum >> 24)
	tagged[len(secret)+1] = byte(sum >> 16)
	tagged[len(secret)+2] = byte(sum >> 8)
	tagged[len(secret)+3] = byte(sum)
	return tagged
}

// stripChecksum validates and removes the trailing CRC32 tag.
func stripChecksum(tagged []byte) ([]byte, bool) {
	if len(tagged) < checksumSize {
		return nil, false
	}
	secret := tagged[:len(tagged)-checksumSize]
	want := crc32.ChecksumIEEE(secret)
	got := uint32(tagged[len(tagged)-4])<<24 | uint32(tagged[len(tagged)-3])<<16 | uint32(tagged[len(tagged)-2])<<8 | uint32(tagged[len(tagged)-1])
	if want != got {
		return nil, false
	}
	return secret, true
}

// splitSecret splits secret into parts shares, threshold of which recover
// it. The underlying library rejects threshold<2, but a threshold of 1 is
// mathematically just a degree-0 polynomial: every share equals the secret
// itself. That degenerate case is produced directly instead of through the
// library, with the same share format (secret-length bytes, plus a
// trailing x-coordinate byte in 1..parts); combineSecret mirrors it on
// the way back.
func splitSecret(secret []byte, parts, threshold int) ([][]byte, error) {
	if threshold < 2 {
		shares := make([][]byte, parts)
		for i := range shares {
			share := make([]byte, len(secret)+1)
			copy(share, secret)
			share[len(secret)] = byte(i + 1)
			shares[i] = share
		}
		return shares, nil
	}
	return shamir.Split(secret, parts, threshold)
}

// combineSecret is splitSecret's inverse. The underlying library rejects
// fewer than two parts, but a single part is valid here in exactly the
// degenerate cases splitSecret produces directly: a threshold-one layer,
// or a group layer with no required circles. In both, the share is the
// secret itself plus the trailing x-coordinate byte. A lone share from a
// genuine threshold>=2 split also lands here, yielding a value whose
// checksum cannot match, so the caller still reports insufficiency.
func combineSecret(parts [][]byte) ([]byte, error) {
	if len(parts) == 1 {
		share := parts[0]
		if len(share) < 2 {
			return nil, vaulterr.New(vaulterr.KindKeyLength, "share too short")
		}
		return share[:len(share)-1], nil
	}
	return shamir.Combine(parts)
}

// Split divides master into per-recipient key pieces according to cfg.
//
// Group layer: KS(master, R+1, R+1) where R is the number of required
// circles — every group share is mandatory. Shares 0..R-1 go to required
// circles in list order; the final share Z becomes the individual-layer
// secret. Individual layer: KS(Z, N, T) where N is the total recipient
// count and T is cfg.Required. A required circle's recipient receives
// individual-share||group-share; everyone else receives the individual
// share alone.
func Split(master [MasterKeySize]byte, cfg Config) ([]Circle, error) {
	requiredCircles, totalSlots, err := cfg.validate()
	if err != nil {
		return nil, err
	}

	groupSplits := requiredCircles + 1
	groupShares, err := splitSecret(withChecksum(master[:]), groupSplits, groupSplits)
	if err != nil {
		return nil, vaulterr.Wrap(vaulterr.KindSSS, err)
	}

	z := groupShares[requiredCircles]

	individualShares, err := splitSecret(withChecksum(z), totalSlots, int(cfg.Required))
	if err != nil {
		return nil, vaulterr.Wrap(vaulterr.KindSSS, err)
	}

	result := make([]Circle, len(cfg.Circles))
	zIndex := 0
	groupIndex := 0

	for i, circle := range cfg.Circles {
		keys := make([][]byte, len(circle.KeyComments))

		for k := range circle.KeyComments {
			if circle.Required {
				piece := make([]byte, 0, maxPieceSize)
				piece = append(piece, individualShares[zIndex]...)
				piece = append(piece, groupShares[groupIndex]...)
				keys[k] = piece
			} else {
				piece := make([]byte, len(individualShares[zIndex]))
				copy(piece, individualShares[zIndex])
				keys[k] = piece
			}
			zIndex++
		}

		if circle.Required {
			groupIndex++
		}

		result[i] = Circle{
			Name:        circle.Name,
			Required:    circle.Required,
			KeyComments: circle.KeyComments,
			Keys:        keys,
		}
	}

	return result, nil
}

// Combine reconstructs the master key from a set of key pieces.
//
// Pieces are deduplicated by raw byte equality on both layers before
// combining, so the same physical recipient submitting the same piece
// twice (or a group share shared by multiple circle members) is never
// double-counted.
func Combine(pieces [][]byte) ([MasterKeySize]byte, error) {
	var master [MasterKeySize]byte

	individual := make(map[string][]byte)
	group := make(map[string][]byte)

	for _, piece := range pieces {
		if len(piece) > maxPieceSize {
			return master, vaulterr.Newf(vaulterr.KindKeyLength, "key piece too long: %d bytes", len(piece))
		}
		if len(piece) < individualShareSize {
			return master, vaulterr.Newf(vaulterr.KindKeyLength, "key piece too short: %d bytes", len(piece))
		}

		indiv := piece[:individualShareSize]
		individual[string(indiv)] = indiv

		if len(piece) > individualShareSize {
			grp := piece[individualShareSize:]
			group[string(grp)] = grp
		}
	}

	individualList := make([][]byte, 0, len(individual))
	for _, v := range individual {
		individualList = append(individualList, v)
	}

	taggedZ, err := combineSecret(individualList)
	if err != nil {
		return master, vaulterr.ErrIndivCombine
	}
	z, ok := stripChecksum(taggedZ)
	if !ok {
		return master, vaulterr.ErrIndivCombine
	}

	groupList := make([][]byte, 0, len(group)+1)
	for _, v := range group {
		groupList = append(groupList, v)
	}
	groupList = append(groupList, z)

	taggedMaster, err := combineSecret(groupList)
	if err != nil {
		return master, vaulterr.ErrCircleCombine
	}
	recovered, ok := stripChecksum(taggedMaster)
	if !ok || len(recovered) != MasterKeySize {
		return master, vaulterr.ErrCircleCombine
	}

	copy(master[:], recovered)
	return master, nil
}
