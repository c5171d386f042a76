// Package shares implements the two-level secret-sharing scheme that splits
// a 32-byte master key into per-recipient key pieces and later reconstructs
// it from a threshold subset.
//
// The scheme stacks two Shamir splits: a group layer where every required
// circle's share is mandatory ("all of all"), and an individual layer where
// any T of the N recipient slots recombine the group layer's last share.
// Both layers are built on a single arbitrary-length Shamir primitive
// ([github.com/hashicorp/vault/shamir]); each layer's secret is
// tagged with a CRC32 checksum before splitting so that combining too few
// shares is detected instead of yielding a plausible-looking wrong value.
package shares
