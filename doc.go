// Package vault implements a digital legacy vault: files and personal
// instructions sealed behind a master key that is itself split across
// named circles of trusted recipients using two-level Shamir secret
// sharing, so that no single recipient (and no subset below the
// configured threshold) can open the vault alone.
//
// A typical flow is Create, which seals a staging directory into a
// container file and returns the key pieces to distribute to each
// recipient, followed later by either Open (the depositor's own master
// key) or Unlock (a threshold set of recipient key pieces) once the
// vault needs to be opened. LoadMeta reads the cleartext prologue of a
// container without touching its encrypted body, which is enough to
// identify a vault before anyone has gathered the key pieces needed to
// open it.
package vault
